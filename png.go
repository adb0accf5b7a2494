package icongen

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"hash/crc32"

	"github.com/pkg/errors"
)

// pngSignature is the fixed 8-byte file header every PNG opens with.
var pngSignature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

// IHDR constants for the only pixel format this encoder emits:
// 8-bit truecolor without alpha, no interlacing.
const (
	pngBitDepth  = 8
	pngColorType = 2
)

// appendChunk frames one PNG chunk: big-endian data length, the 4-byte
// ASCII type tag, the data, and a CRC-32 computed over tag plus data. The
// checksum is taken over the exact bytes written, never re-derived.
func appendChunk(dst []byte, tag string, data []byte) []byte {
	var length [4]byte
	binary.BigEndian.PutUint32(length[:], uint32(len(data)))
	dst = append(dst, length[:]...)

	start := len(dst)
	dst = append(dst, tag...)
	dst = append(dst, data...)

	var sum [4]byte
	binary.BigEndian.PutUint32(sum[:], crc32.ChecksumIEEE(dst[start:]))
	return append(dst, sum[:]...)
}

// EncodePNG serializes pre-assembled scanlines into a complete PNG byte
// sequence: signature, IHDR, one IDAT holding the zlib stream at best
// compression, and the empty IEND trailer. The function is pure: the same
// (width, height, scanlines) input always yields byte-identical output,
// and the whole sequence is built in memory before the caller writes
// anything to disk.
func EncodePNG(width, height int, scanlines []byte) ([]byte, error) {
	var compressed bytes.Buffer
	zw, err := zlib.NewWriterLevel(&compressed, zlib.BestCompression)
	if err != nil {
		return nil, errors.Wrap(err, "initializing the image data compressor")
	}
	if _, err := zw.Write(scanlines); err != nil {
		return nil, errors.Wrap(err, "compressing the image data")
	}
	if err := zw.Close(); err != nil {
		return nil, errors.Wrap(err, "flushing the image data")
	}

	ihdr := make([]byte, 13)
	binary.BigEndian.PutUint32(ihdr[0:4], uint32(width))
	binary.BigEndian.PutUint32(ihdr[4:8], uint32(height))
	ihdr[8] = pngBitDepth
	ihdr[9] = pngColorType
	// compression, filter and interlace methods are all zero

	out := make([]byte, 0, len(pngSignature)+len(compressed.Bytes())+64)
	out = append(out, pngSignature...)
	out = appendChunk(out, "IHDR", ihdr)
	out = appendChunk(out, "IDAT", compressed.Bytes())
	out = appendChunk(out, "IEND", nil)
	return out, nil
}
