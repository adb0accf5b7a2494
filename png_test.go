package icongen

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"hash/crc32"
	"image/png"
	"io"
	"testing"
)

// chunkOf walks the encoded file and returns the data of the first chunk
// with the given tag.
func chunkOf(t *testing.T, data []byte, tag string) []byte {
	t.Helper()
	pos := 8
	for pos < len(data) {
		length := int(binary.BigEndian.Uint32(data[pos : pos+4]))
		got := string(data[pos+4 : pos+8])
		if got == tag {
			return data[pos+8 : pos+8+length]
		}
		pos += 12 + length
	}
	t.Fatalf("Chunk %q not found in the encoded image", tag)
	return nil
}

func encodeTestIcon(t *testing.T, size int) (*Canvas, []byte) {
	t.Helper()
	c := Draw(Goal(), size)
	data, err := EncodePNG(c.Width, c.Height, c.Scanlines())
	if err != nil {
		t.Fatalf("Failed to encode the image: %v", err)
	}
	return c, data
}

func TestPNG_Signature(t *testing.T) {
	_, data := encodeTestIcon(t, 16)

	want := []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}
	if !bytes.Equal(data[:8], want) {
		t.Errorf("File expected to open with the PNG signature. Got % x", data[:8])
	}
}

func TestPNG_HeaderFields(t *testing.T) {
	const size = 48
	_, data := encodeTestIcon(t, size)

	ihdr := chunkOf(t, data, "IHDR")
	if len(ihdr) != 13 {
		t.Fatalf("IHDR expected to be 13 bytes. Got %v", len(ihdr))
	}
	if w := binary.BigEndian.Uint32(ihdr[0:4]); w != size {
		t.Errorf("Header width expected to be %v. Got %v", size, w)
	}
	if h := binary.BigEndian.Uint32(ihdr[4:8]); h != size {
		t.Errorf("Header height expected to be %v. Got %v", size, h)
	}
	if ihdr[8] != 8 {
		t.Errorf("Bit depth expected to be 8. Got %v", ihdr[8])
	}
	if ihdr[9] != 2 {
		t.Errorf("Color type expected to be truecolor without alpha. Got %v", ihdr[9])
	}
	if ihdr[10] != 0 || ihdr[11] != 0 || ihdr[12] != 0 {
		t.Errorf("Compression, filter and interlace flags expected to be zero. Got %v %v %v",
			ihdr[10], ihdr[11], ihdr[12])
	}
}

func TestPNG_ChunkChecksums(t *testing.T) {
	_, data := encodeTestIcon(t, 32)

	pos := 8
	for pos < len(data) {
		length := int(binary.BigEndian.Uint32(data[pos : pos+4]))
		tagAndData := data[pos+4 : pos+8+length]
		stored := binary.BigEndian.Uint32(data[pos+8+length : pos+12+length])

		if sum := crc32.ChecksumIEEE(tagAndData); sum != stored {
			t.Errorf("Chunk %q checksum mismatch: stored %08x, recomputed %08x",
				string(tagAndData[:4]), stored, sum)
		}
		pos += 12 + length
	}
}

func TestPNG_RoundTripReproducesCanvas(t *testing.T) {
	const size = 40
	c, data := encodeTestIcon(t, size)

	idat := chunkOf(t, data, "IDAT")
	zr, err := zlib.NewReader(bytes.NewReader(idat))
	if err != nil {
		t.Fatalf("Failed to open the compressed image data: %v", err)
	}
	raw, err := io.ReadAll(zr)
	if err != nil {
		t.Fatalf("Failed to decompress the image data: %v", err)
	}

	stride := size * 3
	if len(raw) != size*(1+stride) {
		t.Fatalf("Decompressed scanlines expected to be %v bytes. Got %v", size*(1+stride), len(raw))
	}

	// Strip the per-row filter bytes and compare against the canvas.
	pix := make([]byte, 0, size*stride)
	for y := 0; y < size; y++ {
		row := raw[y*(1+stride) : (y+1)*(1+stride)]
		if row[0] != 0 {
			t.Fatalf("Row %d filter byte expected to be zero. Got %v", y, row[0])
		}
		pix = append(pix, row[1:]...)
	}
	if !bytes.Equal(pix, c.Pix) {
		t.Errorf("Decompressed pixel data expected to equal the composited canvas")
	}
}

func TestPNG_DecodableByStandardLibrary(t *testing.T) {
	const size = 64
	c, data := encodeTestIcon(t, size)

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("The standard decoder rejected the encoded image: %v", err)
	}
	if img.Bounds().Dx() != size || img.Bounds().Dy() != size {
		t.Fatalf("Decoded image expected to be %vx%v. Got %v", size, size, img.Bounds())
	}

	r, g, b, _ := img.At(10, 10).RGBA()
	want := c.At(10, 10)
	if int(r>>8) != want.R || int(g>>8) != want.G || int(b>>8) != want.B {
		t.Errorf("Decoded pixel expected to be %v. Got (%v, %v, %v)", want, r>>8, g>>8, b>>8)
	}
}

func TestPNG_EmptyTrailerChunk(t *testing.T) {
	_, data := encodeTestIcon(t, 16)

	if got := chunkOf(t, data, "IEND"); len(got) != 0 {
		t.Errorf("Trailer chunk expected to carry no data. Got %v bytes", len(got))
	}
	if string(data[len(data)-8:len(data)-4]) != "IEND" {
		t.Errorf("File expected to end with the trailer chunk")
	}
}
