package icongen

// filterNone is the PNG scanline filter tag for unfiltered rows. The
// encoder never filters: icon rows compress well enough as is and the
// output stays trivially deterministic.
const filterNone = 0

// Scanlines frames the canvas into the byte layout zlib compresses for the
// image data chunk: every row is prefixed with one filter-type byte and
// rows are concatenated top to bottom with no padding. The result is
// Height*(1+Width*3) bytes.
func (c *Canvas) Scanlines() []byte {
	stride := c.Width * 3
	out := make([]byte, 0, c.Height*(1+stride))
	for y := 0; y < c.Height; y++ {
		out = append(out, filterNone)
		out = append(out, c.Pix[y*stride:(y+1)*stride]...)
	}
	return out
}
