package icongen

// Canvas is an owned RGB pixel buffer, row major, three bytes per pixel.
// A canvas lives for exactly one render: it is created empty, mutated in
// place by Draw and then consumed read-only by the scanline assembler.
type Canvas struct {
	Width  int
	Height int
	Pix    []uint8
}

// NewCanvas allocates a zeroed canvas. The buffer length invariant
// len(Pix) == Width*Height*3 holds from construction on.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height*3),
	}
}

// Set overwrites the pixel at (x, y).
func (c *Canvas) Set(x, y int, col Color) {
	i := (y*c.Width + x) * 3
	c.Pix[i] = uint8(col.R)
	c.Pix[i+1] = uint8(col.G)
	c.Pix[i+2] = uint8(col.B)
}

// At returns the pixel at (x, y).
func (c *Canvas) At(x, y int) Color {
	i := (y*c.Width + x) * 3
	return Color{int(c.Pix[i]), int(c.Pix[i+1]), int(c.Pix[i+2])}
}

// Draw rasterizes an icon description onto a fresh size x size canvas.
// The background gradient is written row by row, then each layer is scaled
// once to pixel space and evaluated per pixel in authored order; a
// containing layer overwrites the pixel outright. Containment is sampled at
// integer pixel coordinates with no antialiasing, matching the flat icon
// look. Cost is O(size^2 * layers), fine for offline icons up to 1024.
func Draw(desc *IconDescription, size int) *Canvas {
	c := NewCanvas(size, size)

	rowColors := make([]Color, size)
	for y := 0; y < size; y++ {
		rowColors[y] = desc.Gradient.At(y, size)
		for x := 0; x < size; x++ {
			c.Set(x, y, rowColors[y])
		}
	}

	s := float64(size)
	for _, layer := range desc.Layers {
		contains := layer.Shape.scale(s)
		paint := layer.Fill.paint(s)
		for y := 0; y < size; y++ {
			fy := float64(y)
			for x := 0; x < size; x++ {
				fx := float64(x)
				if contains(fx, fy) {
					c.Set(x, y, paint(fx, fy, rowColors[y]))
				}
			}
		}
	}
	return c
}
