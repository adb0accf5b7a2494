package icongen

import "testing"

func TestCanvas_BufferLengthInvariant(t *testing.T) {
	c := NewCanvas(40, 40)
	if len(c.Pix) != 40*40*3 {
		t.Errorf("Canvas buffer expected to hold width*height*3 bytes. Got %v", len(c.Pix))
	}
}

func TestCanvas_GradientAndCircleScenario(t *testing.T) {
	// 64px icon: brand gradient plus a centered white circle of radius 20.
	desc := &IconDescription{
		Name:     "scenario",
		Gradient: Gradient{Top: Color{7, 164, 234}, Bottom: Color{37, 99, 235}},
		Layers: []Layer{
			{Shape: Circle{Center: Point{0.5, 0.5}, R: 20.0 / 64}, Fill: Solid{Color{255, 255, 255}}},
		},
	}
	c := Draw(desc, 64)

	if got := c.At(32, 32); got != (Color{255, 255, 255}) {
		t.Errorf("Center pixel expected to be white. Got %v", got)
	}
	if got := c.At(0, 0); got != (Color{7, 164, 234}) {
		t.Errorf("Top-left pixel expected to be the top gradient color. Got %v", got)
	}
	if got := c.At(63, 63); got != (Color{37, 99, 235}) {
		t.Errorf("Bottom-right pixel expected to be the bottom gradient color. Got %v", got)
	}
}

func TestCanvas_LaterLayerWins(t *testing.T) {
	red := Color{200, 30, 30}
	blue := Color{30, 30, 200}

	desc := &IconDescription{
		Gradient: Gradient{Top: Color{0, 0, 0}, Bottom: Color{0, 0, 0}},
		Layers: []Layer{
			{Shape: RoundedRect{X: 0.1, Y: 0.1, W: 0.6, H: 0.6}, Fill: Solid{red}},
			{Shape: RoundedRect{X: 0.3, Y: 0.3, W: 0.6, H: 0.6}, Fill: Solid{blue}},
		},
	}
	c := Draw(desc, 50)

	// (20, 20) lies inside both rectangles: the later layer must win.
	if got := c.At(20, 20); got != blue {
		t.Errorf("Overlapping pixel expected to take the later layer's color %v. Got %v", blue, got)
	}
	// (10, 10) lies only inside the first rectangle.
	if got := c.At(10, 10); got != red {
		t.Errorf("Non-overlapping pixel expected to keep the earlier layer's color %v. Got %v", red, got)
	}
}

func TestCanvas_GradientTintReadsBackgroundOnly(t *testing.T) {
	// A tint layer painted over another layer must still derive its color
	// from the background gradient, never from the painted pixel.
	desc := &IconDescription{
		Gradient: Gradient{Top: Color{100, 100, 100}, Bottom: Color{100, 100, 100}},
		Layers: []Layer{
			{Shape: RoundedRect{W: 1, H: 1}, Fill: Solid{Color{0, 0, 0}}},
			{Shape: Circle{Center: Point{0.5, 0.5}, R: 0.2}, Fill: GradientTint{Factor: 1.5, Offset: 10}},
		},
	}
	c := Draw(desc, 20)

	want := Color{160, 160, 160} // 100*1.5 + 10
	if got := c.At(10, 10); got != want {
		t.Errorf("Tinted pixel expected to be %v regardless of the layer below. Got %v", want, got)
	}
}

func TestCanvas_ScanlinesLayout(t *testing.T) {
	c := NewCanvas(3, 2)
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			c.Set(x, y, Color{10 * (x + 1), 20, 30 * (y + 1)})
		}
	}
	rows := c.Scanlines()

	if len(rows) != 2*(1+3*3) {
		t.Fatalf("Scanline buffer expected to be height*(1+width*3) bytes. Got %v", len(rows))
	}
	if rows[0] != 0 || rows[10] != 0 {
		t.Errorf("Every row expected to start with the zero filter byte")
	}
	if rows[1] != 10 || rows[2] != 20 || rows[3] != 30 {
		t.Errorf("First pixel expected right after the filter byte. Got %v %v %v", rows[1], rows[2], rows[3])
	}
}
