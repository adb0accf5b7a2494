package icongen

// Color is a plain 8-bit RGB triple. The icon model has no alpha channel:
// layers fully overwrite whatever is below them.
type Color struct {
	R, G, B int
}

// Gradient is a two-stop vertical gradient interpolated per scanline.
type Gradient struct {
	Top    Color
	Bottom Color
}

// lerp interpolates between two channel values, truncating the result.
// Truncation (not rounding) is part of the rendering contract: two renders
// of the same description must be byte identical.
func lerp(a, b int, t float64) int {
	return int(float64(a) + float64(b-a)*t)
}

// At returns the gradient color for row y of a canvas with the given
// height. A single-row canvas yields the top color.
func (g Gradient) At(y, height int) Color {
	if height <= 1 {
		return g.Top
	}
	t := float64(y) / float64(height-1)
	return Color{
		R: lerp(g.Top.R, g.Bottom.R, t),
		G: lerp(g.Top.G, g.Bottom.G, t),
		B: lerp(g.Top.B, g.Bottom.B, t),
	}
}
