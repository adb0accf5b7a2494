package icongen

import "math"

// Fill resolves the color a layer paints at a contained pixel. paint is
// invoked once per layer with the target size and returns the per-pixel
// rule. The bg argument is the background gradient color of the pixel's
// row, computed independently of anything already painted; no fill may
// observe another layer's output.
type Fill interface {
	paint(size float64) paintFn
}

type paintFn func(x, y float64, bg Color) Color

// Solid paints a constant color.
type Solid struct {
	Color Color
}

func (s Solid) paint(size float64) paintFn {
	return func(x, y float64, bg Color) Color {
		return s.Color
	}
}

// CapShade paints a base color darkened near the boundary of a reference
// circle, giving the drop cap a soft inner edge. The distance metric is
// |distSq - r^2|; within Near*S^2 of the boundary each channel is reduced
// by max(0, Max - d/(Falloff*S^2)), clamped at zero.
type CapShade struct {
	Color   Color
	Ref     Circle
	Near    float64
	Falloff float64
	Max     float64
}

func (c CapShade) paint(size float64) paintFn {
	cx, cy := c.Ref.Center.X*size, c.Ref.Center.Y*size
	r := c.Ref.radius(size)
	r2 := r * r
	near := c.Near * size * size
	falloff := c.Falloff * size * size

	return func(x, y float64, bg Color) Color {
		dx, dy := x-cx, y-cy
		d := math.Abs(dx*dx + dy*dy - r2)
		if d >= near {
			return c.Color
		}
		shade := int(c.Max - d/falloff)
		if shade <= 0 {
			return c.Color
		}
		return Color{
			R: clampByte(c.Color.R - shade),
			G: clampByte(c.Color.G - shade),
			B: clampByte(c.Color.B - shade),
		}
	}
}

// GradientTint brightens the background gradient under the layer's shape:
// each channel becomes min(255, c*Factor + Offset). Used for the master
// icon highlight and the target rings.
type GradientTint struct {
	Factor float64
	Offset float64
}

func (g GradientTint) paint(size float64) paintFn {
	return func(x, y float64, bg Color) Color {
		return Color{
			R: clampByte(int(float64(bg.R)*g.Factor + g.Offset)),
			G: clampByte(int(float64(bg.G)*g.Factor + g.Offset)),
			B: clampByte(int(float64(bg.B)*g.Factor + g.Offset)),
		}
	}
}

func clampByte(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

// Layer pairs a shape with its fill rule. Layers are painted in authored
// order and a later layer fully overwrites earlier ones wherever its shape
// contains the pixel; the flat-color aesthetic rules out blending.
type Layer struct {
	Shape Shape
	Fill  Fill
}

// IconDescription is one icon theme: a vertical background gradient plus an
// ordered stack of layers, all in fractional coordinates. Descriptions are
// immutable configuration values; the same description renders at any
// square pixel size.
type IconDescription struct {
	Name     string
	Gradient Gradient
	Layers   []Layer
}
