package icongen

import "math"

// Shape is a closed region authored in size-normalized fractional
// coordinates (0..1 of the canvas side), so one description renders at any
// target resolution. scale resolves the shape once per layer into a
// pixel-space containment test.
type Shape interface {
	scale(size float64) containsFn
}

type containsFn func(x, y float64) bool

// Circle is a disc, optionally clipped below a horizontal chord.
type Circle struct {
	Center Point
	R      float64
	// Cap, when positive, keeps only the region where y-center.Y <= Cap*r.
	// The water drop silhouette is such a clipped cap merged with a
	// triangular tail.
	Cap float64
	// MinR is a pixel-space floor applied to the scaled radius and Grow a
	// pixel-space padding added after it. Small marks such as radio dots
	// would otherwise vanish at the 20px slot sizes.
	MinR float64
	Grow float64
}

func (c Circle) radius(size float64) float64 {
	return math.Max(c.R*size, c.MinR) + c.Grow
}

func (c Circle) scale(size float64) containsFn {
	cx, cy := c.Center.X*size, c.Center.Y*size
	r := c.radius(size)
	r2 := r * r
	capY := c.Cap * r

	return func(x, y float64) bool {
		dx, dy := x-cx, y-cy
		if c.Cap > 0 && dy > capY {
			return false
		}
		return dx*dx+dy*dy <= r2
	}
}

// Triangle is the filled triangle spanned by three vertices.
type Triangle struct {
	A, B, C Point
}

func (t Triangle) scale(size float64) containsFn {
	a := Point{t.A.X * size, t.A.Y * size}
	b := Point{t.B.X * size, t.B.Y * size}
	c := Point{t.C.X * size, t.C.Y * size}

	return func(x, y float64) bool {
		return InTriangle(Point{x, y}, a, b, c)
	}
}

// RoundedRect is an axis-aligned rectangle with rounded corners. A zero
// corner radius yields an exact rectangle test. The radius must not exceed
// half the shorter side.
type RoundedRect struct {
	X, Y, W, H, R float64
}

func (r RoundedRect) scale(size float64) containsFn {
	rx, ry := r.X*size, r.Y*size
	rw, rh := r.W*size, r.H*size
	rr := r.R * size

	return func(x, y float64) bool {
		return InRoundedRect(Point{x, y}, rx, ry, rw, rh, rr)
	}
}

// Border is the band just inside the edge of a rounded rectangle: the
// rectangle minus itself shrunk by a fixed pixel width. The hairline card
// outline lies entirely within the card and never touches the background.
// The width is in absolute pixels regardless of the target size.
type Border struct {
	Rect  RoundedRect
	Width float64
}

func (b Border) scale(size float64) containsFn {
	rx, ry := b.Rect.X*size, b.Rect.Y*size
	rw, rh := b.Rect.W*size, b.Rect.H*size
	rr := b.Rect.R * size
	w := b.Width
	ir := math.Max(rr-w, 0)

	return func(x, y float64) bool {
		p := Point{x, y}
		return InRoundedRect(p, rx, ry, rw, rh, rr) &&
			!InRoundedRect(p, rx+w, ry+w, rw-2*w, rh-2*w, ir)
	}
}

// Clip restricts a shape to the union of one or more mask shapes. The
// goal checkmark is authored inside the drop silhouette: its strokes must
// never spill past the cap-plus-tail region onto the background.
type Clip struct {
	Shape Shape
	Mask  []Shape
}

func (c Clip) scale(size float64) containsFn {
	contains := c.Shape.scale(size)
	masks := make([]containsFn, len(c.Mask))
	for i, m := range c.Mask {
		masks[i] = m.scale(size)
	}

	return func(x, y float64) bool {
		if !contains(x, y) {
			return false
		}
		for _, m := range masks {
			if m(x, y) {
				return true
			}
		}
		return false
	}
}

// Segment is a stroked line: all points closer to the segment than its
// half-thickness.
type Segment struct {
	A, B     Point
	Thick    float64
	MinThick float64
}

func (s Segment) scale(size float64) containsFn {
	a := Point{s.A.X * size, s.A.Y * size}
	b := Point{s.B.X * size, s.B.Y * size}
	thick := math.Max(s.Thick*size, s.MinThick)

	return func(x, y float64) bool {
		return DistToSegment(Point{x, y}, a, b) < thick
	}
}

// HBar is a horizontal bar with square ends, centered on row Y and spanning
// X0..X1. The answer pills are bars, not stroked segments: their ends are
// flat by authoring.
type HBar struct {
	X0, X1, Y float64
	Half      float64
	MinHalf   float64
}

func (h HBar) scale(size float64) containsFn {
	x0, x1 := h.X0*size, h.X1*size
	cy := h.Y * size
	half := math.Max(h.Half*size, h.MinHalf)

	return func(x, y float64) bool {
		return math.Abs(y-cy) <= half && x0 <= x && x <= x1
	}
}

// Annulus is a circular band of the given half-width around radius R,
// optionally restricted to an arc. From and To are degrees measured from
// the positive x axis; when From > To the arc wraps through zero, and equal
// values mean the full ring.
type Annulus struct {
	Center   Point
	R        float64
	Band     float64
	MinBand  float64
	From, To float64
}

func (a Annulus) scale(size float64) containsFn {
	cx, cy := a.Center.X*size, a.Center.Y*size
	r := a.R * size
	band := math.Max(a.Band*size, a.MinBand)
	arc := a.From != a.To

	return func(x, y float64) bool {
		dx, dy := x-cx, y-cy
		d := math.Hypot(dx, dy)
		if math.Abs(d-r) > band {
			return false
		}
		if !arc {
			return true
		}
		ang := math.Mod(math.Atan2(dy, dx)*180/math.Pi+360, 360)
		if a.From <= a.To {
			return a.From <= ang && ang <= a.To
		}
		return ang >= a.From || ang <= a.To
	}
}
