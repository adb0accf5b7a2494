package icongen

import (
	"fmt"
	"sort"
)

// Brand palette shared by the icon themes. The master icon was authored
// with a slightly different cyan before the palette settled; its value is
// preserved as is.
var (
	brandTop    = Color{7, 164, 234}
	brandBottom = Color{37, 99, 235}
	masterTop   = Color{14, 165, 233}
	white       = Color{255, 255, 255}
	brandBlue   = Color{37, 99, 235}
	brandGreen  = Color{52, 199, 89}
)

// Theme returns the built-in icon description registered under name.
func Theme(name string) (*IconDescription, error) {
	if t, ok := themes[name]; ok {
		return t(), nil
	}
	return nil, fmt.Errorf("unknown icon theme %q", name)
}

// ThemeNames lists the built-in theme names in sorted order.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var themes = map[string]func() *IconDescription{
	"drop":   Drop,
	"ring":   Ring,
	"target": Target,
	"goal":   Goal,
	"master": Master,
	"bubble": Bubble,
	"list":   List,
}

// dropShape builds the water drop layer stack: a triangular tail joined to
// a chord-clipped circle cap. The cap is painted after the tail so its edge
// shading also covers the seam between the two. The silhouette (cap plus
// tail) is returned alongside so marks drawn inside the drop can be clipped
// to it.
func dropShape(cx, cy, r, apexY float64, shade CapShade) ([]Layer, []Shape) {
	head := Circle{Center: Point{cx, cy}, R: r, Cap: 0.35}
	tail := Triangle{
		A: Point{cx - 0.70*r, cy + 0.35*r},
		B: Point{cx + 0.70*r, cy + 0.35*r},
		C: Point{cx, apexY},
	}
	shade.Ref = head
	layers := []Layer{
		{Shape: tail, Fill: Solid{white}},
		{Shape: head, Fill: shade},
	}
	return layers, []Shape{head, tail}
}

// Drop is the plain hydration drop: white drop on the brand gradient.
func Drop() *IconDescription {
	shade := CapShade{Color: white, Near: 0.01, Falloff: 0.00007, Max: 30}
	layers, _ := dropShape(0.5, 0.415, 0.255, 0.80, shade)
	return &IconDescription{
		Name:     "drop",
		Gradient: Gradient{Top: brandTop, Bottom: brandBottom},
		Layers:   layers,
	}
}

// Ring is the drop variant with a thin white progress ring around the drop.
func Ring() *IconDescription {
	d := Drop()
	d.Name = "ring"
	d.Layers = append(d.Layers, Layer{
		Shape: Annulus{
			Center:  Point{0.5, 0.415 + 0.21*0.255},
			R:       1.1 * 0.255,
			MinBand: 1.0,
		},
		Fill: Solid{white},
	})
	return d
}

// Target is the drop variant over two faint concentric rings that brighten
// the background gradient beneath them.
func Target() *IconDescription {
	d := Drop()
	d.Name = "target"
	center := Point{0.5, 0.415 + 0.21*0.255}
	rings := []Layer{
		{
			Shape: Annulus{Center: center, R: 0.60 * 0.255, MinBand: 1.0},
			Fill:  GradientTint{Factor: 1.08, Offset: 18 * 0.08},
		},
		{
			Shape: Annulus{Center: center, R: 0.85 * 0.255, MinBand: 1.0},
			Fill:  GradientTint{Factor: 1.05, Offset: 18 * 0.05},
		},
	}
	d.Layers = append(rings, d.Layers...)
	return d
}

// Goal is the hydration-goal icon: the drop with a green checkmark inside.
// Its drop constants were re-tuned separately from the plain drop and are
// kept as authored.
func Goal() *IconDescription {
	shade := CapShade{Color: white, Near: 0.0215, Falloff: 0.000078, Max: 40}
	layers, drop := dropShape(0.5, 0.420, 0.254, 0.801, shade)

	// The checkmark lives inside the drop; clipping its strokes to the
	// silhouette keeps the green off the background gradient.
	a1 := Point{0.381, 0.576}
	a2 := Point{0.459, 0.654}
	b2 := Point{0.635, 0.459}
	layers = append(layers,
		Layer{Shape: Clip{Shape: Segment{A: a1, B: a2, Thick: 0.0176}, Mask: drop}, Fill: Solid{brandGreen}},
		Layer{Shape: Clip{Shape: Segment{A: a2, B: b2, Thick: 0.0176}, Mask: drop}, Fill: Solid{brandGreen}},
	)
	return &IconDescription{
		Name:     "goal",
		Gradient: Gradient{Top: brandTop, Bottom: brandBottom},
		Layers:   layers,
	}
}

// Master reproduces the original 1024 store icon: unshaded drop with a
// radial highlight brightening the background above and left of it. The
// geometry was authored in whole pixels on a 1024 canvas, hence the
// fractions below.
func Master() *IconDescription {
	head := Circle{Center: Point{0.5, 430.0 / 1024}, R: 260.0 / 1024, Cap: 0.35}
	tail := Triangle{
		A: Point{330.0 / 1024, 521.0 / 1024},
		B: Point{694.0 / 1024, 521.0 / 1024},
		C: Point{0.5, 820.0 / 1024},
	}
	highlight := Circle{Center: Point{382.0 / 1024, 280.0 / 1024}, R: 90.0 / 1024}

	return &IconDescription{
		Name:     "master",
		Gradient: Gradient{Top: masterTop, Bottom: brandBottom},
		Layers: []Layer{
			{Shape: highlight, Fill: GradientTint{Factor: 1.10, Offset: 20}},
			{Shape: tail, Fill: Solid{white}},
			{Shape: head, Fill: Solid{white}},
		},
	}
}

// Bubble is the quiz icon: a white chat bubble with a question mark drawn
// from an arc, a stem and a dot in the brand blue.
func Bubble() *IconDescription {
	const (
		bx = 0.167
		by = 0.167
		bw = 0.667
		bh = 0.522
	)
	bubble := RoundedRect{X: bx, Y: by, W: bw, H: bh, R: 0.111}
	tail := Triangle{
		A: Point{bx + 0.278*bw, by + bh},
		B: Point{bx + 0.389*bw, by + bh},
		C: Point{bx + 0.333*bw, by + bh + 0.111},
	}

	// Question mark centered on the bubble.
	const (
		qx = 0.50
		qy = 0.389
	)
	arc := Annulus{
		Center: Point{qx, qy}, R: 0.133,
		Band: 0.028, MinBand: 2.0,
		From: 210, To: 60,
	}
	stem := RoundedRect{X: qx + 0.011, Y: qy + 0.044, W: 0.033, H: 0.100}
	dot := Circle{Center: Point{qx + 0.027, qy + 0.178}, R: 0.028, MinR: 2.0, Grow: 1.0}

	return &IconDescription{
		Name:     "bubble",
		Gradient: Gradient{Top: brandTop, Bottom: brandBottom},
		Layers: []Layer{
			{Shape: bubble, Fill: Solid{white}},
			{Shape: tail, Fill: Solid{white}},
			{Shape: arc, Fill: Solid{brandBlue}},
			{Shape: stem, Fill: Solid{brandBlue}},
			{Shape: dot, Fill: Solid{brandBlue}},
		},
	}
}

// List is the quiz-list icon: one white card carrying four answer rows of
// radio dot plus pill line, with the second row selected in green.
func List() *IconDescription {
	const (
		rx = 0.133
		ry = 0.167
		rw = 0.733
		rh = 0.667
	)
	card := RoundedRect{X: rx, Y: ry, W: rw, H: rh, R: 0.089}

	layers := []Layer{
		{Shape: card, Fill: Solid{white}},
		{Shape: Border{Rect: card, Width: 1}, Fill: Solid{Color{220, 226, 240}}},
	}

	const (
		start = ry + 0.111
		gap   = 0.133
	)
	for i := 0; i < 4; i++ {
		cy := start + float64(i)*gap
		selected := i == 1

		dot := Circle{Center: Point{rx + 0.089, cy}, R: 0.030, MinR: 3.5}
		dotColor := Color{190, 196, 210}
		if selected {
			dot.R, dot.MinR = 0.040, 4.0
			dotColor = brandGreen
		}

		pillColor := Color{210, 215, 228}
		if selected {
			pillColor = Color{190, 196, 210}
		}
		pill := HBar{X0: rx + 0.167, X1: rx + rw - 0.067, Y: cy, Half: 0.024, MinHalf: 2.0}

		layers = append(layers,
			Layer{Shape: dot, Fill: Solid{dotColor}},
			Layer{Shape: pill, Fill: Solid{pillColor}},
		)
	}

	return &IconDescription{
		Name:     "list",
		Gradient: Gradient{Top: brandTop, Bottom: brandBottom},
		Layers:   layers,
	}
}
