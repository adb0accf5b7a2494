package icongen

import (
	"bytes"
	"testing"

	"github.com/aquaware/icongen/utils"
)

func TestRender_Deterministic(t *testing.T) {
	for _, name := range ThemeNames() {
		desc, err := Theme(name)
		if err != nil {
			t.Fatalf("Failed to look up theme %q: %v", name, err)
		}
		first, err := Render(desc, 64)
		if err != nil {
			t.Fatalf("Failed to render theme %q: %v", name, err)
		}
		second, err := Render(desc, 64)
		if err != nil {
			t.Fatalf("Failed to render theme %q: %v", name, err)
		}
		if !bytes.Equal(first, second) {
			t.Errorf("Two renders of theme %q expected to be byte identical", name)
		}
	}
}

func TestRender_SinglePixel(t *testing.T) {
	for _, name := range ThemeNames() {
		desc, _ := Theme(name)
		if _, err := Render(desc, 1); err != nil {
			t.Errorf("A one-pixel render of theme %q expected to succeed. Got %v", name, err)
		}
	}

	// The drop's shapes miss the single sample at (0,0), so the pixel is
	// the gradient top color.
	c := Draw(Drop(), 1)
	if got := c.At(0, 0); got != (Color{7, 164, 234}) {
		t.Errorf("Single-pixel drop expected to be the top gradient color. Got %v", got)
	}
}

func TestRender_RejectsInvalidSize(t *testing.T) {
	if _, err := Render(Drop(), 0); err == nil {
		t.Errorf("A zero-size render expected to fail")
	}
	if _, err := Render(nil, 64); err == nil {
		t.Errorf("A nil description expected to fail")
	}
}

// brightRatio counts near-white pixels as a fraction of the canvas.
func brightRatio(c *Canvas) float64 {
	bright := 0
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			p := c.At(x, y)
			if p.R > 200 && p.G > 200 && p.B > 200 {
				bright++
			}
		}
	}
	return float64(bright) / float64(c.Width*c.Height)
}

func TestRender_GeometryScalesProportionally(t *testing.T) {
	// The shapes are fraction-based, so the white coverage of two renders
	// at different sizes must agree within a small tolerance.
	small := brightRatio(Draw(Drop(), 40))
	large := brightRatio(Draw(Drop(), 80))

	if small == 0 || large == 0 {
		t.Fatalf("Both renders expected to contain white drop pixels. Got %v and %v", small, large)
	}
	if diff := utils.Abs(small - large); diff > 0.05 {
		t.Errorf("White coverage expected to be scale independent. Got %v vs %v (diff %v)", small, large, diff)
	}
}

func TestTheme_Lookup(t *testing.T) {
	if _, err := Theme("nope"); err == nil {
		t.Errorf("An unknown theme name expected to fail")
	}

	names := ThemeNames()
	if len(names) != 7 {
		t.Errorf("Seven built-in themes expected. Got %v: %v", len(names), names)
	}
	for _, name := range names {
		desc, err := Theme(name)
		if err != nil {
			t.Fatalf("Failed to look up theme %q: %v", name, err)
		}
		if desc.Name != name {
			t.Errorf("Theme %q expected to carry its own name. Got %q", name, desc.Name)
		}
		if len(desc.Layers) == 0 {
			t.Errorf("Theme %q expected to define at least one layer", name)
		}
	}
}
