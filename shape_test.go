package icongen

import "testing"

func TestShape_BorderStaysInsideRect(t *testing.T) {
	b := Border{Rect: RoundedRect{X: 0.1, Y: 0.1, W: 0.8, H: 0.8}, Width: 1}
	contains := b.scale(100)

	if contains(9.5, 50) {
		t.Errorf("Border expected to reject points outside the rectangle edge")
	}
	if !contains(10, 50) {
		t.Errorf("Border expected to contain the rectangle edge itself")
	}
	if contains(50, 50) {
		t.Errorf("Border expected to reject the rectangle interior")
	}
}

func TestShape_ClipToMaskUnion(t *testing.T) {
	left := Circle{Center: Point{0.25, 0.5}, R: 0.2}
	right := Circle{Center: Point{0.75, 0.5}, R: 0.2}
	clip := Clip{
		Shape: RoundedRect{X: 0, Y: 0, W: 0.5, H: 1},
		Mask:  []Shape{left, right},
	}
	contains := clip.scale(100)

	if !contains(25, 50) {
		t.Errorf("Point inside both the shape and a mask expected to be contained")
	}
	if contains(49, 50) {
		t.Errorf("Point inside the shape but outside every mask expected to be rejected")
	}
	if contains(75, 50) {
		t.Errorf("Point inside a mask but outside the shape expected to be rejected")
	}
}
