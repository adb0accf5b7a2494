package icongen

import "math"

// Point is a location in pixel space.
type Point struct {
	X, Y float64
}

// InTriangle reports whether point p lies inside the triangle (a, b, c),
// edges included. It uses the barycentric coordinates technique: the point
// is decomposed against the two edge vectors sharing vertex a and is inside
// when both area ratios are non negative and sum to at most one.
// Degenerate triangles with collinear vertices contain nothing.
func InTriangle(p, a, b, c Point) bool {
	v0x, v0y := c.X-a.X, c.Y-a.Y
	v1x, v1y := b.X-a.X, b.Y-a.Y
	v2x, v2y := p.X-a.X, p.Y-a.Y

	dot00 := v0x*v0x + v0y*v0y
	dot01 := v0x*v1x + v0y*v1y
	dot02 := v0x*v2x + v0y*v2y
	dot11 := v1x*v1x + v1y*v1y
	dot12 := v1x*v2x + v1y*v2y

	denom := dot00*dot11 - dot01*dot01
	if denom == 0 {
		return false
	}
	inv := 1.0 / denom
	u := (dot11*dot02 - dot01*dot12) * inv
	v := (dot00*dot12 - dot01*dot02) * inv

	return u >= 0 && v >= 0 && u+v <= 1
}

// InRoundedRect reports whether point p lies inside the rounded rectangle
// with top-left origin (rx, ry), dimensions (rw, rh) and corner radius r.
// The point is clamped into the inset rectangle and tested against the
// corner circle. Exact as long as r does not exceed half the shorter side;
// callers must respect that bound.
func InRoundedRect(p Point, rx, ry, rw, rh, r float64) bool {
	nx := math.Min(math.Max(p.X, rx+r), rx+rw-r)
	ny := math.Min(math.Max(p.Y, ry+r), ry+rh-r)
	dx, dy := p.X-nx, p.Y-ny

	return dx*dx+dy*dy <= r*r
}

// InCircle reports whether point p lies inside the circle of the given
// center and radius, boundary included. The test compares squared
// distances to avoid the square root.
func InCircle(p, center Point, radius float64) bool {
	dx, dy := p.X-center.X, p.Y-center.Y
	return dx*dx+dy*dy <= radius*radius
}

// DistToSegment returns the Euclidean distance from point p to the line
// segment (a, b). The projection parameter is clamped to the segment, so
// points past either end measure against the nearest endpoint.
func DistToSegment(p, a, b Point) float64 {
	vx, vy := b.X-a.X, b.Y-a.Y
	wx, wy := p.X-a.X, p.Y-a.Y

	c1 := vx*wx + vy*wy
	if c1 <= 0 {
		return math.Hypot(p.X-a.X, p.Y-a.Y)
	}
	c2 := vx*vx + vy*vy
	if c2 <= c1 {
		return math.Hypot(p.X-b.X, p.Y-b.Y)
	}
	t := c1 / c2
	return math.Hypot(p.X-(a.X+t*vx), p.Y-(a.Y+t*vy))
}
