package physics

import "math"

// Vec2 is a plain 2D vector.
type Vec2 struct {
	X, Y float64
}

// AABB is an axis-aligned bounding box. Pure value type; all methods are
// side-effect free.
type AABB struct {
	X, Y, W, H float64
}

// FromCenter builds a box from a center point and full extents.
func FromCenter(cx, cy, w, h float64) AABB {
	return AABB{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}

// Center returns the midpoint of the box.
func (a AABB) Center() Vec2 {
	return Vec2{X: a.X + a.W/2, Y: a.Y + a.H/2}
}

// Intersects reports whether the two boxes overlap on both axes.
// Touching edges do not count as intersecting (strict separating-axis test).
func (a AABB) Intersects(b AABB) bool {
	return a.X < b.X+b.W && a.X+a.W > b.X &&
		a.Y < b.Y+b.H && a.Y+a.H > b.Y
}

// OverlapArea returns the area of the overlap region, 0 if disjoint.
func (a AABB) OverlapArea(b AABB) float64 {
	if !a.Intersects(b) {
		return 0
	}
	ox := math.Min(a.X+a.W, b.X+b.W) - math.Max(a.X, b.X)
	oy := math.Min(a.Y+a.H, b.Y+b.H) - math.Max(a.Y, b.Y)
	return ox * oy
}

// ContainsPoint is an inclusive bounds test on both axes.
func (a AABB) ContainsPoint(x, y float64) bool {
	return x >= a.X && x <= a.X+a.W && y >= a.Y && y <= a.Y+a.H
}

// Valid reports whether all fields are finite and extents are non-negative.
func (a AABB) Valid() bool {
	for _, v := range [4]float64{a.X, a.Y, a.W, a.H} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return a.W >= 0 && a.H >= 0
}
