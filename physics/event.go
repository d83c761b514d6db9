package physics

import "math"

// CollisionEvent records one detected collision pair for the current frame.
// Events are built fresh each frame and never persisted across frames.
type CollisionEvent struct {
	A, B *Collider

	// ContactPoint is the centroid of the AABB overlap region.
	ContactPoint Vec2

	// Normal is the unit vector from A's center toward B's center,
	// {1, 0} when the centers coincide.
	Normal Vec2

	// Penetration is the smaller of the overlap extents along x and y.
	Penetration float64

	// Frame is the monotonic detection-frame counter at creation time.
	Frame uint64

	// Handled is set once a registered handler or the default resolver has
	// processed the event.
	Handled bool
}

// newCollisionEvent derives contact point, normal and penetration from the
// two boxes, which must already be known to intersect.
func newCollisionEvent(a, b *Collider, frame uint64) *CollisionEvent {
	ax2, bx2 := a.Box.X+a.Box.W, b.Box.X+b.Box.W
	ay2, by2 := a.Box.Y+a.Box.H, b.Box.Y+b.Box.H

	left := maxf(a.Box.X, b.Box.X)
	right := minf(ax2, bx2)
	top := maxf(a.Box.Y, b.Box.Y)
	bottom := minf(ay2, by2)

	overlapX := right - left
	overlapY := bottom - top

	ca, cb := a.Box.Center(), b.Box.Center()
	dx, dy := cb.X-ca.X, cb.Y-ca.Y
	normal := Vec2{X: 1, Y: 0}
	if length := math.Hypot(dx, dy); length > 0 {
		normal = Vec2{X: dx / length, Y: dy / length}
	}

	return &CollisionEvent{
		A:            a,
		B:            b,
		ContactPoint: Vec2{X: (left + right) / 2, Y: (top + bottom) / 2},
		Normal:       normal,
		Penetration:  minf(overlapX, overlapY),
		Frame:        frame,
	}
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
