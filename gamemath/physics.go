package gamemath

import "math"

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}

// Clamp constrains a value to [min, max].
func Clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// Normalize returns the unit vector for (x, y), or (0, 0) for the zero
// vector.
func Normalize(x, y float64) (float64, float64) {
	length := math.Hypot(x, y)
	if length == 0 {
		return 0, 0
	}
	return x / length, y / length
}

// Distance returns the Euclidean distance between two points.
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

// SteerToward returns velocity components pointing from (fromX, fromY) to
// (targetX, targetY) at the given speed, zero when already at the target.
func SteerToward(fromX, fromY, targetX, targetY, speed float64) (velX, velY float64) {
	dirX, dirY := Normalize(targetX-fromX, targetY-fromY)
	return dirX * speed, dirY * speed
}

// EaseOutQuad maps linear progress t in [0, 1] onto a decelerating curve.
func EaseOutQuad(t float64) float64 {
	t = Clamp(t, 0, 1)
	return t * (2 - t)
}
