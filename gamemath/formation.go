package gamemath

import "math"

// FormationShape names a spawn layout for a group of enemies.
type FormationShape string

const (
	FormationLine    FormationShape = "line"
	FormationGrid    FormationShape = "grid"
	FormationV       FormationShape = "v"
	FormationCircle  FormationShape = "circle"
	FormationDiamond FormationShape = "diamond"
)

// SpawnSlot is one position in a formation with its staggered spawn delay
// in frames.
type SpawnSlot struct {
	X, Y  float64
	Delay int
}

// FormationPositions maps (shape, count, anchor, spacing) to spawn slots.
// Pure function: same inputs, same slots. Delays increase by delayStep in
// slot order, so they are non-decreasing row-major for grid layouts.
// Unknown shapes fall back to a line.
func FormationPositions(shape FormationShape, count int, anchorX, anchorY, spacing float64, delayStep int) []SpawnSlot {
	if count <= 0 {
		return nil
	}
	var slots []SpawnSlot
	switch shape {
	case FormationGrid:
		slots = gridPositions(count, anchorX, anchorY, spacing)
	case FormationV:
		slots = vPositions(count, anchorX, anchorY, spacing)
	case FormationCircle:
		slots = circlePositions(count, anchorX, anchorY, spacing)
	case FormationDiamond:
		slots = diamondPositions(count, anchorX, anchorY, spacing)
	default:
		slots = linePositions(count, anchorX, anchorY, spacing)
	}
	for i := range slots {
		slots[i].Delay = i * delayStep
	}
	return slots
}

// linePositions lays out a single horizontal row centered on the anchor.
func linePositions(count int, anchorX, anchorY, spacing float64) []SpawnSlot {
	slots := make([]SpawnSlot, 0, count)
	start := anchorX - spacing*float64(count-1)/2
	for i := 0; i < count; i++ {
		slots = append(slots, SpawnSlot{X: start + float64(i)*spacing, Y: anchorY})
	}
	return slots
}

// gridPositions lays out rows of ceil(sqrt(count)) columns, row-major,
// centered on the anchor.
func gridPositions(count int, anchorX, anchorY, spacing float64) []SpawnSlot {
	cols := int(math.Ceil(math.Sqrt(float64(count))))
	rows := (count + cols - 1) / cols
	slots := make([]SpawnSlot, 0, count)
	startX := anchorX - spacing*float64(cols-1)/2
	startY := anchorY - spacing*float64(rows-1)/2
	for i := 0; i < count; i++ {
		row := i / cols
		col := i % cols
		slots = append(slots, SpawnSlot{
			X: startX + float64(col)*spacing,
			Y: startY + float64(row)*spacing,
		})
	}
	return slots
}

// vPositions lays out two descending wings from the anchor tip,
// alternating right/left.
func vPositions(count int, anchorX, anchorY, spacing float64) []SpawnSlot {
	slots := make([]SpawnSlot, 0, count)
	slots = append(slots, SpawnSlot{X: anchorX, Y: anchorY})
	for i := 1; i < count; i++ {
		arm := float64((i + 1) / 2)
		side := 1.0
		if i%2 == 0 {
			side = -1.0
		}
		slots = append(slots, SpawnSlot{
			X: anchorX + side*arm*spacing,
			Y: anchorY + arm*spacing,
		})
	}
	return slots
}

// circlePositions spaces the group evenly around a circle whose radius keeps
// neighboring slots at least `spacing` apart.
func circlePositions(count int, anchorX, anchorY, spacing float64) []SpawnSlot {
	if count == 1 {
		return []SpawnSlot{{X: anchorX, Y: anchorY}}
	}
	radius := spacing / (2 * math.Sin(math.Pi/float64(count)))
	slots := make([]SpawnSlot, 0, count)
	for i := 0; i < count; i++ {
		angle := 2 * math.Pi * float64(i) / float64(count)
		slots = append(slots, SpawnSlot{
			X: anchorX + radius*math.Cos(angle),
			Y: anchorY + radius*math.Sin(angle),
		})
	}
	return slots
}

// diamondPositions walks the perimeter of a square rotated 45 degrees.
func diamondPositions(count int, anchorX, anchorY, spacing float64) []SpawnSlot {
	if count == 1 {
		return []SpawnSlot{{X: anchorX, Y: anchorY}}
	}
	// Perimeter of the diamond is 4*side*sqrt(2) in axis distance; pick the
	// half-diagonal so evenly spaced perimeter steps stay >= spacing apart.
	steps := float64(count)
	half := spacing * steps / 4
	slots := make([]SpawnSlot, 0, count)
	corners := [][2]float64{
		{0, -half}, {half, 0}, {0, half}, {-half, 0},
	}
	for i := 0; i < count; i++ {
		t := float64(i) / steps * 4 // position along perimeter in edge units
		edge := int(t) % 4
		frac := t - math.Floor(t)
		x0, y0 := corners[edge][0], corners[edge][1]
		x1, y1 := corners[(edge+1)%4][0], corners[(edge+1)%4][1]
		slots = append(slots, SpawnSlot{
			X: anchorX + x0 + (x1-x0)*frac,
			Y: anchorY + y0 + (y1-y0)*frac,
		})
	}
	return slots
}
