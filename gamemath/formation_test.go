package gamemath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func minPairwiseDistance(slots []SpawnSlot) float64 {
	minDist := math.Inf(1)
	for i := 0; i < len(slots); i++ {
		for j := i + 1; j < len(slots); j++ {
			d := Distance(slots[i].X, slots[i].Y, slots[j].X, slots[j].Y)
			if d < minDist {
				minDist = d
			}
		}
	}
	return minDist
}

func TestFormationPositionsAreDeterministic(t *testing.T) {
	for _, shape := range []FormationShape{FormationLine, FormationGrid, FormationV, FormationCircle, FormationDiamond} {
		a := FormationPositions(shape, 7, 320, 100, 50, 10)
		b := FormationPositions(shape, 7, 320, 100, 50, 10)
		assert.Equal(t, a, b, "shape %s must be a pure function of its inputs", shape)
	}
}

func TestFormationSlotCountAndDelays(t *testing.T) {
	for _, shape := range []FormationShape{FormationLine, FormationGrid, FormationV, FormationCircle, FormationDiamond} {
		slots := FormationPositions(shape, 9, 320, 100, 60, 15)
		require.Len(t, slots, 9, "shape %s", shape)

		// Delays are non-decreasing in slot order and step by delayStep.
		for i, s := range slots {
			assert.Equal(t, i*15, s.Delay, "shape %s slot %d", shape, i)
		}
	}
}

func TestFormationMinimumSpacing(t *testing.T) {
	// Line, grid, v and circle keep every pair at least ~spacing apart.
	const spacing = 60.0
	for _, shape := range []FormationShape{FormationLine, FormationGrid, FormationV, FormationCircle} {
		slots := FormationPositions(shape, 9, 320, 120, spacing, 0)
		assert.GreaterOrEqual(t, minPairwiseDistance(slots), spacing*0.99, "shape %s", shape)
	}
}

func TestGridIsRowMajorAndCentered(t *testing.T) {
	slots := FormationPositions(FormationGrid, 9, 300, 120, 60, 0)
	require.Len(t, slots, 9)

	// 3x3 grid centered on the anchor.
	assert.Equal(t, 240.0, slots[0].X)
	assert.Equal(t, 60.0, slots[0].Y)
	assert.Equal(t, 300.0, slots[4].X)
	assert.Equal(t, 120.0, slots[4].Y)
	assert.Equal(t, 360.0, slots[8].X)
	assert.Equal(t, 180.0, slots[8].Y)

	// Rows fill before columns advance.
	assert.Equal(t, slots[0].Y, slots[1].Y)
	assert.Equal(t, slots[0].Y, slots[2].Y)
	assert.Greater(t, slots[3].Y, slots[2].Y)
}

func TestLineIsCenteredOnAnchor(t *testing.T) {
	slots := FormationPositions(FormationLine, 5, 320, 80, 40, 0)
	require.Len(t, slots, 5)

	assert.Equal(t, 240.0, slots[0].X)
	assert.Equal(t, 400.0, slots[4].X)
	assert.Equal(t, 320.0, slots[2].X)
	for _, s := range slots {
		assert.Equal(t, 80.0, s.Y)
	}
}

func TestDegenerateCounts(t *testing.T) {
	assert.Nil(t, FormationPositions(FormationLine, 0, 320, 80, 40, 10))
	assert.Nil(t, FormationPositions(FormationGrid, -3, 320, 80, 40, 10))

	for _, shape := range []FormationShape{FormationLine, FormationGrid, FormationV, FormationCircle, FormationDiamond} {
		slots := FormationPositions(shape, 1, 320, 80, 40, 10)
		require.Len(t, slots, 1, "shape %s", shape)
		assert.Equal(t, 320.0, slots[0].X, "shape %s", shape)
		assert.Equal(t, 80.0, slots[0].Y, "shape %s", shape)
		assert.Equal(t, 0, slots[0].Delay)
	}
}

func TestUnknownShapeFallsBackToLine(t *testing.T) {
	got := FormationPositions(FormationShape("spiral"), 4, 320, 80, 40, 5)
	want := FormationPositions(FormationLine, 4, 320, 80, 40, 5)
	assert.Equal(t, want, got)
}
