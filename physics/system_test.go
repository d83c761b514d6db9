package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSystem(t *testing.T) *CollisionSystem {
	t.Helper()
	s, err := NewCollisionSystem(Config{
		CellSize:    64,
		WorldBounds: AABB{X: -320, Y: -320, W: 1280, H: 1120},
	})
	require.NoError(t, err)
	return s
}

func TestNewCollisionSystemValidation(t *testing.T) {
	bounds := AABB{W: 640, H: 480}

	_, err := NewCollisionSystem(Config{CellSize: 0, WorldBounds: bounds})
	assert.Error(t, err)

	_, err = NewCollisionSystem(Config{CellSize: 64, WorldBounds: AABB{}})
	assert.Error(t, err)

	_, err = NewCollisionSystem(Config{CellSize: 64, WorldBounds: bounds, MaxCollisionsPerFrame: -1})
	assert.Error(t, err)

	s, err := NewCollisionSystem(Config{CellSize: 64, WorldBounds: bounds})
	require.NoError(t, err)
	assert.Equal(t, DefaultMaxCollisionsPerFrame, s.cfg.MaxCollisionsPerFrame)
}

func TestRegisterRejectsMalformed(t *testing.T) {
	s := testSystem(t)
	box := AABB{X: 0, Y: 0, W: 10, H: 10}

	assert.Nil(t, s.Register(0, box, ColliderOptions{}))
	assert.Nil(t, s.Register(1, AABB{W: -5, H: 10}, ColliderOptions{}))

	require.NotNil(t, s.Register(1, box, ColliderOptions{}))
	assert.Nil(t, s.Register(1, box, ColliderOptions{}), "duplicate id must be rejected")
	assert.Equal(t, 1, s.Len())
}

func TestUnregisteredPairsProduceNoEvents(t *testing.T) {
	s := testSystem(t)
	const layerA, layerB Layer = 1, 2

	s.Register(1, AABB{X: 0, Y: 0, W: 20, H: 20}, ColliderOptions{Layer: layerA})
	s.Register(2, AABB{X: 10, Y: 10, W: 20, H: 20}, ColliderOptions{Layer: layerB})

	// Overlapping boxes, but the layer pair was never declared.
	assert.Empty(t, s.DetectCollisions())

	s.SetLayerCollision(layerA, layerB)
	events := s.DetectCollisions()
	require.Len(t, events, 1)
	assert.Positive(t, events[0].Penetration)
}

func TestLayerMatrixIsSymmetric(t *testing.T) {
	s := testSystem(t)
	s.SetLayerCollision(3, 5)

	assert.True(t, s.LayersCollide(3, 5))
	assert.True(t, s.LayersCollide(5, 3))
	assert.False(t, s.LayersCollide(3, 3))
}

func TestEventFields(t *testing.T) {
	s := testSystem(t)
	s.SetLayerCollision(1, 2)

	s.Register(1, AABB{X: 0, Y: 0, W: 20, H: 20}, ColliderOptions{Layer: 1})
	s.Register(2, AABB{X: 16, Y: 0, W: 20, H: 20}, ColliderOptions{Layer: 2})

	events := s.DetectCollisions()
	require.Len(t, events, 1)
	ev := events[0]

	// 4px overlap along x, full overlap along y.
	assert.InDelta(t, 4.0, ev.Penetration, 1e-9)
	assert.InDelta(t, 18.0, ev.ContactPoint.X, 1e-9)
	assert.InDelta(t, 10.0, ev.ContactPoint.Y, 1e-9)

	// Normal points from the left box toward the right box.
	if ev.A.ID == 1 {
		assert.InDelta(t, 1.0, ev.Normal.X, 1e-9)
	} else {
		assert.InDelta(t, -1.0, ev.Normal.X, 1e-9)
	}
	assert.InDelta(t, 0.0, ev.Normal.Y, 1e-9)
}

func TestEachPairReportedOnce(t *testing.T) {
	s := testSystem(t)
	s.SetLayerCollision(1, 1)

	// Three mutually overlapping boxes spanning several cells.
	s.Register(1, AABB{X: 0, Y: 0, W: 100, H: 100}, ColliderOptions{Layer: 1})
	s.Register(2, AABB{X: 50, Y: 50, W: 100, H: 100}, ColliderOptions{Layer: 1})
	s.Register(3, AABB{X: 25, Y: 25, W: 100, H: 100}, ColliderOptions{Layer: 1})

	events := s.DetectCollisions()
	assert.Len(t, events, 3)

	seen := make(map[[2]EntityID]int)
	for _, ev := range events {
		lo, hi := ev.A.ID, ev.B.ID
		if lo > hi {
			lo, hi = hi, lo
		}
		seen[[2]EntityID{lo, hi}]++
	}
	for pair, n := range seen {
		assert.Equal(t, 1, n, "pair %v reported %d times", pair, n)
	}
}

func TestCollisionCap(t *testing.T) {
	s, err := NewCollisionSystem(Config{
		CellSize:              64,
		WorldBounds:           AABB{X: 0, Y: 0, W: 640, H: 480},
		MaxCollisionsPerFrame: 2,
	})
	require.NoError(t, err)
	s.SetLayerCollision(1, 1)

	// Four boxes stacked on the same spot: 6 candidate pairs, cap at 2.
	for id := EntityID(1); id <= 4; id++ {
		s.Register(id, AABB{X: 10, Y: 10, W: 30, H: 30}, ColliderOptions{Layer: 1})
	}

	events := s.DetectCollisions()
	assert.Len(t, events, 2)

	// The cap applies per frame, not cumulatively.
	events = s.DetectCollisions()
	assert.Len(t, events, 2)
}

func TestDefaultSeparationResolvesOverlap(t *testing.T) {
	s := testSystem(t)
	s.SetLayerCollision(1, 1)

	a := s.Register(1, AABB{X: 0, Y: 0, W: 20, H: 20}, ColliderOptions{Layer: 1})
	b := s.Register(2, AABB{X: 16, Y: 0, W: 20, H: 20}, ColliderOptions{Layer: 1})

	events := s.Step()
	require.Len(t, events, 1)
	assert.True(t, events[0].Handled)

	// Both moved half the penetration; the overlap is gone.
	assert.False(t, a.Box.Intersects(b.Box))
	assert.InDelta(t, -2.0, a.Box.X, 1e-9)
	assert.InDelta(t, 18.0, b.Box.X, 1e-9)
}

func TestStaticColliderNeverMoves(t *testing.T) {
	s := testSystem(t)
	s.SetLayerCollision(1, 2)

	wall := s.Register(1, AABB{X: 100, Y: 0, W: 20, H: 200}, ColliderOptions{Layer: 1, Static: true})
	mover := s.Register(2, AABB{X: 90, Y: 90, W: 20, H: 20}, ColliderOptions{Layer: 2})

	s.Step()

	assert.Equal(t, 100.0, wall.Box.X, "static collider must not move")
	// The mover took the full correction, pushed out to the left.
	assert.False(t, wall.Box.Intersects(mover.Box))
	assert.InDelta(t, 80.0, mover.Box.X, 1e-9)
}

func TestTriggerSkipsDefaultSeparation(t *testing.T) {
	s := testSystem(t)
	s.SetLayerCollision(1, 2)

	a := s.Register(1, AABB{X: 0, Y: 0, W: 20, H: 20}, ColliderOptions{Layer: 1})
	b := s.Register(2, AABB{X: 10, Y: 0, W: 20, H: 20}, ColliderOptions{Layer: 2, Trigger: true})

	events := s.Step()
	require.Len(t, events, 1)

	assert.False(t, events[0].Handled)
	assert.Equal(t, 0.0, a.Box.X)
	assert.Equal(t, 10.0, b.Box.X)
}

func TestHandlerSuppressesSeparation(t *testing.T) {
	s := testSystem(t)
	s.SetLayerCollision(1, 2)
	fired := 0
	s.RegisterHandler(1, 2, func(ev *CollisionEvent) {
		fired++
		ev.Handled = true
	})

	a := s.Register(1, AABB{X: 0, Y: 0, W: 20, H: 20}, ColliderOptions{Layer: 1})
	s.Register(2, AABB{X: 10, Y: 0, W: 20, H: 20}, ColliderOptions{Layer: 2})

	s.Step()

	assert.Equal(t, 1, fired)
	assert.Equal(t, 0.0, a.Box.X, "handled event must skip default separation")
}

func TestHandlerPanicIsContained(t *testing.T) {
	s := testSystem(t)
	s.SetLayerCollision(1, 2)
	s.RegisterHandler(1, 2, func(ev *CollisionEvent) {
		panic("handler bug")
	})

	s.Register(1, AABB{X: 0, Y: 0, W: 20, H: 20}, ColliderOptions{Layer: 1})
	s.Register(2, AABB{X: 10, Y: 0, W: 20, H: 20}, ColliderOptions{Layer: 2})

	assert.NotPanics(t, func() { s.Step() })
}

func TestMoveColliderTracksGrid(t *testing.T) {
	s := testSystem(t)
	s.SetLayerCollision(1, 2)

	a := s.Register(1, AABB{X: 0, Y: 0, W: 20, H: 20}, ColliderOptions{Layer: 1})
	s.Register(2, AABB{X: 500, Y: 400, W: 20, H: 20}, ColliderOptions{Layer: 2})

	// Walk the collider across the world in sub-threshold steps; detection
	// must still find the far collider when they meet.
	for i := 0; i < 100; i++ {
		box := a.Box
		box.X += 5
		box.Y += 4
		s.MoveCollider(a, box)
	}
	assert.Equal(t, 500.0, a.Box.X)

	events := s.DetectCollisions()
	require.Len(t, events, 1)
}

func TestUnregisterStopsEvents(t *testing.T) {
	s := testSystem(t)
	s.SetLayerCollision(1, 2)

	s.Register(1, AABB{X: 0, Y: 0, W: 20, H: 20}, ColliderOptions{Layer: 1})
	s.Register(2, AABB{X: 10, Y: 0, W: 20, H: 20}, ColliderOptions{Layer: 2})
	require.Len(t, s.DetectCollisions(), 1)

	s.Unregister(2)
	assert.Empty(t, s.DetectCollisions())
	assert.Nil(t, s.Get(2))
	assert.Equal(t, 1, s.Len())
}

func TestQueryPointAndArea(t *testing.T) {
	s := testSystem(t)

	s.Register(1, AABB{X: 0, Y: 0, W: 50, H: 50}, ColliderOptions{Layer: 1})
	s.Register(2, AABB{X: 200, Y: 200, W: 50, H: 50}, ColliderOptions{Layer: 2})

	hits := s.QueryPoint(25, 25)
	require.Len(t, hits, 1)
	assert.Equal(t, EntityID(1), hits[0].ID)

	// Edge containment is inclusive.
	assert.Len(t, s.QueryPoint(50, 50), 1)
	assert.Empty(t, s.QueryPoint(120, 120))

	area := s.QueryArea(AABB{X: 40, Y: 40, W: 200, H: 200})
	assert.Len(t, area, 2)
}
