package factory

import (
	"github.com/arcadeloop/invaders/archetypes"
	"github.com/arcadeloop/invaders/components"
	cfg "github.com/arcadeloop/invaders/config"
	"github.com/arcadeloop/invaders/physics"
	"github.com/yohamta/donburi/ecs"
)

const boundaryThickness = 64.0

// CreateBoundaries spawns the four static boundary walls. Side walls hug the
// screen edges so the player is contained; top and bottom sit off-screen so
// spawning enemies can ease in from above and escaping enemies fully leave
// the view before despawning.
func CreateBoundaries(ecs *ecs.ECS) {
	w := float64(cfg.C.Width)
	h := float64(cfg.C.Height)

	walls := []struct {
		side components.BoundarySide
		box  physics.AABB
	}{
		{components.BoundaryLeft, physics.AABB{X: -boundaryThickness, Y: -240, W: boundaryThickness, H: h + 480}},
		{components.BoundaryRight, physics.AABB{X: w, Y: -240, W: boundaryThickness, H: h + 480}},
		{components.BoundaryTop, physics.AABB{X: 0, Y: -240 - boundaryThickness, W: w, H: boundaryThickness}},
		{components.BoundaryBottom, physics.AABB{X: 0, Y: h + 40, W: w, H: boundaryThickness}},
	}

	space := GetSpace(ecs)
	for _, wall := range walls {
		e := archetypes.Boundary.Spawn(ecs)
		components.Boundary.SetValue(e, components.BoundaryData{Side: wall.side})

		c := space.System.Register(space.NextID(), wall.box, physics.ColliderOptions{
			Layer:  cfg.LayerBoundary,
			Static: true,
			Data:   e,
		})
		components.Collider.SetValue(e, components.ColliderData{Collider: c})
	}
}
