package factory

import (
	"github.com/arcadeloop/invaders/archetypes"
	"github.com/arcadeloop/invaders/components"
	cfg "github.com/arcadeloop/invaders/config"
	"github.com/arcadeloop/invaders/physics"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the player ship at the bottom center of the screen.
func CreatePlayer(ecs *ecs.ECS) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	x := float64(cfg.C.Width)/2 - cfg.Player.Width/2
	y := float64(cfg.C.Height) - cfg.Player.BottomMargin - cfg.Player.Height

	space := GetSpace(ecs)
	c := space.System.Register(space.NextID(),
		physics.AABB{X: x, Y: y, W: cfg.Player.Width, H: cfg.Player.Height},
		physics.ColliderOptions{Layer: cfg.LayerPlayer, Data: player},
	)
	components.Collider.SetValue(player, components.ColliderData{Collider: c})

	components.Player.SetValue(player, components.PlayerData{
		Lives: cfg.Player.StartingLives,
	})
	components.Physics.SetValue(player, components.PhysicsData{
		MaxSpeed: cfg.Player.MaxSpeed,
	})
	components.Health.SetValue(player, components.HealthData{
		Current: cfg.Player.Health,
		Max:     cfg.Player.Health,
	})
	components.Input.SetValue(player, components.InputData{})

	return player
}
