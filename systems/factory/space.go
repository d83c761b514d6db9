package factory

import (
	"github.com/arcadeloop/invaders/archetypes"
	"github.com/arcadeloop/invaders/components"
	cfg "github.com/arcadeloop/invaders/config"
	"github.com/arcadeloop/invaders/physics"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// worldMargin extends the collision world past the visible screen so
// boundary walls and above-screen spawn positions stay inside grid bounds.
const worldMargin = 320.0

// CreateSpace constructs the collision system singleton and wires the
// default layer matrix. Must be called before any entity factory.
func CreateSpace(ecs *ecs.ECS) (*donburi.Entry, error) {
	system, err := physics.NewCollisionSystem(physics.Config{
		CellSize: cfg.Collision.CellSize,
		WorldBounds: physics.AABB{
			X: -worldMargin,
			Y: -worldMargin,
			W: float64(cfg.C.Width) + 2*worldMargin,
			H: float64(cfg.C.Height) + 2*worldMargin,
		},
		MaxCollisionsPerFrame: cfg.Collision.MaxCollisionsPerFrame,
	})
	if err != nil {
		return nil, err
	}

	for _, pair := range cfg.DefaultLayerMatrix {
		system.SetLayerCollision(pair[0], pair[1])
	}

	e := archetypes.Space.Spawn(ecs)
	components.Space.SetValue(e, components.SpaceData{System: system})
	return e, nil
}

// GetSpace returns the session's collision space singleton.
func GetSpace(ecs *ecs.ECS) *components.SpaceData {
	return components.Space.Get(components.Space.MustFirst(ecs.World))
}

// CreateWaveTracker spawns the wave progression singleton.
func CreateWaveTracker(ecs *ecs.ECS) *donburi.Entry {
	e := archetypes.Wave.Spawn(ecs)
	components.Wave.SetValue(e, components.WaveData{})
	return e
}

// CreateScore spawns the score singleton with the persisted high score.
func CreateScore(ecs *ecs.ECS, highScore int) *donburi.Entry {
	e := archetypes.Score.Spawn(ecs)
	components.Score.SetValue(e, components.ScoreData{HighScore: highScore})
	return e
}

// CreateProjectilePool spawns the pool singleton sized from config.
func CreateProjectilePool(ecs *ecs.ECS) *donburi.Entry {
	e := archetypes.ProjectilePool.Spawn(ecs)
	components.ProjectilePool.SetValue(e, components.ProjectilePoolData{
		Free:    make([]*donburi.Entry, 0, cfg.Projectile.PoolSize),
		HardCap: cfg.Projectile.HardCap,
	})
	return e
}
