package factory

import (
	"log"

	"github.com/arcadeloop/invaders/archetypes"
	"github.com/arcadeloop/invaders/components"
	cfg "github.com/arcadeloop/invaders/config"
	"github.com/arcadeloop/invaders/physics"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// spawnDropHeight is how far above its slot an enemy materializes before
// easing down during the spawning state.
const spawnDropHeight = 60.0

// CreateEnemy spawns an enemy of the given type with its formation slot at
// (x, y). Returns nil for unknown types.
func CreateEnemy(ecs *ecs.ECS, typeName string, x, y float64) *donburi.Entry {
	tc, ok := cfg.Enemy.Types[typeName]
	if !ok {
		log.Printf("factory: unknown enemy type %q", typeName)
		return nil
	}

	e := archetypes.Enemy.Spawn(ecs)

	startY := y - spawnDropHeight
	space := GetSpace(ecs)
	c := space.System.Register(space.NextID(),
		physics.AABB{X: x - tc.Width/2, Y: startY, W: tc.Width, H: tc.Height},
		physics.ColliderOptions{Layer: cfg.LayerEnemy, Data: e},
	)
	components.Collider.SetValue(e, components.ColliderData{Collider: c})

	typeCfg := tc
	components.Enemy.SetValue(e, components.EnemyData{
		TypeName:        typeName,
		TypeConfig:      &typeCfg,
		State:           cfg.EnemySpawning,
		SpawnY:          y,
		SpawnStartY:     startY,
		Scale:           0.1,
		Alpha:           0.5,
		SpawnScaleTween: gween.New(0.1, 1.0, float32(tc.SpawnDuration), ease.OutQuad),
		SpawnAlphaTween: gween.New(0.5, 1.0, float32(tc.SpawnDuration), ease.Linear),
	})
	components.Physics.SetValue(e, components.PhysicsData{
		MaxSpeed: tc.Speed * 2,
	})
	components.Health.SetValue(e, components.HealthData{
		Current: tc.Health,
		Max:     tc.Health,
	})

	return e
}

// RemoveEnemy unregisters the enemy's collider and deletes the entity.
func RemoveEnemy(ecs *ecs.ECS, e *donburi.Entry) {
	if e.HasComponent(components.Collider) {
		if c := components.Collider.Get(e).Collider; c != nil {
			GetSpace(ecs).System.Unregister(c.ID)
		}
	}
	ecs.World.Remove(e.Entity())
}
