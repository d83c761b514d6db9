package archetypes

import (
	"github.com/arcadeloop/invaders/components"
	cfg "github.com/arcadeloop/invaders/config"
	"github.com/arcadeloop/invaders/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Collider,
		components.Physics,
		components.Health,
		components.Input,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Collider,
		components.Physics,
		components.Health,
	)
	Projectile = newArchetype(
		tags.Projectile,
		components.Projectile,
		components.Collider,
		components.Physics,
	)
	Boundary = newArchetype(
		tags.Boundary,
		components.Boundary,
		components.Collider,
	)
	Space = newArchetype(
		components.Space,
	)
	Wave = newArchetype(
		components.Wave,
	)
	Score = newArchetype(
		components.Score,
	)
	ProjectilePool = newArchetype(
		components.ProjectilePool,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
