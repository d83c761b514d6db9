package factory

import (
	"log"

	"github.com/arcadeloop/invaders/archetypes"
	"github.com/arcadeloop/invaders/components"
	cfg "github.com/arcadeloop/invaders/config"
	"github.com/arcadeloop/invaders/physics"
	"github.com/arcadeloop/invaders/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// AcquireProjectile hands out a projectile entity centered on (x, y):
// reused from the free list when possible, freshly constructed while under
// the hard cap, and as a logged last resort an overflow instance that will
// be discarded instead of pooled.
func AcquireProjectile(ecs *ecs.ECS, owner string, x, y, velX, velY float64) *donburi.Entry {
	pool := components.ProjectilePool.Get(components.ProjectilePool.MustFirst(ecs.World))

	var e *donburi.Entry
	overflow := false
	switch {
	case len(pool.Free) > 0:
		e = pool.Free[len(pool.Free)-1]
		pool.Free = pool.Free[:len(pool.Free)-1]
	case pool.Created < pool.HardCap:
		e = archetypes.Projectile.Spawn(ecs)
		pool.Created++
	default:
		log.Printf("factory: projectile pool exhausted (cap %d), constructing overflow instance", pool.HardCap)
		e = archetypes.Projectile.Spawn(ecs)
		overflow = true
	}

	layer := cfg.LayerPlayerProjectile
	if owner == tags.OwnerEnemy {
		layer = cfg.LayerEnemyProjectile
	}

	space := GetSpace(ecs)
	c := space.System.Register(space.NextID(),
		physics.AABB{
			X: x - cfg.Projectile.Width/2,
			Y: y - cfg.Projectile.Height/2,
			W: cfg.Projectile.Width,
			H: cfg.Projectile.Height,
		},
		physics.ColliderOptions{Layer: layer, Trigger: true, Data: e},
	)
	components.Collider.SetValue(e, components.ColliderData{Collider: c})

	components.Projectile.SetValue(e, components.ProjectileData{
		Owner:    owner,
		Damage:   cfg.Projectile.Damage,
		Lifetime: cfg.Projectile.Lifetime,
		Active:   true,
		Overflow: overflow,
	})
	components.Physics.SetValue(e, components.PhysicsData{
		VelX:     velX,
		VelY:     velY,
		MaxSpeed: cfg.Projectile.PlayerSpeed,
	})

	return e
}

// ReleaseProjectile deactivates the projectile and returns it to the free
// list. Overflow instances are removed from the world outright.
func ReleaseProjectile(ecs *ecs.ECS, e *donburi.Entry) {
	proj := components.Projectile.Get(e)
	if !proj.Active {
		return
	}
	proj.Active = false

	if c := components.Collider.Get(e).Collider; c != nil {
		GetSpace(ecs).System.Unregister(c.ID)
		components.Collider.SetValue(e, components.ColliderData{})
	}

	if proj.Overflow {
		ecs.World.Remove(e.Entity())
		return
	}

	pool := components.ProjectilePool.Get(components.ProjectilePool.MustFirst(ecs.World))
	pool.Free = append(pool.Free, e)
}
