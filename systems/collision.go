package systems

import (
	"github.com/arcadeloop/invaders/components"
	cfg "github.com/arcadeloop/invaders/config"
	"github.com/arcadeloop/invaders/physics"
	"github.com/arcadeloop/invaders/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SetupCollisionHandlers wires the gameplay responses onto the collision
// system's layer-pair handler table. Called once at session start, after
// CreateSpace.
func SetupCollisionHandlers(e *ecs.ECS) {
	system := factory.GetSpace(e).System

	system.RegisterHandler(cfg.LayerEnemy, cfg.LayerPlayerProjectile, func(ev *physics.CollisionEvent) {
		enemy := entryByLayer(ev, cfg.LayerEnemy)
		proj := entryByLayer(ev, cfg.LayerPlayerProjectile)
		if enemy == nil || proj == nil {
			return
		}
		pd := components.Projectile.Get(proj)
		if !pd.Active {
			return
		}
		factory.ReleaseProjectile(e, proj)
		// Shots absorbed by invulnerable or spawning enemies are consumed
		// but do not count toward accuracy.
		if _, applied := DamageEnemy(e, enemy, ev.ContactPoint.X, ev.ContactPoint.Y, pd.Damage); applied {
			if se, ok := components.Score.First(e.World); ok {
				components.Score.Get(se).ShotsHit++
			}
		}
		ev.Handled = true
	})

	system.RegisterHandler(cfg.LayerPlayer, cfg.LayerEnemyProjectile, func(ev *physics.CollisionEvent) {
		player := entryByLayer(ev, cfg.LayerPlayer)
		proj := entryByLayer(ev, cfg.LayerEnemyProjectile)
		if player == nil || proj == nil {
			return
		}
		pd := components.Projectile.Get(proj)
		if !pd.Active {
			return
		}
		factory.ReleaseProjectile(e, proj)
		HitPlayer(e, player, pd.Damage)
		ev.Handled = true
	})

	system.RegisterHandler(cfg.LayerPlayer, cfg.LayerEnemy, func(ev *physics.CollisionEvent) {
		player := entryByLayer(ev, cfg.LayerPlayer)
		if player == nil {
			return
		}
		HitPlayer(e, player, 1)
		// Leave the event unhandled so default resolution separates the
		// overlap.
	})

	system.RegisterHandler(cfg.LayerEnemy, cfg.LayerBoundary, func(ev *physics.CollisionEvent) {
		enemy := entryByLayer(ev, cfg.LayerEnemy)
		wall := entryByLayer(ev, cfg.LayerBoundary)
		if enemy == nil || wall == nil {
			return
		}
		if components.Boundary.Get(wall).Side == components.BoundaryBottom {
			MarkEnemyEscaped(e, enemy)
			ev.Handled = true
		}
		// Side and top walls fall through to default separation, keeping
		// the enemy inside the playfield.
	})

	projectileWall := func(layer physics.Layer) physics.Handler {
		return func(ev *physics.CollisionEvent) {
			proj := entryByLayer(ev, layer)
			if proj == nil {
				return
			}
			if components.Projectile.Get(proj).Active {
				factory.ReleaseProjectile(e, proj)
			}
			ev.Handled = true
		}
	}
	system.RegisterHandler(cfg.LayerPlayerProjectile, cfg.LayerBoundary, projectileWall(cfg.LayerPlayerProjectile))
	system.RegisterHandler(cfg.LayerEnemyProjectile, cfg.LayerBoundary, projectileWall(cfg.LayerEnemyProjectile))
}

// UpdateCollisions runs one detection + resolution pass.
func UpdateCollisions(e *ecs.ECS) {
	factory.GetSpace(e).System.Step()
}

// entryByLayer pulls the ECS entry for the event side on the given layer,
// nil when the side is missing or its entity has since been removed.
func entryByLayer(ev *physics.CollisionEvent, layer physics.Layer) *donburi.Entry {
	var c *physics.Collider
	switch {
	case ev.A.Layer == layer:
		c = ev.A
	case ev.B.Layer == layer:
		c = ev.B
	default:
		return nil
	}
	entry, ok := c.Data.(*donburi.Entry)
	if !ok || !entry.Valid() {
		return nil
	}
	return entry
}
