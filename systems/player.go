package systems

import (
	"github.com/arcadeloop/invaders/components"
	cfg "github.com/arcadeloop/invaders/config"
	"github.com/arcadeloop/invaders/events"
	"github.com/arcadeloop/invaders/gamemath"
	"github.com/arcadeloop/invaders/systems/factory"
	"github.com/arcadeloop/invaders/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer applies the input snapshot: horizontal movement clamped to
// the screen, and shooting through the projectile pool.
func UpdatePlayer(ecs *ecs.ECS) {
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		in := components.Input.Get(e)
		phys := components.Physics.Get(e)
		collider := components.Collider.Get(e).Collider

		if player.InvulnFrames > 0 {
			player.InvulnFrames--
		}
		if player.FireCooldown > 0 {
			player.FireCooldown--
		}

		phys.VelX = 0
		if in.MoveLeft {
			phys.VelX = -cfg.Player.Speed
		}
		if in.MoveRight {
			phys.VelX = cfg.Player.Speed
		}
		phys.VelX = gamemath.ClampSpeed(phys.VelX, phys.MaxSpeed)

		box := collider.Box
		box.X = gamemath.Clamp(box.X+phys.VelX, 0, float64(cfg.C.Width)-box.W)
		space := factory.GetSpace(ecs)
		space.System.MoveCollider(collider, box)

		if in.Shoot && player.FireCooldown == 0 {
			center := collider.Box.Center()
			factory.AcquireProjectile(ecs, tags.OwnerPlayer,
				center.X, collider.Box.Y-cfg.Projectile.Height/2,
				0, -cfg.Projectile.PlayerSpeed)
			player.FireCooldown = cfg.Player.FireCooldown
			events.ProjectileFiredEvent.Publish(ecs.World, events.ProjectileFired{
				Owner: tags.OwnerPlayer,
				X:     center.X,
				Y:     collider.Box.Y,
			})
		}
	})
}

// HitPlayer applies projectile or contact damage to the player, honoring
// the invulnerability window. Publishes player:hit, and player:died when
// lives run out.
func HitPlayer(ecs *ecs.ECS, e *donburi.Entry, damage int) bool {
	player := components.Player.Get(e)
	if player.InvulnFrames > 0 {
		return false
	}

	hp := components.Health.Get(e)
	hp.Current -= damage
	player.InvulnFrames = cfg.Player.InvulnFrames

	collider := components.Collider.Get(e).Collider
	center := collider.Box.Center()
	events.PlayerHitEvent.Publish(ecs.World, events.PlayerHit{
		Damage: damage,
		X:      center.X,
		Y:      center.Y,
	})

	if hp.Current <= 0 {
		player.Lives--
		if player.Lives <= 0 {
			score := 0
			if se, ok := components.Score.First(ecs.World); ok {
				score = components.Score.Get(se).Score
			}
			events.PlayerDiedEvent.Publish(ecs.World, events.PlayerDied{FinalScore: score})
		} else {
			hp.Current = hp.Max
		}
	}
	return true
}
