package systems

import (
	"github.com/arcadeloop/invaders/components"
	cfg "github.com/arcadeloop/invaders/config"
	"github.com/arcadeloop/invaders/systems/factory"
	"github.com/arcadeloop/invaders/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateProjectiles advances every active projectile by its velocity,
// ages it, and releases it back to the pool on lifetime expiry or when it
// leaves the world. Collision-triggered releases happen in the collision
// handlers the same tick they are detected.
func UpdateProjectiles(ecs *ecs.ECS) {
	var expired []*donburi.Entry

	tags.Projectile.Each(ecs.World, func(e *donburi.Entry) {
		proj := components.Projectile.Get(e)
		if !proj.Active {
			return
		}
		phys := components.Physics.Get(e)
		collider := components.Collider.Get(e).Collider

		box := collider.Box
		box.X += phys.VelX
		box.Y += phys.VelY
		factory.GetSpace(ecs).System.MoveCollider(collider, box)

		proj.Age++
		if proj.Age >= proj.Lifetime || outOfWorld(box.X, box.Y, box.W, box.H) {
			expired = append(expired, e)
		}
	})

	for _, e := range expired {
		factory.ReleaseProjectile(ecs, e)
	}
}

// outOfWorld reports whether the box has fully left the playfield plus the
// off-screen spawn corridor.
func outOfWorld(x, y, w, h float64) bool {
	return x+w < 0 || x > float64(cfg.C.Width) ||
		y+h < -240 || y > float64(cfg.C.Height)+120
}
