package components

import (
	"github.com/arcadeloop/invaders/physics"
	"github.com/yohamta/donburi"
)

// ColliderData wraps the entity's registration in the collision system. The
// gameplay systems own position; the collider holds the derived AABB
// snapshot.
type ColliderData struct {
	*physics.Collider
}

var Collider = donburi.NewComponentType[ColliderData]()
