package components

import (
	"github.com/arcadeloop/invaders/physics"
	"github.com/yohamta/donburi"
)

// SpaceData is the session singleton owning the collision system and the
// entity id sequence for collider registration.
type SpaceData struct {
	System *physics.CollisionSystem

	nextID physics.EntityID
}

// NextID hands out the next collider id. Ids start at 1; zero is the
// collision system's "missing id" sentinel.
func (s *SpaceData) NextID() physics.EntityID {
	s.nextID++
	return s.nextID
}

var Space = donburi.NewComponentType[SpaceData]()
