package components

import "github.com/yohamta/donburi"

// Vector represents a 2D vector.
type Vector struct {
	X, Y float64
}

type PhysicsData struct {
	VelX     float64
	VelY     float64
	MaxSpeed float64
}

var Physics = donburi.NewComponentType[PhysicsData]()
