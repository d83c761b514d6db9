package components

import "github.com/yohamta/donburi"

// BoundarySide identifies which world edge a boundary wall guards.
type BoundarySide int

const (
	BoundaryLeft BoundarySide = iota
	BoundaryRight
	BoundaryTop
	BoundaryBottom
)

type BoundaryData struct {
	Side BoundarySide
}

var Boundary = donburi.NewComponentType[BoundaryData]()
