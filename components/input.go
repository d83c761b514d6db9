package components

import "github.com/yohamta/donburi"

// InputData is the deduplicated per-frame input snapshot. Gameplay systems
// read this, never raw device state.
type InputData struct {
	MoveLeft  bool
	MoveRight bool
	Shoot     bool
}

var Input = donburi.NewComponentType[InputData]()
