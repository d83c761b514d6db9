package components

import "github.com/yohamta/donburi"

// PendingSpawn is one scheduled enemy spawn counting down to its frame.
type PendingSpawn struct {
	Type  string
	X, Y  float64
	Delay int // frames remaining
}

// WaveData is the session singleton tracking wave progression. The
// accounting invariant Spawned == Destroyed + Escaped + active holds after
// every tick while a wave is in progress.
type WaveData struct {
	Number     int
	Spawned    int
	Destroyed  int
	Escaped    int
	InProgress bool

	// ElapsedFrames counts frames since the wave started.
	ElapsedFrames int

	Pending []PendingSpawn

	// InterWaveTimer counts down the pause before auto-starting the next
	// wave; active only between waves.
	InterWaveTimer int

	// CompletionFired guards the exactly-once wave:completed event.
	CompletionFired bool
}

var Wave = donburi.NewComponentType[WaveData]()
