package components

import "github.com/yohamta/donburi"

type ScoreData struct {
	Score     int
	HighScore int

	Combo      int
	ComboTimer int // frames left in the combo window

	// Accuracy tracking for the wave-completion bonus.
	ShotsFired int
	ShotsHit   int
}

var Score = donburi.NewComponentType[ScoreData]()
