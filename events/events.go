// Package events defines the typed pub/sub channel between the game core
// and its consumers (scoring, HUD, future audio). Emission is
// fire-and-forget; the queue is pumped once per frame after collision
// resolution.
package events

import "github.com/yohamta/donburi/features/events"

// EnemyDestroyed fires when an enemy's dying animation completes.
type EnemyDestroyed struct {
	TypeName string
	Points   int
	X, Y     float64
}

// EnemyEscaped fires when a live enemy crosses the bottom boundary. Escaped
// enemies do not count toward destroyed.
type EnemyEscaped struct {
	TypeName string
	X, Y     float64
}

// WaveStarted fires once per StartWave.
type WaveStarted struct {
	Wave int
}

// WaveCompleted fires exactly once per wave, when the active-enemy count
// and the enemies-remaining counter both reach zero.
type WaveCompleted struct {
	Wave          int
	ElapsedFrames int
	Spawned       int
	Destroyed     int
	Escaped       int
}

// PlayerHit fires when the player takes damage.
type PlayerHit struct {
	Damage int
	X, Y   float64
}

// PlayerDied fires when the player runs out of lives.
type PlayerDied struct {
	FinalScore int
}

// ProjectileFired fires on every successful projectile spawn.
type ProjectileFired struct {
	Owner string
	X, Y  float64
}

// ScoreChanged fires whenever the score total moves.
type ScoreChanged struct {
	Score int
	Combo int
}

var (
	EnemyDestroyedEvent  = events.NewEventType[EnemyDestroyed]()
	EnemyEscapedEvent    = events.NewEventType[EnemyEscaped]()
	WaveStartedEvent     = events.NewEventType[WaveStarted]()
	WaveCompletedEvent   = events.NewEventType[WaveCompleted]()
	PlayerHitEvent       = events.NewEventType[PlayerHit]()
	PlayerDiedEvent      = events.NewEventType[PlayerDied]()
	ProjectileFiredEvent = events.NewEventType[ProjectileFired]()
	ScoreChangedEvent    = events.NewEventType[ScoreChanged]()
)
