package components

import (
	"github.com/arcadeloop/invaders/config"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// BossPhase is one step of the boss movement cycle.
type BossPhase int

const (
	BossEnter BossPhase = iota
	BossAttack
	BossRetreat
)

// PatternState is the per-enemy movement-pattern data bag. Only the fields
// the enemy's pattern reads are meaningful.
type PatternState struct {
	Phase     float64 // sinusoid phase accumulator (zigzag/steady)
	Timer     int
	BossPhase BossPhase
	HomeY     float64 // retreat target for the boss cycle
}

type EnemyData struct {
	TypeName   string
	TypeConfig *config.EnemyTypeConfig // cached reference to the type table entry

	State      config.EnemyStateID
	StateTimer int
	Age        int

	Pattern   PatternState
	LastFired int // age at last shot

	InvulnFrames int

	// Spawn interpolation: Y eases from SpawnStartY toward SpawnY during
	// the spawning state; X stays on the formation slot until active.
	SpawnY      float64
	SpawnStartY float64

	// Visual animation state driven by the lifecycle tweens.
	Scale    float64
	Alpha    float64
	Rotation float64

	SpawnScaleTween *gween.Tween
	SpawnAlphaTween *gween.Tween
	DyingScaleTween *gween.Tween
	DyingAlphaTween *gween.Tween

	// DestroyFired guards the exactly-once destroy event at the end of the
	// dying animation.
	DestroyFired bool
}

var Enemy = donburi.NewComponentType[EnemyData]()
