package config

import "image/color"

// MovementPattern selects how an active enemy moves each frame.
type MovementPattern string

const (
	PatternZigzag    MovementPattern = "zigzag"
	PatternFormation MovementPattern = "formation"
	PatternSteady    MovementPattern = "steady"
	PatternBoss      MovementPattern = "boss"
)

// EnemyTypeConfig contains configuration for specific enemy types
type EnemyTypeConfig struct {
	Name   string
	Health int
	Speed  float64
	Points int

	// Dimensions
	Width  float64
	Height float64

	// Firing
	FireInterval int // frames between shots, 0 = never fires

	// Movement
	Pattern   MovementPattern
	Amplitude float64 // horizontal oscillation amplitude (zigzag/steady)
	Frequency float64 // oscillation frequency in radians per frame

	// Attack trigger. The per-tick chance and range are deliberate tunables
	// with no derivation; treat them as balance knobs.
	AttackRange    float64 // distance to player that arms the attack check
	AttackChance   float64 // per-tick probability once in range
	AttackDuration int     // frames held in the attacking state

	// Damage response
	InvulnFrames   int // invulnerability window after a surviving hit
	KnockbackForce float64

	// Lifecycle animation lengths (frames)
	SpawnDuration int
	DyingDuration int

	// Boss phase cycle (boss pattern only)
	BossPhaseDuration int

	// Visual
	Color color.RGBA
}

// EnemyConfig contains enemy system configuration
type EnemyConfig struct {
	Types map[string]EnemyTypeConfig

	// Formation flocking weights
	CohesionWeight   float64
	SeparationWeight float64
	SeparationRadius float64

	// Descent applied by every pattern
	BaseDescentSpeed float64
}

var Enemy EnemyConfig

// Enemy type names
const (
	EnemyScout   = "scout"
	EnemyFighter = "fighter"
	EnemyTank    = "tank"
	EnemyBoss    = "boss"
)

func init() {
	Enemy = EnemyConfig{
		CohesionWeight:   0.02,
		SeparationWeight: 0.05,
		SeparationRadius: 48,
		BaseDescentSpeed: 0.25,

		Types: map[string]EnemyTypeConfig{
			EnemyScout: {
				Name:           EnemyScout,
				Health:         1,
				Speed:          1.6,
				Points:         100,
				Width:          24,
				Height:         18,
				FireInterval:   240,
				Pattern:        PatternZigzag,
				Amplitude:      1.5,
				Frequency:      0.05,
				AttackRange:    200,
				AttackChance:   0.01,
				AttackDuration: 90,
				InvulnFrames:   20,
				KnockbackForce: 3.0,
				SpawnDuration:  30,
				DyingDuration:  24,
				Color:          Cyan,
			},
			EnemyFighter: {
				Name:           EnemyFighter,
				Health:         2,
				Speed:          1.2,
				Points:         200,
				Width:          28,
				Height:         22,
				FireInterval:   180,
				Pattern:        PatternFormation,
				AttackRange:    200,
				AttackChance:   0.01,
				AttackDuration: 120,
				InvulnFrames:   20,
				KnockbackForce: 2.5,
				SpawnDuration:  30,
				DyingDuration:  24,
				Color:          Yellow,
			},
			EnemyTank: {
				Name:           EnemyTank,
				Health:         5,
				Speed:          0.6,
				Points:         400,
				Width:          40,
				Height:         30,
				FireInterval:   150,
				Pattern:        PatternSteady,
				Amplitude:      0.5,
				Frequency:      0.02,
				AttackRange:    160,
				AttackChance:   0.005,
				AttackDuration: 150,
				InvulnFrames:   15,
				KnockbackForce: 1.0,
				SpawnDuration:  45,
				DyingDuration:  36,
				Color:          Purple,
			},
			EnemyBoss: {
				Name:              EnemyBoss,
				Health:            30,
				Speed:             1.0,
				Points:            2000,
				Width:             80,
				Height:            50,
				FireInterval:      60,
				Pattern:           PatternBoss,
				AttackRange:       300,
				AttackChance:      0.02,
				AttackDuration:    180,
				InvulnFrames:      10,
				KnockbackForce:    0.5,
				SpawnDuration:     90,
				DyingDuration:     90,
				BossPhaseDuration: 240,
				Color:             Red,
			},
		},
	}
}
