package config

import "github.com/arcadeloop/invaders/gamemath"

// WaveGroup is one (enemy type, count, formation) block within a wave
// template. Anchor coordinates are in screen space.
type WaveGroup struct {
	Type      string
	Count     int
	Formation gamemath.FormationShape
	Spacing   float64
	AnchorX   float64
	AnchorY   float64
}

// WaveTemplate defines the composition of one wave before difficulty
// scaling.
type WaveTemplate struct {
	Groups []WaveGroup

	// SpawnDelayStep is the base stagger between consecutive spawns within
	// a group, in frames.
	SpawnDelayStep int

	// GroupDelay is the extra delay before each subsequent group starts
	// spawning, in frames.
	GroupDelay int
}

// WaveConfig contains wave progression configuration
type WaveConfig struct {
	Templates []WaveTemplate

	// DifficultyMultiplier scales group counts as multiplier^(wave-1),
	// capped at MaxCountScale times the base count.
	DifficultyMultiplier float64
	MaxCountScale        float64

	// SpawnDelayDecay shrinks the stagger per wave; MinSpawnDelayStep is
	// the floor.
	SpawnDelayDecay   float64
	MinSpawnDelayStep int

	// InterWaveDelay is the pause before auto-starting the next wave, in
	// frames.
	InterWaveDelay int
}

var Wave WaveConfig

func init() {
	Wave = WaveConfig{
		DifficultyMultiplier: 1.15,
		MaxCountScale:        2.0,
		SpawnDelayDecay:      0.9,
		MinSpawnDelayStep:    5,
		InterWaveDelay:       180,

		Templates: []WaveTemplate{
			{
				Groups: []WaveGroup{
					{Type: EnemyScout, Count: 8, Formation: gamemath.FormationLine, Spacing: 60, AnchorX: 320, AnchorY: 80},
				},
				SpawnDelayStep: 20,
				GroupDelay:     60,
			},
			{
				Groups: []WaveGroup{
					{Type: EnemyScout, Count: 6, Formation: gamemath.FormationV, Spacing: 48, AnchorX: 320, AnchorY: 60},
					{Type: EnemyFighter, Count: 4, Formation: gamemath.FormationLine, Spacing: 70, AnchorX: 320, AnchorY: 130},
				},
				SpawnDelayStep: 18,
				GroupDelay:     90,
			},
			{
				Groups: []WaveGroup{
					{Type: EnemyFighter, Count: 9, Formation: gamemath.FormationGrid, Spacing: 60, AnchorX: 320, AnchorY: 110},
					{Type: EnemyTank, Count: 2, Formation: gamemath.FormationLine, Spacing: 120, AnchorX: 320, AnchorY: 50},
				},
				SpawnDelayStep: 15,
				GroupDelay:     120,
			},
			{
				Groups: []WaveGroup{
					{Type: EnemyScout, Count: 8, Formation: gamemath.FormationCircle, Spacing: 55, AnchorX: 320, AnchorY: 140},
					{Type: EnemyTank, Count: 3, Formation: gamemath.FormationDiamond, Spacing: 90, AnchorX: 320, AnchorY: 90},
				},
				SpawnDelayStep: 12,
				GroupDelay:     120,
			},
			{
				Groups: []WaveGroup{
					{Type: EnemyBoss, Count: 1, Formation: gamemath.FormationLine, Spacing: 0, AnchorX: 320, AnchorY: 90},
					{Type: EnemyFighter, Count: 6, Formation: gamemath.FormationV, Spacing: 52, AnchorX: 320, AnchorY: 170},
				},
				SpawnDelayStep: 10,
				GroupDelay:     150,
			},
		},
	}
}

// TemplateForWave returns the template driving wave n (1-based). Waves past
// the table cycle through it; difficulty scaling keeps ramping with n.
func (w *WaveConfig) TemplateForWave(n int) WaveTemplate {
	if n < 1 {
		n = 1
	}
	return w.Templates[(n-1)%len(w.Templates)]
}
