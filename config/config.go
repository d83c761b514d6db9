package config

import "image/color"

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement
	Speed    float64
	MaxSpeed float64

	// Combat
	Health        int
	InvulnFrames  int
	FireCooldown  int // frames between shots
	StartingLives int

	// Dimensions
	Width  float64
	Height float64

	// Spawn position offset from the bottom of the screen
	BottomMargin float64

	Color color.RGBA
}

// ProjectileConfig contains projectile pool and flight configuration
type ProjectileConfig struct {
	PoolSize int // pre-allocation target for the free list
	HardCap  int // maximum constructed before overflow allocation kicks in

	PlayerSpeed float64 // pixels per frame, upward
	EnemySpeed  float64 // pixels per frame, downward
	Damage      int
	Lifetime    int // frames before expiry

	Width  float64
	Height float64

	PlayerColor color.RGBA
	EnemyColor  color.RGBA
}

// CollisionConfig contains collision system construction parameters
type CollisionConfig struct {
	CellSize              float64
	MaxCollisionsPerFrame int
}

// ScoreConfig contains scoring and combo configuration
type ScoreConfig struct {
	ComboWindow     int     // frames before the combo counter resets
	ComboBonus      int     // extra points per combo step
	EscapePenalty   int     // points lost per escaped enemy
	WaveTimeBonus   int     // max bonus for a fast wave clear
	WaveTimeTarget  int     // frames under which the full time bonus applies
	AccuracyBonus   int     // max bonus for perfect accuracy
	HighScoreAppKey string  // gdata app name
	MinAccuracy     float64 // accuracy below this earns no bonus
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Projectile ProjectileConfig
var Collision CollisionConfig
var Score ScoreConfig

// Shared RGBA color constants
var (
	White       = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow      = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange      = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red         = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green       = color.RGBA{R: 0, G: 255, B: 60, A: 255}
	Cyan        = color.RGBA{R: 0, G: 220, B: 255, A: 255}
	Blue        = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	Purple      = color.RGBA{R: 128, G: 0, B: 255, A: 255}
	Magenta     = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	DarkBlue    = color.RGBA{R: 60, G: 100, B: 160, A: 255}
	LightBlue   = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	OverlayGrey = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:  640,
		Height: 480,
	}

	Player = PlayerConfig{
		Speed:         4.0,
		MaxSpeed:      4.0,
		Health:        3,
		InvulnFrames:  90,
		FireCooldown:  15,
		StartingLives: 3,
		Width:         32,
		Height:        20,
		BottomMargin:  40,
		Color:         Green,
	}

	Projectile = ProjectileConfig{
		PoolSize:    32,
		HardCap:     128,
		PlayerSpeed: 8.0,
		EnemySpeed:  4.0,
		Damage:      1,
		Lifetime:    180,
		Width:       4,
		Height:      12,
		PlayerColor: White,
		EnemyColor:  Orange,
	}

	Collision = CollisionConfig{
		CellSize:              64,
		MaxCollisionsPerFrame: 1000,
	}

	Score = ScoreConfig{
		ComboWindow:     120,
		ComboBonus:      5,
		EscapePenalty:   25,
		WaveTimeBonus:   500,
		WaveTimeTarget:  1800, // 30 seconds at 60fps
		AccuracyBonus:   500,
		MinAccuracy:     0.25,
		HighScoreAppKey: "invaders",
	}
}
