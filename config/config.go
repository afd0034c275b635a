package config

// Default is the only ECS layer the game uses.
const Default = 0

// PhysicsConfig contains world-level physics values shared by every body.
type PhysicsConfig struct {
	Gravity   float64 // px/s^2, negative is down
	FixedStep float64 // seconds per physics tick
	MaxSteps  int     // physics ticks allowed per frame before the accumulator is dropped
	CellSize  int     // resolv space cell size in pixels
	KillDepth float64 // bodies below -KillDepth end any hold-dash
}

// PlayerConfig contains the player collider and spawn values.
type PlayerConfig struct {
	CollisionWidth  float64
	CollisionHeight float64
	Mass            float64
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	FollowSmoothing         float64 // How fast camera follows player (0.0-1.0)
	LookAheadDistanceX      float64 // Max horizontal look-ahead offset in pixels
	LookAheadSmoothing      float64 // How fast look-ahead offset changes (0.0-1.0)
	LookAheadSpeedThreshold float64 // Minimum horizontal speed (px/s) to update look-ahead
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	TPS    int
	Debug  bool
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	TuningPath string // YAML file watched for live motion tuning
	LevelPath  string // Level to load instead of the embedded default
}

// Global configuration instances
var C *Config
var Physics PhysicsConfig
var Player PlayerConfig
var Debug DebugConfig
var Camera CameraConfig

// Direction constants for player facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	C = &Config{
		Width:  640,
		Height: 368,
		TPS:    120,
	}

	Physics = PhysicsConfig{
		Gravity:   -960,
		FixedStep: 1.0 / 50.0,
		MaxSteps:  5,
		CellSize:  16,
		KillDepth: 256,
	}

	Player = PlayerConfig{
		CollisionWidth:  16,
		CollisionHeight: 24,
		Mass:            1,
	}

	Camera = CameraConfig{
		FollowSmoothing:         0.1,
		LookAheadDistanceX:      60.0, // ~10% of 640px screen width
		LookAheadSmoothing:      0.05,
		LookAheadSpeedThreshold: 8,
	}

	Motion = DefaultMotion()
}
