package config

import "log"

// MovementConfig contains horizontal run tuning. Speeds are px/s, rates px/s^2.
type MovementConfig struct {
	RunSpeedMin    float64 `yaml:"run_speed_min"`
	RunSpeedMax    float64 `yaml:"run_speed_max"`
	RunSpeedGrowth float64 `yaml:"run_speed_growth"` // while grounded with input
	RunSpeedDecay  float64 `yaml:"run_speed_decay"`
	Acceleration   float64 `yaml:"acceleration"`
	AirDrag        float64 `yaml:"air_drag"`

	// Apex bonus ramps in as |vy| drops below ApexThreshold while airborne
	ApexThreshold  float64 `yaml:"apex_threshold"`
	ApexSpeedBonus float64 `yaml:"apex_speed_bonus"`
	ApexAccelBonus float64 `yaml:"apex_accel_bonus"`
}

// GravityConfig contains the rise/fall gravity profile.
type GravityConfig struct {
	RiseMultiplier  float64 `yaml:"rise_multiplier"`
	FallMultiplier  float64 `yaml:"fall_multiplier"`
	FallRampDefault float64 `yaml:"fall_ramp_default"` // seconds, falls with no jump or dash before them
	FallRampJump    float64 `yaml:"fall_ramp_jump"`
	FallRampDash    float64 `yaml:"fall_ramp_dash"`
	FallEase        string  `yaml:"fall_ease"`
	SlamMultiplier  float64 `yaml:"slam_multiplier"`
	MaxFallSpeed    float64 `yaml:"max_fall_speed"`

	// Ground probes are ignored while vy is above this
	GroundedRiseTolerance float64 `yaml:"grounded_rise_tolerance"`
}

// JumpConfig contains jump impulses (px/s on a unit-mass body) and grace windows.
type JumpConfig struct {
	MinForce       float64 `yaml:"min_force"`
	MaxForce       float64 `yaml:"max_force"`
	MaxChargeTime  float64 `yaml:"max_charge_time"`
	CoyoteTime     float64 `yaml:"coyote_time"`
	BufferTime     float64 `yaml:"buffer_time"`
	CancelImpulse  float64 `yaml:"cancel_impulse"`
	DashJumpBuffer float64 `yaml:"dash_jump_buffer"`
}

// DashConfig contains dash tuning.
type DashConfig struct {
	Speed            float64 `yaml:"speed"`
	Distance         float64 `yaml:"distance"`
	MaxCharges       int     `yaml:"max_charges"`
	Cooldown         float64 `yaml:"cooldown"`
	BufferTime       float64 `yaml:"buffer_time"`
	WallSafeDistance float64 `yaml:"wall_safe_distance"`
	MinDistance      float64 `yaml:"min_distance"` // allowed distances at or below this refuse the dash
	AllowDownward    bool    `yaml:"allow_downward"`

	// Downward and diagonal-down dashes run until they land
	DownwardHold     bool    `yaml:"downward_hold"`
	HoldSpeedDivisor float64 `yaml:"hold_speed_divisor"`
	HoldSkin         float64 `yaml:"hold_skin"`

	GroundUsesFacing bool `yaml:"ground_uses_facing"` // directionless ground dash goes toward facing
	SlamOnDownward   bool `yaml:"slam_on_downward"`   // only without DownwardHold
}

// WallConfig contains wall grab, slide and wall jump tuning.
type WallConfig struct {
	Enabled   bool    `yaml:"enabled"`
	RayOffset float64 `yaml:"ray_offset"` // upper/lower ray offset from center
	RayLength float64 `yaml:"ray_length"`
	SkinPush  float64 `yaml:"skin_push"`

	GrabHoldTime           float64 `yaml:"grab_hold_time"`
	SlideGravityMultiplier float64 `yaml:"slide_gravity_multiplier"`
	SlideMaxSpeed          float64 `yaml:"slide_max_speed"`
	RegrabCooldown         float64 `yaml:"regrab_cooldown"`
	BothWallsWindow        float64 `yaml:"both_walls_window"`
	PreferRight            bool    `yaml:"prefer_right"`
	FallGate               bool    `yaml:"fall_gate"`
	FallGateVelocity       float64 `yaml:"fall_gate_velocity"`

	JumpVerticalForce      float64 `yaml:"jump_vertical_force"`
	JumpLaunchSpeed        float64 `yaml:"jump_launch_speed"`
	JumpOppositeMultiplier float64 `yaml:"jump_opposite_multiplier"`
	JumpLockTime           float64 `yaml:"jump_lock_time"`
	InputSuppressionTime   float64 `yaml:"input_suppression_time"`

	CountsAsGroundForDash bool `yaml:"counts_as_ground_for_dash"`
}

// SensorConfig contains ground probe geometry.
type SensorConfig struct {
	GroundRayInset       float64 `yaml:"ground_ray_inset"` // from each collider side
	GroundRayLength      float64 `yaml:"ground_ray_length"`
	RayStartDepth        float64 `yaml:"ray_start_depth"` // rays start this far inside the collider
	OneWayCountsAsGround bool    `yaml:"one_way_counts_as_ground"`
}

// DropThroughConfig contains one-way platform drop tuning.
type DropThroughConfig struct {
	Duration   float64 `yaml:"duration"`
	Grace      float64 `yaml:"grace"`
	NudgeSpeed float64 `yaml:"nudge_speed"`
}

// MotionConfig contains every designer-tunable value of the character controller.
type MotionConfig struct {
	Movement    MovementConfig    `yaml:"movement"`
	Gravity     GravityConfig     `yaml:"gravity"`
	Jump        JumpConfig        `yaml:"jump"`
	Dash        DashConfig        `yaml:"dash"`
	Wall        WallConfig        `yaml:"wall"`
	Sensor      SensorConfig      `yaml:"sensor"`
	DropThrough DropThroughConfig `yaml:"drop_through"`
}

// Motion is the global motion tuning.
var Motion MotionConfig

// DefaultMotion returns the built-in tuning.
func DefaultMotion() MotionConfig {
	return MotionConfig{
		Movement: MovementConfig{
			RunSpeedMin:    96,
			RunSpeedMax:    144,
			RunSpeedGrowth: 48,
			RunSpeedDecay:  96,
			Acceleration:   2400,
			AirDrag:        240,
			ApexThreshold:  40,
			ApexSpeedBonus: 1.1,
			ApexAccelBonus: 1.5,
		},
		Gravity: GravityConfig{
			RiseMultiplier:        1,
			FallMultiplier:        2.5,
			FallRampDefault:       0.1,
			FallRampJump:          0.15,
			FallRampDash:          0.15,
			FallEase:              "linear",
			SlamMultiplier:        6,
			MaxFallSpeed:          720,
			GroundedRiseTolerance: 1,
		},
		Jump: JumpConfig{
			MinForce:       300,
			MaxForce:       520,
			MaxChargeTime:  0.35,
			CoyoteTime:     0.12,
			BufferTime:     0.12,
			CancelImpulse:  240,
			DashJumpBuffer: 0.15,
		},
		Dash: DashConfig{
			Speed:            480,
			Distance:         96,
			MaxCharges:       2,
			Cooldown:         1.25,
			BufferTime:       0.12,
			WallSafeDistance: 1,
			MinDistance:      0.01,
			AllowDownward:    true,
			DownwardHold:     true,
			HoldSpeedDivisor: 1.25,
			HoldSkin:         0.5,
			GroundUsesFacing: true,
		},
		Wall: WallConfig{
			Enabled:                true,
			RayOffset:              6,
			RayLength:              2,
			SkinPush:               0.5,
			GrabHoldTime:           0.2,
			SlideGravityMultiplier: 0.6,
			SlideMaxSpeed:          120,
			RegrabCooldown:         0.15,
			BothWallsWindow:        0.1,
			PreferRight:            true,
			FallGate:               true,
			FallGateVelocity:       0.001,
			JumpVerticalForce:      320,
			JumpLaunchSpeed:        160,
			JumpOppositeMultiplier: 1.3,
			JumpLockTime:           0.12,
			InputSuppressionTime:   0.2,
			CountsAsGroundForDash:  true,
		},
		Sensor: SensorConfig{
			GroundRayInset:       1.6,
			GroundRayLength:      3,
			RayStartDepth:        1,
			OneWayCountsAsGround: true,
		},
		DropThrough: DropThroughConfig{
			Duration:   0.25,
			Grace:      0.1,
			NudgeSpeed: 60,
		},
	}
}

const minChargeTime = 0.01

// Sanitize returns a copy with invalid values clamped to safe minimums.
func (m MotionConfig) Sanitize() MotionConfig {
	if m.Dash.MaxCharges < 1 {
		log.Printf("Warning: dash.max_charges %d clamped to 1", m.Dash.MaxCharges)
		m.Dash.MaxCharges = 1
	}
	if m.Jump.MaxChargeTime < minChargeTime {
		log.Printf("Warning: jump.max_charge_time %.3f clamped to %.2f", m.Jump.MaxChargeTime, minChargeTime)
		m.Jump.MaxChargeTime = minChargeTime
	}
	if m.Jump.MaxForce < m.Jump.MinForce {
		log.Printf("Warning: jump.max_force %.1f below min_force, using %.1f", m.Jump.MaxForce, m.Jump.MinForce)
		m.Jump.MaxForce = m.Jump.MinForce
	}
	if m.Movement.RunSpeedMax < m.Movement.RunSpeedMin {
		log.Printf("Warning: movement.run_speed_max %.1f below run_speed_min, using %.1f", m.Movement.RunSpeedMax, m.Movement.RunSpeedMin)
		m.Movement.RunSpeedMax = m.Movement.RunSpeedMin
	}
	if m.Dash.HoldSpeedDivisor <= 0 {
		log.Printf("Warning: dash.hold_speed_divisor %.2f clamped to 1", m.Dash.HoldSpeedDivisor)
		m.Dash.HoldSpeedDivisor = 1
	}
	if m.Dash.MinDistance <= 0 {
		m.Dash.MinDistance = 0.0001
	}
	if m.Movement.ApexSpeedBonus <= 0 {
		m.Movement.ApexSpeedBonus = 1
	}
	if m.Movement.ApexAccelBonus <= 0 {
		m.Movement.ApexAccelBonus = 1
	}

	nonNegative := []*float64{
		&m.Movement.RunSpeedMin, &m.Movement.RunSpeedGrowth, &m.Movement.RunSpeedDecay,
		&m.Movement.Acceleration, &m.Movement.AirDrag, &m.Movement.ApexThreshold,
		&m.Gravity.RiseMultiplier, &m.Gravity.FallMultiplier, &m.Gravity.SlamMultiplier,
		&m.Gravity.FallRampDefault, &m.Gravity.FallRampJump, &m.Gravity.FallRampDash,
		&m.Gravity.MaxFallSpeed,
		&m.Jump.CoyoteTime, &m.Jump.BufferTime, &m.Jump.DashJumpBuffer,
		&m.Dash.Speed, &m.Dash.Distance, &m.Dash.Cooldown, &m.Dash.BufferTime,
		&m.Dash.WallSafeDistance, &m.Dash.HoldSkin,
		&m.Wall.RayLength, &m.Wall.SkinPush, &m.Wall.GrabHoldTime, &m.Wall.SlideMaxSpeed,
		&m.Wall.RegrabCooldown, &m.Wall.BothWallsWindow, &m.Wall.JumpLockTime,
		&m.Wall.InputSuppressionTime,
		&m.Sensor.GroundRayLength, &m.Sensor.RayStartDepth,
		&m.DropThrough.Duration, &m.DropThrough.Grace, &m.DropThrough.NudgeSpeed,
	}
	clamped := 0
	for _, v := range nonNegative {
		if *v < 0 {
			*v = 0
			clamped++
		}
	}
	if clamped > 0 {
		log.Printf("Warning: %d negative motion values clamped to 0", clamped)
	}
	return m
}
