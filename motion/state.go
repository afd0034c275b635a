package motion

import (
	"github.com/automoto/motioncore/physics"
	dmath "github.com/yohamta/donburi/features/math"
)

// GravityState is the gravity profile's current regime.
type GravityState uint8

const (
	GravityNeutral GravityState = iota
	GravityRising
	GravityFalling
	GravityWallSliding
	GravitySlamming
	GravityDownwardDashing
	GravitySuspended // fixed dash or wall grab, gravity scale zero
)

func (s GravityState) String() string {
	switch s {
	case GravityRising:
		return "rising"
	case GravityFalling:
		return "falling"
	case GravityWallSliding:
		return "wall-sliding"
	case GravitySlamming:
		return "slamming"
	case GravityDownwardDashing:
		return "downward-dashing"
	case GravitySuspended:
		return "suspended"
	}
	return "neutral"
}

// FallContext records what started the current fall.
type FallContext uint8

const (
	FallNone FallContext = iota
	FallFromJump
	FallFromDash
)

// WallState is the wall contact state machine.
type WallState uint8

const (
	WallDetached WallState = iota
	WallTouching
	WallGrabbing
	WallSliding
)

func (s WallState) String() string {
	switch s {
	case WallTouching:
		return "touching"
	case WallGrabbing:
		return "grabbing"
	case WallSliding:
		return "sliding"
	}
	return "detached"
}

// WallSide is the side a wall was sensed on.
type WallSide int8

const (
	SideNone  WallSide = 0
	SideLeft  WallSide = -1
	SideRight WallSide = 1
)

type dashMode uint8

const (
	dashIdle dashMode = iota
	dashFixed
	dashHold
)

type motionState struct {
	velX        float64 // commanded horizontal velocity, kept up to date during dashes
	moveDir     float64
	lastPressed float64
	facingRight bool
	speedMult   float64
	lock        Timer // wall-jump horizontal lock
}

type groundState struct {
	grounded bool
	surface  physics.SurfaceID
	oneWay   bool
	runSpeed float64
}

type jumpState struct {
	holding    bool
	holdTime   float64
	remaining  float64
	doubleJump bool
	coyote     Timer
	buffer     Timer
}

type gravityProfile struct {
	state   GravityState
	context FallContext
	latched bool // fall started; its velocity snap already happened
	timer   float64
}

type dashCharge struct {
	ready          bool
	cooldown       float64
	awaitingGround bool
}

type dashState struct {
	charges      []dashCharge
	mode         dashMode
	dir          dmath.Vec2
	target       dmath.Vec2
	savedGravity float64
	cancel       bool
	ignored      []physics.SurfaceID
	buffer       Timer
	jumpBuffer   Timer
	count        int // dashes started since creation
}

type wallState struct {
	state          WallState
	side           WallSide
	grabTime       float64
	regrab         Timer
	suppress       Timer
	suppressedSide WallSide
}

type dropThrough struct {
	active   bool
	target   physics.SurfaceID
	restored bool
	suppress Timer
	grace    Timer
}

// suppressing reports whether collision with the target is still ignored.
func (d *dropThrough) suppressing() bool { return d.active && !d.restored }

func (d *dropThrough) ignoredSurface() physics.SurfaceID {
	if d.active {
		return d.target
	}
	return physics.NoSurface
}
