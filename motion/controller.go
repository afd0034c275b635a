// Package motion is the platformer character controller: ground and wall sensing,
// horizontal run model, gravity profile, jumps, dashes, wall grab and slide, and
// one-way platform drop-through. It drives a Body through a World and never
// integrates motion itself except for dashes, which move the body directly.
package motion

import (
	"math"

	cfg "github.com/automoto/motioncore/config"
	"github.com/automoto/motioncore/physics"
	dmath "github.com/yohamta/donburi/features/math"
)

// Controller owns one character's motion state.
//
// Each frame call Update once per input tick, then FixedUpdate once per physics
// step before the world steps.
type Controller struct {
	t      tuning
	body   Body
	world  World
	sensor sensor

	onFacing func(facingRight bool)

	motion motionState
	ground groundState
	jump   jumpState
	grav   gravityProfile
	dash   dashState
	wall   wallState
	drop   dropThrough

	held           [cfg.ActionCount]bool
	jumpedThisTick bool
}

// NewController creates a controller for body. The config is sanitized first.
func NewController(m cfg.MotionConfig, body Body, world World) *Controller {
	c := &Controller{body: body, world: world}
	c.t = newTuning(m)
	c.sensor = sensor{t: &c.t, world: world, body: body}

	c.motion.facingRight = true
	c.motion.speedMult = 1
	c.ground.runSpeed = c.t.Movement.RunSpeedMin
	c.jump.doubleJump = true
	c.dash.savedGravity = 1
	c.resizeCharges()
	return c
}

// Reconfigure swaps in new tuning without resetting motion state.
func (c *Controller) Reconfigure(m cfg.MotionConfig) {
	c.t = newTuning(m)
	c.resizeCharges()
	mv := &c.t.Movement
	if c.ground.runSpeed < mv.RunSpeedMin {
		c.ground.runSpeed = mv.RunSpeedMin
	}
	if c.ground.runSpeed > mv.RunSpeedMax {
		c.ground.runSpeed = mv.RunSpeedMax
	}
}

func (c *Controller) resizeCharges() {
	n := c.t.Dash.MaxCharges
	old := c.dash.charges
	c.dash.charges = make([]dashCharge, n)
	for i := range c.dash.charges {
		if i < len(old) {
			c.dash.charges[i] = old[i]
		} else {
			c.dash.charges[i].ready = true
		}
	}
}

// SetFacingHook registers fn to be called whenever facing flips.
func (c *Controller) SetFacingHook(fn func(facingRight bool)) {
	c.onFacing = fn
}

// SetSpeedMultiplier scales the run target speed. Negative values are clamped to zero.
func (c *Controller) SetSpeedMultiplier(m float64) {
	if m < 0 {
		m = 0
	}
	c.motion.speedMult = m
}

// Update runs the input tick: sensing, timers, jump, wall and dash decisions.
func (c *Controller) Update(dt float64, in Input) {
	c.jumpedThisTick = false
	for a := cfg.ActionID(0); a < cfg.ActionCount; a++ {
		c.held[a] = in.Held(a)
	}
	c.dash.jumpBuffer.Tick(dt)

	c.readHorizontal(in)
	c.updateDropThrough(dt)
	c.updateGround(dt)
	c.updateRunSpeed(dt)
	c.updateWall(dt)

	pressed := in.Pressed(cfg.ActionJump)
	c.updateJumpBuffer(dt, pressed)
	switch c.dash.mode {
	case dashHold:
		if pressed {
			c.dash.cancel = true
			c.jump.buffer.Clear()
		}
	case dashFixed:
		if pressed {
			c.dash.jumpBuffer.Set(c.t.Jump.DashJumpBuffer)
			c.jump.buffer.Clear()
		}
	default:
		c.handleJump(in)
	}

	c.handleDashInput(dt, in)
	c.updateDashCharges(dt)
	c.motion.lock.Tick(dt)
	c.wall.suppress.Tick(dt)
}

// updateGround refreshes the grounded flag and coyote time. Probes are ignored while rising.
func (c *Controller) updateGround(dt float64) {
	g := c.sensor.probeGround(c.drop.ignoredSurface())
	grounded := g.hit && c.body.Velocity().Y <= c.t.Gravity.GroundedRiseTolerance

	c.ground.grounded = grounded
	if !grounded {
		c.ground.surface = physics.NoSurface
		c.ground.oneWay = false
		c.jump.coyote.Tick(dt)
		return
	}
	c.ground.surface = g.surface
	c.ground.oneWay = g.oneWay
	c.jump.coyote.Set(c.t.Jump.CoyoteTime)
	c.jump.doubleJump = true
	if c.dash.mode == dashIdle {
		c.resetFall(FallNone)
	}
}

// FixedUpdate runs the physics tick. Call it before the world steps.
func (c *Controller) FixedUpdate(dt float64) {
	if c.dash.mode != dashIdle {
		c.stepDash(dt)
		return
	}
	c.applyHorizontal(dt)
	if c.wall.state == WallGrabbing {
		c.body.SetVelocity(dmath.Vec2{})
	}
	c.applyHoldBoost(dt)
	c.applyGravity(dt)
}

// Respawn teleports the body and clears transient motion state.
func (c *Controller) Respawn(p dmath.Vec2) {
	if c.dash.mode != dashIdle {
		c.endDash()
	}
	c.cancelDropThrough()
	c.detachWall(false)
	c.body.SetPosition(p)
	c.body.SetVelocity(dmath.Vec2{})
	c.body.SetGravityScale(1)
	c.motion.velX = 0
	c.motion.lock.Clear()
	c.jump = jumpState{doubleJump: true}
	c.dash.buffer.Clear()
	c.dash.jumpBuffer.Clear()
	c.resetFall(FallNone)
}

// CurrentHorizontalSpeed is the magnitude of the commanded horizontal velocity.
func (c *Controller) CurrentHorizontalSpeed() float64 { return math.Abs(c.motion.velX) }

func (c *Controller) IsGrounded() bool { return c.ground.grounded }

// DashCharges is the number of ready dash charges.
func (c *Controller) DashCharges() int {
	n := 0
	for _, ch := range c.dash.charges {
		if ch.ready {
			n++
		}
	}
	return n
}

func (c *Controller) FacingRight() bool { return c.motion.facingRight }
func (c *Controller) Dashing() bool { return c.dash.mode != dashIdle }

// DashCount is the number of dashes started since the controller was created.
// Respawn and Reconfigure keep it.
func (c *Controller) DashCount() int { return c.dash.count }

func (c *Controller) WallState() WallState { return c.wall.state }
func (c *Controller) WallSide() WallSide { return c.wall.side }
func (c *Controller) GravityState() GravityState { return c.grav.state }
func (c *Controller) FallContext() FallContext { return c.grav.context }
func (c *Controller) DropThroughActive() bool { return c.drop.active }
func (c *Controller) DoubleJumpAvailable() bool { return c.jump.doubleJump }
func (c *Controller) Config() cfg.MotionConfig { return c.t.MotionConfig }
func (c *Controller) Body() Body { return c.body }
