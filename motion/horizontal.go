package motion

import (
	"math"

	cfg "github.com/automoto/motioncore/config"
	"github.com/automoto/motioncore/shared/gamemath"
)

// readHorizontal resolves left/right into a move direction. When both are held the
// most recently pressed one wins. Input toward a wall that was just jumped off is muted.
func (c *Controller) readHorizontal(in Input) {
	l := in.Held(cfg.ActionMoveLeft) && !c.wallMuted(SideLeft)
	r := in.Held(cfg.ActionMoveRight) && !c.wallMuted(SideRight)

	if l && in.Pressed(cfg.ActionMoveLeft) {
		c.motion.lastPressed = -1
	}
	if r && in.Pressed(cfg.ActionMoveRight) {
		c.motion.lastPressed = 1
	}

	dir := 0.0
	switch {
	case l && r:
		dir = c.motion.lastPressed
	case l:
		dir = -1
	case r:
		dir = 1
	}

	if c.motion.lock.Active() {
		return
	}
	c.motion.moveDir = dir
	if dir != 0 {
		c.setFacing(dir > 0)
	}
}

func (c *Controller) setFacing(right bool) {
	if c.motion.facingRight == right {
		return
	}
	c.motion.facingRight = right
	if c.onFacing != nil {
		c.onFacing(right)
	}
}

func (c *Controller) facingSign() float64 {
	if c.motion.facingRight {
		return 1
	}
	return -1
}

// updateRunSpeed grows the run speed while running on the ground and decays it otherwise.
func (c *Controller) updateRunSpeed(dt float64) {
	mv := &c.t.Movement
	if c.ground.grounded && c.motion.moveDir != 0 {
		c.ground.runSpeed += mv.RunSpeedGrowth * dt
	} else {
		c.ground.runSpeed -= mv.RunSpeedDecay * dt
	}
	c.ground.runSpeed = gamemath.Clamp(c.ground.runSpeed, mv.RunSpeedMin, mv.RunSpeedMax)
}

// apexBonus returns the speed and acceleration multipliers near a jump's apex.
func (c *Controller) apexBonus() (speed, accel float64) {
	mv := &c.t.Movement
	if c.ground.grounded || mv.ApexThreshold <= 0 {
		return 1, 1
	}
	vy := math.Abs(c.body.Velocity().Y)
	if vy >= mv.ApexThreshold {
		return 1, 1
	}
	t := 1 - vy/mv.ApexThreshold
	return gamemath.Lerp(1, mv.ApexSpeedBonus, t), gamemath.Lerp(1, mv.ApexAccelBonus, t)
}

// steerVelX moves the commanded horizontal velocity toward the run target.
// Airborne without input it decays by air drag instead.
func (c *Controller) steerVelX(dt float64) {
	mv := &c.t.Movement
	speedBonus, accelBonus := c.apexBonus()
	if c.ground.grounded || c.motion.moveDir != 0 {
		target := c.motion.moveDir * c.ground.runSpeed * c.motion.speedMult * speedBonus
		c.motion.velX = gamemath.MoveTowards(c.motion.velX, target, mv.Acceleration*accelBonus*dt)
		return
	}
	c.motion.velX = gamemath.ApplyFriction(c.motion.velX, mv.AirDrag*dt)
}

func (c *Controller) applyHorizontal(dt float64) {
	v := c.body.Velocity()
	if c.motion.lock.Active() {
		v.X = c.motion.velX
		c.body.SetVelocity(v)
		return
	}
	// Collisions zero the body's velocity; pick that up before steering.
	c.motion.velX = v.X
	c.steerVelX(dt)
	v.X = c.motion.velX
	c.body.SetVelocity(v)
}
