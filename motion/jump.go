package motion

import (
	cfg "github.com/automoto/motioncore/config"
	"github.com/automoto/motioncore/shared/gamemath"
)

func (c *Controller) groundLike() bool {
	return c.ground.grounded || c.jump.coyote.Active()
}

func (c *Controller) updateJumpBuffer(dt float64, pressed bool) {
	if pressed {
		c.jump.buffer.Set(c.t.Jump.BufferTime)
		return
	}
	c.jump.buffer.Tick(dt)
}

// handleJump runs the jump priority chain for one input tick.
func (c *Controller) handleJump(in Input) {
	pressed := in.Pressed(cfg.ActionJump)

	if (pressed || c.dash.jumpBuffer.Active()) && in.Held(cfg.ActionMoveDown) &&
		c.ground.grounded && c.ground.oneWay && !c.drop.active {
		c.dash.jumpBuffer.Clear()
		c.jump.buffer.Clear()
		c.startDropThrough()
		return
	}

	attached := c.wall.state == WallGrabbing || c.wall.state == WallSliding
	switch {
	case attached && (pressed || c.jump.buffer.Active()):
		c.wallJump(in)
	case c.jump.buffer.Active() && c.groundLike():
		c.launchJump()
	case pressed && c.groundLike():
		c.launchJump()
	case pressed && c.jump.doubleJump:
		c.jump.doubleJump = false
		c.launchJump()
	}

	if in.Released(cfg.ActionJump) {
		c.jump.holding = false
	}
}

// launchJump zeroes vertical velocity, applies the base impulse and opens the hold phase.
func (c *Controller) launchJump() {
	v := c.body.Velocity()
	v.Y = 0
	c.body.SetVelocity(v)
	c.body.AddImpulse(gamemath.Vec(0, c.t.jumpImpulse))

	c.resetFall(FallFromJump)
	c.detachWall(false)
	c.motion.lock.Clear()

	c.jump.holding = true
	c.jump.holdTime = 0
	c.jump.remaining = c.t.jumpExtra
	c.jump.coyote.Clear()
	c.jump.buffer.Clear()
	c.ground.grounded = false
	c.jumpedThisTick = true
}

// applyHoldBoost feeds the chargeable impulse while jump stays held during the rise.
// The total added never exceeds the chargeable amount.
func (c *Controller) applyHoldBoost(dt float64) {
	j := &c.jump
	if !j.holding {
		return
	}
	j.holdTime += dt
	if !c.held[cfg.ActionJump] || j.holdTime > c.t.Jump.MaxChargeTime ||
		j.remaining <= 0 || c.body.Velocity().Y <= 0 {
		j.holding = false
		return
	}
	add := c.t.jumpExtraRate * dt
	if add > j.remaining {
		add = j.remaining
	}
	c.body.AddImpulse(gamemath.Vec(0, add))
	j.remaining -= add
}
