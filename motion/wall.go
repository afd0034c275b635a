package motion

import (
	cfg "github.com/automoto/motioncore/config"
	"github.com/automoto/motioncore/shared/gamemath"
)

func (c *Controller) wallMuted(side WallSide) bool {
	return c.wall.suppress.Active() && c.wall.suppressedSide == side
}

func (c *Controller) wallAttached() bool {
	return c.wall.state == WallGrabbing || c.wall.state == WallSliding
}

// updateWall advances the wall state machine from this tick's wall probe.
func (c *Controller) updateWall(dt float64) {
	w := &c.wall
	w.regrab.Tick(dt)
	contact := c.sensor.probeWalls(dt, c.motion.lastPressed)

	if !c.t.Wall.Enabled || c.drop.suppressing() || c.dash.mode != dashIdle {
		c.detachWall(false)
		return
	}
	if c.ground.grounded || contact.side == SideNone {
		c.detachWall(true)
		return
	}

	if w.side != contact.side && w.state != WallDetached {
		c.detachWall(false)
	}
	w.side = contact.side

	switch w.state {
	case WallGrabbing:
		w.grabTime += dt
		if w.grabTime >= c.t.Wall.GrabHoldTime {
			w.state = WallSliding
			c.body.SetGravityScale(1)
		}
		return
	case WallSliding:
		return
	}

	w.state = WallTouching
	if c.canGrab(contact) {
		c.grabWall()
	}
}

func (c *Controller) canGrab(contact wallContact) bool {
	if c.wall.regrab.Active() || contact.both {
		return false
	}
	if c.t.Wall.FallGate && c.body.Velocity().Y > -c.t.Wall.FallGateVelocity {
		return false
	}
	return true
}

// grabWall attaches to the wall on c.wall.side: velocity and gravity stop,
// the collider is nudged off the surface and the double jump comes back.
func (c *Controller) grabWall() {
	w := &c.wall
	w.state = WallGrabbing
	w.grabTime = 0

	away := -float64(w.side)
	p := c.body.Position()
	p.X += away * c.t.Wall.SkinPush
	c.body.SetPosition(p)
	c.body.SetVelocity(gamemath.Vec(0, 0))
	c.body.SetGravityScale(0)

	c.motion.velX = 0
	c.jump.doubleJump = true
	c.jump.holding = false
	c.resetFall(FallNone)
}

// detachWall leaves any wall state. With cooldown set, leaving a wall blocks an
// immediate regrab.
func (c *Controller) detachWall(cooldown bool) {
	w := &c.wall
	if w.state == WallDetached {
		w.side = SideNone
		return
	}
	if w.state == WallGrabbing {
		c.body.SetGravityScale(1)
	}
	if cooldown {
		w.regrab.Set(c.t.Wall.RegrabCooldown)
	}
	w.state = WallDetached
	w.side = SideNone
	w.grabTime = 0
}

// wallJump launches away from the attached wall and locks horizontal control briefly.
func (c *Controller) wallJump(in Input) {
	wc := &c.t.Wall
	side := c.wall.side
	away := -float64(side)

	toward := (side == SideRight && in.Held(cfg.ActionMoveRight)) ||
		(side == SideLeft && in.Held(cfg.ActionMoveLeft))
	opposite := (side == SideRight && in.Held(cfg.ActionMoveLeft)) ||
		(side == SideLeft && in.Held(cfg.ActionMoveRight))

	launch := wc.JumpLaunchSpeed
	if opposite {
		launch *= wc.JumpOppositeMultiplier
	}

	c.detachWall(false)
	c.wall.regrab.Set(wc.RegrabCooldown)
	if toward {
		c.wall.suppress.Set(wc.InputSuppressionTime)
		c.wall.suppressedSide = side
	}

	c.motion.velX = away * launch
	c.motion.moveDir = away
	c.body.SetVelocity(gamemath.Vec(c.motion.velX, 0))
	c.body.AddImpulse(gamemath.Vec(0, wc.JumpVerticalForce))
	c.motion.lock.Set(wc.JumpLockTime)
	c.setFacing(away > 0)

	c.resetFall(FallFromJump)
	c.jump.holding = false
	c.jump.coyote.Clear()
	c.jump.buffer.Clear()
	c.jumpedThisTick = true
}
