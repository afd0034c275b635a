package motion

import (
	cfg "github.com/automoto/motioncore/config"
	"github.com/automoto/motioncore/shared/gamemath"
	dmath "github.com/yohamta/donburi/features/math"
)

// arriveEpsilon is how close a fixed dash must get to its target to finish.
const arriveEpsilon = 1e-6

func (c *Controller) readyCharge() int {
	for i, ch := range c.dash.charges {
		if ch.ready {
			return i
		}
	}
	return -1
}

func (c *Controller) consumeCharge(i int) {
	cd := c.t.Dash.Cooldown
	c.dash.charges[i] = dashCharge{cooldown: cd, awaitingGround: cd <= 0}
}

// updateDashCharges runs each spent charge's cooldown. A charge whose cooldown ends
// in the air waits for the next ground-like contact.
func (c *Controller) updateDashCharges(dt float64) {
	groundLike := c.ground.grounded ||
		(c.t.Wall.CountsAsGroundForDash && c.wall.side != SideNone)
	for i := range c.dash.charges {
		ch := &c.dash.charges[i]
		if ch.ready {
			continue
		}
		if ch.cooldown > 0 {
			ch.cooldown -= dt
			if ch.cooldown > 0 {
				continue
			}
			ch.cooldown = 0
			ch.awaitingGround = true
		}
		if ch.awaitingGround && groundLike {
			ch.awaitingGround = false
			ch.ready = true
		}
	}
}

// handleDashInput starts a dash on press, buffering presses that cannot start one.
// Buffered presses retry each tick unless a jump ran this tick.
func (c *Controller) handleDashInput(dt float64, in Input) {
	if in.Pressed(cfg.ActionDash) {
		if c.tryDash(in) {
			c.dash.buffer.Clear()
		} else {
			c.dash.buffer.Set(c.t.Dash.BufferTime)
		}
		return
	}
	if !c.dash.buffer.Active() {
		return
	}
	c.dash.buffer.Tick(dt)
	if c.dash.buffer.Active() && !c.jumpedThisTick && c.tryDash(in) {
		c.dash.buffer.Clear()
	}
}

// dashDirection picks the dash direction. Ground dashes are horizontal only.
func (c *Controller) dashDirection(in Input) (dmath.Vec2, bool) {
	l := in.Held(cfg.ActionMoveLeft)
	r := in.Held(cfg.ActionMoveRight)

	if c.ground.grounded {
		x := 0.0
		switch {
		case l && !r:
			x = -1
		case r && !l:
			x = 1
		}
		if x == 0 {
			if !c.t.Dash.GroundUsesFacing {
				return dmath.Vec2{}, false
			}
			x = c.facingSign()
		}
		return gamemath.Vec(x, 0), true
	}

	x, y := gamemath.CalculateDashDirection(c.facingSign(), l, r,
		in.Held(cfg.ActionMoveUp), in.Held(cfg.ActionMoveDown), c.motion.lastPressed)
	if y < 0 && !c.t.Dash.AllowDownward {
		return dmath.Vec2{}, false
	}
	return gamemath.Vec(x, y).Normalized(), true
}

// tryDash starts a dash if a charge is ready and there is room to move.
// A refused dash spends nothing.
func (c *Controller) tryDash(in Input) bool {
	if c.dash.mode != dashIdle {
		return false
	}
	idx := c.readyCharge()
	if idx < 0 {
		return false
	}
	dir, ok := c.dashDirection(in)
	if !ok {
		return false
	}

	if dir.Y < 0 && c.t.Dash.DownwardHold {
		c.consumeCharge(idx)
		c.beginDash(dashHold, dir)
		return true
	}

	allowed := c.sensor.allowedDistance(dir, c.t.Dash.Distance, c.drop.ignoredSurface())
	if allowed <= c.t.Dash.MinDistance {
		return false
	}
	c.consumeCharge(idx)
	if dir.Y > 0 {
		for _, id := range c.sensor.oneWaysAlong(dir, allowed) {
			c.world.IgnoreCollision(c.body.Collider(), id)
			c.dash.ignored = append(c.dash.ignored, id)
		}
	}
	c.beginDash(dashFixed, dir)
	c.dash.target = c.body.Position().Add(dir.MulScalar(allowed))
	return true
}

func (c *Controller) beginDash(mode dashMode, dir dmath.Vec2) {
	c.detachWall(false)
	c.jump.holding = false

	d := &c.dash
	d.mode = mode
	d.dir = dir
	d.cancel = false
	d.jumpBuffer.Clear()
	d.savedGravity = c.body.GravityScale()
	d.count++

	c.body.SetGravityScale(0)
	c.body.SetVelocity(dmath.Vec2{})
	c.grav.latched = false
	c.grav.timer = 0
	if mode == dashHold {
		c.grav.state = GravityDownwardDashing
	} else {
		c.grav.state = GravitySuspended
	}
}

// stepDash advances an active dash by one physics tick. Horizontal steering keeps
// running underneath so the dash exits at the speed the player is asking for.
func (c *Controller) stepDash(dt float64) {
	c.steerVelX(dt)

	switch c.dash.mode {
	case dashHold:
		if c.dash.cancel {
			c.cancelHoldDash()
			return
		}
		skin := c.t.Dash.HoldSkin
		step := c.t.Dash.Speed / c.t.Dash.HoldSpeedDivisor * dt
		pos := c.body.Position()
		if d, hit := c.sensor.firstObstruction(c.dash.dir, step+skin, c.drop.ignoredSurface()); hit {
			move := d - skin
			if move < 0 {
				move = 0
			}
			c.body.SetPosition(pos.Add(c.dash.dir.MulScalar(move)))
			c.finishDash()
			return
		}
		c.body.SetPosition(pos.Add(c.dash.dir.MulScalar(step)))
		if c.world.OutOfBounds(c.body.Bounds()) {
			c.finishDash()
		}

	case dashFixed:
		next := gamemath.MoveTowardsVec(c.body.Position(), c.dash.target, c.t.Dash.Speed*dt)
		c.body.SetPosition(next)
		if next.Distance(c.dash.target) <= arriveEpsilon {
			c.finishDash()
		}
	}
}

// endDash returns the body to normal physics.
func (c *Controller) endDash() {
	d := &c.dash
	scale := d.savedGravity
	if scale == 0 {
		scale = 1
	}
	c.body.SetGravityScale(scale)
	for _, id := range d.ignored {
		c.world.RestoreCollision(c.body.Collider(), id)
	}
	d.ignored = d.ignored[:0]
	d.mode = dashIdle
	d.cancel = false
	c.grav.state = GravityNeutral
}

// finishDash completes a dash normally and runs a jump buffered during it.
func (c *Controller) finishDash() {
	dir := c.dash.dir
	c.endDash()
	c.resetFall(FallFromDash)

	v := gamemath.Vec(c.motion.velX, 0)
	if dir.Y < 0 && c.t.Dash.SlamOnDownward && !c.t.Dash.DownwardHold {
		v.Y = -c.t.Dash.Speed
		c.grav.state = GravitySlamming
		c.grav.latched = true
	}
	c.body.SetVelocity(v)

	if !c.dash.jumpBuffer.Active() {
		return
	}
	g := c.sensor.probeGround(c.drop.ignoredSurface())
	if g.hit && g.oneWay && c.held[cfg.ActionMoveDown] {
		// Left for the drop-through check on the next input tick.
		return
	}
	c.dash.jumpBuffer.Clear()
	switch {
	case g.hit || c.jump.coyote.Active():
		c.launchJump()
	case c.jump.doubleJump:
		c.jump.doubleJump = false
		c.launchJump()
	}
}

// cancelHoldDash ends a hold dash on a jump press: a double jump if one is
// available in the air, otherwise a small upward pop.
func (c *Controller) cancelHoldDash() {
	c.endDash()
	airborne := !c.sensor.probeGround(c.drop.ignoredSurface()).hit
	if airborne && c.jump.doubleJump {
		c.jump.doubleJump = false
		c.launchJump()
		return
	}
	c.body.SetVelocity(gamemath.Vec(c.motion.velX, 0))
	c.body.AddImpulse(gamemath.Vec(0, c.t.Jump.CancelImpulse))
	c.resetFall(FallFromJump)
}
