package motion

import "github.com/automoto/motioncore/shared/gamemath"

// applyGravity adds the profile's extra gravity on top of the world's base gravity.
// The world applies gravity * gravityScale; this adds gravity * (mult - 1) * gravityScale.
func (c *Controller) applyGravity(dt float64) {
	gp := &c.grav
	gr := &c.t.Gravity
	v := c.body.Velocity()
	mult := 1.0

	switch {
	case c.dash.mode == dashHold:
		gp.state = GravityDownwardDashing
		return
	case c.wall.state == WallGrabbing:
		gp.state = GravitySuspended
		return
	case gp.state == GravitySlamming:
		mult = gr.FallMultiplier * gr.SlamMultiplier
	case c.wall.state == WallSliding:
		gp.state = GravityWallSliding
		mult = c.t.Wall.SlideGravityMultiplier
	case v.Y < 0:
		if !gp.latched {
			// A fall starts from rest
			gp.latched = true
			gp.timer = 0
			v.Y = 0
			c.body.SetVelocity(v)
		} else {
			gp.timer += dt
		}
		gp.state = GravityFalling
		progress := 1.0
		if ramp := c.t.fallRamp(gp.context); ramp > 0 {
			progress = gamemath.Clamp01(gp.timer / ramp)
		}
		mult = c.t.fallMultiplier(progress)
	case v.Y > 0:
		gp.latched = false
		gp.state = GravityRising
		mult = gr.RiseMultiplier
	default:
		gp.latched = false
		gp.state = GravityNeutral
	}

	g := c.world.Gravity()
	scale := c.body.GravityScale()
	v = c.body.Velocity()
	v.Y += g * (mult - 1) * scale * dt

	// Clamp so the velocity lands on the limit after the world adds its own gravity.
	limit := 0.0
	switch gp.state {
	case GravityWallSliding:
		limit = c.t.Wall.SlideMaxSpeed
	case GravityFalling:
		limit = gr.MaxFallSpeed
	}
	if limit > 0 {
		if floor := -limit - g*scale*dt; v.Y < floor {
			v.Y = floor
		}
	}
	c.body.SetVelocity(v)
}

// resetFall clears the fall latch and records what the next fall follows.
func (c *Controller) resetFall(ctx FallContext) {
	c.grav.latched = false
	c.grav.timer = 0
	c.grav.context = ctx
	if c.grav.state == GravitySlamming {
		c.grav.state = GravityNeutral
	}
}
