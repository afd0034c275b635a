package motion

import "github.com/automoto/motioncore/physics"

// startDropThrough drops through the one-way platform underfoot. Collision with it
// is ignored for the drop duration and the ground probe skips it for a grace period after.
func (c *Controller) startDropThrough() {
	dc := &c.t.DropThrough
	target := c.ground.surface

	c.drop = dropThrough{active: true, target: target}
	c.drop.suppress.Set(dc.Duration)
	c.drop.grace.Set(dc.Duration + dc.Grace)
	c.world.IgnoreCollision(c.body.Collider(), target)

	c.detachWall(false)
	c.ground.grounded = false
	c.ground.surface = physics.NoSurface
	c.ground.oneWay = false
	c.jump.coyote.Clear()

	v := c.body.Velocity()
	if v.Y > -dc.NudgeSpeed {
		v.Y = -dc.NudgeSpeed
	}
	c.body.SetVelocity(v)
	c.resetFall(FallNone)
	c.grav.latched = true
}

func (c *Controller) updateDropThrough(dt float64) {
	d := &c.drop
	if !d.active {
		return
	}
	d.suppress.Tick(dt)
	if !d.restored && !d.suppress.Active() {
		c.world.RestoreCollision(c.body.Collider(), d.target)
		d.restored = true
	}
	d.grace.Tick(dt)
	if !d.grace.Active() {
		c.drop = dropThrough{}
	}
}

func (c *Controller) cancelDropThrough() {
	if c.drop.suppressing() {
		c.world.RestoreCollision(c.body.Collider(), c.drop.target)
	}
	c.drop = dropThrough{}
}
