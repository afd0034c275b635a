package physics

import (
	"github.com/automoto/motioncore/shared/gamemath"
	"github.com/automoto/motioncore/tags"
	"github.com/solarlune/resolv"
	dmath "github.com/yohamta/donburi/features/math"
)

// Body is a kinematic box integrated by World.Step. Position is the box center.
type Body struct {
	world *World
	id    SurfaceID
	obj   *resolv.Object

	pos, half, vel dmath.Vec2
	gravityScale   float64
	mass           float64
}

// AddBody creates a body centered on (x, y).
func (w *World) AddBody(x, y, width, height, mass float64) *Body {
	if mass <= 0 {
		mass = 1
	}
	obj := resolv.NewObject(x-width/2, y-height/2, width, height, tags.ResolvPlayer)
	b := &Body{
		world:        w,
		obj:          obj,
		pos:          gamemath.Vec(x, y),
		half:         gamemath.Vec(width/2, height/2),
		gravityScale: 1,
		mass:         mass,
	}
	b.id = w.AddObject(obj)
	w.bodies = append(w.bodies, b)
	return b
}

func (b *Body) Collider() SurfaceID      { return b.id }
func (b *Body) Object() *resolv.Object   { return b.obj }
func (b *Body) Position() dmath.Vec2     { return b.pos }
func (b *Body) HalfSize() dmath.Vec2     { return b.half }
func (b *Body) Velocity() dmath.Vec2     { return b.vel }
func (b *Body) SetVelocity(v dmath.Vec2) { b.vel = v }
func (b *Body) GravityScale() float64    { return b.gravityScale }
func (b *Body) Mass() float64            { return b.mass }

func (b *Body) SetGravityScale(s float64) { b.gravityScale = s }

func (b *Body) Bounds() gamemath.AABB {
	return gamemath.FromCenter(b.pos, b.half)
}

// SetPosition teleports the body without collision.
func (b *Body) SetPosition(p dmath.Vec2) {
	b.pos = p
	b.sync()
}

// AddImpulse changes velocity by j / mass.
func (b *Body) AddImpulse(j dmath.Vec2) {
	b.vel = b.vel.Add(j.DivScalar(b.mass))
}

func (b *Body) translate(d dmath.Vec2) {
	b.pos = b.pos.Add(d)
	b.sync()
}

func (b *Body) sync() {
	b.obj.X = b.pos.X - b.half.X
	b.obj.Y = b.pos.Y - b.half.Y
	b.obj.Update()
}
