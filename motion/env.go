package motion

import (
	cfg "github.com/automoto/motioncore/config"
	"github.com/automoto/motioncore/physics"
	"github.com/automoto/motioncore/shared/gamemath"
	dmath "github.com/yohamta/donburi/features/math"
)

// World is the collision-query provider the controller senses through.
type World interface {
	Gravity() float64
	RaycastAll(origin, dir dmath.Vec2, length float64, exclude physics.SurfaceID) []physics.Hit
	SweepAll(box gamemath.AABB, dir dmath.Vec2, distance float64, exclude physics.SurfaceID) []physics.Hit
	Surface(id physics.SurfaceID) physics.SurfaceInfo
	IgnoreCollision(a, b physics.SurfaceID)
	RestoreCollision(a, b physics.SurfaceID)
	OutOfBounds(box gamemath.AABB) bool
}

// Body is the physics body the controller drives.
type Body interface {
	Collider() physics.SurfaceID
	Position() dmath.Vec2
	SetPosition(p dmath.Vec2)
	HalfSize() dmath.Vec2
	Bounds() gamemath.AABB
	Velocity() dmath.Vec2
	SetVelocity(v dmath.Vec2)
	GravityScale() float64
	SetGravityScale(s float64)
	AddImpulse(j dmath.Vec2)
}

// Input answers per-tick action queries.
type Input interface {
	Held(a cfg.ActionID) bool
	Pressed(a cfg.ActionID) bool
	Released(a cfg.ActionID) bool
}

// Snapshot is an Input built from this tick's and last tick's held actions.
type Snapshot struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
}

func (s *Snapshot) Held(a cfg.ActionID) bool     { return s.Current[a] }
func (s *Snapshot) Pressed(a cfg.ActionID) bool  { return s.Current[a] && !s.Previous[a] }
func (s *Snapshot) Released(a cfg.ActionID) bool { return !s.Current[a] && s.Previous[a] }

// Advance shifts Current into Previous and sets the new held actions.
func (s *Snapshot) Advance(held ...cfg.ActionID) {
	s.Previous = s.Current
	s.Current = [cfg.ActionCount]bool{}
	for _, a := range held {
		s.Current[a] = true
	}
}
