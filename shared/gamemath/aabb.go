package gamemath

import (
	"math"

	dmath "github.com/yohamta/donburi/features/math"
)

// ContactEpsilon is the penetration depth below which two boxes count as touching
// rather than overlapping.
const ContactEpsilon = 1e-6

// AABB is an axis-aligned box with Min at the lower-left corner (y-up).
type AABB struct {
	Min, Max dmath.Vec2
}

func NewAABB(x, y, w, h float64) AABB {
	return AABB{Min: Vec(x, y), Max: Vec(x+w, y+h)}
}

func FromCenter(center, half dmath.Vec2) AABB {
	return AABB{Min: center.Sub(half), Max: center.Add(half)}
}

func (b AABB) Width() float64  { return b.Max.X - b.Min.X }
func (b AABB) Height() float64 { return b.Max.Y - b.Min.Y }

func (b AABB) Center() dmath.Vec2 {
	return Vec((b.Min.X+b.Max.X)/2, (b.Min.Y+b.Max.Y)/2)
}

func (b AABB) HalfSize() dmath.Vec2 {
	return Vec(b.Width()/2, b.Height()/2)
}

func (b AABB) Translate(d dmath.Vec2) AABB {
	return AABB{Min: b.Min.Add(d), Max: b.Max.Add(d)}
}

// Overlaps reports whether the boxes share interior area deeper than ContactEpsilon.
func (b AABB) Overlaps(o AABB) bool {
	return b.Min.X < o.Max.X-ContactEpsilon && b.Max.X > o.Min.X+ContactEpsilon &&
		b.Min.Y < o.Max.Y-ContactEpsilon && b.Max.Y > o.Min.Y+ContactEpsilon
}

// Raycast returns the distance along dir at which a ray from origin enters b.
// A ray starting inside b hits at distance 0.
func (b AABB) Raycast(origin, dir dmath.Vec2, maxDist float64) (float64, bool) {
	if dir.IsZero() {
		return 0, false
	}
	dir = dir.Normalized()

	tMin, tMax := 0.0, maxDist
	axes := [2][4]float64{
		{origin.X, dir.X, b.Min.X, b.Max.X},
		{origin.Y, dir.Y, b.Min.Y, b.Max.Y},
	}
	for _, a := range axes {
		o, d, lo, hi := a[0], a[1], a[2], a[3]
		if math.Abs(d) < 1e-12 {
			if o < lo || o > hi {
				return 0, false
			}
			continue
		}
		t1, t2 := (lo-o)/d, (hi-o)/d
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tMin = math.Max(tMin, t1)
		tMax = math.Min(tMax, t2)
		if tMin > tMax {
			return 0, false
		}
	}
	return tMin, true
}

// Sweep casts box along dir and returns the travel distance at which it first
// touches b. Boxes that already overlap b, that only graze it, or that move away
// from a touching contact report no hit.
func (b AABB) Sweep(box AABB, dir dmath.Vec2, maxDist float64) (float64, bool) {
	if dir.IsZero() {
		return 0, false
	}
	dir = dir.Normalized()

	half := box.HalfSize()
	e := AABB{Min: b.Min.Sub(half), Max: b.Max.Add(half)}
	c := box.Center()

	tEnter, tExit := math.Inf(-1), math.Inf(1)
	axes := [2][4]float64{
		{c.X, dir.X, e.Min.X, e.Max.X},
		{c.Y, dir.Y, e.Min.Y, e.Max.Y},
	}
	for _, a := range axes {
		o, d, lo, hi := a[0], a[1], a[2], a[3]
		if math.Abs(d) < 1e-12 {
			if o <= lo+ContactEpsilon || o >= hi-ContactEpsilon {
				return 0, false
			}
			continue
		}
		t1, t2 := (lo-o)/d, (hi-o)/d
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tEnter = math.Max(tEnter, t1)
		tExit = math.Min(tExit, t2)
	}

	switch {
	case tExit-tEnter <= ContactEpsilon:
		return 0, false
	case tExit <= ContactEpsilon:
		return 0, false
	case tEnter < -ContactEpsilon:
		return 0, false
	case tEnter > maxDist:
		return 0, false
	}
	return math.Max(0, tEnter), true
}
