package gamemath

import (
	dmath "github.com/yohamta/donburi/features/math"
)

func Vec(x, y float64) dmath.Vec2 {
	return dmath.Vec2{X: x, Y: y}
}

// MoveTowardsVec steps current toward target by at most maxDelta.
func MoveTowardsVec(current, target dmath.Vec2, maxDelta float64) dmath.Vec2 {
	d := target.Sub(current)
	dist := d.Magnitude()
	if dist <= maxDelta || dist == 0 {
		return target
	}
	return current.Add(d.MulScalar(maxDelta / dist))
}
