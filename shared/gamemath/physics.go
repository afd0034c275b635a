package gamemath

import "math"

// ApplyFriction reduces speed toward zero by friction amount.
func ApplyFriction(speedX, friction float64) float64 {
	if speedX > friction {
		return speedX - friction
	}
	if speedX < -friction {
		return speedX + friction
	}
	return 0
}

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}

// MoveTowards steps current toward target by at most maxDelta without overshooting.
func MoveTowards(current, target, maxDelta float64) float64 {
	if math.Abs(target-current) <= maxDelta {
		return target
	}
	if target > current {
		return current + maxDelta
	}
	return current - maxDelta
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func Clamp01(v float64) float64 {
	return Clamp(v, 0, 1)
}

// Lerp interpolates between a and b with t clamped to [0, 1].
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*Clamp01(t)
}

// Sign returns -1, 0 or 1.
func Sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// CalculateDashDirection returns the unnormalized 8-way direction from held input.
// facingX is used when the held keys cancel out. y is up-positive.
func CalculateDashDirection(facingX float64, left, right, up, down bool, lastPressedX float64) (dirX, dirY float64) {
	switch {
	case left && right:
		dirX = lastPressedX
	case left:
		dirX = -1
	case right:
		dirX = 1
	}
	switch {
	case up && !down:
		dirY = 1
	case down && !up:
		dirY = -1
	}
	if dirX == 0 && dirY == 0 {
		dirX = facingX
	}
	return dirX, dirY
}
