package motion

import (
	"log"
	"math"

	cfg "github.com/automoto/motioncore/config"
	"github.com/tanema/gween/ease"
)

var fallEases = map[string]ease.TweenFunc{
	"linear":    ease.Linear,
	"inQuad":    ease.InQuad,
	"outQuad":   ease.OutQuad,
	"inOutQuad": ease.InOutQuad,
	"inCubic":   ease.InCubic,
	"outCubic":  ease.OutCubic,
	"inSine":    ease.InSine,
	"outSine":   ease.OutSine,
}

// tuning is a sanitized MotionConfig plus the quantities derived from it.
type tuning struct {
	cfg.MotionConfig

	riseScale     float64 // sqrt of the rise multiplier
	jumpImpulse   float64
	jumpExtra     float64 // chargeable impulse on top of jumpImpulse
	jumpExtraRate float64 // per second of hold
	fallEase      ease.TweenFunc
}

func newTuning(m cfg.MotionConfig) tuning {
	m = m.Sanitize()
	t := tuning{MotionConfig: m}

	t.riseScale = math.Sqrt(math.Max(0.01, m.Gravity.RiseMultiplier))
	t.jumpImpulse = m.Jump.MinForce * t.riseScale
	t.jumpExtra = math.Max(0, m.Jump.MaxForce-m.Jump.MinForce) * t.riseScale
	t.jumpExtraRate = t.jumpExtra / m.Jump.MaxChargeTime

	fn, ok := fallEases[m.Gravity.FallEase]
	if !ok {
		if m.Gravity.FallEase != "" {
			log.Printf("Warning: unknown fall ease %q, using linear", m.Gravity.FallEase)
		}
		fn = ease.Linear
	}
	t.fallEase = fn
	return t
}

// fallMultiplier eases from 1 to the configured fall multiplier as progress goes 0 to 1.
func (t *tuning) fallMultiplier(progress float64) float64 {
	c := float32(t.Gravity.FallMultiplier - 1)
	return float64(t.fallEase(float32(progress), 1, c, 1))
}

func (t *tuning) fallRamp(ctx FallContext) float64 {
	switch ctx {
	case FallFromJump:
		return t.Gravity.FallRampJump
	case FallFromDash:
		return t.Gravity.FallRampDash
	}
	return t.Gravity.FallRampDefault
}
