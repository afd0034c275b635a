package motion

// Timer counts down to zero. The zero value is expired.
type Timer struct {
	remaining float64
}

func (t *Timer) Set(d float64) {
	if d < 0 {
		d = 0
	}
	t.remaining = d
}

func (t *Timer) Clear() { t.remaining = 0 }

// Tick advances the timer and reports whether it expired during this tick.
func (t *Timer) Tick(dt float64) bool {
	if t.remaining <= 0 {
		return false
	}
	t.remaining -= dt
	if t.remaining <= 0 {
		t.remaining = 0
		return true
	}
	return false
}

func (t *Timer) Active() bool { return t.remaining > 0 }

func (t *Timer) Remaining() float64 { return t.remaining }
