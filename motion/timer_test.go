package motion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTimer(t *testing.T) {
	var tm Timer
	assert.False(t, tm.Active())
	assert.False(t, tm.Tick(1), "expired timers do not fire again")

	tm.Set(0.05)
	assert.True(t, tm.Active())
	assert.False(t, tm.Tick(0.02))
	assert.InDelta(t, 0.03, tm.Remaining(), 1e-12)
	assert.False(t, tm.Tick(0.02))
	assert.True(t, tm.Tick(0.02))
	assert.False(t, tm.Active())
	assert.Equal(t, 0.0, tm.Remaining())

	tm.Set(-1)
	assert.False(t, tm.Active())

	tm.Set(1)
	tm.Clear()
	assert.False(t, tm.Active())
}
