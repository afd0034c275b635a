package scenes

import (
	"errors"
	"testing"

	"github.com/automoto/motioncore/assets"
	"github.com/automoto/motioncore/components"
	cfg "github.com/automoto/motioncore/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func newTestScene(t *testing.T) *PlatformerScene {
	t.Helper()
	level := &assets.Level{
		Name:   "test",
		Width:  640,
		Height: 368,
		Surfaces: []assets.Surface{
			{Rect: assets.Rect{X: 0, Y: 0, Width: 640, Height: 16}},
		},
		PlayerSpawns: []assets.PlayerSpawn{{X: 64, Y: 16}, {X: 128, Y: 16}},
	}
	ps := NewPlatformerScene(level, "")
	ps.once.Do(ps.configure)
	require.NotNil(t, ps.ecs)
	return ps
}

func TestApplyTuningChangesReconfiguresPlayers(t *testing.T) {
	saved := cfg.Motion
	t.Cleanup(func() { cfg.Motion = saved })

	ps := newTestScene(t)
	m := cfg.DefaultMotion()
	m.Dash.MaxCharges = 4

	reloads := make(chan cfg.Reload, 2)
	reloads <- cfg.Reload{Err: errors.New("parse motion tuning: bad")}
	reloads <- cfg.Reload{Motion: m}
	ps.reloads = reloads

	ps.applyTuningChanges()

	assert.Equal(t, 4, cfg.Motion.Dash.MaxCharges)
	n := 0
	components.Player.Each(ps.ecs.World, func(entry *donburi.Entry) {
		assert.Equal(t, 4, components.Player.Get(entry).Controller.Config().Dash.MaxCharges)
		n++
	})
	assert.Equal(t, 2, n)
	assert.NotNil(t, ps.reloads, "an open channel stays attached")
}

func TestApplyTuningChangesStopsOnClosedWatcher(t *testing.T) {
	saved := cfg.Motion
	t.Cleanup(func() { cfg.Motion = saved })

	ps := newTestScene(t)
	reloads := make(chan cfg.Reload)
	close(reloads)
	ps.reloads = reloads

	ps.applyTuningChanges()
	assert.Nil(t, ps.reloads)
	ps.applyTuningChanges()
	assert.Equal(t, saved, cfg.Motion)
}

func TestCloseWithoutWatcher(t *testing.T) {
	ps := newTestScene(t)
	assert.NoError(t, ps.Close())
}
