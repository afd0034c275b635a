package motion

import (
	"testing"

	cfg "github.com/automoto/motioncore/config"
	"github.com/automoto/motioncore/physics"
	"github.com/automoto/motioncore/tags"
	"github.com/stretchr/testify/require"
)

const tick = 1.0 / 50.0

type rig struct {
	world *physics.World
	body  *physics.Body
	ctrl  *Controller
	in    Snapshot
}

func newRig(x, y float64, tune ...func(*cfg.MotionConfig)) *rig {
	m := cfg.DefaultMotion()
	for _, fn := range tune {
		fn(&m)
	}
	w := physics.NewWorld(640, 368, cfg.PhysicsConfig{Gravity: -960, CellSize: 16, KillDepth: 256})
	b := w.AddBody(x, y, 16, 24, 1)
	return &rig{world: w, body: b, ctrl: NewController(m, b, w)}
}

// floor adds a solid floor whose top is at y=16. A resting body's center is at y=28.
func (r *rig) floor() physics.SurfaceID {
	return r.world.AddSurface(0, 0, 640, 16, tags.ResolvSolid)
}

func (r *rig) input(held ...cfg.ActionID) {
	r.in.Advance(held...)
	r.ctrl.Update(tick, &r.in)
}

func (r *rig) physics() {
	r.ctrl.FixedUpdate(tick)
	r.world.Step(tick)
}

func (r *rig) step(held ...cfg.ActionID) {
	r.input(held...)
	r.physics()
}

func (r *rig) idle(n int) {
	for i := 0; i < n; i++ {
		r.step()
	}
}

// runDash ticks until the active dash ends. It stops right after the
// FixedUpdate that ended it, before the world steps.
func (r *rig) runDash(held ...cfg.ActionID) int {
	for i := 0; i < 200; i++ {
		r.ctrl.FixedUpdate(tick)
		if !r.ctrl.Dashing() {
			return i
		}
		r.world.Step(tick)
		r.input(held...)
	}
	return -1
}

// grabRightWall holds right until the body grabs the wall to its right.
func (r *rig) grabRightWall(t *testing.T) {
	t.Helper()
	for i := 0; i < 100; i++ {
		r.step(cfg.ActionMoveRight)
		if r.ctrl.WallState() == WallGrabbing {
			return
		}
	}
	require.FailNow(t, "never grabbed the wall")
}
