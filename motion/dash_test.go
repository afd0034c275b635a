package motion

import (
	"math/rand"
	"testing"

	cfg "github.com/automoto/motioncore/config"
	"github.com/automoto/motioncore/shared/gamemath"
	"github.com/automoto/motioncore/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroundDashTravelsFullDistance(t *testing.T) {
	r := newRig(100, 28)
	r.floor()
	r.step()

	r.input(cfg.ActionMoveRight, cfg.ActionDash)
	require.True(t, r.ctrl.Dashing())
	assert.Equal(t, 1, r.ctrl.DashCharges())
	assert.Equal(t, 0.0, r.body.GravityScale())

	assert.Equal(t, 9, r.runDash())
	assert.InDelta(t, 196, r.body.Position().X, 1e-6)
	assert.InDelta(t, 28, r.body.Position().Y, 1e-9)
	assert.Equal(t, 1.0, r.body.GravityScale())
	assert.Equal(t, FallFromDash, r.ctrl.FallContext())
}

func TestGroundDashWithoutDirectionUsesFacing(t *testing.T) {
	r := newRig(300, 28)
	r.floor()
	r.step(cfg.ActionMoveLeft)
	r.idle(5)
	require.False(t, r.ctrl.FacingRight())

	x := r.body.Position().X
	r.input(cfg.ActionDash)
	r.runDash()
	assert.InDelta(t, x-96, r.body.Position().X, 1e-6)
}

func TestGroundDashWithoutDirectionRefusedWhenConfigured(t *testing.T) {
	r := newRig(100, 28, func(m *cfg.MotionConfig) { m.Dash.GroundUsesFacing = false })
	r.floor()
	r.step()

	r.input(cfg.ActionDash)
	assert.False(t, r.ctrl.Dashing())
	assert.Equal(t, 2, r.ctrl.DashCharges())
}

func TestGroundDashIgnoresVerticalInput(t *testing.T) {
	r := newRig(100, 28)
	r.floor()
	r.step()

	r.input(cfg.ActionMoveRight, cfg.ActionMoveUp, cfg.ActionDash)
	r.runDash()
	assert.InDelta(t, 196, r.body.Position().X, 1e-6)
	assert.InDelta(t, 28, r.body.Position().Y, 1e-9)
}

func TestDashStopsShortOfWall(t *testing.T) {
	r := newRig(100, 28)
	r.floor()
	r.world.AddSurface(150, 16, 16, 100, tags.ResolvSolid)
	r.step()

	r.input(cfg.ActionMoveRight, cfg.ActionDash)
	r.runDash()
	// 42px of room minus the 1px safety margin
	assert.InDelta(t, 141, r.body.Position().X, 1e-6)
}

func TestBlockedDashSpendsNoCharge(t *testing.T) {
	r := newRig(292, 28)
	r.floor()
	r.world.AddSurface(300, 16, 16, 100, tags.ResolvSolid)
	r.step()

	r.input(cfg.ActionMoveRight, cfg.ActionDash)
	assert.False(t, r.ctrl.Dashing())
	assert.Equal(t, 2, r.ctrl.DashCharges())
	assert.True(t, r.ctrl.dash.buffer.Active(), "refused press is buffered")
}

func TestDashChargesRecoverIndependently(t *testing.T) {
	r := newRig(100, 28)
	r.floor()

	for i := 0; i <= 90; i++ {
		switch i {
		case 0, 15:
			r.step(cfg.ActionMoveRight, cfg.ActionDash)
		default:
			r.step()
		}
		switch i {
		case 40:
			assert.Equal(t, 0, r.ctrl.DashCharges())
		case 70:
			assert.Equal(t, 1, r.ctrl.DashCharges())
			assert.True(t, r.ctrl.dash.charges[0].ready, "the first charge spent recovers first")
		case 90:
			assert.Equal(t, 2, r.ctrl.DashCharges())
		}
	}
}

func TestCooldownFinishedInAirWaitsForGround(t *testing.T) {
	r := newRig(100, 28)
	r.floor()
	r.step()
	r.input(cfg.ActionMoveRight, cfg.ActionDash)
	r.runDash()
	r.world.Step(tick)

	hover := gamemath.Vec(300, 300)
	for i := 0; i < 80; i++ {
		r.body.SetPosition(hover)
		r.body.SetVelocity(gamemath.Vec(0, 0))
		r.step()
		require.False(t, r.ctrl.IsGrounded())
	}
	assert.Equal(t, 1, r.ctrl.DashCharges())
	assert.True(t, r.ctrl.dash.charges[0].awaitingGround)

	r.body.SetPosition(gamemath.Vec(300, 28))
	r.body.SetVelocity(gamemath.Vec(0, 0))
	r.step()
	assert.Equal(t, 2, r.ctrl.DashCharges())
}

func TestWallContactRecoversCharges(t *testing.T) {
	r := newRig(292, 200)
	r.floor()
	r.world.AddSurface(300, 16, 16, 300, tags.ResolvSolid)
	r.ctrl.dash.charges[0] = dashCharge{awaitingGround: true}

	r.step(cfg.ActionMoveRight)
	assert.Equal(t, 2, r.ctrl.DashCharges())
}

func TestDoublePressWithOneChargeStartsOneDash(t *testing.T) {
	r := newRig(100, 28)
	r.floor()
	r.step(cfg.ActionMoveRight, cfg.ActionDash)
	r.idle(14)
	require.False(t, r.ctrl.Dashing())
	require.Equal(t, 1, r.ctrl.DashCharges())
	started := r.ctrl.DashCount()

	// Two presses land between the same pair of physics ticks
	press := &Snapshot{}
	press.Current[cfg.ActionMoveRight] = true
	press.Current[cfg.ActionDash] = true
	r.ctrl.Update(tick, press)
	r.ctrl.Update(tick, press)

	assert.Equal(t, started+1, r.ctrl.DashCount())
	assert.True(t, r.ctrl.dash.buffer.Active())

	r.in = *press
	r.physics()
	for i := 0; i < 30; i++ {
		r.step(cfg.ActionMoveRight)
	}
	assert.Equal(t, started+1, r.ctrl.DashCount(), "buffered press found no charge")
	assert.False(t, r.ctrl.dash.buffer.Active())
}

func TestBufferedDashRetriesWhenChargeReturns(t *testing.T) {
	r := newRig(100, 28, func(m *cfg.MotionConfig) {
		m.Dash.MaxCharges = 1
		m.Dash.Cooldown = 0.1
		m.Dash.Distance = 9.6
	})
	r.floor()
	r.step()

	r.step(cfg.ActionMoveRight, cfg.ActionDash)
	started := r.ctrl.DashCount()
	r.step(cfg.ActionMoveRight)
	r.step(cfg.ActionMoveRight, cfg.ActionDash)
	require.Equal(t, started, r.ctrl.DashCount())
	require.True(t, r.ctrl.dash.buffer.Active())

	for i := 0; i < 6 && r.ctrl.DashCount() == started; i++ {
		r.step(cfg.ActionMoveRight)
	}
	assert.Equal(t, started+1, r.ctrl.DashCount())
	assert.False(t, r.ctrl.dash.buffer.Active())
}

func TestAtMostOneDashActive(t *testing.T) {
	r := newRig(320, 28)
	r.floor()
	r.world.AddSurface(0, 16, 16, 352, tags.ResolvSolid)
	r.world.AddSurface(624, 16, 16, 352, tags.ResolvSolid)
	r.world.AddSurface(200, 100, 240, 8, tags.ResolvPlatform)
	r.world.AddSurface(100, 16, 16, 60, tags.ResolvSolid)

	rng := rand.New(rand.NewSource(1))
	actions := []cfg.ActionID{
		cfg.ActionMoveLeft, cfg.ActionMoveRight, cfg.ActionMoveUp,
		cfg.ActionMoveDown, cfg.ActionJump, cfg.ActionDash,
	}
	for i := 0; i < 1500; i++ {
		var held []cfg.ActionID
		for _, a := range actions {
			if rng.Intn(3) == 0 {
				held = append(held, a)
			}
		}
		wasDashing := r.ctrl.Dashing()
		before := r.ctrl.DashCount()

		r.step(held...)

		require.LessOrEqual(t, r.ctrl.DashCount()-before, 1)
		if wasDashing {
			require.Equal(t, before, r.ctrl.DashCount(), "dash started while another was active")
		}
		require.LessOrEqual(t, r.ctrl.DashCharges(), 2)
	}
}

func TestHoldDashLandsAboveFloor(t *testing.T) {
	r := newRig(100, 108)
	r.floor()

	r.input(cfg.ActionMoveDown, cfg.ActionDash)
	require.True(t, r.ctrl.Dashing())
	assert.Equal(t, GravityDownwardDashing, r.ctrl.GravityState())

	r.runDash(cfg.ActionMoveDown)
	assert.InDelta(t, 28.5, r.body.Position().Y, 1e-6)
	assert.Equal(t, FallFromDash, r.ctrl.FallContext())

	r.world.Step(tick)
	r.idle(3)
	assert.True(t, r.ctrl.IsGrounded())
}

func TestHoldDashEndsBelowKillDepth(t *testing.T) {
	r := newRig(100, 108)

	r.input(cfg.ActionMoveDown, cfg.ActionDash)
	require.True(t, r.ctrl.Dashing())

	require.GreaterOrEqual(t, r.runDash(cfg.ActionMoveDown), 0, "dash never ended")
	assert.True(t, r.world.OutOfBounds(r.body.Bounds()))
	assert.Equal(t, FallFromDash, r.ctrl.FallContext())
}

func TestHoldDashCancel(t *testing.T) {
	tests := []struct {
		name       string
		doubleJump bool
		wantVY     float64
	}{
		{"pops up without an air jump", false, 240},
		{"spends the air jump", true, 300},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRig(100, 108)
			r.floor()
			r.ctrl.jump.doubleJump = tt.doubleJump

			r.step(cfg.ActionMoveDown, cfg.ActionDash)
			r.step(cfg.ActionMoveDown)
			require.True(t, r.ctrl.Dashing())

			r.input(cfg.ActionMoveDown, cfg.ActionJump)
			r.ctrl.FixedUpdate(tick)
			assert.False(t, r.ctrl.Dashing())
			assert.Equal(t, tt.wantVY, r.body.Velocity().Y)
			assert.Equal(t, 0.0, r.body.Velocity().X)
			assert.False(t, r.ctrl.DoubleJumpAvailable())
			assert.Equal(t, 1.0, r.body.GravityScale())
		})
	}
}

func TestDownwardDashRefusedWhenDisallowed(t *testing.T) {
	r := newRig(100, 108, func(m *cfg.MotionConfig) { m.Dash.AllowDownward = false })
	r.floor()

	r.input(cfg.ActionMoveDown, cfg.ActionDash)
	assert.False(t, r.ctrl.Dashing())
	assert.Equal(t, 2, r.ctrl.DashCharges())
}

func TestFixedDownwardDashSlams(t *testing.T) {
	r := newRig(100, 200, func(m *cfg.MotionConfig) {
		m.Dash.DownwardHold = false
		m.Dash.SlamOnDownward = true
	})
	r.floor()

	r.input(cfg.ActionMoveDown, cfg.ActionDash)
	r.runDash(cfg.ActionMoveDown)
	assert.Equal(t, GravitySlamming, r.ctrl.GravityState())
	assert.Equal(t, -480.0, r.body.Velocity().Y)

	r.world.Step(tick)
	for i := 0; i < 50 && !r.ctrl.IsGrounded(); i++ {
		r.step()
	}
	require.True(t, r.ctrl.IsGrounded())
	r.step()
	assert.NotEqual(t, GravitySlamming, r.ctrl.GravityState())
}

func TestUpwardDashPassesThroughOneWay(t *testing.T) {
	r := newRig(100, 50)
	r.floor()
	plat := r.world.AddSurface(0, 80, 640, 8, tags.ResolvPlatform)

	r.input(cfg.ActionMoveUp, cfg.ActionDash)
	require.True(t, r.ctrl.Dashing())
	assert.True(t, r.world.IsIgnored(r.body.Collider(), plat))

	r.runDash()
	assert.InDelta(t, 146, r.body.Position().Y, 1e-6)
	assert.False(t, r.world.IsIgnored(r.body.Collider(), plat))

	r.world.Step(tick)
	r.idle(100)
	assert.InDelta(t, 100, r.body.Position().Y, 1e-6, "lands on the platform top")
}

func TestJumpDuringDashRunsOnArrival(t *testing.T) {
	r := newRig(100, 28)
	r.floor()
	r.step()

	r.step(cfg.ActionMoveRight, cfg.ActionDash)
	r.idle(4)
	r.step(cfg.ActionJump)
	for i := 0; i < 20 && r.ctrl.Dashing(); i++ {
		r.step()
	}
	require.False(t, r.ctrl.Dashing())
	assert.InDelta(t, 300-19.2, r.body.Velocity().Y, 1e-9)
	assert.False(t, r.ctrl.dash.jumpBuffer.Active())
}

func TestDashJumpOnOneWayWithDownDropsThrough(t *testing.T) {
	r := newRig(100, 120)
	r.world.AddSurface(0, 100, 640, 8, tags.ResolvPlatform)
	r.step()
	require.True(t, r.ctrl.IsGrounded())

	r.step(cfg.ActionMoveRight, cfg.ActionDash)
	for i := 0; i < 4; i++ {
		r.step(cfg.ActionMoveDown)
	}
	r.step(cfg.ActionMoveDown, cfg.ActionJump)
	for i := 0; i < 20 && r.ctrl.Dashing(); i++ {
		r.step(cfg.ActionMoveDown)
	}
	require.False(t, r.ctrl.DropThroughActive())
	assert.True(t, r.ctrl.dash.jumpBuffer.Active(), "buffer left for drop-through")

	r.step(cfg.ActionMoveDown)
	assert.True(t, r.ctrl.DropThroughActive())
	assert.False(t, r.ctrl.dash.jumpBuffer.Active())
}
