package physics

import (
	"testing"

	cfg "github.com/automoto/motioncore/config"
	"github.com/automoto/motioncore/shared/gamemath"
	"github.com/automoto/motioncore/tags"
	"github.com/solarlune/resolv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const dt = 1.0 / 50.0

func newTestWorld() *World {
	return NewWorld(640, 368, cfg.PhysicsConfig{Gravity: -960, CellSize: 16, KillDepth: 64})
}

func step(w *World, n int) {
	for i := 0; i < n; i++ {
		w.Step(dt)
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		tags []string
		want SurfaceInfo
	}{
		{"solid", []string{tags.ResolvSolid}, SurfaceInfo{Kind: KindSolid, Ground: true}},
		{"ground tag", []string{tags.ResolvGround}, SurfaceInfo{Kind: KindSolid, Ground: true}},
		{"platform layer", []string{tags.ResolvPlatform}, SurfaceInfo{Kind: KindOneWay}},
		{"one-way marker on solid", []string{tags.ResolvSolid, tags.ResolvOneWay}, SurfaceInfo{Kind: KindOneWay}},
		{"tagged ground platform", []string{tags.ResolvPlatform, tags.ResolvGround}, SurfaceInfo{Kind: KindOneWay, Ground: true}},
		{"player", []string{tags.ResolvPlayer}, SurfaceInfo{Kind: KindActor}},
		{"untagged", nil, SurfaceInfo{Kind: KindNone}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(resolv.NewObject(0, 0, 16, 16, tt.tags...)))
		})
	}
}

func TestBodyLandsOnSolid(t *testing.T) {
	w := newTestWorld()
	w.AddSurface(0, 0, 640, 16, tags.ResolvSolid)
	b := w.AddBody(100, 100, 16, 24, 1)

	step(w, 100)

	assert.InDelta(t, 28, b.Position().Y, 1e-6)
	assert.Equal(t, 0.0, b.Velocity().Y)
}

func TestWallBlocksHorizontalMotion(t *testing.T) {
	w := newTestWorld()
	w.AddSurface(0, 0, 640, 16, tags.ResolvSolid)
	w.AddSurface(200, 16, 16, 200, tags.ResolvSolid)
	b := w.AddBody(150, 28, 16, 24, 1)
	b.SetVelocity(gamemath.Vec(600, 0))

	step(w, 20)

	assert.InDelta(t, 192, b.Position().X, 1e-6)
	assert.Equal(t, 0.0, b.Velocity().X)
	assert.InDelta(t, 28, b.Position().Y, 1e-6, "floor contact does not block sliding")
}

func TestOneWayPlatformPassesFromBelowAndLandsFromAbove(t *testing.T) {
	w := newTestWorld()
	w.AddSurface(0, 100, 640, 8, tags.ResolvPlatform)
	b := w.AddBody(100, 60, 16, 24, 1)
	b.SetVelocity(gamemath.Vec(0, 400))

	peak := b.Position().Y
	for i := 0; i < 200; i++ {
		w.Step(dt)
		if b.Position().Y > peak {
			peak = b.Position().Y
		}
	}

	assert.Greater(t, peak-12, 108.0, "body rose through the platform")
	assert.InDelta(t, 120, b.Position().Y, 1e-6, "body rests on the platform top")
}

func TestIgnoredPairFallsThrough(t *testing.T) {
	w := newTestWorld()
	plat := w.AddSurface(0, 100, 640, 8, tags.ResolvPlatform)
	b := w.AddBody(100, 120, 16, 24, 1)
	step(w, 5)
	require.InDelta(t, 120, b.Position().Y, 1e-6)

	w.IgnoreCollision(b.Collider(), plat)
	assert.True(t, w.IsIgnored(plat, b.Collider()), "pairs are unordered")
	step(w, 20)
	assert.Less(t, b.Position().Y, 100.0)

	w.RestoreCollision(plat, b.Collider())
	assert.False(t, w.IsIgnored(b.Collider(), plat))
}

func TestRaycastAllSortedAndExcludes(t *testing.T) {
	w := newTestWorld()
	floor := w.AddSurface(0, 0, 640, 16, tags.ResolvSolid)
	plat := w.AddSurface(0, 30, 640, 8, tags.ResolvPlatform)
	b := w.AddBody(100, 60, 16, 24, 1)

	hits := w.RaycastAll(gamemath.Vec(100, 50), gamemath.Vec(0, -1), 100, b.Collider())
	require.Len(t, hits, 2)
	assert.Equal(t, plat, hits[0].Surface)
	assert.InDelta(t, 12, hits[0].Distance, 1e-9)
	assert.Equal(t, floor, hits[1].Surface)
	assert.InDelta(t, 34, hits[1].Distance, 1e-9)

	hits = w.RaycastAll(gamemath.Vec(100, 50), gamemath.Vec(0, -1), 100, plat)
	require.Len(t, hits, 1)
	assert.Equal(t, floor, hits[0].Surface)
}

func TestRaycastSkipsActors(t *testing.T) {
	w := newTestWorld()
	w.AddBody(100, 60, 16, 24, 1)
	assert.Empty(t, w.RaycastAll(gamemath.Vec(100, 100), gamemath.Vec(0, -1), 100, NoSurface))
}

func TestSweepAll(t *testing.T) {
	w := newTestWorld()
	wall := w.AddSurface(200, 0, 16, 200, tags.ResolvSolid)
	box := gamemath.NewAABB(100, 20, 16, 24)

	hits := w.SweepAll(box, gamemath.Vec(1, 0), 200, NoSurface)
	require.Len(t, hits, 1)
	assert.Equal(t, wall, hits[0].Surface)
	assert.InDelta(t, 84, hits[0].Distance, 1e-9)

	assert.Empty(t, w.SweepAll(box, gamemath.Vec(1, 0), 50, NoSurface))
}

func TestAddImpulseScalesByMass(t *testing.T) {
	w := newTestWorld()
	b := w.AddBody(100, 100, 16, 24, 2)
	b.AddImpulse(gamemath.Vec(0, 300))
	assert.Equal(t, 150.0, b.Velocity().Y)
}

func TestRemoveSurface(t *testing.T) {
	w := newTestWorld()
	floor := w.AddSurface(0, 0, 640, 16, tags.ResolvSolid)
	b := w.AddBody(100, 28, 16, 24, 1)
	w.IgnoreCollision(b.Collider(), floor)

	w.RemoveSurface(floor)
	assert.Equal(t, KindNone, w.Surface(floor).Kind)
	assert.False(t, w.IsIgnored(b.Collider(), floor))
	_, ok := w.SurfaceBounds(floor)
	assert.False(t, ok)
}

func TestAddObjectIsIdempotent(t *testing.T) {
	w := newTestWorld()
	obj := resolv.NewObject(0, 0, 32, 16, tags.ResolvSolid)
	id := w.AddObject(obj)
	assert.Equal(t, id, w.AddObject(obj))

	got, ok := w.SurfaceOf(obj)
	require.True(t, ok)
	assert.Equal(t, id, got)
	assert.Same(t, obj, w.Object(id))
}

func TestOutOfBounds(t *testing.T) {
	w := newTestWorld()
	assert.False(t, w.OutOfBounds(gamemath.NewAABB(0, -10, 16, 24)))
	assert.True(t, w.OutOfBounds(gamemath.NewAABB(0, -100, 16, 24)))
}

func TestStepCollidesThroughResolvSpace(t *testing.T) {
	w := newTestWorld()
	floor := w.AddSurface(0, 0, 640, 16, tags.ResolvSolid)
	b := w.AddBody(100, 60, 16, 24, 1)

	w.Space().Remove(w.Object(floor))
	step(w, 10)
	assert.Less(t, b.Position().Y, 28.0, "a floor missing from the space does not block")
	assert.Empty(t, w.RaycastAll(gamemath.Vec(100, 50), gamemath.Vec(0, -1), 100, NoSurface))

	w.Space().Add(w.Object(floor))
	b.SetPosition(gamemath.Vec(100, 60))
	b.SetVelocity(gamemath.Vec(0, 0))
	step(w, 100)
	assert.InDelta(t, 28, b.Position().Y, 1e-6)
}

func TestIgnoreCollisionUsesResolvIgnoreList(t *testing.T) {
	w := newTestWorld()
	plat := w.AddSurface(0, 100, 640, 8, tags.ResolvPlatform)
	b := w.AddBody(100, 120, 16, 24, 1)

	require.NotNil(t, b.Object().Check(0, -1, tags.ResolvPlatform))
	w.IgnoreCollision(b.Collider(), plat)
	assert.Nil(t, b.Object().Check(0, -1, tags.ResolvPlatform))
	assert.Nil(t, w.Object(plat).Check(0, 1, tags.ResolvPlayer))

	w.RestoreCollision(b.Collider(), plat)
	assert.NotNil(t, b.Object().Check(0, -1, tags.ResolvPlatform))
}

func TestFastBodyDoesNotSkipThinSolid(t *testing.T) {
	w := newTestWorld()
	w.AddSurface(0, 100, 640, 4, tags.ResolvSolid)
	b := w.AddBody(100, 200, 16, 24, 1)
	b.SetVelocity(gamemath.Vec(0, -3000))

	step(w, 5)
	assert.InDelta(t, 116, b.Position().Y, 1e-6)
}

func TestCollidersOutsideTheGridAreNotIndexed(t *testing.T) {
	w := newTestWorld()
	w.AddSurface(-32, 0, 16, 200, tags.ResolvSolid)
	assert.Empty(t, w.SweepAll(gamemath.NewAABB(8, 20, 16, 24), gamemath.Vec(-1, 0), 100, NoSurface))
}
