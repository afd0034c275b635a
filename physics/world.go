// Package physics is the collision-query provider for the motion controller. It
// keeps static geometry in a resolv space and integrates kinematic bodies on the
// fixed tick. Coordinates are pixels, y-up, with resolv objects storing their
// lower-left corner in X/Y.
package physics

import (
	"math"
	"sort"

	cfg "github.com/automoto/motioncore/config"
	"github.com/automoto/motioncore/shared/gamemath"
	"github.com/automoto/motioncore/tags"
	"github.com/solarlune/resolv"
	dmath "github.com/yohamta/donburi/features/math"
)

// SurfaceID identifies a collider in a World. NoSurface is never assigned.
type SurfaceID uint32

const NoSurface SurfaceID = 0

// SurfaceKind is the collision behaviour of a surface, resolved once when it is added.
type SurfaceKind uint8

const (
	KindNone SurfaceKind = iota
	KindSolid
	KindOneWay
	KindActor
)

func (k SurfaceKind) String() string {
	switch k {
	case KindSolid:
		return "solid"
	case KindOneWay:
		return "oneway"
	case KindActor:
		return "actor"
	}
	return "none"
}

type SurfaceInfo struct {
	Kind   SurfaceKind
	Ground bool // on the ground layer or tagged ground
}

// Hit is a single ray or sweep contact.
type Hit struct {
	Surface  SurfaceID
	Distance float64
	Bounds   gamemath.AABB
}

// oneWayTolerance absorbs float drift between a landed body and the platform top.
const oneWayTolerance = 1e-4

type surface struct {
	id      SurfaceID
	obj     *resolv.Object
	info    SurfaceInfo
	ignores map[SurfaceID]*surface // mirrors obj's resolv ignore list
}

func (s *surface) bounds() gamemath.AABB {
	return gamemath.NewAABB(s.obj.X, s.obj.Y, s.obj.W, s.obj.H)
}

// staticTags selects every surface that can block a body.
var staticTags = []string{tags.ResolvSolid, tags.ResolvPlatform, tags.ResolvOneWay, tags.ResolvGround}

// World owns the resolv space, every surface in it and the bodies it integrates.
type World struct {
	space     *resolv.Space
	query     *resolv.Object // unregistered box used for Check queries
	gravity   float64
	killDepth float64

	nextID   SurfaceID
	surfaces []*surface
	byID     map[SurfaceID]*surface
	byObject map[*resolv.Object]*surface
	bodies   []*Body
}

// NewWorld creates an empty world. Colliders must lie inside width x height,
// which is the area the resolv cell grid indexes.
func NewWorld(width, height int, phys cfg.PhysicsConfig) *World {
	cell := phys.CellSize
	if cell <= 0 {
		cell = 16
	}
	space := resolv.NewSpace(roundUp(width, cell), roundUp(height, cell), cell, cell)
	query := resolv.NewObject(0, 0, 0, 0)
	query.Space = space
	return &World{
		space:     space,
		query:     query,
		gravity:   phys.Gravity,
		killDepth: phys.KillDepth,
		byID:      make(map[SurfaceID]*surface),
		byObject:  make(map[*resolv.Object]*surface),
	}
}

func roundUp(n, cell int) int {
	if r := n % cell; r != 0 {
		return n + cell - r
	}
	return n
}

func (w *World) Space() *resolv.Space { return w.space }

func (w *World) Gravity() float64 { return w.gravity }

// Classify maps resolv tags onto a SurfaceInfo.
func Classify(obj *resolv.Object) SurfaceInfo {
	switch {
	case obj.HasTags(tags.ResolvPlayer):
		return SurfaceInfo{Kind: KindActor}
	case obj.HasTags(tags.ResolvPlatform), obj.HasTags(tags.ResolvOneWay):
		return SurfaceInfo{Kind: KindOneWay, Ground: obj.HasTags(tags.ResolvGround)}
	case obj.HasTags(tags.ResolvSolid), obj.HasTags(tags.ResolvGround):
		return SurfaceInfo{Kind: KindSolid, Ground: true}
	}
	return SurfaceInfo{Kind: KindNone}
}

// AddSurface creates and registers a static collider.
func (w *World) AddSurface(x, y, width, height float64, tags ...string) SurfaceID {
	return w.AddObject(resolv.NewObject(x, y, width, height, tags...))
}

// AddObject registers an existing resolv object. Its Data field is left to the caller.
func (w *World) AddObject(obj *resolv.Object) SurfaceID {
	if s, ok := w.byObject[obj]; ok {
		return s.id
	}
	w.nextID++
	s := &surface{id: w.nextID, obj: obj, info: Classify(obj), ignores: make(map[SurfaceID]*surface)}
	w.surfaces = append(w.surfaces, s)
	w.byID[s.id] = s
	w.byObject[obj] = s
	w.space.Add(obj)
	return s.id
}

func (w *World) RemoveSurface(id SurfaceID) {
	s, ok := w.byID[id]
	if !ok {
		return
	}
	w.space.Remove(s.obj)
	delete(w.byID, id)
	delete(w.byObject, s.obj)
	for i, other := range w.surfaces {
		if other == s {
			w.surfaces = append(w.surfaces[:i], w.surfaces[i+1:]...)
			break
		}
	}
	for _, other := range s.ignores {
		w.unignore(s, other)
	}
	for i, b := range w.bodies {
		if b.id == id {
			w.bodies = append(w.bodies[:i], w.bodies[i+1:]...)
			break
		}
	}
}

func (w *World) Surface(id SurfaceID) SurfaceInfo {
	if s, ok := w.byID[id]; ok {
		return s.info
	}
	return SurfaceInfo{}
}

func (w *World) SurfaceBounds(id SurfaceID) (gamemath.AABB, bool) {
	s, ok := w.byID[id]
	if !ok {
		return gamemath.AABB{}, false
	}
	return s.bounds(), true
}

func (w *World) Object(id SurfaceID) *resolv.Object {
	if s, ok := w.byID[id]; ok {
		return s.obj
	}
	return nil
}

// SurfaceOf returns the id of a registered resolv object.
func (w *World) SurfaceOf(obj *resolv.Object) (SurfaceID, bool) {
	s, ok := w.byObject[obj]
	if !ok {
		return NoSurface, false
	}
	return s.id, true
}

// EachSurface visits every static surface in insertion order.
func (w *World) EachSurface(fn func(id SurfaceID, info SurfaceInfo, bounds gamemath.AABB)) {
	for _, s := range w.surfaces {
		if s.info.Kind == KindActor {
			continue
		}
		fn(s.id, s.info, s.bounds())
	}
}

// IgnoreCollision stops a and b from blocking each other in Step.
func (w *World) IgnoreCollision(a, b SurfaceID) {
	sa, sb := w.byID[a], w.byID[b]
	if sa == nil || sb == nil || sa == sb {
		return
	}
	sa.obj.AddToIgnoreList(sb.obj)
	sb.obj.AddToIgnoreList(sa.obj)
	sa.ignores[b] = sb
	sb.ignores[a] = sa
}

func (w *World) RestoreCollision(a, b SurfaceID) {
	sa, sb := w.byID[a], w.byID[b]
	if sa == nil || sb == nil {
		return
	}
	w.unignore(sa, sb)
}

func (w *World) unignore(a, b *surface) {
	a.obj.RemoveFromIgnoreList(b.obj)
	b.obj.RemoveFromIgnoreList(a.obj)
	delete(a.ignores, b.id)
	delete(b.ignores, a.id)
}

func (w *World) IsIgnored(a, b SurfaceID) bool {
	s, ok := w.byID[a]
	if !ok {
		return false
	}
	_, ok = s.ignores[b]
	return ok
}

// OutOfBounds reports whether box has fallen below the kill depth.
func (w *World) OutOfBounds(box gamemath.AABB) bool {
	return w.killDepth > 0 && box.Max.Y < -w.killDepth
}

func queryable(s *surface, exclude SurfaceID) bool {
	if s.id == exclude {
		return false
	}
	return s.info.Kind == KindSolid || s.info.Kind == KindOneWay
}

// candidates returns the static surfaces sharing a cell with box, in insertion order.
func (w *World) candidates(box gamemath.AABB, exclude SurfaceID) []*surface {
	// One pixel of padding keeps surfaces that only touch box's edges.
	w.query.X, w.query.Y = box.Min.X-1, box.Min.Y-1
	w.query.W, w.query.H = box.Width()+2, box.Height()+2
	check := w.query.Check(0, 0, staticTags...)
	if check == nil {
		return nil
	}
	return w.collect(check.Objects, nil, exclude)
}

// collect maps resolv objects onto queryable surfaces, skipping any already in seen.
func (w *World) collect(objs []*resolv.Object, seen map[SurfaceID]bool, exclude SurfaceID) []*surface {
	var out []*surface
	for _, o := range objs {
		s, ok := w.byObject[o]
		if !ok || !queryable(s, exclude) || seen[s.id] {
			continue
		}
		if seen != nil {
			seen[s.id] = true
		}
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].id < out[j].id })
	return out
}

// RaycastAll returns every static surface hit by the ray, nearest first.
func (w *World) RaycastAll(origin, dir dmath.Vec2, length float64, exclude SurfaceID) []Hit {
	end := origin.Add(dir.Normalized().MulScalar(length))
	bounds := gamemath.AABB{
		Min: gamemath.Vec(math.Min(origin.X, end.X), math.Min(origin.Y, end.Y)),
		Max: gamemath.Vec(math.Max(origin.X, end.X), math.Max(origin.Y, end.Y)),
	}
	var hits []Hit
	for _, s := range w.candidates(bounds, exclude) {
		b := s.bounds()
		if d, ok := b.Raycast(origin, dir, length); ok {
			hits = append(hits, Hit{Surface: s.id, Distance: d, Bounds: b})
		}
	}
	sortHits(hits)
	return hits
}

// SweepAll casts box along dir and returns every static surface it would touch,
// nearest first. Classification filtering is left to the caller.
func (w *World) SweepAll(box gamemath.AABB, dir dmath.Vec2, distance float64, exclude SurfaceID) []Hit {
	moved := box.Translate(dir.Normalized().MulScalar(distance))
	bounds := gamemath.AABB{
		Min: gamemath.Vec(math.Min(box.Min.X, moved.Min.X), math.Min(box.Min.Y, moved.Min.Y)),
		Max: gamemath.Vec(math.Max(box.Max.X, moved.Max.X), math.Max(box.Max.Y, moved.Max.Y)),
	}
	var hits []Hit
	for _, s := range w.candidates(bounds, exclude) {
		b := s.bounds()
		if d, ok := b.Sweep(box, dir, distance); ok {
			hits = append(hits, Hit{Surface: s.id, Distance: d, Bounds: b})
		}
	}
	sortHits(hits)
	return hits
}

func sortHits(hits []Hit) {
	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Distance < hits[j].Distance
	})
}

// Step integrates gravity and velocity for every body. Each axis is swept
// separately, horizontal first.
func (w *World) Step(dt float64) {
	for _, b := range w.bodies {
		b.vel.Y += w.gravity * b.gravityScale * dt

		if dx := b.vel.X * dt; dx != 0 {
			dir := gamemath.Vec(gamemath.Sign(dx), 0)
			if travel, blocked := w.moveAxis(b, dir, math.Abs(dx)); blocked {
				b.translate(dir.MulScalar(travel))
				b.vel.X = 0
			} else {
				b.translate(gamemath.Vec(dx, 0))
			}
		}

		if dy := b.vel.Y * dt; dy != 0 {
			dir := gamemath.Vec(0, gamemath.Sign(dy))
			if travel, blocked := w.moveAxis(b, dir, math.Abs(dy)); blocked {
				b.translate(dir.MulScalar(travel))
				b.vel.Y = 0
			} else {
				b.translate(gamemath.Vec(0, dy))
			}
		}
	}
}

// moveAxis returns how far b can travel along dir before a blocking surface.
func (w *World) moveAxis(b *Body, dir dmath.Vec2, dist float64) (float64, bool) {
	box := b.Bounds()
	nearest, blocked := dist, false
	for _, s := range w.pathCandidates(b, dir, dist) {
		sb := s.bounds()
		if s.info.Kind == KindOneWay && (dir.Y >= 0 || sb.Max.Y > box.Min.Y+oneWayTolerance) {
			continue
		}
		if d, ok := sb.Sweep(box, dir, dist); ok && (d < nearest || !blocked) {
			nearest, blocked = d, true
		}
	}
	return nearest, blocked
}

// pathCandidates checks b's resolv object at offsets along dir no longer than a
// cell or the body's own extent apart, so a fast body cannot skip a cell.
// Objects on b's ignore list never show up.
func (w *World) pathCandidates(b *Body, dir dmath.Vec2, dist float64) []*surface {
	stride := float64(w.space.CellWidth)
	extent := b.half.X * 2
	if dir.X == 0 {
		stride = float64(w.space.CellHeight)
		extent = b.half.Y * 2
	}
	stride = math.Min(stride, extent)
	n := 1
	if stride > 0 {
		n = int(math.Ceil(dist / stride))
	}
	n = max(n, 1)

	seen := make(map[SurfaceID]bool)
	var out []*surface
	for k := 1; k <= n; k++ {
		off := dist * float64(k) / float64(n)
		check := b.obj.Check(dir.X*off, dir.Y*off, staticTags...)
		if check == nil {
			continue
		}
		out = append(out, w.collect(check.Objects, seen, b.id)...)
	}
	return out
}
