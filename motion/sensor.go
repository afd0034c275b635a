package motion

import (
	"github.com/automoto/motioncore/physics"
	"github.com/automoto/motioncore/shared/gamemath"
	dmath "github.com/yohamta/donburi/features/math"
)

// oneWayTopTolerance is how far below a one-way top the feet may be and still stand on it.
const oneWayTopTolerance = 0.01

var down = gamemath.Vec(0, -1)

type groundHit struct {
	hit     bool
	surface physics.SurfaceID
	oneWay  bool
}

type wallContact struct {
	left, right bool
	side        WallSide
	both        bool // both sides touched within the window
}

// sensor answers geometric questions about the body's surroundings.
type sensor struct {
	t     *tuning
	world World
	body  Body

	leftRecent, rightRecent Timer
}

func (s *sensor) isOneWay(id physics.SurfaceID) bool {
	return s.world.Surface(id).Kind == physics.KindOneWay
}

func (s *sensor) countsAsGround(info physics.SurfaceInfo) bool {
	switch info.Kind {
	case physics.KindSolid:
		return info.Ground
	case physics.KindOneWay:
		return info.Ground || s.t.Sensor.OneWayCountsAsGround
	}
	return false
}

// probeGround casts two short rays down from just inside the collider's bottom corners.
func (s *sensor) probeGround(ignore physics.SurfaceID) groundHit {
	b := s.body.Bounds()
	depth := s.t.Sensor.RayStartDepth
	inset := s.t.Sensor.GroundRayInset
	if inset > b.Width()/2 {
		inset = b.Width() / 2
	}
	length := s.t.Sensor.GroundRayLength + depth

	for _, x := range [2]float64{b.Min.X + inset, b.Max.X - inset} {
		origin := gamemath.Vec(x, b.Min.Y+depth)
		for _, h := range s.world.RaycastAll(origin, down, length, s.body.Collider()) {
			if h.Surface == ignore {
				continue
			}
			info := s.world.Surface(h.Surface)
			if !s.countsAsGround(info) {
				continue
			}
			if info.Kind == physics.KindOneWay && b.Min.Y < h.Bounds.Max.Y-oneWayTopTolerance {
				// Passing up through it
				continue
			}
			return groundHit{hit: true, surface: h.Surface, oneWay: info.Kind == physics.KindOneWay}
		}
	}
	return groundHit{}
}

// probeWalls casts an upper and lower ray to each side. Only solid ground surfaces count as walls.
func (s *sensor) probeWalls(dt, lastPressed float64) wallContact {
	c := s.body.Position()
	half := s.body.HalfSize()
	depth := s.t.Sensor.RayStartDepth
	offset := s.t.Wall.RayOffset
	if offset > half.Y-depth {
		offset = half.Y - depth
	}
	length := s.t.Wall.RayLength + depth

	touches := func(sign float64) bool {
		dir := gamemath.Vec(sign, 0)
		x := c.X + sign*(half.X-depth)
		for _, y := range [2]float64{c.Y + offset, c.Y - offset} {
			for _, h := range s.world.RaycastAll(gamemath.Vec(x, y), dir, length, s.body.Collider()) {
				info := s.world.Surface(h.Surface)
				if info.Kind == physics.KindSolid && info.Ground {
					return true
				}
			}
		}
		return false
	}

	wc := wallContact{left: touches(-1), right: touches(1)}

	window := s.t.Wall.BothWallsWindow
	if wc.left {
		s.leftRecent.Set(window)
	} else {
		s.leftRecent.Tick(dt)
	}
	if wc.right {
		s.rightRecent.Set(window)
	} else {
		s.rightRecent.Tick(dt)
	}
	wc.both = (wc.left || s.leftRecent.Active()) && (wc.right || s.rightRecent.Active())

	switch {
	case wc.left && wc.right:
		switch {
		case lastPressed > 0:
			wc.side = SideRight
		case lastPressed < 0:
			wc.side = SideLeft
		case s.t.Wall.PreferRight:
			wc.side = SideRight
		default:
			wc.side = SideLeft
		}
	case wc.left:
		wc.side = SideLeft
	case wc.right:
		wc.side = SideRight
	}
	return wc
}

// firstObstruction sweeps the collider along dir and returns the distance to the
// first surface that would stop it. One-ways stop only downward motion from above.
func (s *sensor) firstObstruction(dir dmath.Vec2, dist float64, ignore physics.SurfaceID) (float64, bool) {
	box := s.body.Bounds()
	for _, h := range s.world.SweepAll(box, dir, dist, s.body.Collider()) {
		if h.Surface == ignore {
			continue
		}
		switch s.world.Surface(h.Surface).Kind {
		case physics.KindSolid:
			return h.Distance, true
		case physics.KindOneWay:
			if dir.Y < 0 && h.Bounds.Max.Y <= box.Min.Y+oneWayTopTolerance {
				return h.Distance, true
			}
		}
	}
	return 0, false
}

// allowedDistance is how far a fixed dash may travel along dir before the wall safety margin.
func (s *sensor) allowedDistance(dir dmath.Vec2, maxDist float64, ignore physics.SurfaceID) float64 {
	safety := s.t.Dash.WallSafeDistance
	d, hit := s.firstObstruction(dir, maxDist+safety, ignore)
	if !hit {
		return maxDist
	}
	return gamemath.Clamp(d-safety, 0, maxDist)
}

// oneWaysAlong lists the one-way surfaces the collider would cross moving dist along dir.
func (s *sensor) oneWaysAlong(dir dmath.Vec2, dist float64) []physics.SurfaceID {
	var ids []physics.SurfaceID
	box := s.body.Bounds()
	for _, h := range s.world.SweepAll(box, dir, dist, s.body.Collider()) {
		if s.isOneWay(h.Surface) {
			ids = append(ids, h.Surface)
		}
	}
	return ids
}
