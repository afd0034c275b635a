// Package render draws the collision world as flat rectangles. World space is
// y-up; every draw goes through toScreen.
package render

import (
	"fmt"
	"image/color"

	"github.com/automoto/motioncore/components"
	cfg "github.com/automoto/motioncore/config"
	"github.com/automoto/motioncore/physics"
	"github.com/automoto/motioncore/shared/gamemath"
	"github.com/automoto/motioncore/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

var (
	solidColor        = color.RGBA{100, 100, 100, 255}
	oneWayColor       = color.RGBA{0, 200, 200, 255}
	groundOneWayColor = color.RGBA{0, 160, 90, 255}
	facingColor       = color.RGBA{255, 255, 255, 255}
	backgroundColor   = color.RGBA{16, 16, 24, 255}
)

var stateColors = map[cfg.StateID]color.RGBA{
	cfg.Idle:        {0, 0, 255, 255},
	cfg.Running:     {60, 120, 255, 255},
	cfg.Jumping:     {255, 200, 0, 255},
	cfg.Falling:     {255, 140, 0, 255},
	cfg.WallGrab:    {200, 0, 200, 255},
	cfg.WallSlide:   {150, 60, 200, 255},
	cfg.Dashing:     {255, 255, 255, 255},
	cfg.DropThrough: {0, 255, 120, 255},
}

type view struct {
	camera        dmath.Vec2
	width, height float64
}

func newView(e *ecs.ECS, screen *ebiten.Image) (view, bool) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return view{}, false // No camera yet
	}
	b := screen.Bounds()
	return view{
		camera: components.Camera.Get(cameraEntry).Position,
		width:  float64(b.Dx()),
		height: float64(b.Dy()),
	}, true
}

// toScreen maps a y-up world box to a y-down screen rectangle.
func (v view) toScreen(box gamemath.AABB) (x, y, w, h float32) {
	left := box.Min.X - v.camera.X + v.width/2
	top := v.height/2 - (box.Max.Y - v.camera.Y)
	return float32(left), float32(top), float32(box.Width()), float32(box.Height())
}

func DrawLevel(e *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	v, ok := newView(e, screen)
	if !ok {
		return
	}
	worldEntry, ok := components.World.First(e.World)
	if !ok {
		return
	}

	components.World.Get(worldEntry).EachSurface(func(_ physics.SurfaceID, info physics.SurfaceInfo, bounds gamemath.AABB) {
		c := solidColor
		if info.Kind == physics.KindOneWay {
			c = oneWayColor
			if info.Ground {
				c = groundOneWayColor
			}
		}
		x, y, w, h := v.toScreen(bounds)
		vector.FillRect(screen, x, y, w, h, c, false)
	})
}

func DrawPlayers(e *ecs.ECS, screen *ebiten.Image) {
	v, ok := newView(e, screen)
	if !ok {
		return
	}

	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		body := components.Body.Get(entry)
		state := components.State.Get(entry)
		player := components.Player.Get(entry)

		c, ok := stateColors[state.CurrentState]
		if !ok {
			c = stateColors[cfg.Idle]
		}
		x, y, w, h := v.toScreen(body.Bounds())
		vector.FillRect(screen, x, y, w, h, c, false)

		// Facing marker on the leading edge
		mx := x + w - 2
		if player.Direction.X < 0 {
			mx = x
		}
		vector.FillRect(screen, mx, y+4, 2, 4, facingColor, false)
	})
}

// DrawDebug prints controller diagnostics for the first player when debug mode is on.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	if !cfg.C.Debug {
		ebitenutil.DebugPrint(screen, "arrows/WASD move  X/W jump  C/Shift dash  down+jump drop  F1 debug")
		return
	}
	entry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	ctrl := components.Player.Get(entry).Controller
	body := components.Body.Get(entry)
	state := components.State.Get(entry)

	pos, vel := body.Position(), body.Velocity()
	msg := fmt.Sprintf(
		"TPS %.0f\nstate %s (%d)\npos %.1f, %.1f\nvel %.1f, %.1f\ngrounded %t  charges %d  dashes %d\nwall %s %d  gravity %s\ndouble jump %t  drop %t",
		ebiten.ActualTPS(),
		state.CurrentState, state.StateTimer,
		pos.X, pos.Y,
		vel.X, vel.Y,
		ctrl.IsGrounded(), ctrl.DashCharges(), ctrl.DashCount(),
		ctrl.WallState(), ctrl.WallSide(), ctrl.GravityState(),
		ctrl.DoubleJumpAvailable(), ctrl.DropThroughActive(),
	)
	ebitenutil.DebugPrint(screen, msg)
}
