package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/automoto/motioncore/assets"
	"github.com/automoto/motioncore/components"
	cfg "github.com/automoto/motioncore/config"
	"github.com/automoto/motioncore/input"
	"github.com/automoto/motioncore/systems"
	"github.com/automoto/motioncore/systems/factory"
	"github.com/automoto/motioncore/systems/render"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type PlatformerScene struct {
	ecs        *ecs.ECS
	level      *assets.Level
	tuningPath string
	watcher    *cfg.TuningWatcher
	reloads    <-chan cfg.Reload
	once       sync.Once
}

// NewPlatformerScene builds a scene for level. When tuningPath is set, edits
// to that file are applied to every controller while the scene runs.
func NewPlatformerScene(level *assets.Level, tuningPath string) *PlatformerScene {
	return &PlatformerScene{level: level, tuningPath: tuningPath}
}

func (ps *PlatformerScene) Update() {
	ps.once.Do(ps.configure)

	if input.DebugTogglePressed() {
		cfg.C.Debug = !cfg.C.Debug
	}
	ps.applyTuningChanges()

	ps.ecs.Update()
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

// Close stops the tuning watcher.
func (ps *PlatformerScene) Close() error {
	if ps.watcher == nil {
		return nil
	}
	return ps.watcher.Close()
}

func (ps *PlatformerScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	ecs.AddSystem(systems.NewInputSystem(input.Poll))
	ecs.AddSystem(systems.UpdateMotion)
	ecs.AddSystem(systems.UpdatePhysics)
	ecs.AddSystem(systems.UpdateStates)
	ecs.AddSystem(systems.UpdateCamera)

	ecs.AddRenderer(cfg.Default, render.DrawLevel)
	ecs.AddRenderer(cfg.Default, render.DrawPlayers)
	ecs.AddRenderer(cfg.Default, render.DrawDebug)

	ps.ecs = ecs
	factory.CreateLevel(ps.ecs, ps.level)

	if ps.tuningPath == "" {
		return
	}
	w, err := cfg.WatchTuning(ps.tuningPath)
	if err != nil {
		log.Printf("Warning: tuning hot reload disabled: %v", err)
		return
	}
	ps.watcher = w
	ps.reloads = w.Reloads()
}

// applyTuningChanges drains pending reloads without blocking. A reload that
// failed leaves the current tuning in place.
func (ps *PlatformerScene) applyTuningChanges() {
	for ps.reloads != nil {
		select {
		case r, ok := <-ps.reloads:
			if !ok {
				ps.reloads = nil
				return
			}
			if r.Err != nil {
				log.Printf("Warning: keeping previous tuning: %v", r.Err)
				continue
			}
			ps.applyTuning(r.Motion)
		default:
			return
		}
	}
}

func (ps *PlatformerScene) applyTuning(m cfg.MotionConfig) {
	cfg.Motion = m
	components.Player.Each(ps.ecs.World, func(entry *donburi.Entry) {
		components.Player.Get(entry).Controller.Reconfigure(m)
	})
	log.Printf("Reloaded motion tuning from %s", ps.tuningPath)
}
