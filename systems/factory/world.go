package factory

import (
	"github.com/automoto/motioncore/archetypes"
	"github.com/automoto/motioncore/components"
	cfg "github.com/automoto/motioncore/config"
	"github.com/automoto/motioncore/physics"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateWorld spawns the collision world sized to the level.
func CreateWorld(ecs *ecs.ECS, width, height int) *donburi.Entry {
	world := archetypes.World.Spawn(ecs)
	components.World.SetValue(world, components.WorldData{
		World: physics.NewWorld(width, height, cfg.Physics),
	})
	return world
}

// CreateClock spawns the fixed-step clock. Each Update call advances it by one frame at cfg.C.TPS.
func CreateClock(ecs *ecs.ECS) *donburi.Entry {
	clock := archetypes.Clock.Spawn(ecs)
	frame := cfg.Physics.FixedStep
	if cfg.C.TPS > 0 {
		frame = 1 / float64(cfg.C.TPS)
	}
	components.Clock.SetValue(clock, components.ClockData{
		FrameDelta: frame,
		FixedStep:  cfg.Physics.FixedStep,
		MaxSteps:   cfg.Physics.MaxSteps,
	})
	return clock
}

func mustWorld(ecs *ecs.ECS) *physics.World {
	entry, ok := components.World.First(ecs.World)
	if !ok {
		panic("factory: no physics world, call CreateWorld first")
	}
	return components.World.Get(entry).World
}
