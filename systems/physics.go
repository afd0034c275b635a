package systems

import (
	"log"

	"github.com/automoto/motioncore/components"
	cfg "github.com/automoto/motioncore/config"
	"github.com/automoto/motioncore/physics"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics drains the frame time in fixed steps. Each step runs every
// controller's physics tick first and integrates the world second.
func UpdatePhysics(ecs *ecs.ECS) {
	clock, ok := getClock(ecs)
	if !ok || clock.FixedStep <= 0 {
		return
	}
	worldEntry, ok := components.World.First(ecs.World)
	if !ok {
		return
	}
	world := components.World.Get(worldEntry).World

	clock.Accumulator += clock.FrameDelta
	clock.Steps = 0
	for clock.Accumulator >= clock.FixedStep {
		if clock.MaxSteps > 0 && clock.Steps >= clock.MaxSteps {
			// Too far behind to catch up; drop the backlog
			clock.Accumulator = 0
			break
		}
		stepPlayers(ecs, clock.FixedStep)
		world.Step(clock.FixedStep)
		clock.Accumulator -= clock.FixedStep
		clock.Steps++
		clock.Ticks++
	}

	respawnFallen(ecs, world)
}

func stepPlayers(ecs *ecs.ECS, dt float64) {
	components.Player.Each(ecs.World, func(entry *donburi.Entry) {
		components.Player.Get(entry).Controller.FixedUpdate(dt)
	})
}

// respawnFallen moves bodies that dropped below the kill depth back to their spawn.
func respawnFallen(ecs *ecs.ECS, world *physics.World) {
	components.Player.Each(ecs.World, func(entry *donburi.Entry) {
		body := components.Body.Get(entry)
		if !world.OutOfBounds(body.Bounds()) {
			return
		}
		player := components.Player.Get(entry)
		player.Controller.Respawn(player.Spawn)
		player.Respawns++
		if cfg.C.Debug {
			log.Printf("player %d respawned at (%.0f, %.0f)",
				components.PlayerInput.Get(entry).PlayerIndex, player.Spawn.X, player.Spawn.Y)
		}
	})
}
