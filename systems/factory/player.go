package factory

import (
	"github.com/automoto/motioncore/archetypes"
	"github.com/automoto/motioncore/components"
	cfg "github.com/automoto/motioncore/config"
	"github.com/automoto/motioncore/motion"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreatePlayer spawns a controlled body centered on spawn.
func CreatePlayer(ecs *ecs.ECS, spawn math.Vec2, index int) *donburi.Entry {
	world := mustWorld(ecs)
	player := archetypes.Player.Spawn(ecs)

	body := world.AddBody(spawn.X, spawn.Y, cfg.Player.CollisionWidth, cfg.Player.CollisionHeight, cfg.Player.Mass)
	obj := body.Object()
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj, Surface: body.Collider()})
	components.Body.SetValue(player, components.BodyData{Body: body})

	ctrl := motion.NewController(cfg.Motion, body, world)
	components.Player.SetValue(player, components.PlayerData{
		Controller: ctrl,
		Spawn:      spawn,
		Direction:  math.Vec2{X: cfg.DirectionRight, Y: 0},
	})
	ctrl.SetFacingHook(func(right bool) {
		p := components.Player.Get(player)
		if right {
			p.Direction.X = cfg.DirectionRight
		} else {
			p.Direction.X = cfg.DirectionLeft
		}
	})

	components.PlayerInput.SetValue(player, components.PlayerInputData{PlayerIndex: index})
	components.State.SetValue(player, components.StateData{
		CurrentState:  cfg.Idle,
		PreviousState: cfg.StateNone,
	})

	return player
}
