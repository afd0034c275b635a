package systems

import (
	"github.com/automoto/motioncore/components"
	cfg "github.com/automoto/motioncore/config"
	"github.com/automoto/motioncore/motion"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateStates derives each player's presentation state from its controller.
func UpdateStates(ecs *ecs.ECS) {
	components.Player.Each(ecs.World, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		body := components.Body.Get(e)
		state := components.State.Get(e)

		next := playerState(player.Controller, body.Velocity().Y)
		if next == state.CurrentState {
			state.StateTimer++
			return
		}
		state.PreviousState = state.CurrentState
		state.CurrentState = next
		state.StateTimer = 0
	})
}

func playerState(ctrl *motion.Controller, vy float64) cfg.StateID {
	switch {
	case ctrl.Dashing():
		return cfg.Dashing
	case ctrl.WallState() == motion.WallGrabbing:
		return cfg.WallGrab
	case ctrl.WallState() == motion.WallSliding:
		return cfg.WallSlide
	case ctrl.DropThroughActive():
		return cfg.DropThrough
	case !ctrl.IsGrounded() && vy > 0:
		return cfg.Jumping
	case !ctrl.IsGrounded():
		return cfg.Falling
	case ctrl.CurrentHorizontalSpeed() > 0:
		return cfg.Running
	}
	return cfg.Idle
}
