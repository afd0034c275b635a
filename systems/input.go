package systems

import (
	"github.com/automoto/motioncore/components"
	cfg "github.com/automoto/motioncore/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// InputPoller fills out with the actions held by the given player this frame.
type InputPoller func(playerIndex int, out *[cfg.ActionCount]bool)

// NewInputSystem returns a system that swaps every player's input frames and
// polls the new one. Must run BEFORE UpdateMotion in the system order.
func NewInputSystem(poll InputPoller) func(*ecs.ECS) {
	return func(ecs *ecs.ECS) {
		components.PlayerInput.Each(ecs.World, func(entry *donburi.Entry) {
			input := components.PlayerInput.Get(entry)
			input.Shift()
			if poll != nil {
				poll(input.PlayerIndex, &input.CurrentInput)
			}
		})
	}
}
