package systems

import (
	"github.com/automoto/motioncore/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateMotion runs the input tick of every player controller with this
// frame's input snapshot.
func UpdateMotion(ecs *ecs.ECS) {
	clock, ok := getClock(ecs)
	if !ok {
		return
	}

	components.Player.Each(ecs.World, func(entry *donburi.Entry) {
		player := components.Player.Get(entry)
		input := components.PlayerInput.Get(entry)
		player.Controller.Update(clock.FrameDelta, input)
	})
}

func getClock(ecs *ecs.ECS) (*components.ClockData, bool) {
	entry, ok := components.Clock.First(ecs.World)
	if !ok {
		return nil, false
	}
	return components.Clock.Get(entry), true
}
