package components

import (
	"github.com/automoto/motioncore/config"
	"github.com/yohamta/donburi"
)

type StateData struct {
	CurrentState  config.StateID
	PreviousState config.StateID
	StateTimer    int // Update ticks spent in CurrentState
}

var State = donburi.NewComponentType[StateData]()
