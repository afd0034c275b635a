package components

import (
	"github.com/automoto/motioncore/physics"
	"github.com/yohamta/donburi"
)

// WorldData is the singleton collision world every body and surface lives in.
type WorldData struct {
	*physics.World
}

var World = donburi.NewComponentType[WorldData]()

// BodyData is the kinematic body a motion controller drives.
type BodyData struct {
	*physics.Body
}

var Body = donburi.NewComponentType[BodyData]()

// ClockData accumulates frame time into fixed physics steps.
type ClockData struct {
	FrameDelta  float64 // seconds per Update call
	FixedStep   float64 // seconds per physics step
	MaxSteps    int     // steps allowed per frame before the backlog is dropped
	Accumulator float64
	Steps       int // physics steps run on the last frame
	Ticks       int // total physics steps
}

var Clock = donburi.NewComponentType[ClockData]()
