package components

import (
	cfg "github.com/automoto/motioncore/config"
	"github.com/yohamta/donburi"
)

// PlayerInputData stores the current and previous Update tick's held state for
// every action. Edges are derived by comparing the two.
type PlayerInputData struct {
	PlayerIndex   int
	CurrentInput  [cfg.ActionCount]bool
	PreviousInput [cfg.ActionCount]bool
}

var PlayerInput = donburi.NewComponentType[PlayerInputData]()

// Shift moves the current frame into the previous one and clears the current frame.
func (p *PlayerInputData) Shift() {
	p.PreviousInput = p.CurrentInput
	p.CurrentInput = [cfg.ActionCount]bool{}
}

func (p *PlayerInputData) Held(a cfg.ActionID) bool {
	return p.CurrentInput[a]
}

func (p *PlayerInputData) Pressed(a cfg.ActionID) bool {
	return p.CurrentInput[a] && !p.PreviousInput[a]
}

func (p *PlayerInputData) Released(a cfg.ActionID) bool {
	return !p.CurrentInput[a] && p.PreviousInput[a]
}
