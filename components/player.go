package components

import (
	"github.com/automoto/motioncore/motion"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type PlayerData struct {
	Controller *motion.Controller
	Spawn      math.Vec2 // body center used on respawn
	Direction  math.Vec2 // facing, updated by the controller's facing hook
	Respawns   int
}

var Player = donburi.NewComponentType[PlayerData]()
