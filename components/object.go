package components

import (
	"github.com/automoto/motioncore/physics"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData links an entity to its resolv object and the surface id the
// physics world assigned to it.
type ObjectData struct {
	*resolv.Object
	Surface physics.SurfaceID
}

var Object = donburi.NewComponentType[ObjectData]()
