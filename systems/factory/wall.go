package factory

import (
	"github.com/automoto/motioncore/archetypes"
	"github.com/automoto/motioncore/components"
	"github.com/automoto/motioncore/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateWall adds a solid surface. x, y is the lower-left corner in y-up space.
func CreateWall(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	wall := archetypes.Wall.Spawn(ecs)

	obj := resolv.NewObject(x, y, w, h, tags.ResolvSolid)
	obj.Data = wall // Link for O(1) lookup

	id := mustWorld(ecs).AddObject(obj)
	components.Object.SetValue(wall, components.ObjectData{Object: obj, Surface: id})

	return wall
}
