package factory

import (
	"github.com/automoto/motioncore/archetypes"
	"github.com/automoto/motioncore/components"
	"github.com/automoto/motioncore/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlatform adds a one-way surface. Ground platforms also carry the
// ground tag so they count as ground regardless of sensor options.
func CreatePlatform(ecs *ecs.ECS, x, y, w, h float64, ground bool) *donburi.Entry {
	platform := archetypes.Platform.Spawn(ecs)

	obj := resolv.NewObject(x, y, w, h, tags.ResolvPlatform)
	if ground {
		obj.AddTags(tags.ResolvGround)
	}
	obj.Data = platform

	id := mustWorld(ecs).AddObject(obj)
	components.Object.SetValue(platform, components.ObjectData{Object: obj, Surface: id})

	return platform
}
