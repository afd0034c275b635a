package tags

import "github.com/yohamta/donburi"

var (
	Player   = donburi.NewTag().SetName("Player")
	Platform = donburi.NewTag().SetName("Platform")
	Wall     = donburi.NewTag().SetName("Wall")
)

// Resolv tags for physics collision
const (
	ResolvSolid    = "solid"    // ground collision layer, blocks from every side
	ResolvGround   = "ground"   // ground tag, also counts for one-way surfaces
	ResolvPlatform = "platform" // one-way layer, blocks only from above
	ResolvOneWay   = "oneway"   // one-way marker usable on any surface
	ResolvPlayer   = "Player"
)
