package factory

import (
	"github.com/automoto/motioncore/archetypes"
	"github.com/automoto/motioncore/assets"
	"github.com/automoto/motioncore/components"
	cfg "github.com/automoto/motioncore/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel builds everything a level needs: the collision world, the clock,
// every surface, one player per spawn point and a camera on the first player.
func CreateLevel(ecs *ecs.ECS, level *assets.Level) *donburi.Entry {
	entry := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(entry, components.LevelData{CurrentLevel: level})

	CreateWorld(ecs, level.Width, level.Height)
	CreateClock(ecs)

	for _, s := range level.Surfaces {
		if s.OneWay {
			CreatePlatform(ecs, s.X, s.Y, s.Width, s.Height, s.Ground)
		} else {
			CreateWall(ecs, s.X, s.Y, s.Width, s.Height)
		}
	}

	for i, spawn := range level.PlayerSpawns {
		CreatePlayer(ecs, spawn.Center(cfg.Player.CollisionHeight), i)
	}

	if len(level.PlayerSpawns) > 0 {
		CreateCamera(ecs, level.PlayerSpawns[0].Center(cfg.Player.CollisionHeight))
	}

	return entry
}

// CreateLevelAtIndex loads the embedded levels and builds the one at levelIndex,
// falling back to the first level when the index is out of range.
func CreateLevelAtIndex(ecs *ecs.ECS, levelIndex int) *donburi.Entry {
	levels := assets.MustLoadLevels()

	if levelIndex < 0 || levelIndex >= len(levels) {
		levelIndex = 0
	}

	return CreateLevel(ecs, &levels[levelIndex])
}
