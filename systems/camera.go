package systems

import (
	"math"

	"github.com/automoto/motioncore/components"
	"github.com/automoto/motioncore/config"
	"github.com/automoto/motioncore/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera eases the camera toward the first player, leading in the facing
// direction while running, and keeps the view inside the level.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	playerData := components.Player.Get(playerEntry)
	body := components.Body.Get(playerEntry)

	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	levelData := components.Level.Get(levelEntry)
	if levelData.CurrentLevel == nil {
		return
	}

	// Only update look-ahead when player is moving - freeze offset when idle
	if math.Abs(body.Velocity().X) > config.Camera.LookAheadSpeedThreshold {
		targetLookAhead := playerData.Direction.X * config.Camera.LookAheadDistanceX
		camera.LookAheadX += (targetLookAhead - camera.LookAheadX) * config.Camera.LookAheadSmoothing
	}

	pos := body.Position()
	targetX := pos.X + camera.LookAheadX
	targetY := pos.Y

	screenWidth := float64(config.C.Width)
	screenHeight := float64(config.C.Height)
	levelWidth := float64(levelData.CurrentLevel.Width)
	levelHeight := float64(levelData.CurrentLevel.Height)

	// Camera bounds: ensure the level always fills the screen
	targetX = math.Max(screenWidth/2, math.Min(levelWidth-screenWidth/2, targetX))
	targetY = math.Max(screenHeight/2, math.Min(levelHeight-screenHeight/2, targetY))

	camera.Position.X += (targetX - camera.Position.X) * config.Camera.FollowSmoothing
	camera.Position.Y += (targetY - camera.Position.Y) * config.Camera.FollowSmoothing
}
