package systems

import (
	"math"

	"github.com/automoto/kenney-platformer/components"
	"github.com/automoto/kenney-platformer/config"
	"github.com/automoto/kenney-platformer/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera follows the player with smoothing, keeping the level
// filling the screen.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	targetX, targetY, ok := cameraTarget(e)
	if !ok {
		return
	}

	camera.Position.X += (targetX - camera.Position.X) * config.Camera.FollowSmoothing
	camera.Position.Y += (targetY - camera.Position.Y) * config.Camera.FollowSmoothing
}

// SnapCamera moves the camera straight to its target.
func SnapCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	if x, y, ok := cameraTarget(e); ok {
		camera := components.Camera.Get(cameraEntry)
		camera.Position.X = x
		camera.Position.Y = y
	}
}

// cameraTarget returns the player center constrained to the level bounds.
func cameraTarget(e *ecs.ECS) (x, y float64, ok bool) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return 0, 0, false
	}
	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return 0, 0, false
	}
	levelData := components.Level.Get(levelEntry)
	if levelData.CurrentLevel == nil {
		return 0, 0, false
	}

	obj := components.Object.Get(playerEntry)
	x = obj.X + obj.W/2
	y = obj.Y + obj.H/2

	screenWidth := float64(config.C.Width)
	screenHeight := float64(config.C.Height)
	levelWidth := float64(levelData.CurrentLevel.Width)
	levelHeight := float64(levelData.CurrentLevel.Height)

	return clampAxis(x, screenWidth, levelWidth), clampAxis(y, screenHeight, levelHeight), true
}

// clampAxis keeps a camera coordinate inside [screen/2, level-screen/2].
// A level no larger than the screen keeps the camera on its middle.
func clampAxis(v, screen, level float64) float64 {
	if level <= screen {
		return level / 2
	}
	return math.Max(screen/2, math.Min(level-screen/2, v))
}

// cameraOffset returns the translation from world to screen coordinates.
func cameraOffset(e *ecs.ECS, width, height int) (float64, float64) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return 0, 0
	}
	camera := components.Camera.Get(cameraEntry)
	return float64(width)/2 - camera.Position.X, float64(height)/2 - camera.Position.Y
}
