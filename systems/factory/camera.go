package factory

import (
	"github.com/automoto/kenney-platformer/archetypes"
	"github.com/automoto/kenney-platformer/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateCamera spawns the camera centered on (x, y).
func CreateCamera(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.SetValue(camera, components.CameraData{
		Position: math.Vec2{X: x, Y: y},
	})
	return camera
}
