package factory

import (
	"github.com/automoto/kenney-platformer/archetypes"
	"github.com/automoto/kenney-platformer/assets"
	"github.com/automoto/kenney-platformer/components"
	cfg "github.com/automoto/kenney-platformer/config"
	"github.com/automoto/kenney-platformer/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlatform spawns a fixed solid rectangle drawn in the platform color.
func CreatePlatform(ecs *ecs.ECS, rect assets.SolidRect) *donburi.Entry {
	platform := archetypes.Platform.Spawn(ecs)
	attachSolid(ecs, platform, rect)
	components.Platform.SetValue(platform, components.PlatformData{Color: cfg.ColorPlatform})
	return platform
}

// CreateFloor spawns the floor. It behaves like a platform but is tagged
// separately so it can be told apart in the debug overlay.
func CreateFloor(ecs *ecs.ECS, rect assets.SolidRect) *donburi.Entry {
	floor := archetypes.Floor.Spawn(ecs)
	attachSolid(ecs, floor, rect)
	components.Platform.SetValue(floor, components.PlatformData{Color: cfg.ColorPlatform})
	return floor
}

func attachSolid(ecs *ecs.ECS, e *donburi.Entry, rect assets.SolidRect) *resolv.Object {
	obj := resolv.NewObject(rect.X, rect.Y, rect.Width, rect.Height, tags.ResolvSolid)
	obj.SetShape(resolv.NewRectangle(0, 0, rect.Width, rect.Height))
	obj.Data = e // Link for O(1) lookup

	components.Object.SetValue(e, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)
	return obj
}
