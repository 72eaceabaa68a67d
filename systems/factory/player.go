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

// CreatePlayer spawns the player with its body centered on (x, y).
func CreatePlayer(ecs *ecs.ECS, atlas *assets.Atlas, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	w, h := cfg.Sprite.ColliderSize()
	obj := resolv.NewObject(x-w/2, y-h/2, w, h, tags.ResolvPlayer)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	components.Sprite.SetValue(player, components.SpriteSheetData{
		Atlas:        atlas,
		Index:        cfg.Sprite.IdxStand,
		RenderWidth:  cfg.Sprite.RenderWidth,
		RenderHeight: cfg.Sprite.RenderHeight,
	})
	components.Controller.SetValue(player, components.KinematicControllerData{})
	components.ControllerOutput.SetValue(player, components.ControllerOutputData{})
	components.Direction.SetValue(player, components.DirectionRight)

	return player
}
