package factory

import (
	"github.com/automoto/kenney-platformer/archetypes"
	"github.com/automoto/kenney-platformer/assets"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateWall spawns an invisible solid that keeps the player inside the level.
func CreateWall(ecs *ecs.ECS, rect assets.SolidRect) *donburi.Entry {
	wall := archetypes.Wall.Spawn(ecs)
	attachSolid(ecs, wall, rect)
	return wall
}
