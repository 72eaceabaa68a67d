package factory

import (
	"github.com/automoto/kenney-platformer/archetypes"
	"github.com/automoto/kenney-platformer/assets"
	"github.com/automoto/kenney-platformer/components"
	cfg "github.com/automoto/kenney-platformer/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel loads the embedded level and stores it in the Level singleton.
func CreateLevel(ecs *ecs.ECS) *donburi.Entry {
	loader := assets.NewLevelLoader()
	return CreateLevelFrom(ecs, loader.MustLoadLevel(cfg.Level.Path))
}

func CreateLevelFrom(ecs *ecs.ECS, level *assets.Level) *donburi.Entry {
	entry := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(entry, components.LevelData{CurrentLevel: level})
	return entry
}

// SpawnLevel builds the collision space and every solid of level, then
// the player at the level spawn. It returns the player entry.
func SpawnLevel(ecs *ecs.ECS, level *assets.Level, atlas *assets.Atlas) *donburi.Entry {
	CreateSpace(ecs, level.Width, level.Height, cfg.Level.CellSize, cfg.Level.CellSize)

	CreateFloor(ecs, level.Floor)
	for _, p := range level.Platforms {
		CreatePlatform(ecs, p)
	}
	for _, w := range level.Walls {
		CreateWall(ecs, w)
	}

	return CreatePlayer(ecs, atlas, level.PlayerSpawn.X, level.PlayerSpawn.Y)
}

// LevelOf returns the level stored in a Level entry.
func LevelOf(entry *donburi.Entry) *assets.Level {
	return components.Level.Get(entry).CurrentLevel
}
