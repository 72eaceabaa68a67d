package archetypes

import (
	"github.com/automoto/kenney-platformer/components"
	cfg "github.com/automoto/kenney-platformer/config"
	"github.com/automoto/kenney-platformer/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Platform = newArchetype(
		tags.Platform,
		components.Object,
		components.Platform,
	)
	Floor = newArchetype(
		tags.Floor,
		components.Object,
		components.Platform,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Object,
	)
	Player = newArchetype(
		tags.Player,
		components.Object,
		components.Sprite,
		components.Controller,
		components.ControllerOutput,
		components.Direction,
		components.Landing,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Clock = newArchetype(
		components.Clock,
	)
	Input = newArchetype(
		components.Input,
	)
	Settings = newArchetype(
		components.Settings,
	)
	Audio = newArchetype(
		components.Audio,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
