package factory

import (
	"testing"

	"github.com/automoto/kenney-platformer/assets"
	"github.com/automoto/kenney-platformer/components"
	cfg "github.com/automoto/kenney-platformer/config"
	"github.com/automoto/kenney-platformer/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

func count(world donburi.World, tag donburi.IComponentType) int {
	n := 0
	donburi.NewQuery(filter.Contains(tag)).Each(world, func(*donburi.Entry) { n++ })
	return n
}

func TestSpawnLevel(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	levelEntry := CreateLevel(e)
	level := LevelOf(levelEntry)

	player := SpawnLevel(e, level, nil)

	cases := []struct {
		name string
		tag  donburi.IComponentType
		want int
	}{
		{"floor", tags.Floor, 1},
		{"platforms", tags.Platform, len(level.Platforms)},
		{"walls", tags.Wall, len(level.Walls)},
		{"player", tags.Player, 1},
	}
	for _, c := range cases {
		if got := count(e.World, c.tag); got != c.want {
			t.Errorf("Expected %d %s, got %d", c.want, c.name, got)
		}
	}

	spaceEntry, ok := components.Space.First(e.World)
	if !ok {
		t.Fatal("Expected a collision space")
	}
	wantObjects := 1 + len(level.Platforms) + len(level.Walls) + 1
	if got := len(components.Space.Get(spaceEntry).Objects()); got != wantObjects {
		t.Errorf("Expected %d objects in space, got %d", wantObjects, got)
	}

	obj := components.Object.Get(player)
	if cx, cy := obj.X+obj.W/2, obj.Y+obj.H/2; cx != level.PlayerSpawn.X || cy != level.PlayerSpawn.Y {
		t.Errorf("Expected player centered on %v, got %v, %v", level.PlayerSpawn, cx, cy)
	}
	if linked, ok := obj.Data.(*donburi.Entry); !ok || linked.Entity() != player.Entity() {
		t.Error("Expected collision object to point back at the player entry")
	}
	if got := components.Sprite.Get(player).Index; got != cfg.Sprite.IdxStand {
		t.Errorf("Expected standing frame %d, got %d", cfg.Sprite.IdxStand, got)
	}
	if got := *components.Direction.Get(player); got != components.DirectionRight {
		t.Errorf("Expected player facing right, got %s", got)
	}
}

func TestCreatePlatformWithoutSpace(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	rect := assets.SolidRect{Name: "ledge", X: 10, Y: 20, Width: 30, Height: 40}

	platform := CreatePlatform(e, rect)

	obj := components.Object.Get(platform)
	if obj.X != 10 || obj.Y != 20 || obj.W != 30 || obj.H != 40 {
		t.Errorf("Expected rect %+v, got %v,%v %vx%v", rect, obj.X, obj.Y, obj.W, obj.H)
	}
	if !obj.HasTags(tags.ResolvSolid) {
		t.Error("Expected platform to be solid")
	}
	if got := components.Platform.Get(platform).Color; got != cfg.ColorPlatform {
		t.Errorf("Expected platform color %v, got %v", cfg.ColorPlatform, got)
	}
}

func TestCreateCamera(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	camera := CreateCamera(e, 12, 34)
	pos := components.Camera.Get(camera).Position
	if pos.X != 12 || pos.Y != 34 {
		t.Errorf("Expected camera at 12,34, got %v", pos)
	}
}
