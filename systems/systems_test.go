package systems

import (
	gomath "math"
	"testing"
	"time"

	"github.com/automoto/kenney-platformer/assets"
	cfg "github.com/automoto/kenney-platformer/config"
	"github.com/automoto/kenney-platformer/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

const tick = time.Second / 60

func newTestECS(t *testing.T) *ecs.ECS {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	GetOrCreateClock(e).Override = tick
	UpdateClock(e)
	return e
}

// testLevel is a window sized level with a floor and the given platforms.
func testLevel(spawnX, spawnY float64, platforms ...assets.SolidRect) *assets.Level {
	return &assets.Level{
		Name:        "test",
		Width:       cfg.C.Width,
		Height:      cfg.C.Height,
		Floor:       assets.SolidRect{Name: "floor", X: 0, Y: 710, Width: 1024, Height: 10},
		Platforms:   platforms,
		PlayerSpawn: math.Vec2{X: spawnX, Y: spawnY},
	}
}

func spawnTestLevel(t *testing.T, level *assets.Level) (*ecs.ECS, *donburi.Entry) {
	t.Helper()
	e := newTestECS(t)
	factory.CreateLevelFrom(e, level)
	player := factory.SpawnLevel(e, level, nil)
	return e, player
}

func runFrame(e *ecs.ECS) {
	for _, system := range Gameplay {
		system(e)
	}
}

func press(e *ecs.ECS, actions ...cfg.ActionID) {
	input := getOrCreateInput(e)
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
	for _, a := range actions {
		input.Current[a] = true
	}
}

func approx(a, b float64) bool {
	return gomath.Abs(a-b) < 1e-6
}
