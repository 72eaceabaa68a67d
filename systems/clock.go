package systems

import (
	"time"

	"github.com/automoto/kenney-platformer/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// UpdateClock stores the length of the current tick. Ebitengine runs
// Update at a fixed rate, so the delta is one tick unless overridden.
func UpdateClock(ecs *ecs.ECS) {
	clock := GetOrCreateClock(ecs)
	if clock.Override > 0 {
		clock.Delta = clock.Override
		return
	}
	clock.Delta = time.Second / time.Duration(ebiten.TPS())
}

// GetOrCreateClock returns the singleton Clock component, creating if needed.
func GetOrCreateClock(ecs *ecs.ECS) *components.ClockData {
	entry, ok := components.Clock.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Clock))
	}
	return components.Clock.Get(entry)
}

// deltaSeconds returns the current frame delta in seconds.
func deltaSeconds(ecs *ecs.ECS) float64 {
	return GetOrCreateClock(ecs).Delta.Seconds()
}
