package systems

import (
	"testing"

	"github.com/automoto/kenney-platformer/components"
	cfg "github.com/automoto/kenney-platformer/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func setOutput(player *donburi.Entry, dx float64, grounded bool) {
	components.ControllerOutput.SetValue(player, components.ControllerOutputData{
		DesiredTranslation: components.Vector{X: dx},
		Grounded:           grounded,
	})
}

func runSpriteSystems(e *ecs.ECS) {
	UpdateMovementAnimation(e)
	UpdateIdleSprite(e)
	UpdateJumpSprite(e)
}

func TestSpriteSelection(t *testing.T) {
	cases := []struct {
		name          string
		dx            float64
		grounded      bool
		wantIndex     int
		wantAnimation bool
	}{
		{"idle", 0, true, cfg.Sprite.IdxStand, false},
		{"walking right", 3, true, cfg.Sprite.IdxWalking[0], true},
		{"walking left", -3, true, cfg.Sprite.IdxWalking[0], true},
		{"airborne", 0, false, cfg.Sprite.IdxJump, false},
		{"airborne moving", 3, false, cfg.Sprite.IdxJump, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e, player := spawnTestLevel(t, testLevel(100, 300))
			setOutput(player, c.dx, c.grounded)

			runSpriteSystems(e)

			if got := components.Sprite.Get(player).Index; got != c.wantIndex {
				t.Errorf("Expected sprite index %d, got %d", c.wantIndex, got)
			}
			if got := player.HasComponent(components.Animation); got != c.wantAnimation {
				t.Errorf("Expected animation %v, got %v", c.wantAnimation, got)
			}
		})
	}
}

func TestWalkCycleStopsWhenIdleOrAirborne(t *testing.T) {
	e, player := spawnTestLevel(t, testLevel(100, 300))

	setOutput(player, 3, true)
	runSpriteSystems(e)
	if !player.HasComponent(components.Animation) {
		t.Fatal("Expected walk cycle")
	}

	setOutput(player, 0, true)
	runSpriteSystems(e)
	if player.HasComponent(components.Animation) {
		t.Error("Expected idle to remove the walk cycle")
	}

	setOutput(player, 3, true)
	runSpriteSystems(e)
	setOutput(player, 3, false)
	runSpriteSystems(e)
	if player.HasComponent(components.Animation) {
		t.Error("Expected a jump to remove the walk cycle")
	}
	if got := components.Sprite.Get(player).Index; got != cfg.Sprite.IdxJump {
		t.Errorf("Expected jump frame, got %d", got)
	}
}

func TestWalkCycleAdvances(t *testing.T) {
	e, player := spawnTestLevel(t, testLevel(100, 300))
	setOutput(player, 3, true)
	runSpriteSystems(e)

	// 4 ticks are shorter than one 70ms delay.
	for i := 0; i < 4; i++ {
		UpdateAnimation(e)
	}
	if got := components.Sprite.Get(player).Index; got != cfg.Sprite.IdxWalking[0] {
		t.Fatalf("Expected first walk frame, got %d", got)
	}

	UpdateAnimation(e)
	if got := components.Sprite.Get(player).Index; got != cfg.Sprite.IdxWalking[1] {
		t.Errorf("Expected second walk frame, got %d", got)
	}
}

func TestDirectionAndFlip(t *testing.T) {
	cases := []struct {
		name     string
		start    components.DirectionData
		dx       float64
		want     components.DirectionData
		wantFlip bool
	}{
		{"right input", components.DirectionLeft, 3, components.DirectionRight, false},
		{"left input", components.DirectionRight, -3, components.DirectionLeft, true},
		{"no input keeps right", components.DirectionRight, 0, components.DirectionRight, false},
		{"no input keeps left", components.DirectionLeft, 0, components.DirectionLeft, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e, player := spawnTestLevel(t, testLevel(100, 300))
			components.Direction.SetValue(player, c.start)
			setOutput(player, c.dx, true)

			UpdateDirection(e)
			UpdateSpriteDirection(e)

			if got := *components.Direction.Get(player); got != c.want {
				t.Errorf("Expected direction %s, got %s", c.want, got)
			}
			if got := components.Sprite.Get(player).FlipX; got != c.wantFlip {
				t.Errorf("Expected flip %v, got %v", c.wantFlip, got)
			}
		})
	}
}
