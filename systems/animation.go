package systems

import (
	"github.com/automoto/kenney-platformer/assets/animations"
	"github.com/automoto/kenney-platformer/components"
	cfg "github.com/automoto/kenney-platformer/config"
	"github.com/automoto/kenney-platformer/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// animatedPlayers returns players that have both a sprite and controller
// output to read.
func animatedPlayers(ecs *ecs.ECS) []*donburi.Entry {
	var entries []*donburi.Entry
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		if e.HasComponent(components.Sprite) && e.HasComponent(components.ControllerOutput) {
			entries = append(entries, e)
		}
	})
	return entries
}

// UpdateMovementAnimation starts the walk cycle when a grounded player
// moves horizontally.
func UpdateMovementAnimation(ecs *ecs.ECS) {
	for _, e := range animatedPlayers(ecs) {
		if e.HasComponent(components.Animation) {
			continue
		}
		output := components.ControllerOutput.Get(e)
		if output.DesiredTranslation.X == 0 || !output.Grounded {
			continue
		}

		cycle := animations.NewCycle(cfg.Sprite.IdxWalking, cfg.Player.CycleDelay)
		donburi.Add(e, components.Animation, &components.AnimationData{Cycle: cycle})
		components.Sprite.Get(e).Index = cycle.Frame()
	}
}

// UpdateIdleSprite shows the standing frame for a grounded player that is
// not moving horizontally.
func UpdateIdleSprite(ecs *ecs.ECS) {
	for _, e := range animatedPlayers(ecs) {
		output := components.ControllerOutput.Get(e)
		if output.DesiredTranslation.X != 0 || !output.Grounded {
			continue
		}
		if e.HasComponent(components.Animation) {
			e.RemoveComponent(components.Animation)
		}
		components.Sprite.Get(e).Index = cfg.Sprite.IdxStand
	}
}

// UpdateJumpSprite shows the jump frame while the player is airborne.
func UpdateJumpSprite(ecs *ecs.ECS) {
	for _, e := range animatedPlayers(ecs) {
		if components.ControllerOutput.Get(e).Grounded {
			continue
		}
		if e.HasComponent(components.Animation) {
			e.RemoveComponent(components.Animation)
		}
		components.Sprite.Get(e).Index = cfg.Sprite.IdxJump
	}
}

// UpdateDirection records the facing from the sign of the desired
// horizontal translation. No horizontal input keeps the last facing.
func UpdateDirection(ecs *ecs.ECS) {
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.Direction) || !e.HasComponent(components.ControllerOutput) {
			return
		}
		dx := components.ControllerOutput.Get(e).DesiredTranslation.X
		switch {
		case dx > 0:
			components.Direction.SetValue(e, components.DirectionRight)
		case dx < 0:
			components.Direction.SetValue(e, components.DirectionLeft)
		}
	})
}

// UpdateSpriteDirection mirrors the sprite of entities facing left.
func UpdateSpriteDirection(ecs *ecs.ECS) {
	components.Direction.Each(ecs.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.Sprite) {
			return
		}
		sprite := components.Sprite.Get(e)
		sprite.FlipX = *components.Direction.Get(e) == components.DirectionLeft
	})
}

// UpdateAnimation advances every running cycle and shows its frame.
func UpdateAnimation(ecs *ecs.ECS) {
	dt := GetOrCreateClock(ecs).Delta
	components.Animation.Each(ecs.World, func(e *donburi.Entry) {
		anim := components.Animation.Get(e)
		if anim.Cycle == nil {
			return
		}
		// Tuning reloads may change the delay of a running cycle.
		anim.Cycle.Delay = cfg.Player.CycleDelay
		frame := anim.Cycle.Update(dt)
		if frame >= 0 && e.HasComponent(components.Sprite) {
			components.Sprite.Get(e).Index = frame
		}
	})
}
