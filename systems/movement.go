package systems

import (
	"github.com/automoto/kenney-platformer/components"
	cfg "github.com/automoto/kenney-platformer/config"
	"github.com/automoto/kenney-platformer/logger"
	"github.com/automoto/kenney-platformer/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// controlledPlayers returns the player entries driven by a kinematic
// controller. Systems that add or remove components work on this snapshot
// instead of mutating inside Each.
func controlledPlayers(ecs *ecs.ECS) []*donburi.Entry {
	var entries []*donburi.Entry
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		if e.HasComponent(components.Controller) {
			entries = append(entries, e)
		}
	})
	return entries
}

// translation returns the pending controller translation, creating it if
// no system has requested movement yet this frame.
func translation(ctrl *components.KinematicControllerData) *components.Vector {
	if ctrl.Translation == nil {
		ctrl.Translation = &components.Vector{}
	}
	return ctrl.Translation
}

// UpdateMovement turns Left/Right into a horizontal translation. Holding
// both cancels out.
func UpdateMovement(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	step := deltaSeconds(ecs) * cfg.Player.VelocityX

	movement := 0.0
	if GetAction(input, cfg.ActionMoveRight).Pressed {
		movement += step
	}
	if GetAction(input, cfg.ActionMoveLeft).Pressed {
		movement -= step
	}

	for _, e := range controlledPlayers(ecs) {
		ctrl := components.Controller.Get(e)
		translation(ctrl).X = movement
	}
}

// UpdateJump starts a jump when the jump action is held while standing on
// something. A player already rising is left alone.
func UpdateJump(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	if !GetAction(input, cfg.ActionJump).Pressed {
		return
	}

	for _, e := range controlledPlayers(ecs) {
		if e.HasComponent(components.Jump) || !e.HasComponent(components.ControllerOutput) {
			continue
		}
		if !components.ControllerOutput.Get(e).Grounded {
			continue
		}

		donburi.Add(e, components.Jump, &components.JumpData{Height: 0})
		PlaySFX(ecs, cfg.SoundJump)
		logger.L().Debug("jump started", zap.Float64("max_height", cfg.Player.MaxJumpHeight))
	}
}

// UpdateFall moves every player that is not rising downward at the fall
// speed. It runs before UpdateRise so that the frame in which a jump ends
// still carries the last rise step.
func UpdateFall(ecs *ecs.ECS) {
	step := deltaSeconds(ecs) * cfg.Player.FallSpeed()

	for _, e := range controlledPlayers(ecs) {
		if e.HasComponent(components.Jump) {
			continue
		}
		ctrl := components.Controller.Get(e)
		translation(ctrl).Y = step
	}
}

// UpdateRise moves a jumping player upward. The step that would pass the
// maximum height is shortened to land exactly on it and ends the jump.
func UpdateRise(ecs *ecs.ECS) {
	step := deltaSeconds(ecs) * cfg.Player.VelocityY
	maxHeight := cfg.Player.MaxJumpHeight

	for _, e := range controlledPlayers(ecs) {
		if !e.HasComponent(components.Jump) {
			continue
		}
		jump := components.Jump.Get(e)

		movement := step
		reachedTop := false
		if movement+jump.Height >= maxHeight {
			movement = maxHeight - jump.Height
			reachedTop = true
		}
		jump.Height += movement

		ctrl := components.Controller.Get(e)
		translation(ctrl).Y = -movement

		if reachedTop {
			e.RemoveComponent(components.Jump)
		}
	}
}
