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

// UpdateLandingSound plays the landing sound on the frame a player goes
// from airborne to grounded.
func UpdateLandingSound(ecs *ecs.ECS) {
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.Landing) || !e.HasComponent(components.ControllerOutput) {
			return
		}
		landing := components.Landing.Get(e)
		grounded := components.ControllerOutput.Get(e).Grounded

		if grounded && !landing.WasGrounded {
			PlaySFX(ecs, cfg.SoundLand)
			obj := components.Object.Get(e)
			logger.L().Debug("player landed", zap.Float64("x", obj.X), zap.Float64("y", obj.Y))
		}
		landing.WasGrounded = grounded
	})
}
