package systems

import (
	cfg "github.com/automoto/kenney-platformer/config"
	"github.com/automoto/kenney-platformer/logger"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

var tuningWatcher *cfg.TuningWatcher

// SetTuningWatcher makes UpdateTuningReload apply changes reported by w.
// A nil watcher disables reloading.
func SetTuningWatcher(w *cfg.TuningWatcher) {
	tuningWatcher = w
}

// UpdateTuningReload applies tuning file changes on the game goroutine.
func UpdateTuningReload(ecs *ecs.ECS) {
	if tuningWatcher == nil {
		return
	}

	select {
	case path := <-tuningWatcher.Events:
		_ = ReloadTuning(path)
	case err := <-tuningWatcher.Errors:
		logger.L().Warn("tuning watcher error", zap.Error(err))
	default:
	}
}

// ReloadTuning loads path and applies it. An invalid file keeps the
// current tuning.
func ReloadTuning(path string) error {
	tuning, err := cfg.LoadTuning(path)
	if err != nil {
		logger.L().Warn("tuning reload rejected", zap.String("path", path), zap.Error(err))
		return err
	}
	tuning.Apply()
	logger.L().Info("tuning reloaded",
		zap.String("path", path),
		zap.Float64("velocity_x", cfg.Player.VelocityX),
		zap.Float64("velocity_y", cfg.Player.VelocityY),
		zap.Float64("max_jump_height", cfg.Player.MaxJumpHeight),
		zap.Float64("fall_divider", cfg.Player.FallDivider),
		zap.Duration("cycle_delay", cfg.Player.CycleDelay),
	)
	return nil
}
