package systems

import (
	cfg "github.com/automoto/kenney-platformer/config"
	"github.com/automoto/kenney-platformer/logger"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// UpdatePause handles the pause, debug and fullscreen hotkeys and runs the
// overlay fade. It runs AFTER UpdateInput but BEFORE the gameplay systems.
func UpdatePause(ecs *ecs.ECS) {
	settings := GetOrCreateSettings(ecs)
	input := getOrCreateInput(ecs)

	if GetAction(input, cfg.ActionPause).JustPressed {
		SetPaused(ecs, !settings.Paused)
	}
	if GetAction(input, cfg.ActionDebug).JustPressed {
		ToggleDebug(ecs)
	}
	if GetAction(input, cfg.ActionFullscreen).JustPressed {
		ToggleFullscreen(ecs)
	}

	if settings.Overlay != nil {
		alpha, finished := settings.Overlay.Update(float32(deltaSeconds(ecs)))
		settings.OverlayAlpha = alpha
		if finished {
			settings.Overlay = nil
		}
	}
}

// SetPaused pauses or resumes gameplay. Pausing fades the overlay in.
func SetPaused(ecs *ecs.ECS, paused bool) {
	settings := GetOrCreateSettings(ecs)
	if settings.Paused == paused {
		return
	}
	settings.Paused = paused

	if paused {
		settings.OverlayAlpha = 0
		settings.Overlay = gween.New(0, 1, cfg.Pause.FadeSeconds, ease.OutQuad)
	} else {
		settings.Overlay = nil
		settings.OverlayAlpha = 0
	}
	logger.L().Info("pause toggled", zap.Bool("paused", paused))
}

// DrawPause renders the pause backdrop. The menu itself is drawn by the
// scene on top of it.
func DrawPause(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.Paused {
		return
	}

	width := float32(screen.Bounds().Dx())
	height := float32(screen.Bounds().Dy())

	overlay := cfg.Pause.OverlayColor
	overlay.A = uint8(float32(overlay.A) * settings.OverlayAlpha)

	vector.FillRect(screen, 0, 0, width, height, overlay, false)
}

// WithPauseCheck wraps a system to skip execution when paused.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if settings := GetOrCreateSettings(e); settings.Paused {
			return
		}
		system(e)
	}
}

// WithGameplayChecks wraps a system to skip execution when paused.
// This is an alias for WithPauseCheck for semantic clarity.
func WithGameplayChecks(system ecs.System) ecs.System {
	return WithPauseCheck(system)
}
