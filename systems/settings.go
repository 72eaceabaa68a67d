package systems

import (
	"github.com/automoto/kenney-platformer/components"
	cfg "github.com/automoto/kenney-platformer/config"
	"github.com/automoto/kenney-platformer/logger"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// GetOrCreateSettings returns the singleton Settings component, creating if needed.
func GetOrCreateSettings(ecs *ecs.ECS) *components.SettingsData {
	if _, ok := components.Settings.First(ecs.World); !ok {
		ent := ecs.World.Entry(ecs.World.Create(components.Settings))
		components.Settings.SetValue(ent, components.SettingsData{
			Debug: cfg.Debug.Overlay,
		})
	}

	ent, _ := components.Settings.First(ecs.World)
	return components.Settings.Get(ent)
}

func ToggleDebug(ecs *ecs.ECS) {
	settings := GetOrCreateSettings(ecs)
	settings.Debug = !settings.Debug
	settings.Dirty = true
}

func ToggleFullscreen(ecs *ecs.ECS) {
	settings := GetOrCreateSettings(ecs)
	settings.Fullscreen = !settings.Fullscreen
	settings.Dirty = true
}

func ToggleMute(ecs *ecs.ECS) {
	settings := GetOrCreateSettings(ecs)
	settings.Muted = !settings.Muted
	settings.Dirty = true
}

// UpdateSettings pushes changed settings to the window and saves them.
// Runs even when paused.
func UpdateSettings(ecs *ecs.ECS) {
	settings := GetOrCreateSettings(ecs)
	if !settings.Dirty {
		return
	}
	settings.Dirty = false

	if ebiten.IsFullscreen() != settings.Fullscreen {
		ebiten.SetFullscreen(settings.Fullscreen)
	}
	if err := SaveCurrentSettings(settings); err != nil {
		logger.L().Warn("could not save settings", zap.Error(err))
	}
}
