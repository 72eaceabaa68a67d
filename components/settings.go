package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// SettingsData holds the pause state and the persisted player settings.
type SettingsData struct {
	Paused     bool
	Debug      bool
	Fullscreen bool
	Muted      bool

	// Overlay fades the pause backdrop in; nil when no fade runs.
	Overlay      *gween.Tween
	OverlayAlpha float32

	// Dirty is set when a persisted field changed and has not been saved yet.
	Dirty bool
}

var Settings = donburi.NewComponentType[SettingsData]()
