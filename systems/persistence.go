package systems

import (
	"encoding/json"
	"fmt"

	"github.com/automoto/kenney-platformer/components"
	"github.com/automoto/kenney-platformer/logger"
	"github.com/quasilyte/gdata"
	"go.uber.org/zap"
)

// AppName is the gdata application name settings are stored under.
const AppName = "kenney-platformer"

const settingsKey = "settings"

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	Fullscreen bool `json:"fullscreen"`
	Debug      bool `json:"debug"`
	Muted      bool `json:"muted"`
}

// settingsStore is the part of *gdata.Manager used for settings.
type settingsStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

var store settingsStore

// InitPersistence opens the gdata store for settings.
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: AppName,
	})
	if err != nil {
		return fmt.Errorf("failed to open settings store: %w", err)
	}
	store = m
	return nil
}

// LoadSettings loads settings from disk. It returns nil without error when
// persistence is unavailable or nothing was saved yet.
func LoadSettings() (*SavedSettings, error) {
	if store == nil {
		return nil, nil
	}

	data, err := store.LoadItem(settingsKey)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	if len(data) == 0 {
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("failed to parse saved settings: %w", err)
	}

	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if store == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to serialize settings: %w", err)
	}

	if err := store.SaveItem(settingsKey, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	logger.L().Debug("settings saved", zap.Any("settings", s))
	return nil
}

// SaveCurrentSettings saves the persisted fields of the Settings component.
func SaveCurrentSettings(s *components.SettingsData) error {
	return SaveSettings(&SavedSettings{
		Fullscreen: s.Fullscreen,
		Debug:      s.Debug,
		Muted:      s.Muted,
	})
}

// ApplySavedSettings copies saved settings into the Settings component.
func ApplySavedSettings(s *components.SettingsData, saved *SavedSettings) {
	if saved == nil {
		return
	}
	s.Fullscreen = saved.Fullscreen
	s.Debug = s.Debug || saved.Debug
	s.Muted = saved.Muted
}
