package systems

import (
	"sync"

	"github.com/automoto/kenney-platformer/assets"
	"github.com/automoto/kenney-platformer/components"
	cfg "github.com/automoto/kenney-platformer/config"
	"github.com/automoto/kenney-platformer/logger"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// Global audio state - created once and shared across all scenes
var (
	globalAudioContext *audio.Context
	globalAudioLoader  *assets.AudioLoader
	audioInitOnce      sync.Once
)

// InitAudio creates the audio context and decodes every sound effect.
// Until it is called UpdateAudio drops queued sounds.
func InitAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalAudioLoader = assets.NewAudioLoader(globalAudioContext)

		for id, path := range cfg.Sound.SFXPaths {
			if err := globalAudioLoader.PreloadSFX(path); err != nil {
				logger.L().Warn("failed to preload sound", zap.Int("sound", int(id)), zap.Error(err))
			}
		}
	})
}

// PlaySFX queues a sound effect for the next UpdateAudio.
func PlaySFX(ecs *ecs.ECS, soundID cfg.SoundID) {
	audioData := GetOrCreateAudio(ecs)
	audioData.PendingSFX = append(audioData.PendingSFX, soundID)
}

// UpdateAudio plays the sounds queued this frame.
func UpdateAudio(ecs *ecs.ECS) {
	audioData := GetOrCreateAudio(ecs)
	pending := audioData.PendingSFX
	audioData.PendingSFX = audioData.PendingSFX[:0]

	if globalAudioLoader == nil || GetOrCreateSettings(ecs).Muted {
		return
	}
	for _, soundID := range pending {
		playSFX(soundID, audioData.SFXVolume)
	}
}

func playSFX(soundID cfg.SoundID, volume float64) {
	if volume <= 0 {
		return
	}

	path, ok := cfg.Sound.SFXPaths[soundID]
	if !ok {
		return
	}

	player, err := globalAudioLoader.LoadSFX(path)
	if err != nil {
		logger.L().Warn("failed to play sound", zap.String("path", path), zap.Error(err))
		return
	}

	if mult, ok := cfg.Sound.VolumeMultipliers[soundID]; ok {
		volume *= mult
	}

	player.SetVolume(volume)
	player.Play()
}

// GetOrCreateAudio returns the singleton Audio component, creating if needed.
func GetOrCreateAudio(ecs *ecs.ECS) *components.AudioData {
	if _, ok := components.Audio.First(ecs.World); !ok {
		ent := ecs.World.Entry(ecs.World.Create(components.Audio))
		components.Audio.SetValue(ent, components.AudioData{
			Context:   globalAudioContext,
			SFXVolume: cfg.Audio.DefaultSFXVol,
		})
	}

	ent, _ := components.Audio.First(ecs.World)
	return components.Audio.Get(ent)
}
