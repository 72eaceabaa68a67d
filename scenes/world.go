package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/kenney-platformer/assets"
	cfg "github.com/automoto/kenney-platformer/config"
	"github.com/automoto/kenney-platformer/logger"
	"github.com/automoto/kenney-platformer/systems"
	"github.com/automoto/kenney-platformer/systems/factory"
	"github.com/automoto/kenney-platformer/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

type PlatformerScene struct {
	ecs      *ecs.ECS
	pauseUI  *ui.PauseUI
	saved    *systems.SavedSettings
	quitting bool
	once     sync.Once
}

// NewPlatformerScene creates the scene. saved may be nil.
func NewPlatformerScene(saved *systems.SavedSettings) *PlatformerScene {
	return &PlatformerScene{saved: saved}
}

func (ps *PlatformerScene) Update() error {
	ps.once.Do(ps.configure)
	ps.ecs.Update()

	if systems.GetOrCreateSettings(ps.ecs).Paused {
		ps.pauseUI.Update()
	}
	if ps.quitting {
		return ebiten.Termination
	}
	return nil
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)

	if systems.GetOrCreateSettings(ps.ecs).Paused {
		ps.pauseUI.Draw(screen)
	}
}

func (ps *PlatformerScene) configure() {
	systems.InitAudio()

	ecs := ecs.NewECS(donburi.NewWorld())

	// Systems that always run
	ecs.AddSystem(systems.UpdateClock)
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdatePause)
	ecs.AddSystem(systems.UpdateSettings)
	ecs.AddSystem(systems.UpdateTuningReload)

	// Game systems wrapped with pause checks
	for _, system := range systems.Gameplay {
		ecs.AddSystem(systems.WithGameplayChecks(system))
	}

	// Audio runs last so sounds queued this frame play this frame
	ecs.AddSystem(systems.UpdateAudio)

	// Add renderers
	ecs.AddRenderer(cfg.Default, systems.DrawBackground)
	ecs.AddRenderer(cfg.Default, systems.DrawPlatforms)
	ecs.AddRenderer(cfg.Default, systems.DrawSprites)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.Default, systems.DrawPause)

	ps.ecs = ecs

	settings := systems.GetOrCreateSettings(ecs)
	systems.ApplySavedSettings(settings, ps.saved)
	if settings.Fullscreen {
		ebiten.SetFullscreen(true)
	}

	// Create the level entity and load level data FIRST.
	levelEntry := factory.CreateLevel(ecs)
	level := factory.LevelOf(levelEntry)

	atlas := assets.MustLoadPlayerAtlas()
	factory.SpawnLevel(ecs, level, atlas)

	factory.CreateCamera(ecs, float64(level.Width)/2, float64(level.Height)/2)
	systems.SnapCamera(ecs)

	ps.pauseUI = ui.NewPauseUI(ecs, func() {
		ps.quitting = true
	})

	logger.L().Info("level loaded",
		zap.String("level", level.Name),
		zap.Int("platforms", len(level.Platforms)),
		zap.Int("walls", len(level.Walls)),
		zap.Float64("spawn_x", level.PlayerSpawn.X),
		zap.Float64("spawn_y", level.PlayerSpawn.Y),
	)
}
