package main

import (
	"flag"
	"image"
	"os"

	"github.com/automoto/kenney-platformer/config"
	"github.com/automoto/kenney-platformer/fonts"
	"github.com/automoto/kenney-platformer/logger"
	"github.com/automoto/kenney-platformer/scenes"
	"github.com/automoto/kenney-platformer/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame(saved *systems.SavedSettings) *Game {
	return &Game{
		bounds: image.Rectangle{},
		scene:  scenes.NewPlatformerScene(saved),
	}
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	tuningPath := flag.String("tuning", "", "YAML file overriding the player tuning")
	watch := flag.Bool("watch", false, "reload the tuning file when it changes")
	debug := flag.Bool("debug", false, "start with the debug overlay and development logging")
	logLevel := flag.String("log-level", "", "log level: debug, info, warn or error")
	flag.Parse()

	logCfg := logger.DefaultConfig()
	if *debug {
		logCfg = logger.DevelopmentConfig()
		config.Debug.Overlay = true
	}
	if *logLevel != "" {
		logCfg.Level = *logLevel
	}
	if err := logger.Init(logCfg); err != nil {
		// Keep going with the no-op logger.
		os.Stderr.WriteString("failed to initialize logger: " + err.Error() + "\n")
	}
	defer logger.Sync()
	log := logger.L()

	if *tuningPath != "" {
		tuning, err := config.LoadTuning(*tuningPath)
		if err != nil {
			log.Fatal("invalid tuning file", zap.String("path", *tuningPath), zap.Error(err))
		}
		tuning.Apply()
		log.Info("tuning loaded", zap.String("path", *tuningPath))

		if *watch {
			w, err := config.WatchTuning(*tuningPath)
			if err != nil {
				log.Warn("tuning hot reload disabled", zap.Error(err))
			} else {
				defer w.Close()
				systems.SetTuningWatcher(w)
				log.Info("watching tuning file", zap.String("path", w.Path()))
			}
		}
	} else if *watch {
		log.Warn("-watch needs -tuning")
	}

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatal("failed to load fonts", zap.Error(err))
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)

	// Initialize persistence and load saved settings
	var saved *systems.SavedSettings
	if err := systems.InitPersistence(); err != nil {
		log.Warn("could not initialize persistence", zap.Error(err))
	} else if s, err := systems.LoadSettings(); err != nil {
		log.Warn("could not load settings", zap.Error(err))
	} else {
		saved = s
	}

	if err := ebiten.RunGame(NewGame(saved)); err != nil {
		log.Fatal("game stopped", zap.Error(err))
	}
}
