package config

import (
	"image/color"
	"time"

	"github.com/yohamta/donburi/ecs"
)

// Default is the only render layer the game uses.
const Default ecs.LayerID = 0

// PlayerConfig contains the player tuning values. Every field can be
// overridden from a tuning file, see LoadTuning.
type PlayerConfig struct {
	// Horizontal speed in pixels per second
	VelocityX float64 `yaml:"velocityX"`
	// Rise speed in pixels per second while a jump is in progress
	VelocityY float64 `yaml:"velocityY"`
	// Height in pixels at which a jump ends and the fall begins
	MaxJumpHeight float64 `yaml:"maxJumpHeight"`
	// Fall speed is VelocityY / FallDivider
	FallDivider float64 `yaml:"fallDivider"`
	// Time each walk frame stays on screen
	CycleDelay time.Duration `yaml:"cycleDelay"`
}

// FallSpeed returns the magnitude of the fall speed in pixels per second.
func (p PlayerConfig) FallSpeed() float64 {
	return p.VelocityY / p.FallDivider
}

// SpriteConfig describes the player sprite sheet layout and the frames used
// for each pose.
type SpriteConfig struct {
	SheetPath    string
	Columns      int
	Rows         int
	TileWidth    float64
	TileHeight   float64
	RenderWidth  float64
	RenderHeight float64

	IdxStand   int
	IdxJump    int
	IdxWalking []int
}

// ColliderSize returns the player collision box. The box is built from the
// tile size and scaled together with the sprite.
func (s SpriteConfig) ColliderSize() (w, h float64) {
	scaleX := s.RenderWidth / s.TileWidth
	scaleY := s.RenderHeight / s.TileHeight
	return s.TileWidth * scaleX, s.TileHeight * scaleY
}

// LevelConfig contains level geometry values that are not part of the map file.
type LevelConfig struct {
	Path           string
	FloorThickness float64
	CellSize       int
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	FollowSmoothing float64 // How fast camera follows player (0.0-1.0)
}

// PauseConfig contains pause menu configuration values
type PauseConfig struct {
	OverlayColor      color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	ButtonIdle        color.RGBA
	ButtonHover       color.RGBA
	ButtonPressed     color.RGBA
	FadeSeconds       float32
}

// DebugConfig contains debug options, overridden by command-line flags
type DebugConfig struct {
	Overlay bool
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Sprite SpriteConfig
var Level LevelConfig
var Camera CameraConfig
var Pause PauseConfig
var Debug DebugConfig

// Game colors
var (
	ColorBackground = rgb(0.29, 0.31, 0.41)
	ColorPlatform   = rgb(0.13, 0.13, 0.23)
)

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Blue         = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	Grey         = color.RGBA{R: 100, G: 100, B: 100, A: 255}
	Cyan         = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}
)

func rgb(r, g, b float64) color.RGBA {
	return color.RGBA{R: uint8(r * 255), G: uint8(g * 255), B: uint8(b * 255), A: 255}
}

// DefaultPlayer returns the built-in player tuning.
func DefaultPlayer() PlayerConfig {
	return PlayerConfig{
		VelocityX:     200.0,
		VelocityY:     400.0,
		MaxJumpHeight: 230.0,
		FallDivider:   1.25,
		CycleDelay:    70 * time.Millisecond,
	}
}

func init() {
	C = &Config{
		Width:  1024,
		Height: 720,
		Title:  "Kenney Platformer",
	}

	Player = DefaultPlayer()

	Sprite = SpriteConfig{
		SheetPath:    "images/kenney/Spritesheets/spritesheet_players.png",
		Columns:      7,
		Rows:         8,
		TileWidth:    128.0,
		TileHeight:   256.0,
		RenderWidth:  64.0,
		RenderHeight: 128.0,

		IdxStand:   6,
		IdxJump:    13,
		IdxWalking: []int{47, 40},
	}

	Level = LevelConfig{
		Path:           "levels/platformer.tmx",
		FloorThickness: 10.0,
		CellSize:       16,
	}

	Camera = CameraConfig{
		FollowSmoothing: 0.1,
	}

	Pause = PauseConfig{
		OverlayColor:      BlackOverlay,
		TextColorNormal:   White,
		TextColorSelected: BrightOrange,
		ButtonIdle:        DarkBlue,
		ButtonHover:       LightBlue,
		ButtonPressed:     BrightOrange,
		FadeSeconds:       0.25,
	}

	Debug = DebugConfig{
		Overlay: false,
	}
}
