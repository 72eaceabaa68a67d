package assets

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/automoto/kenney-platformer/config"
	"github.com/lafriks/go-tiled"
	"github.com/yohamta/donburi/features/math"
)

var (
	//go:embed all:levels
	levelFS embed.FS
)

// SolidRect is an axis aligned solid area in world pixels, with the
// origin at the top left of the level.
type SolidRect struct {
	Name                string
	X, Y, Width, Height float64
}

// Center returns the center point of the rectangle.
func (r SolidRect) Center() math.Vec2 {
	return math.Vec2{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

type Level struct {
	Name        string
	Title       string
	Width       int
	Height      int
	Floor       SolidRect
	Platforms   []SolidRect
	Walls       []SolidRect
	PlayerSpawn math.Vec2 // center of the player body
}

type LevelLoader struct {
	fsys fs.FS
}

// NewLevelLoader returns a loader reading from the embedded levels.
func NewLevelLoader() *LevelLoader {
	return &LevelLoader{fsys: levelFS}
}

// NewLevelLoaderFS returns a loader reading levels from fsys.
func NewLevelLoaderFS(fsys fs.FS) *LevelLoader {
	return &LevelLoader{fsys: fsys}
}

func (l *LevelLoader) MustLoadLevel(levelPath string) *Level {
	level, err := l.LoadLevel(levelPath)
	if err != nil {
		panic(err)
	}
	return level
}

// LoadLevel parses a Tiled map. Object groups:
//
//	Floor        one rectangle; a floor of config.Level.FloorThickness
//	             spanning the map bottom is used when missing
//	Platforms    solid rectangles
//	Walls        invisible solid rectangles
//	PlayerSpawn  a point at the player center
func (l *LevelLoader) LoadLevel(levelPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(levelPath, tiled.WithFileSystem(l.fsys))
	if err != nil {
		return nil, fmt.Errorf("failed to load level %s: %w", levelPath, err)
	}

	level := &Level{
		Name:      levelPath,
		Title:     levelMap.Properties.GetString("title"),
		Width:     levelMap.Width * levelMap.TileWidth,
		Height:    levelMap.Height * levelMap.TileHeight,
		Platforms: []SolidRect{},
		Walls:     []SolidRect{},
	}

	hasFloor, hasSpawn := false, false
	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case "Floor":
			for _, o := range og.Objects {
				level.Floor = rectFromObject(o)
				hasFloor = true
			}
		case "Platforms":
			for _, o := range og.Objects {
				level.Platforms = append(level.Platforms, rectFromObject(o))
			}
		case "Walls":
			for _, o := range og.Objects {
				level.Walls = append(level.Walls, rectFromObject(o))
			}
		case "PlayerSpawn":
			for _, o := range og.Objects {
				level.PlayerSpawn = math.Vec2{X: o.X, Y: o.Y}
				hasSpawn = true
			}
		}
	}

	if !hasFloor {
		thickness := config.Level.FloorThickness
		level.Floor = SolidRect{
			Name:   "floor",
			X:      0,
			Y:      float64(level.Height) - thickness,
			Width:  float64(level.Width),
			Height: thickness,
		}
	}
	if !hasSpawn {
		return nil, fmt.Errorf("level %s has no PlayerSpawn object", levelPath)
	}

	return level, nil
}

func rectFromObject(o *tiled.Object) SolidRect {
	return SolidRect{
		Name:   o.Name,
		X:      o.X,
		Y:      o.Y,
		Width:  o.Width,
		Height: o.Height,
	}
}
