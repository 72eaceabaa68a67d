package assets

import (
	"image"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/automoto/kenney-platformer/config"
)

func TestAtlasRect(t *testing.T) {
	atlas := NewAtlas(nil, 7, 8, 128, 256)

	cases := []struct {
		name  string
		index int
		want  image.Rectangle
	}{
		{"first tile", 0, image.Rect(0, 0, 128, 256)},
		{"stand", 6, image.Rect(768, 0, 896, 256)},
		{"jump wraps to second row", 13, image.Rect(768, 256, 896, 512)},
		{"walk a", 40, image.Rect(640, 1280, 768, 1536)},
		{"walk b", 47, image.Rect(640, 1536, 768, 1792)},
		{"last tile", 55, image.Rect(768, 1792, 896, 2048)},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := atlas.Rect(c.index); got != c.want {
				t.Errorf("Expected %v, got %v", c.want, got)
			}
		})
	}
}

func TestAtlasRectOutOfRange(t *testing.T) {
	atlas := NewAtlas(nil, 7, 8, 128, 256)
	for _, index := range []int{-1, 56} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Expected panic for index %d", index)
				}
			}()
			atlas.Rect(index)
		}()
	}
}

func TestPlayerFramesFitAtlas(t *testing.T) {
	s := config.Sprite
	atlas := NewAtlas(nil, s.Columns, s.Rows, int(s.TileWidth), int(s.TileHeight))
	frames := append([]int{s.IdxStand, s.IdxJump}, s.IdxWalking...)
	for _, f := range frames {
		if f < 0 || f >= atlas.Len() {
			t.Errorf("Frame %d outside atlas of %d tiles", f, atlas.Len())
		}
	}
}

func TestLoadEmbeddedLevel(t *testing.T) {
	level, err := NewLevelLoader().LoadLevel(config.Level.Path)
	if err != nil {
		t.Fatalf("LoadLevel: %v", err)
	}

	if level.Width != config.C.Width || level.Height != config.C.Height {
		t.Errorf("Expected level %dx%d, got %dx%d", config.C.Width, config.C.Height, level.Width, level.Height)
	}
	if level.Title != "Kenney Platformer" {
		t.Errorf("Expected title from map properties, got %q", level.Title)
	}

	wantFloor := SolidRect{Name: "floor", X: 0, Y: 710, Width: 1024, Height: 10}
	if level.Floor != wantFloor {
		t.Errorf("Expected floor %+v, got %+v", wantFloor, level.Floor)
	}
	if len(level.Platforms) != 3 {
		t.Fatalf("Expected 3 platforms, got %d", len(level.Platforms))
	}
	for _, p := range level.Platforms {
		if bottom := p.Y + p.Height; bottom != level.Floor.Y {
			t.Errorf("Platform %s should stand on the floor, bottom at %v", p.Name, bottom)
		}
	}
	if len(level.Walls) != 2 {
		t.Errorf("Expected 2 walls, got %d", len(level.Walls))
	}
	if level.PlayerSpawn.X != 100 || level.PlayerSpawn.Y != 300 {
		t.Errorf("Expected spawn (100,300), got %v", level.PlayerSpawn)
	}
}

const tmxHeader = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="10" height="5" tilewidth="16" tileheight="16" infinite="0">
`

func TestLoadLevelDefaultsFloor(t *testing.T) {
	fsys := fstest.MapFS{
		"level.tmx": {Data: []byte(tmxHeader + `
 <objectgroup id="1" name="PlayerSpawn">
  <object id="1" x="20" y="30"><point/></object>
 </objectgroup>
</map>`)},
	}

	level, err := NewLevelLoaderFS(fsys).LoadLevel("level.tmx")
	if err != nil {
		t.Fatalf("LoadLevel: %v", err)
	}

	thickness := config.Level.FloorThickness
	want := SolidRect{Name: "floor", X: 0, Y: 80 - thickness, Width: 160, Height: thickness}
	if level.Floor != want {
		t.Errorf("Expected floor %+v, got %+v", want, level.Floor)
	}
	if len(level.Platforms) != 0 {
		t.Errorf("Expected no platforms, got %d", len(level.Platforms))
	}
}

func TestLoadLevelRequiresSpawn(t *testing.T) {
	fsys := fstest.MapFS{
		"level.tmx": {Data: []byte(tmxHeader + `</map>`)},
	}

	_, err := NewLevelLoaderFS(fsys).LoadLevel("level.tmx")
	if err == nil || !strings.Contains(err.Error(), "PlayerSpawn") {
		t.Errorf("Expected missing spawn error, got %v", err)
	}
}

func TestLoadLevelMissingFile(t *testing.T) {
	_, err := NewLevelLoaderFS(fstest.MapFS{}).LoadLevel("nope.tmx")
	if err == nil {
		t.Error("Expected error for missing level")
	}
}
