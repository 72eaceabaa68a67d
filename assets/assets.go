package assets

import (
	"bytes"
	"embed"
	"fmt"
	"image"

	"github.com/automoto/kenney-platformer/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

var (
	//go:embed all:images
	imageFS embed.FS
)

// Atlas slices a sprite sheet into a grid of equally sized tiles.
// Tiles are numbered row by row starting at the top left.
type Atlas struct {
	sheet      *ebiten.Image
	columns    int
	rows       int
	tileWidth  int
	tileHeight int
	frames     map[int]*ebiten.Image
}

func NewAtlas(sheet *ebiten.Image, columns, rows, tileWidth, tileHeight int) *Atlas {
	return &Atlas{
		sheet:      sheet,
		columns:    columns,
		rows:       rows,
		tileWidth:  tileWidth,
		tileHeight: tileHeight,
		frames:     make(map[int]*ebiten.Image),
	}
}

// Len returns the number of tiles in the atlas.
func (a *Atlas) Len() int {
	return a.columns * a.rows
}

// Rect returns the source rectangle of tile index. Out of range indices
// panic, the same way an out of range slice access would.
func (a *Atlas) Rect(index int) image.Rectangle {
	if index < 0 || index >= a.Len() {
		panic(fmt.Sprintf("atlas index %d out of range [0,%d)", index, a.Len()))
	}
	col := index % a.columns
	row := index / a.columns
	x := col * a.tileWidth
	y := row * a.tileHeight
	return image.Rect(x, y, x+a.tileWidth, y+a.tileHeight)
}

// TileSize returns the size of a single tile in sheet pixels.
func (a *Atlas) TileSize() (w, h int) {
	return a.tileWidth, a.tileHeight
}

// Frame returns a cached sub-image for tile index.
func (a *Atlas) Frame(index int) *ebiten.Image {
	if img, ok := a.frames[index]; ok {
		return img
	}
	img := a.sheet.SubImage(a.Rect(index)).(*ebiten.Image)
	a.frames[index] = img
	return img
}

type ImageLoader struct {
	cache map[string]*ebiten.Image
}

func NewImageLoader() *ImageLoader {
	return &ImageLoader{
		cache: make(map[string]*ebiten.Image),
	}
}

func (l *ImageLoader) MustLoadImage(path string) *ebiten.Image {
	if img, ok := l.cache[path]; ok {
		return img
	}

	imgBytes, err := imageFS.ReadFile(path)
	if err != nil {
		panic(fmt.Sprintf("Failed to read image file %s: %v", path, err))
	}

	img, _, err := ebitenutil.NewImageFromReader(bytes.NewReader(imgBytes))
	if err != nil {
		panic(fmt.Sprintf("Failed to create image from bytes for %s: %v", path, err))
	}

	l.cache[path] = img

	return img
}

var (
	imageLoader = NewImageLoader()
)

// MustLoadPlayerAtlas loads the embedded player sprite sheet described by
// config.Sprite.
func MustLoadPlayerAtlas() *Atlas {
	s := config.Sprite
	sheet := imageLoader.MustLoadImage(s.SheetPath)

	b := sheet.Bounds()
	if b.Dx() < s.Columns*int(s.TileWidth) || b.Dy() < s.Rows*int(s.TileHeight) {
		panic(fmt.Sprintf("sprite sheet %s is %dx%d, too small for %dx%d tiles of %vx%v",
			s.SheetPath, b.Dx(), b.Dy(), s.Columns, s.Rows, s.TileWidth, s.TileHeight))
	}

	return NewAtlas(sheet, s.Columns, s.Rows, int(s.TileWidth), int(s.TileHeight))
}
