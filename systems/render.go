package systems

import (
	"github.com/automoto/kenney-platformer/components"
	cfg "github.com/automoto/kenney-platformer/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp = &ebiten.DrawImageOptions{}
)

func DrawBackground(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.ColorBackground)
}

// DrawPlatforms fills every platform rectangle, floor included.
func DrawPlatforms(ecs *ecs.ECS, screen *ebiten.Image) {
	camX, camY := cameraOffset(ecs, screen.Bounds().Dx(), screen.Bounds().Dy())

	components.Platform.Each(ecs.World, func(e *donburi.Entry) {
		platform := components.Platform.Get(e)
		o := components.Object.Get(e)
		vector.FillRect(
			screen,
			float32(o.X+camX), float32(o.Y+camY),
			float32(o.W), float32(o.H),
			platform.Color,
			false,
		)
	})
}

// DrawSprites draws the current atlas frame of each sprite centered on its
// body, scaled to the render size and mirrored when FlipX is set.
func DrawSprites(ecs *ecs.ECS, screen *ebiten.Image) {
	camX, camY := cameraOffset(ecs, screen.Bounds().Dx(), screen.Bounds().Dy())

	components.Sprite.Each(ecs.World, func(e *donburi.Entry) {
		sprite := components.Sprite.Get(e)
		if sprite.Atlas == nil {
			return
		}
		o := components.Object.Get(e)

		img := sprite.Atlas.Frame(sprite.Index)
		tileW, tileH := sprite.Atlas.TileSize()

		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()
		drawOp.Filter = ebiten.FilterLinear

		// Anchor at the tile center so scaling and flipping keep it in place.
		drawOp.GeoM.Translate(-float64(tileW)/2, -float64(tileH)/2)
		drawOp.GeoM.Scale(sprite.RenderWidth/float64(tileW), sprite.RenderHeight/float64(tileH))
		if sprite.FlipX {
			drawOp.GeoM.Scale(-1, 1)
		}
		drawOp.GeoM.Translate(o.X+o.W/2+camX, o.Y+o.H/2+camY)

		screen.DrawImage(img, drawOp)
	})
}
