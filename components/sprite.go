package components

import (
	"github.com/automoto/kenney-platformer/assets"
	"github.com/yohamta/donburi"
)

type SpriteSheetData struct {
	Atlas        *assets.Atlas
	Index        int
	FlipX        bool
	RenderWidth  float64
	RenderHeight float64
}

var Sprite = donburi.NewComponentType[SpriteSheetData]()
