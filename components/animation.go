package components

import (
	"github.com/automoto/kenney-platformer/assets/animations"
	"github.com/yohamta/donburi"
)

// AnimationData is present while the walk cycle plays.
type AnimationData struct {
	Cycle *animations.Cycle
}

var Animation = donburi.NewComponentType[AnimationData]()
