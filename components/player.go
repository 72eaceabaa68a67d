package components

import (
	"github.com/yohamta/donburi"
)

// JumpData is present while the player rises. Height is the distance
// already travelled upward in pixels.
type JumpData struct {
	Height float64
}

var Jump = donburi.NewComponentType[JumpData]()

type DirectionData int

const (
	DirectionRight DirectionData = iota
	DirectionLeft
)

func (d DirectionData) String() string {
	if d == DirectionLeft {
		return "Left"
	}
	return "Right"
}

var Direction = donburi.NewComponentType[DirectionData]()

// LandingData remembers the grounded state of the previous frame.
type LandingData struct {
	WasGrounded bool
}

var Landing = donburi.NewComponentType[LandingData]()
