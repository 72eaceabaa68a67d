package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// ClockData holds the delta of the current frame. A non-zero Override
// replaces the tick derived delta.
type ClockData struct {
	Delta    time.Duration
	Override time.Duration
}

var Clock = donburi.NewComponentType[ClockData]()
