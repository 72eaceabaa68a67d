package components

import (
	"github.com/yohamta/donburi"
)

// Vector represents a 2D vector.
type Vector struct {
	X, Y float64
}

// KinematicControllerData holds the offset requested for the current frame.
// Translation is nil until a system asks for movement and is cleared by the
// controller once applied.
type KinematicControllerData struct {
	Translation *Vector
}

// ControllerOutputData is the result of the last controller step.
type ControllerOutputData struct {
	DesiredTranslation   Vector
	EffectiveTranslation Vector
	Grounded             bool
	// Ceiling is set when upward motion was blocked.
	Ceiling bool
}

var Controller = donburi.NewComponentType[KinematicControllerData]()
var ControllerOutput = donburi.NewComponentType[ControllerOutputData]()
