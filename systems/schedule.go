package systems

import "github.com/yohamta/donburi/ecs"

// Gameplay lists the systems that run every unpaused frame, in order.
// The controller runs after every system that requests movement and before
// every system that reads its output.
var Gameplay = []ecs.System{
	UpdateMovement,
	UpdateJump,
	UpdateFall,
	UpdateRise,
	UpdateCharacterController,
	UpdateMovementAnimation,
	UpdateIdleSprite,
	UpdateJumpSprite,
	UpdateDirection,
	UpdateSpriteDirection,
	UpdateAnimation,
	UpdateLandingSound,
	UpdateCamera,
}
