package systems

import (
	"math"

	"github.com/automoto/kenney-platformer/components"
	"github.com/automoto/kenney-platformer/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// contactEpsilon absorbs float drift after snapping against a surface.
const contactEpsilon = 0.001

// groundProbe is how far below the body a solid still counts as ground.
const groundProbe = 1.0

// UpdateCharacterController applies the requested translation of every
// kinematic body, stopping at solids. Horizontal motion is resolved first,
// then vertical.
func UpdateCharacterController(ecs *ecs.ECS) {
	var ended []*donburi.Entry

	components.Controller.Each(ecs.World, func(e *donburi.Entry) {
		ctrl := components.Controller.Get(e)
		obj := components.Object.Get(e).Object

		var desired components.Vector
		if ctrl.Translation != nil {
			desired = *ctrl.Translation
		}

		dx := resolveHorizontal(obj, desired.X)
		obj.X += dx
		dy := resolveVertical(obj, desired.Y)
		obj.Y += dy
		obj.Update()

		blockedDown := desired.Y > 0 && dy < desired.Y-contactEpsilon
		blockedUp := desired.Y < 0 && dy > desired.Y+contactEpsilon

		output := components.ControllerOutputData{
			DesiredTranslation:   desired,
			EffectiveTranslation: components.Vector{X: dx, Y: dy},
			Grounded:             blockedDown || isOnGround(obj),
			Ceiling:              blockedUp,
		}
		if e.HasComponent(components.ControllerOutput) {
			components.ControllerOutput.SetValue(e, output)
		}
		ctrl.Translation = nil

		if blockedUp && e.HasComponent(components.Jump) {
			ended = append(ended, e)
		}
	})

	// A rise stopped by a ceiling ends the jump like reaching the top.
	for _, e := range ended {
		e.RemoveComponent(components.Jump)
	}
}

// resolveHorizontal returns how far obj can move by dx before touching a
// solid that overlaps it vertically.
func resolveHorizontal(obj *resolv.Object, dx float64) float64 {
	if dx == 0 {
		return 0
	}
	check := obj.Check(dx, 0, tags.ResolvSolid)
	if check == nil {
		return dx
	}

	for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
		if !overlapsVertically(obj, solid) {
			continue
		}
		if dx > 0 && solid.X >= obj.X+obj.W-contactEpsilon {
			dx = math.Min(dx, solid.X-(obj.X+obj.W))
		}
		if dx < 0 && solid.X+solid.W <= obj.X+contactEpsilon {
			dx = math.Max(dx, solid.X+solid.W-obj.X)
		}
	}
	return dx
}

// resolveVertical returns how far obj can move by dy before touching a
// solid that overlaps it horizontally.
func resolveVertical(obj *resolv.Object, dy float64) float64 {
	if dy == 0 {
		return 0
	}
	check := obj.Check(0, dy, tags.ResolvSolid)
	if check == nil {
		return dy
	}

	for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
		if !overlapsHorizontally(obj, solid) {
			continue
		}
		if dy > 0 && solid.Y >= obj.Y+obj.H-contactEpsilon {
			dy = math.Min(dy, solid.Y-(obj.Y+obj.H))
		}
		if dy < 0 && solid.Y+solid.H <= obj.Y+contactEpsilon {
			dy = math.Max(dy, solid.Y+solid.H-obj.Y)
		}
	}
	return dy
}

// isOnGround reports whether a solid lies directly beneath obj.
func isOnGround(obj *resolv.Object) bool {
	check := obj.Check(0, groundProbe, tags.ResolvSolid)
	if check == nil {
		return false
	}
	bottom := obj.Y + obj.H
	for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
		if !overlapsHorizontally(obj, solid) {
			continue
		}
		if gap := solid.Y - bottom; gap >= -contactEpsilon && gap <= groundProbe {
			return true
		}
	}
	return false
}

func overlapsVertically(a, b *resolv.Object) bool {
	return a.Y < b.Y+b.H-contactEpsilon && a.Y+a.H > b.Y+contactEpsilon
}

func overlapsHorizontally(a, b *resolv.Object) bool {
	return a.X < b.X+b.W-contactEpsilon && a.X+a.W > b.X+contactEpsilon
}
