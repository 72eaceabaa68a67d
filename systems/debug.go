package systems

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/automoto/kenney-platformer/components"
	cfg "github.com/automoto/kenney-platformer/config"
	"github.com/automoto/kenney-platformer/fonts"
	"github.com/automoto/kenney-platformer/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.Debug {
		return
	}

	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	camX, camY := cameraOffset(ecs, width, height)

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		space := components.Space.Get(spaceEntry)

		for _, obj := range space.Objects() {
			x := obj.X + camX
			y := obj.Y + camY

			c := cfg.Cyan
			if obj.HasTags(tags.ResolvSolid) {
				c = cfg.Grey
			} else if obj.HasTags(tags.ResolvPlayer) {
				c = cfg.Blue
			}

			strokeRect(screen, x, y, obj.W, obj.H, c)
		}
	}

	lines := append([]string{
		fmt.Sprintf("TPS %.0f  FPS %.0f", ebiten.ActualTPS(), ebiten.ActualFPS()),
	}, DebugLines(ecs)...)
	face := fonts.Debug.Get()
	op := &text.DrawOptions{}
	op.GeoM.Translate(12, 8)
	op.ColorScale.ScaleWithColor(cfg.White)
	op.LineSpacing = 18
	text.Draw(screen, strings.Join(lines, "\n"), face, op)
}

// DebugLines describes the player state shown by the debug overlay.
func DebugLines(ecs *ecs.ECS) []string {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return nil
	}

	obj := components.Object.Get(playerEntry)
	lines := []string{fmt.Sprintf("pos %.1f, %.1f", obj.X, obj.Y)}

	if playerEntry.HasComponent(components.ControllerOutput) {
		out := components.ControllerOutput.Get(playerEntry)
		lines = append(lines,
			fmt.Sprintf("desired %.2f, %.2f", out.DesiredTranslation.X, out.DesiredTranslation.Y),
			fmt.Sprintf("effective %.2f, %.2f", out.EffectiveTranslation.X, out.EffectiveTranslation.Y),
			fmt.Sprintf("grounded %v", out.Grounded),
		)
	}
	if playerEntry.HasComponent(components.Jump) {
		jump := components.Jump.Get(playerEntry)
		lines = append(lines, fmt.Sprintf("jump %.1f / %.1f", jump.Height, cfg.Player.MaxJumpHeight))
	}
	if playerEntry.HasComponent(components.Direction) {
		lines = append(lines, fmt.Sprintf("facing %s", *components.Direction.Get(playerEntry)))
	}
	if playerEntry.HasComponent(components.Sprite) {
		lines = append(lines, fmt.Sprintf("frame %d", components.Sprite.Get(playerEntry).Index))
	}

	return lines
}

func strokeRect(screen *ebiten.Image, x, y, w, h float64, c color.Color) {
	vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), 1, c, false)
}
