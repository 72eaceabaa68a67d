package ui

import (
	"image/color"

	cfg "github.com/automoto/kenney-platformer/config"
	"github.com/automoto/kenney-platformer/fonts"
	"github.com/automoto/kenney-platformer/systems"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/yohamta/donburi/ecs"
)

// PauseUI is the ebitenui menu shown while the game is paused.
type PauseUI struct {
	UI  *ebitenui.UI
	ecs *ecs.ECS

	// Callbacks
	OnQuit func()

	// Widget references for updates
	fullscreenButton *widget.Button
	debugButton      *widget.Button
	soundButton      *widget.Button

	titleFace text.Face
	menuFace  text.Face
}

// NewPauseUI builds the pause menu for the given world.
func NewPauseUI(e *ecs.ECS, onQuit func()) *PauseUI {
	pui := &PauseUI{
		ecs:       e,
		OnQuit:    onQuit,
		titleFace: fonts.Title.Get(),
		menuFace:  fonts.Menu.Get(),
	}
	pui.buildUI()
	return pui
}

func (pui *PauseUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(16)),
			widget.RowLayoutOpts.Spacing(10),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	titleLabel := widget.NewLabel(
		widget.LabelOpts.Text("PAUSED", &pui.titleFace, &widget.LabelColor{
			Idle: cfg.Pause.TextColorNormal,
		}),
	)
	contentContainer.AddChild(titleLabel)

	contentContainer.AddChild(pui.newButton("Resume", func() {
		systems.SetPaused(pui.ecs, false)
	}))

	pui.fullscreenButton = pui.newButton("", func() {
		systems.ToggleFullscreen(pui.ecs)
		pui.UpdateUI()
	})
	contentContainer.AddChild(pui.fullscreenButton)

	pui.debugButton = pui.newButton("", func() {
		systems.ToggleDebug(pui.ecs)
		pui.UpdateUI()
	})
	contentContainer.AddChild(pui.debugButton)

	pui.soundButton = pui.newButton("", func() {
		systems.ToggleMute(pui.ecs)
		pui.UpdateUI()
	})
	contentContainer.AddChild(pui.soundButton)

	contentContainer.AddChild(pui.newButton("Quit", func() {
		if pui.OnQuit != nil {
			pui.OnQuit()
		}
	}))

	rootContainer.AddChild(contentContainer)

	pui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (pui *PauseUI) newButton(label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(260, 40),
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Stretch: true,
			}),
		),
		widget.ButtonOpts.Image(pui.buttonImage()),
		widget.ButtonOpts.Text(label, &pui.menuFace, &widget.ButtonTextColor{
			Idle:    cfg.Pause.TextColorNormal,
			Hover:   cfg.Pause.TextColorSelected,
			Pressed: cfg.Pause.TextColorSelected,
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func (pui *PauseUI) buttonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(cfg.Pause.ButtonIdle),
		Hover:    image.NewNineSliceColor(cfg.Pause.ButtonHover),
		Pressed:  image.NewNineSliceColor(cfg.Pause.ButtonPressed),
		Disabled: image.NewNineSliceColor(color.RGBA{40, 40, 40, 255}),
	}
}

// UpdateUI refreshes the toggle labels from the Settings component.
func (pui *PauseUI) UpdateUI() {
	settings := systems.GetOrCreateSettings(pui.ecs)
	setButtonLabel(pui.fullscreenButton, "Fullscreen: "+onOff(settings.Fullscreen))
	setButtonLabel(pui.debugButton, "Debug overlay: "+onOff(settings.Debug))
	setButtonLabel(pui.soundButton, "Sound: "+onOff(!settings.Muted))
}

func setButtonLabel(b *widget.Button, label string) {
	if b == nil {
		return
	}
	if textWidget := b.Text(); textWidget != nil {
		textWidget.Label = label
	}
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

// Update runs the menu for one frame.
func (pui *PauseUI) Update() {
	pui.UpdateUI()
	pui.UI.Update()
}

func (pui *PauseUI) Draw(screen *ebiten.Image) {
	pui.UI.Draw(screen)
}
