package main

import (
	"image/color"

	"golang.org/x/image/font/basicfont"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/milk9111/wastesorter/common"
)

var (
	white     = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	dimWhite  = color.NRGBA{R: 0xbb, G: 0xbb, B: 0xbb, A: 0xff}
	panelFill = color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 200}
	btnFill   = color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255}
	btnHover  = color.NRGBA{R: 0x4a, G: 0x4a, B: 0x4a, A: 255}
	btnDown   = color.NRGBA{R: 0x22, G: 0x22, B: 0x22, A: 255}
)

// uiFace wraps the built-in basic font so panels need no theme fonts.
func uiFace() *ebtext.Face {
	var face ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)
	return &face
}

func newLabel(face *ebtext.Face, s string, col color.Color) *widget.Text {
	return widget.NewText(
		widget.TextOpts.Text(s, face, col),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)
}

func newButton(face *ebtext.Face, label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    imageui.NewNineSliceColor(btnFill),
			Hover:   imageui.NewNineSliceColor(btnHover),
			Pressed: imageui.NewNineSliceColor(btnDown),
		}),
		widget.ButtonOpts.Text(label, face, &widget.ButtonTextColor{Idle: white}),
		widget.ButtonOpts.TextPadding(&widget.Insets{Left: 12, Right: 12, Top: 4, Bottom: 4}),
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

// newRow lays children out left to right.
func newRow(spacing int) *widget.Container {
	return widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(spacing),
		)),
		widget.ContainerOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)
}

// newPanelUI centres a vertical panel of at least half the screen and
// returns the UI together with the panel to fill.
func newPanelUI() (*ebitenui.UI, *widget.Container) {
	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(imageui.NewNineSliceColor(panelFill)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(common.BaseWidth/2, common.BaseHeight/2),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)
	return &ebitenui.UI{Container: root}, panel
}

// NewPauseUI builds the pause menu with Resume and Quit buttons.
func NewPauseUI(g *Game) *ebitenui.UI {
	face := uiFace()
	ui, panel := newPanelUI()

	panel.AddChild(newLabel(face, "Paused", white))
	panel.AddChild(newLabel(face, "Q organic   W paper/cardboard   E plastic/brick/can   R glass", dimWhite))
	panel.AddChild(newLabel(face, "A/D move   Space jump   F1 debug", dimWhite))
	panel.AddChild(newButton(face, "Resume", g.resume))
	panel.AddChild(newButton(face, "Quit", func() { g.quit = true }))
	return ui
}
