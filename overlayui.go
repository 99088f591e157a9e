package diorama

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// Dialogue panel palette.
var (
	panelFill    = color.NRGBA{R: 8, G: 18, B: 30, A: 228}
	speakerColor = color.NRGBA{R: 180, G: 115, B: 255, A: 255}
	bodyColor    = color.NRGBA{R: 244, G: 228, B: 157, A: 255}
)

// OverlayView presents an Overlay's panel instructions through ebitenui.
// The widget tree is rebuilt only when the instructions actually change.
type OverlayView struct {
	overlay *Overlay
	ui      *ebitenui.UI
	face    ebtext.Face
	sig     string
}

// NewOverlayView creates a presenter for the given overlay registry.
func NewOverlayView(overlay *Overlay) *OverlayView {
	var face ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)
	return &OverlayView{
		overlay: overlay,
		face:    face,
		ui: &ebitenui.UI{
			Container: widget.NewContainer(
				widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
			),
		},
	}
}

// Update refreshes the widget tree from the overlay's instructions for
// the given viewport and ticks the UI.
func (v *OverlayView) Update(viewportW, viewportH int) {
	panels := v.overlay.Instructions(float64(viewportW), float64(viewportH))
	sig := panelSignature(panels)
	if sig != v.sig {
		v.rebuild(panels)
		v.sig = sig
	}
	v.ui.Update()
}

// Draw renders the overlay on top of the scene.
func (v *OverlayView) Draw(screen *ebiten.Image) {
	v.ui.Draw(screen)
}

func (v *OverlayView) rebuild(panels []Panel) {
	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout(
			widget.AnchorLayoutOpts.Padding(&widget.Insets{Bottom: panelBottomMargin}),
		)),
	)

	if len(panels) > 0 {
		column := widget.NewContainer(
			widget.ContainerOpts.Layout(widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionVertical),
				widget.RowLayoutOpts.Spacing(panelGap),
			)),
			widget.ContainerOpts.WidgetOpts(
				widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
					HorizontalPosition: widget.AnchorLayoutPositionCenter,
					VerticalPosition:   widget.AnchorLayoutPositionEnd,
				}),
			),
		)
		// Instructions run bottom-up; the row layout runs top-down.
		for i := len(panels) - 1; i >= 0; i-- {
			column.AddChild(v.panelWidget(panels[i]))
		}
		root.AddChild(column)
	}

	v.ui.Container = root
}

func (v *OverlayView) panelWidget(p Panel) *widget.Container {
	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(imageui.NewNineSliceColor(panelFill)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(6),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 14, Bottom: 14, Left: 24, Right: 24}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(int(p.Width), int(p.Height)),
		),
	)
	if p.Speaker != "" {
		panel.AddChild(widget.NewText(
			widget.TextOpts.Text(p.Speaker, &v.face, speakerColor),
		))
	}
	panel.AddChild(widget.NewText(
		widget.TextOpts.Text(p.Text, &v.face, bodyColor),
	))
	return panel
}

// panelSignature fingerprints instructions so the widget tree is only
// rebuilt on actual change.
func panelSignature(panels []Panel) string {
	var b strings.Builder
	for _, p := range panels {
		fmt.Fprintf(&b, "%g,%g,%g,%g,%s,%s;", p.X, p.Y, p.Width, p.Height, p.Speaker, p.Text)
	}
	return b.String()
}
