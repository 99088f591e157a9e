package diorama

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// clearColor is the background the scene draws over.
var clearColor = color.RGBA{R: 26, G: 51, B: 77, A: 255}

// Game is the built-in frame driver: an [ebiten.Game] that polls actions,
// advances a Runner, propagates viewport resizes to the render registry,
// and presents both draw lists each frame.
type Game struct {
	runner  *Runner
	ctx     *Context
	actions ActionMap
	overlay *OverlayView

	viewW, viewH int
}

// NewGame wires a runner and its context into a frame driver using the
// given action bindings.
func NewGame(runner *Runner, ctx *Context, actions ActionMap) *Game {
	w, h := ctx.Sprites.Viewport()
	return &Game{
		runner:  runner,
		ctx:     ctx,
		actions: actions,
		overlay: NewOverlayView(ctx.Dialogue),
		viewW:   w,
		viewH:   h,
	}
}

// Update polls actions, broadcasts signals, and advances every script by
// one tick of frame time. Script errors are logged and the frame goes on;
// only an Exit action terminates the loop.
func (g *Game) Update() error {
	if g.actions.JustPressed(ActionExit) {
		return ebiten.Termination
	}
	if g.actions.JustPressed(ActionSkipWait) {
		g.runner.Broadcast(SignalSkipWait)
	}

	dt := 1.0 / float64(ebiten.TPS())
	if err := g.runner.Update(dt, g.ctx); err != nil {
		g.ctx.Log.Error("scene update", zap.Error(err))
	}

	g.overlay.Update(g.viewW, g.viewH)
	return nil
}

// Draw renders the sorted sprite list and then the dialogue overlay.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(clearColor)

	var op ebiten.DrawImageOptions
	for _, cmd := range g.ctx.Sprites.DrawList() {
		if cmd.Texture == nil || cmd.Texture.Image == nil {
			continue
		}
		op.GeoM.Reset()
		op.GeoM.Concat(commandGeoM(cmd))
		screen.DrawImage(cmd.Texture.Image, &op)
	}

	g.overlay.Draw(screen)
}

// Layout tracks the window size and rebuilds the shared projection when
// it changes.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 &&
		(outsideWidth != g.viewW || outsideHeight != g.viewH) {
		g.viewW, g.viewH = outsideWidth, outsideHeight
		g.ctx.Sprites.Resize(outsideWidth, outsideHeight)
	}
	return g.viewW, g.viewH
}

// commandGeoM converts a draw command into an ebiten.GeoM. The command's
// transform places the sprite's [-1, 1] unit quad; the texture image is
// first mapped onto that quad (image top row at quad Y = +1).
func commandGeoM(cmd DrawCommand) ebiten.GeoM {
	quad := [6]float64{
		2 / float64(cmd.Texture.Width), 0,
		0, -2 / float64(cmd.Texture.Height),
		-1, 1,
	}
	t := multiplyAffine(cmd.Transform, quad)

	var m ebiten.GeoM
	m.SetElement(0, 0, t[0])
	m.SetElement(1, 0, t[1])
	m.SetElement(0, 1, t[2])
	m.SetElement(1, 1, t[3])
	m.SetElement(0, 2, t[4])
	m.SetElement(1, 2, t[5])
	return m
}

// RunConfig configures the window created by Run.
type RunConfig struct {
	Title  string
	Width  int
	Height int
}

// Run opens a resizable window and drives the game loop until the game
// returns ebiten.Termination or the window closes.
func Run(game ebiten.Game, cfg RunConfig) error {
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(game)
}
