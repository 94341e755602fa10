//go:build ebiten

package app

import (
	"conway/internal/core"
	"conway/internal/render"
	"conway/internal/sims/life"
	"conway/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a Loop to the ebiten.Game interface. Update runs one paced
// frame into an offscreen pixel buffer and Draw uploads the presented frame.
type Game struct {
	loop   *Loop
	pixels *render.PixelBuffer
	img    *ebiten.Image
	hud    *ui.HUD

	gridW, gridH int
}

// New constructs a Game for the provided simulation.
func New(state *life.State) *Game {
	cfg := state.Config()
	w, h := cfg.WindowSize()
	pixels := render.NewPixelBuffer(w, h)
	g := &Game{
		pixels: pixels,
		img:    ebiten.NewImage(w, h),
		gridW:  w,
		gridH:  h,
	}
	g.loop = NewLoop(state, pixels, &ebitenInput{})
	if cfg.HUD {
		g.hud = ui.NewHUD(state, hudWidth)
	}
	return g
}

const hudWidth = 220

// WindowSize returns the outer window size, including the status panel.
func (g *Game) WindowSize() (int, int) {
	if g.hud != nil {
		return g.gridW + hudWidth, g.gridH
	}
	return g.gridW, g.gridH
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	quit, err := g.loop.Tick()
	if err != nil {
		return err
	}
	if quit {
		return ebiten.Termination
	}
	g.hud.Update(g.loop.FPS())
	return nil
}

// Draw renders the last presented frame.
func (g *Game) Draw(screen *ebiten.Image) {
	g.img.WritePixels(g.pixels.Pixels())
	screen.DrawImage(g.img, nil)
	g.hud.Draw(screen, g.gridW)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.WindowSize()
}

// ebitenInput translates the keys and buttons pressed since the last tick.
type ebitenInput struct {
	keys   []ebiten.Key
	events []core.Event
}

var keyEvents = map[ebiten.Key]core.EventKind{
	ebiten.KeyEscape: core.EventEscape,
	ebiten.KeyQ:      core.EventQuit,
	ebiten.KeySpace:  core.EventTogglePause,
	ebiten.KeyF:      core.EventFillAll,
	ebiten.KeyC:      core.EventClearAll,
	ebiten.KeyN:      core.EventStepOnce,
	ebiten.KeyR:      core.EventReseed,
}

var mouseButtons = []ebiten.MouseButton{
	ebiten.MouseButtonLeft,
	ebiten.MouseButtonRight,
	ebiten.MouseButtonMiddle,
}

func (in *ebitenInput) Poll() []core.Event {
	in.events = in.events[:0]
	if ebiten.IsWindowBeingClosed() {
		in.events = append(in.events, core.Event{Kind: core.EventQuit})
	}
	in.keys = inpututil.AppendJustPressedKeys(in.keys[:0])
	for _, k := range in.keys {
		if kind, ok := keyEvents[k]; ok {
			in.events = append(in.events, core.Event{Kind: kind})
		}
	}
	for _, b := range mouseButtons {
		if inpututil.IsMouseButtonJustPressed(b) {
			x, y := ebiten.CursorPosition()
			in.events = append(in.events, core.Click(x, y))
		}
	}
	return in.events
}
