//go:build sdl

// Package sdl shows the simulation in an SDL2 window.
package sdl

import (
	"fmt"
	"image"
	"image/color"

	"conway/internal/core"

	"github.com/veandco/go-sdl2/sdl"
)

// Window is an SDL Surface and InputSource.
type Window struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	rects    []sdl.Rect
	events   []core.Event
}

// NewWindow initialises SDL and opens a centered window of the given pixel
// size.
func NewWindow(title string, width, height int) (*Window, error) {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, fmt.Errorf("init video: %w", err)
	}
	window, err := sdl.CreateWindow(title,
		sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		int32(width), int32(height),
		sdl.WINDOW_SHOWN|sdl.WINDOW_OPENGL)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("create window: %w", err)
	}
	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		window.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("create renderer: %w", err)
	}
	return &Window{window: window, renderer: renderer}, nil
}

// Destroy releases the renderer and window and shuts SDL down.
func (w *Window) Destroy() {
	w.renderer.Destroy()
	w.window.Destroy()
	sdl.Quit()
}

func (w *Window) setColor(c color.Color) {
	r, g, b, a := c.RGBA()
	w.renderer.SetDrawColor(uint8(r>>8), uint8(g>>8), uint8(b>>8), uint8(a>>8))
}

// Clear fills the window with bg.
func (w *Window) Clear(bg color.Color) {
	w.setColor(bg)
	w.renderer.Clear()
}

// FillRects draws each rectangle filled with fg.
func (w *Window) FillRects(fg color.Color, rects []image.Rectangle) {
	if len(rects) == 0 {
		return
	}
	w.rects = w.rects[:0]
	for _, r := range rects {
		w.rects = append(w.rects, sdl.Rect{
			X: int32(r.Min.X), Y: int32(r.Min.Y),
			W: int32(r.Dx()), H: int32(r.Dy()),
		})
	}
	w.setColor(fg)
	w.renderer.FillRects(w.rects)
}

// Present shows everything drawn since the last Clear.
func (w *Window) Present() error {
	w.renderer.Present()
	return nil
}

// Poll drains the SDL event queue.
func (w *Window) Poll() []core.Event {
	w.events = w.events[:0]
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch e := ev.(type) {
		case *sdl.QuitEvent:
			w.events = append(w.events, core.Event{Kind: core.EventQuit})
		case *sdl.KeyboardEvent:
			if e.Type != sdl.KEYDOWN {
				continue
			}
			if kind, ok := keyEvents[e.Keysym.Sym]; ok {
				w.events = append(w.events, core.Event{Kind: kind})
			}
		case *sdl.MouseButtonEvent:
			if e.Type == sdl.MOUSEBUTTONDOWN {
				w.events = append(w.events, core.Click(int(e.X), int(e.Y)))
			}
		}
	}
	return w.events
}

var keyEvents = map[sdl.Keycode]core.EventKind{
	sdl.K_ESCAPE: core.EventEscape,
	sdl.K_SPACE:  core.EventTogglePause,
	sdl.K_f:      core.EventFillAll,
	sdl.K_c:      core.EventClearAll,
	sdl.K_n:      core.EventStepOnce,
	sdl.K_r:      core.EventReseed,
}
