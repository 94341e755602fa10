// Package term shows the simulation in a terminal using tcell. Grid pixels
// map to character cells, so a CellWidth of 2 and CellHeight of 1 draws
// roughly square cells.
package term

import (
	"fmt"
	"image"
	"image/color"

	"conway/internal/core"

	"github.com/gdamore/tcell/v2"
)

// canvas is the part of tcell.Screen the surface draws through.
type canvas interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (int, int)
	Show()
}

// Screen is a terminal Surface and InputSource.
type Screen struct {
	screen tcell.Screen
	canvas canvas
	events chan tcell.Event
	queue  []core.Event

	// buttons held as of the last mouse event
	buttons tcell.ButtonMask
}

// Open initializes the terminal, enables mouse reporting and starts reading
// events.
func Open() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("open terminal: %w", err)
	}
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("init terminal: %w", err)
	}
	s.EnableMouse(tcell.MouseButtonEvents)
	s.HideCursor()

	t := &Screen{screen: s, canvas: s, events: make(chan tcell.Event, 100)}
	go func() {
		for {
			ev := s.PollEvent()
			if ev == nil {
				close(t.events)
				return
			}
			t.events <- ev
		}
	}()
	return t, nil
}

// Close restores the terminal.
func (t *Screen) Close() {
	t.screen.Fini()
}

// Clear paints every visible character cell with bg.
func (t *Screen) Clear(bg color.Color) {
	style := tcell.StyleDefault.Background(toColor(bg))
	w, h := t.canvas.Size()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			t.canvas.SetContent(x, y, ' ', nil, style)
		}
	}
}

// FillRects paints the character cells covered by each rectangle with fg.
func (t *Screen) FillRects(fg color.Color, rects []image.Rectangle) {
	style := tcell.StyleDefault.Background(toColor(fg))
	w, h := t.canvas.Size()
	bounds := image.Rect(0, 0, w, h)
	for _, r := range rects {
		r = r.Intersect(bounds)
		for y := r.Min.Y; y < r.Max.Y; y++ {
			for x := r.Min.X; x < r.Max.X; x++ {
				t.canvas.SetContent(x, y, ' ', nil, style)
			}
		}
	}
}

// Present flushes the frame to the terminal.
func (t *Screen) Present() error {
	t.canvas.Show()
	return nil
}

// Poll drains the events read since the previous call without blocking.
func (t *Screen) Poll() []core.Event {
	t.queue = t.queue[:0]
	for {
		select {
		case ev, ok := <-t.events:
			if !ok {
				return append(t.queue, core.Event{Kind: core.EventQuit})
			}
			if e := t.translate(ev); e.Kind != core.EventNone {
				t.queue = append(t.queue, e)
			}
		default:
			return t.queue
		}
	}
}

func (t *Screen) translate(ev tcell.Event) core.Event {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return keyEvent(ev.Key(), ev.Rune())
	case *tcell.EventMouse:
		x, y := ev.Position()
		held := t.buttons
		t.buttons = ev.Buttons()
		return mouseEvent(x, y, held, t.buttons)
	}
	return core.Event{}
}

func keyEvent(key tcell.Key, r rune) core.Event {
	switch key {
	case tcell.KeyEscape:
		return core.Event{Kind: core.EventEscape}
	case tcell.KeyCtrlC:
		return core.Event{Kind: core.EventQuit}
	case tcell.KeyRune:
		switch r {
		case ' ':
			return core.Event{Kind: core.EventTogglePause}
		case 'f', 'F':
			return core.Event{Kind: core.EventFillAll}
		case 'c', 'C':
			return core.Event{Kind: core.EventClearAll}
		case 'n', 'N':
			return core.Event{Kind: core.EventStepOnce}
		case 'r', 'R':
			return core.Event{Kind: core.EventReseed}
		case 'q', 'Q':
			return core.Event{Kind: core.EventQuit}
		}
	}
	return core.Event{}
}

const clickButtons = tcell.Button1 | tcell.Button2 | tcell.Button3

// mouseEvent reports a click when a button goes down that was not held
// before. Drags repeat the held mask and releases clear it, so neither clicks.
func mouseEvent(x, y int, held, buttons tcell.ButtonMask) core.Event {
	if buttons&^held&clickButtons == 0 {
		return core.Event{}
	}
	return core.Click(x, y)
}

func toColor(c color.Color) tcell.Color {
	r, g, b, _ := c.RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}
