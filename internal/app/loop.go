package app

import (
	"context"
	"log"
	"os"

	"conway/internal/core"
	"conway/internal/render"
	"conway/internal/sims/life"
)

// InputSource yields the user events that arrived since the previous poll,
// oldest first.
type InputSource interface {
	Poll() []core.Event
}

// Loop drives one simulation against a display and an input source.
type Loop struct {
	state   *life.State
	surface render.Surface
	input   InputSource
	painter *render.Painter
	pacer   *core.Pacer

	verbose bool
	report  func(fps float64)
	fps     float64
}

// NewLoop wires state to the given collaborators using the pacing and
// verbosity settings from the state's config.
func NewLoop(state *life.State, surface render.Surface, input InputSource) *Loop {
	cfg := state.Config()
	return &Loop{
		state:   state,
		surface: surface,
		input:   input,
		painter: render.NewPainter(cfg),
		pacer:   core.NewPacer(cfg.FrameInterval),
		verbose: cfg.Verbose,
		report:  stdoutReporter(),
	}
}

// stdoutReporter prints the verbose framerate line to standard output.
func stdoutReporter() func(fps float64) {
	out := log.New(os.Stdout, "", 0)
	return func(fps float64) { out.Printf("%.1f fps", fps) }
}

// SetReporter replaces the verbose framerate output.
func (l *Loop) SetReporter(fn func(fps float64)) { l.report = fn }

// FPS returns the rate measured on the last completed frame.
func (l *Loop) FPS() float64 { return l.fps }

// Frame handles pending input, draws the grid and, unless paused, advances
// one generation. It reports whether a quit was requested, in which case
// nothing is drawn.
func (l *Loop) Frame() (bool, error) {
	if l.state.ApplyAll(l.input.Poll()) {
		return true, nil
	}
	if err := l.painter.Draw(l.surface, l.state.Grid()); err != nil {
		return false, err
	}
	l.state.Tick()
	return false, nil
}

// Tick runs a Frame and then blocks for the rest of the frame interval.
func (l *Loop) Tick() (bool, error) {
	l.pacer.Start()
	quit, err := l.Frame()
	if quit || err != nil {
		return quit, err
	}
	if fps, ok := core.Rate(l.pacer.Wait()); ok {
		l.fps = fps
		if l.verbose {
			l.report(fps)
		}
	}
	return false, nil
}

// Run ticks until the user quits, a frame fails or ctx is cancelled.
func (l *Loop) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		quit, err := l.Tick()
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
	}
}
