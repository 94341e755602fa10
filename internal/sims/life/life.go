package life

import (
	"conway/internal/core"
)

// State is the simulation owned by the main loop: the current grid, a spare
// buffer for the next generation and the paused flag.
type State struct {
	cfg    core.Config
	rng    *core.RNG
	cur    *core.Grid
	nxt    *core.Grid
	paused bool
	gen    int
}

// New returns a dead State sized by cfg.
func New(cfg core.Config) *State {
	return &State{
		cfg: cfg,
		rng: core.NewRNG(cfg.Seed),
		cur: core.NewGrid(cfg.MaxX, cfg.MaxY),
		nxt: core.NewGrid(cfg.MaxX, cfg.MaxY),
	}
}

// Name returns the simulation identifier.
func (s *State) Name() string { return "life" }

// Config returns the settings the state was built with.
func (s *State) Config() core.Config { return s.cfg }

// Grid exposes the current generation.
func (s *State) Grid() *core.Grid { return s.cur }

// Paused reports whether automatic stepping is suspended.
func (s *State) Paused() bool { return s.paused }

// Generation returns the number of generations computed since the last
// reseed.
func (s *State) Generation() int { return s.gen }

// Reset randomizes the board, each cell alive with probability one half.
func (s *State) Reset() {
	s.rng.FillRandom(s.cur)
	s.gen = 0
}

// Step advances the simulation by one generation. The next grid is computed
// entirely from the frozen current one and then replaces it.
func (s *State) Step() {
	Next(s.cur, s.nxt, s.cfg.Workers)
	s.cur, s.nxt = s.nxt, s.cur
	s.gen++
}

// Tick steps the simulation unless it is paused.
func (s *State) Tick() {
	if !s.paused {
		s.Step()
	}
}

// Apply performs a single user event and reports whether the main loop should
// terminate.
func (s *State) Apply(ev core.Event) (quit bool) {
	switch ev.Kind {
	case core.EventQuit, core.EventEscape:
		return true
	case core.EventTogglePause:
		s.paused = !s.paused
	case core.EventFillAll:
		Fill(s.cur, true, s.cfg.Workers)
	case core.EventClearAll:
		Fill(s.cur, false, s.cfg.Workers)
	case core.EventPointerClick:
		if s.paused {
			s.cur.Toggle(s.cfg.CellAt(ev.X, ev.Y))
		}
	case core.EventStepOnce:
		if s.paused {
			s.Step()
		}
	case core.EventReseed:
		s.Reset()
	}
	return false
}

// ApplyAll performs events in order, stopping at the first one that ends the
// loop.
func (s *State) ApplyAll(events []core.Event) (quit bool) {
	for _, ev := range events {
		if s.Apply(ev) {
			return true
		}
	}
	return false
}

// Parameters describes the running simulation for the status panel.
func (s *State) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Life",
			Params: []core.Parameter{
				core.IntParam("generation", "Generation", s.gen),
				core.IntParam("population", "Population", s.cur.Population()),
				core.BoolParam("paused", "Paused", s.paused),
			},
		},
		s.cfg.Parameters(),
	}}
}
