package core

// Size describes the dimensions of a simulation grid in cells.
type Size struct {
	W int
	H int
}

// EventKind enumerates the user inputs the simulation understands.
type EventKind uint8

const (
	// EventNone is produced for inputs that have no meaning to the simulation.
	EventNone EventKind = iota
	// EventQuit is the window close request.
	EventQuit
	// EventEscape is the escape key.
	EventEscape
	// EventTogglePause flips between running and paused.
	EventTogglePause
	// EventFillAll sets every cell alive.
	EventFillAll
	// EventClearAll sets every cell dead.
	EventClearAll
	// EventPointerClick carries the pixel position of a mouse button press.
	EventPointerClick
	// EventStepOnce advances a paused grid by a single generation.
	EventStepOnce
	// EventReseed refills the grid with random cells.
	EventReseed
)

var eventNames = [...]string{
	EventNone:         "none",
	EventQuit:         "quit",
	EventEscape:       "escape",
	EventTogglePause:  "toggle-pause",
	EventFillAll:      "fill-all",
	EventClearAll:     "clear-all",
	EventPointerClick: "pointer-click",
	EventStepOnce:     "step-once",
	EventReseed:       "reseed",
}

func (k EventKind) String() string {
	if int(k) < len(eventNames) {
		return eventNames[k]
	}
	return "unknown"
}

// Event is a single discrete user input. X and Y are screen pixels and are
// only meaningful for EventPointerClick.
type Event struct {
	Kind EventKind
	X, Y int
}

// Click builds a pointer event at the given screen pixel.
func Click(x, y int) Event {
	return Event{Kind: EventPointerClick, X: x, Y: y}
}
