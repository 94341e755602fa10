package core

import (
	"flag"
	"fmt"
	"io"
	"path/filepath"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Config is the immutable settings record shared by every component. It is
// populated once at startup and passed by value afterwards.
type Config struct {
	// MaxX and MaxY are the zero-based grid maxima.
	MaxX, MaxY int
	// CellWidth and CellHeight are the pixel dimensions of one cell.
	CellWidth, CellHeight int
	// FrameInterval is the target time per generation. Zero disables
	// throttling.
	FrameInterval time.Duration
	// Verbose reports the achieved frame rate every frame.
	Verbose bool

	Seed    int64
	Workers int
	HUD     bool
}

const (
	defaultCells     = 200
	defaultCellPx    = 5
	defaultFramerate = 30
)

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		MaxX:          defaultCells - 1,
		MaxY:          defaultCells - 1,
		CellWidth:     defaultCellPx,
		CellHeight:    defaultCellPx,
		FrameInterval: IntervalFor(defaultFramerate),
		Workers:       runtime.NumCPU(),
	}
}

// NewConfig returns a Config populated with defaults, ready to Bind.
func NewConfig() *Config {
	c := DefaultConfig()
	return &c
}

// IntervalFor converts a generations-per-second rate into a frame interval.
// Non-positive rates mean unthrottled.
func IntervalFor(fps int) time.Duration {
	if fps <= 0 {
		return 0
	}
	return time.Second / time.Duration(fps)
}

// Bind attaches the configuration to the provided FlagSet. Numeric values
// that fail to parse, or fall outside the accepted range, are ignored and the
// current value is kept.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.Var(&extentValue{&c.MaxX}, "x", "number of horizontal cells")
	fs.Var(&extentValue{&c.MaxY}, "y", "number of vertical cells")
	for _, name := range []string{"w", "width"} {
		fs.Var(&intValue{dst: &c.CellWidth, min: 1}, name, "pixel width of a single cell")
	}
	for _, name := range []string{"h", "height"} {
		fs.Var(&intValue{dst: &c.CellHeight, min: 1}, name, "pixel height of a single cell")
	}
	for _, name := range []string{"f", "framerate"} {
		fs.Var(&framerateValue{&c.FrameInterval}, name, "generations per second (0 = unthrottled)")
	}
	for _, name := range []string{"v", "verbose"} {
		fs.BoolVar(&c.Verbose, name, c.Verbose, "print the actual framerate")
	}
	fs.Var(&int64Value{&c.Seed}, "seed", "seed for the initial grid (0 = time based)")
	fs.Var(&intValue{dst: &c.Workers, min: 1}, "workers", "goroutines used to compute a generation")
	fs.BoolVar(&c.HUD, "hud", c.HUD, "show the status panel")
}

// GridSize returns the grid dimensions in cells.
func (c Config) GridSize() Size { return Size{W: c.MaxX + 1, H: c.MaxY + 1} }

// WindowSize returns the pixel dimensions needed to show the whole grid.
func (c Config) WindowSize() (int, int) {
	return (c.MaxX + 1) * c.CellWidth, (c.MaxY + 1) * c.CellHeight
}

// CellAt maps a screen pixel to a cell coordinate by integer division. The
// result may be off the board.
func (c Config) CellAt(px, py int) (int, int) {
	if c.CellWidth <= 0 || c.CellHeight <= 0 {
		return -1, -1
	}
	return px / c.CellWidth, py / c.CellHeight
}

// WriteBashCompletion writes a bash completion script for prog covering every
// flag registered on fs.
func WriteBashCompletion(w io.Writer, prog string, fs *flag.FlagSet) error {
	var opts []string
	fs.VisitAll(func(f *flag.Flag) { opts = append(opts, "-"+f.Name) })
	sort.Strings(opts)
	fn := "_" + strings.NewReplacer("-", "_", ".", "_").Replace(prog)
	_, err := fmt.Fprintf(w, `%[1]s() {
    local cur="${COMP_WORDS[COMP_CWORD]}"
    COMPREPLY=( $(compgen -W "%[2]s" -- "$cur") )
}
complete -F %[1]s %[3]s
`, fn, strings.Join(opts, " "), prog)
	return err
}

type intValue struct {
	dst *int
	min int
}

func (v *intValue) String() string {
	if v == nil || v.dst == nil {
		return ""
	}
	return strconv.Itoa(*v.dst)
}

func (v *intValue) Set(s string) error {
	if n, err := strconv.Atoi(s); err == nil && n >= v.min {
		*v.dst = n
	}
	return nil
}

type int64Value struct{ dst *int64 }

func (v *int64Value) String() string {
	if v == nil || v.dst == nil {
		return ""
	}
	return strconv.FormatInt(*v.dst, 10)
}

func (v *int64Value) Set(s string) error {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		*v.dst = n
	}
	return nil
}

// extentValue takes a cell count on the command line and stores the
// zero-based maximum.
type extentValue struct{ dst *int }

func (v *extentValue) String() string {
	if v == nil || v.dst == nil {
		return ""
	}
	return strconv.Itoa(*v.dst + 1)
}

func (v *extentValue) Set(s string) error {
	if n, err := strconv.Atoi(s); err == nil && n > 0 {
		*v.dst = n - 1
	}
	return nil
}

type framerateValue struct{ dst *time.Duration }

func (v *framerateValue) String() string {
	if v == nil || v.dst == nil {
		return ""
	}
	if *v.dst <= 0 {
		return "0"
	}
	return strconv.Itoa(int((time.Second + *v.dst/2) / *v.dst))
}

func (v *framerateValue) Set(s string) error {
	if n, err := strconv.Atoi(s); err == nil && n >= 0 {
		*v.dst = IntervalFor(n)
	}
	return nil
}

// LoadFlags binds base and a -completion switch to fs and parses args. When
// -completion is given the script is written to out and done is true.
func LoadFlags(fs *flag.FlagSet, args []string, base Config, out io.Writer) (cfg Config, done bool, err error) {
	c := &base
	c.Bind(fs)
	completion := fs.Bool("completion", false, "print a bash completion script and exit")
	if err := fs.Parse(args); err != nil {
		return *c, false, err
	}
	if *completion {
		return *c, true, WriteBashCompletion(out, filepath.Base(fs.Name()), fs)
	}
	return *c, false, nil
}
