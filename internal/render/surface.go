package render

import (
	"image"
	"image/color"

	"conway/internal/core"
)

// Surface is a display that accepts filled rectangles and shows everything
// drawn since the last Present in one go.
type Surface interface {
	Clear(bg color.Color)
	FillRects(fg color.Color, rects []image.Rectangle)
	Present() error
}

var (
	// Background is the color of dead cells.
	Background color.Color = color.White
	// Foreground is the color of live cells.
	Foreground color.Color = color.Black
)

// Painter turns a grid into one rectangle per live cell.
type Painter struct {
	cellW, cellH int
	rects        []image.Rectangle
}

// NewPainter constructs a Painter using the cell size from cfg.
func NewPainter(cfg core.Config) *Painter {
	return &Painter{cellW: cfg.CellWidth, cellH: cfg.CellHeight}
}

// Rects returns the pixel rectangles of every live cell in g. The slice is
// reused by the next call.
func (p *Painter) Rects(g *core.Grid) []image.Rectangle {
	p.rects = p.rects[:0]
	for i, alive := range g.Cells() {
		if !alive {
			continue
		}
		x, y := g.Coords(i)
		pt := image.Pt(x*p.cellW, y*p.cellH)
		p.rects = append(p.rects, image.Rectangle{Min: pt, Max: pt.Add(image.Pt(p.cellW, p.cellH))})
	}
	return p.rects
}

// Draw clears s, fills the live cells of g and presents the frame.
func (p *Painter) Draw(s Surface, g *core.Grid) error {
	s.Clear(Background)
	s.FillRects(Foreground, p.Rects(g))
	return s.Present()
}
