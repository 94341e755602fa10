package core

// Grid stores boolean cell states in row-major order on a finite board.
// Coordinates outside [0,MaxX] x [0,MaxY] are absent: they never wrap and are
// never alive.
type Grid struct {
	MaxX, MaxY int
	cells      []bool
}

// NewGrid allocates a dead grid with the given zero-based maxima.
func NewGrid(maxX, maxY int) *Grid {
	if maxX < 0 {
		maxX = 0
	}
	if maxY < 0 {
		maxY = 0
	}
	return &Grid{MaxX: maxX, MaxY: maxY, cells: make([]bool, (maxX+1)*(maxY+1))}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid) Cells() []bool { return g.cells }

// Len returns the number of cells.
func (g *Grid) Len() int { return len(g.cells) }

// Size returns the grid dimensions in cells.
func (g *Grid) Size() Size { return Size{W: g.MaxX + 1, H: g.MaxY + 1} }

// Index returns the linear slice index for (x, y) and whether the coordinate
// lies on the board.
func (g *Grid) Index(x, y int) (int, bool) {
	if x < 0 || y < 0 || x > g.MaxX || y > g.MaxY {
		return -1, false
	}
	return x + y*(g.MaxX+1), true
}

// Coords is the inverse of Index for any i in [0, Len()).
func (g *Grid) Coords(i int) (x, y int) {
	w := g.MaxX + 1
	return i % w, i / w
}

// Alive reports whether (x, y) is on the board and alive.
func (g *Grid) Alive(x, y int) bool {
	i, ok := g.Index(x, y)
	return ok && g.cells[i]
}

// Set assigns a cell state. Off-board coordinates are ignored.
func (g *Grid) Set(x, y int, alive bool) {
	if i, ok := g.Index(x, y); ok {
		g.cells[i] = alive
	}
}

// Toggle flips the cell at (x, y) and reports whether it was on the board.
func (g *Grid) Toggle(x, y int) bool {
	i, ok := g.Index(x, y)
	if !ok {
		return false
	}
	g.cells[i] = !g.cells[i]
	return true
}

// Neighbors counts the live cells around index i. Absent neighbors past the
// edge of the board are skipped, so corners see at most 3 and edges at most 5.
func (g *Grid) Neighbors(i int) int {
	ox, oy := g.Coords(i)
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if j, ok := g.Index(ox+dx, oy+dy); ok && g.cells[j] {
				n++
			}
		}
	}
	return n
}

// Population returns the number of live cells.
func (g *Grid) Population() int {
	n := 0
	for _, c := range g.cells {
		if c {
			n++
		}
	}
	return n
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	c := NewGrid(g.MaxX, g.MaxY)
	copy(c.cells, g.cells)
	return c
}
