package core

import "testing"

func TestIndexCoordsRoundTrip(t *testing.T) {
	for _, dims := range [][2]int{{0, 0}, {4, 2}, {2, 6}, {9, 9}} {
		g := NewGrid(dims[0], dims[1])
		for y := 0; y <= g.MaxY; y++ {
			for x := 0; x <= g.MaxX; x++ {
				i, ok := g.Index(x, y)
				if !ok {
					t.Fatalf("%dx%d: (%d,%d) reported absent", dims[0], dims[1], x, y)
				}
				if i < 0 || i >= g.Len() {
					t.Fatalf("%dx%d: index %d out of range for (%d,%d)", dims[0], dims[1], i, x, y)
				}
				if gx, gy := g.Coords(i); gx != x || gy != y {
					t.Fatalf("Coords(Index(%d,%d)) = (%d,%d)", x, y, gx, gy)
				}
			}
		}
	}
}

func TestIndexAbsent(t *testing.T) {
	g := NewGrid(4, 3)
	cases := [][2]int{{-1, 0}, {0, -1}, {5, 0}, {0, 4}, {-1, -1}, {5, 4}, {100, 1}}
	for _, c := range cases {
		if i, ok := g.Index(c[0], c[1]); ok || i != -1 {
			t.Fatalf("Index(%d,%d) = %d,%v, expected absent", c[0], c[1], i, ok)
		}
		if g.Alive(c[0], c[1]) {
			t.Fatalf("off-board (%d,%d) reported alive", c[0], c[1])
		}
	}
}

func TestNeighborsBoundary(t *testing.T) {
	g := NewGrid(4, 4)
	for i := range g.Cells() {
		g.Cells()[i] = true
	}
	for i := 0; i < g.Len(); i++ {
		x, y := g.Coords(i)
		n := g.Neighbors(i)
		if n < 0 || n > 8 {
			t.Fatalf("(%d,%d) count %d outside [0,8]", x, y, n)
		}
		onX := x == 0 || x == g.MaxX
		onY := y == 0 || y == g.MaxY
		want := 8
		switch {
		case onX && onY:
			want = 3
		case onX || onY:
			want = 5
		}
		if n != want {
			t.Fatalf("(%d,%d) full board count %d, expected %d", x, y, n, want)
		}
	}
}

func TestNeighborsDoNotWrap(t *testing.T) {
	g := NewGrid(4, 4)
	g.Set(4, 0, true)
	g.Set(0, 4, true)
	g.Set(4, 4, true)
	i, _ := g.Index(0, 0)
	if n := g.Neighbors(i); n != 0 {
		t.Fatalf("corner saw %d neighbors through the opposite edges", n)
	}
}

func TestNeighborsIgnoresSelf(t *testing.T) {
	g := NewGrid(2, 2)
	g.Set(1, 1, true)
	i, _ := g.Index(1, 1)
	if n := g.Neighbors(i); n != 0 {
		t.Fatalf("live cell counted itself: %d", n)
	}
}

func TestToggleTwiceRestores(t *testing.T) {
	g := NewGrid(3, 3)
	g.Set(1, 2, true)
	before := append([]bool(nil), g.Cells()...)
	if !g.Toggle(1, 2) || !g.Toggle(1, 2) {
		t.Fatal("on-board toggle reported absent")
	}
	for i, c := range g.Cells() {
		if c != before[i] {
			t.Fatalf("cell %d changed after double toggle", i)
		}
	}
	if g.Toggle(3, 7) {
		t.Fatal("off-board toggle reported success")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	g := NewGrid(2, 2)
	g.Set(0, 0, true)
	c := g.Clone()
	g.Set(0, 0, false)
	if !c.Alive(0, 0) {
		t.Fatal("clone shares storage with the source grid")
	}
	if c.Population() != 1 {
		t.Fatalf("clone population %d, expected 1", c.Population())
	}
}

func TestFillRandomDeterministic(t *testing.T) {
	a, b := NewGrid(15, 15), NewGrid(15, 15)
	NewRNG(7).FillRandom(a)
	NewRNG(7).FillRandom(b)
	for i := range a.Cells() {
		if a.Cells()[i] != b.Cells()[i] {
			t.Fatalf("seeded fill differs at %d", i)
		}
	}
	if p := a.Population(); p == 0 || p == a.Len() {
		t.Fatalf("random fill produced degenerate population %d", p)
	}
}
