package life

import (
	"slices"
	"sync/atomic"
	"testing"
	"time"

	"conway/internal/core"
)

func TestRule(t *testing.T) {
	for n := 0; n <= 8; n++ {
		if got, want := Rule(true, n), n == 2 || n == 3; got != want {
			t.Fatalf("alive with %d neighbors -> %v, expected %v", n, got, want)
		}
		if got, want := Rule(false, n), n == 3; got != want {
			t.Fatalf("dead with %d neighbors -> %v, expected %v", n, got, want)
		}
	}
}

func TestNextParallelMatchesSequential(t *testing.T) {
	for _, dims := range [][2]int{{0, 0}, {1, 40}, {63, 17}, {99, 99}} {
		snap := core.NewGrid(dims[0], dims[1])
		core.NewRNG(42).FillRandom(snap)
		frozen := slices.Clone(snap.Cells())

		want := core.NewGrid(dims[0], dims[1])
		Next(snap, want, 1)
		for _, workers := range []int{2, 3, 7, 64, 1000} {
			got := core.NewGrid(dims[0], dims[1])
			Next(snap, got, workers)
			if !slices.Equal(want.Cells(), got.Cells()) {
				t.Fatalf("%v grid: %d workers disagree with sequential", dims, workers)
			}
		}
		if !slices.Equal(frozen, snap.Cells()) {
			t.Fatalf("%v grid: snapshot modified by Next", dims)
		}
	}
}

func TestNextMatchesPerCellRule(t *testing.T) {
	snap := core.NewGrid(30, 20)
	core.NewRNG(3).FillRandom(snap)
	out := core.NewGrid(30, 20)
	Next(snap, out, 4)
	for i, alive := range snap.Cells() {
		if want := Rule(alive, snap.Neighbors(i)); out.Cells()[i] != want {
			x, y := snap.Coords(i)
			t.Fatalf("cell (%d,%d) = %v, expected %v", x, y, out.Cells()[i], want)
		}
	}
}

func TestFillAndClearAnySize(t *testing.T) {
	for _, dims := range [][2]int{{0, 0}, {0, 5}, {5, 0}, {31, 9}} {
		g := core.NewGrid(dims[0], dims[1])
		for _, workers := range []int{1, 4} {
			Fill(g, true, workers)
			if p := g.Population(); p != g.Len() {
				t.Fatalf("%v fill with %d workers: population %d of %d", dims, workers, p, g.Len())
			}
			Fill(g, false, workers)
			if p := g.Population(); p != 0 {
				t.Fatalf("%v clear with %d workers: population %d", dims, workers, p)
			}
		}
	}
}

func TestForChunksBoundsWorkers(t *testing.T) {
	g := core.NewGrid(9, 36)
	for _, workers := range []int{2, 3, 5, 100} {
		visits := make([]int32, g.Len())
		var active, peak int32
		forChunks(g, workers, func(lo, hi int) {
			n := atomic.AddInt32(&active, 1)
			for {
				p := atomic.LoadInt32(&peak)
				if n <= p || atomic.CompareAndSwapInt32(&peak, p, n) {
					break
				}
			}
			for i := lo; i < hi; i++ {
				atomic.AddInt32(&visits[i], 1)
			}
			time.Sleep(time.Millisecond)
			atomic.AddInt32(&active, -1)
		})
		if limit := int32(min(workers, g.Size().H)); peak > limit {
			t.Fatalf("workers=%d: %d chunks ran at once", workers, peak)
		}
		for i, v := range visits {
			if v != 1 {
				t.Fatalf("workers=%d: cell %d visited %d times", workers, i, v)
			}
		}
	}
}

func BenchmarkNext(b *testing.B) {
	snap := core.NewGrid(199, 199)
	core.NewRNG(1).FillRandom(snap)
	out := core.NewGrid(199, 199)
	b.Run("sequential", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			Next(snap, out, 1)
		}
	})
	b.Run("parallel", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			Next(snap, out, 4)
		}
	})
}
