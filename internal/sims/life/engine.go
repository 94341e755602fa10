package life

import (
	"conway/internal/core"

	"golang.org/x/sync/errgroup"
)

// Rule reports the next state of a cell given its current state and live
// neighbor count: survival on 2 or 3, birth on exactly 3.
func Rule(alive bool, neighbors int) bool {
	return neighbors == 3 || (alive && neighbors == 2)
}

// Next computes the generation after snapshot into out. snapshot is only
// read, and each worker writes a disjoint range of out, so the result does not
// depend on the worker count or scheduling. out must not alias snapshot.
func Next(snapshot, out *core.Grid, workers int) {
	src := snapshot.Cells()
	dst := out.Cells()
	forChunks(snapshot, workers, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			dst[i] = Rule(src[i], snapshot.Neighbors(i))
		}
	})
}

// Fill sets every cell of g to the given state, fanning out like Next.
func Fill(g *core.Grid, alive bool, workers int) {
	cells := g.Cells()
	forChunks(g, workers, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			cells[i] = alive
		}
	})
}

// chunksPerWorker is how many row chunks each worker is handed on average.
const chunksPerWorker = 4

// forChunks splits the cell range of g into row-aligned chunks and runs fn on
// each, with at most workers chunks in flight. It returns once every chunk is
// done.
func forChunks(g *core.Grid, workers int, fn func(lo, hi int)) {
	size := g.Size()
	if workers > size.H {
		workers = size.H
	}
	if workers <= 1 {
		fn(0, g.Len())
		return
	}

	chunks := min(workers*chunksPerWorker, size.H)
	rowsPerChunk := (size.H + chunks - 1) / chunks
	var eg errgroup.Group
	eg.SetLimit(workers)
	for startRow := 0; startRow < size.H; startRow += rowsPerChunk {
		endRow := min(startRow+rowsPerChunk, size.H)
		lo, hi := startRow*size.W, endRow*size.W
		eg.Go(func() error {
			fn(lo, hi)
			return nil
		})
	}
	// Chunks never fail.
	_ = eg.Wait()
}
