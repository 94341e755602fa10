package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"slices"
	"strconv"
	"strings"
	"time"

	"conway/internal/core"
	"conway/internal/sims/life"
)

type intList []int

func (l *intList) String() string {
	parts := make([]string, len(*l))
	for i, n := range *l {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ",")
}

func (l *intList) Set(value string) error {
	for _, part := range strings.Split(value, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || n < 1 {
			return fmt.Errorf("invalid worker count %q", part)
		}
		*l = append(*l, n)
	}
	return nil
}

type result struct {
	workers int
	elapsed time.Duration
	grid    *core.Grid
}

func main() {
	log.SetFlags(0)
	fs := flag.CommandLine
	steps := fs.Int("steps", 200, "generations to compute per run")
	var sweep intList
	fs.Var(&sweep, "sweep", "comma separated worker counts to compare (repeatable)")

	base := core.DefaultConfig()
	base.Seed = 1337
	cfg, done, err := core.LoadFlags(fs, os.Args[1:], base, os.Stdout)
	if err != nil {
		log.Fatal(err)
	}
	if done {
		return
	}
	if len(sweep) == 0 {
		sweep = intList{1, 2, runtime.NumCPU()}
	}
	if !slices.Contains(sweep, 1) {
		sweep = append(intList{1}, sweep...)
	}

	size := cfg.GridSize()
	fmt.Printf("grid %dx%d, seed %d, %d generations per run\n", size.W, size.H, cfg.Seed, *steps)

	var results []result
	for _, workers := range sweep {
		results = append(results, run(cfg, workers, *steps))
	}

	baseline := results[slices.IndexFunc(results, func(r result) bool { return r.workers == 1 })]
	mismatch := false
	for _, res := range results {
		rate := float64(*steps) / res.elapsed.Seconds()
		status := "ok"
		if !slices.Equal(res.grid.Cells(), baseline.grid.Cells()) {
			status = "MISMATCH"
			mismatch = true
		}
		fmt.Printf("workers=%-3d elapsed=%-10s gen/s=%-9.1f speedup=%-5.2f population=%-6d %s\n",
			res.workers, res.elapsed.Round(time.Millisecond), rate,
			baseline.elapsed.Seconds()/res.elapsed.Seconds(), res.grid.Population(), status)
	}
	if mismatch {
		os.Exit(1)
	}
}

func run(cfg core.Config, workers, steps int) result {
	cfg.Workers = workers
	state := life.New(cfg)
	state.Reset()

	start := time.Now()
	for i := 0; i < steps; i++ {
		state.Step()
	}
	elapsed := time.Since(start)

	return result{
		workers: workers,
		elapsed: elapsed,
		grid:    state.Grid().Clone(),
	}
}
