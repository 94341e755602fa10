//go:build sdl

package main

import (
	"context"
	"flag"
	"log"
	"os"
	"runtime"

	"conway/internal/app"
	"conway/internal/core"
	"conway/internal/sdl"
	"conway/internal/sims/life"
)

// SDL video and event calls must stay on the main OS thread.
func init() {
	runtime.LockOSThread()
}

func main() {
	log.SetFlags(0)
	cfg, done, err := core.LoadFlags(flag.CommandLine, os.Args[1:], core.DefaultConfig(), os.Stdout)
	if err != nil {
		log.Fatal(err)
	}
	if done {
		return
	}

	w, h := cfg.WindowSize()
	window, err := sdl.NewWindow("Conway's Game of Life", w, h)
	if err != nil {
		log.Fatalf("gol-sdl: %v", err)
	}

	state := life.New(cfg)
	state.Reset()
	err = app.NewLoop(state, window, window).Run(context.Background())
	window.Destroy()
	if err != nil {
		log.Fatalf("gol-sdl: %v", err)
	}
}
