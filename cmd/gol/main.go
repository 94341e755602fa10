//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"conway/internal/app"
	"conway/internal/core"
	"conway/internal/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	log.SetFlags(0)
	cfg, done, err := core.LoadFlags(flag.CommandLine, os.Args[1:], core.DefaultConfig(), os.Stdout)
	if err != nil {
		log.Fatal(err)
	}
	if done {
		return
	}

	state := life.New(cfg)
	state.Reset()

	game := app.New(state)
	w, h := game.WindowSize()

	ebiten.SetWindowTitle("Conway's Game of Life")
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowClosingHandled(true)
	// Update paces itself, so it must run exactly once per frame.
	ebiten.SetTPS(ebiten.SyncWithFPS)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatalf("gol: %v", err)
	}
}
