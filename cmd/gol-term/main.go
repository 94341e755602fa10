package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"

	"conway/internal/app"
	"conway/internal/core"
	"conway/internal/sims/life"
	"conway/internal/term"
)

func main() {
	log.SetFlags(0)

	// Terminal character cells are about twice as tall as they are wide.
	base := core.DefaultConfig()
	base.MaxX, base.MaxY = 59, 29
	base.CellWidth, base.CellHeight = 2, 1

	cfg, done, err := core.LoadFlags(flag.CommandLine, os.Args[1:], base, os.Stdout)
	if err != nil {
		log.Fatal(err)
	}
	if done {
		return
	}

	screen, err := term.Open()
	if err != nil {
		log.Fatalf("gol-term: %v", err)
	}

	state := life.New(cfg)
	state.Reset()
	loop := app.NewLoop(state, screen, screen)
	// stdout is the terminal being drawn on.
	loop.SetReporter(func(fps float64) { log.Printf("%.1f fps", fps) })

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err = loop.Run(ctx)
	stop()
	screen.Close()
	if err != nil && ctx.Err() == nil {
		log.Fatalf("gol-term: %v", err)
	}
}
