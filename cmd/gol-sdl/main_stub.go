//go:build !sdl

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "The SDL build of gol requires the sdl build tag and SDL2 development libraries.")
	fmt.Fprintln(os.Stderr, "Re-run with `go run -tags sdl ./cmd/gol-sdl`.")
	os.Exit(2)
}
