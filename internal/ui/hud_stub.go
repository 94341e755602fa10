//go:build !ebiten

package ui

import "conway/internal/core"

type parameterProvider interface {
	Name() string
	Parameters() core.ParameterSnapshot
}

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(parameterProvider, int) *HUD { return nil }

// Update is a no-op in the headless build.
func (h *HUD) Update(float64) {}

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any, int) {}
