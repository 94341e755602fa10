//go:build ebiten

package ui

import (
	"image/color"

	"conway/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

type parameterProvider interface {
	Name() string
	Parameters() core.ParameterSnapshot
}

// HUD renders a read-only status panel to the right of the simulation view.
type HUD struct {
	sim      parameterProvider
	width    int
	panel    *ebiten.Image
	snapshot core.ParameterSnapshot
	fps      float64
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim parameterProvider, width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{sim: sim, width: width}
}

// Update refreshes the cached parameter snapshot from the simulation.
func (h *HUD) Update(fps float64) {
	if h == nil {
		return
	}
	h.snapshot = h.sim.Parameters()
	h.fps = fps
}

// Draw paints the HUD panel anchored at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int) {
	if h == nil || h.width <= 0 {
		return
	}
	height := screen.Bounds().Dy()
	if height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(h.width, height)
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	h.drawParameters()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawParameters() {
	face := basicfont.Face7x13
	labelColor := color.RGBA{R: 220, G: 220, B: 230, A: 255}
	headerColor := color.RGBA{R: 200, G: 200, B: 210, A: 255}

	y := panelPadding + headerBaseline
	text.Draw(h.panel, h.sim.Name(), face, panelPadding, y, headerColor)
	y += lineHeight

	rows := []core.Parameter{core.FloatParam("fps", "Actual fps", h.fps)}
	for _, group := range h.snapshot.Groups {
		rows = append(rows, group.Params...)
	}
	for _, p := range rows {
		text.Draw(h.panel, p.Label, face, panelPadding, y, labelColor)
		bounds := text.BoundString(face, p.Value)
		text.Draw(h.panel, p.Value, face, h.width-panelPadding-bounds.Dx(), y, labelColor)
		y += lineHeight
	}
}

const (
	panelPadding   = 12
	lineHeight     = 20
	headerBaseline = 18
)
