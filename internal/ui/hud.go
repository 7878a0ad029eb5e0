//go:build ebiten

package ui

import (
	"image/color"

	"life-ca/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	hudPadding    = 4
	hudLineHeight = 13
)

// HUD renders a one-line status bar over the top-left corner of the grid.
type HUD struct {
	sim     core.Sim
	visible bool
	paused  bool
	panel   *ebiten.Image
}

// NewHUD constructs a HUD for the provided simulation.
func NewHUD(sim core.Sim) *HUD {
	return &HUD{sim: sim, visible: true}
}

// Update toggles visibility on H and records the pause state for display.
func (h *HUD) Update(paused bool) {
	if h == nil {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		h.visible = !h.visible
	}
	h.paused = paused
}

// Draw paints the status bar onto screen.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil || !h.visible {
		return
	}
	line := StatusLine(h.sim.Generation(), h.sim.Snapshot().Population(), h.paused)
	width := len(line)*basicfont.Face7x13.Advance + 2*hudPadding
	height := hudLineHeight + 2*hudPadding
	if h.panel == nil || h.panel.Bounds().Dx() != width {
		h.panel = ebiten.NewImage(width, height)
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 200})
	text.Draw(h.panel, line, basicfont.Face7x13, hudPadding, hudPadding+basicfont.Face7x13.Ascent, color.White)
	screen.DrawImage(h.panel, nil)
}
