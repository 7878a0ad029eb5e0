//go:build ebiten

package render

import (
	"image/color"

	"life-ca/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter keeps one texture texel per grid cell and scales it on draw.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
	last *core.Grid
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Blit uploads g into the painter texture, if it changed since the previous
// call, and draws it scaled onto dst.
func (gp *GridPainter) Blit(dst *ebiten.Image, g *core.Grid, on, off color.Color, scale int) {
	if g == nil || g.Width() != gp.w || g.Height() != gp.h {
		return
	}
	if g != gp.last {
		fillBinaryRGBA(gp.buf, g, on, off)
		gp.img.WritePixels(gp.buf)
		gp.last = g
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
