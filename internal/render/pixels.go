package render

import (
	"image"
	"image/color"

	"life-ca/internal/core"
)

// Default cell colours.
var (
	AliveColor = color.RGBA{R: 0xCC, G: 0xAA, B: 0xDD, A: 0xFF}
	DeadColor  = color.RGBA{R: 0x11, G: 0x11, B: 0x11, A: 0xFF}
)

// fillBinaryRGBA converts grid cells into one RGBA pixel per cell in buf.
func fillBinaryRGBA(buf []byte, g *core.Grid, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	w := g.Width()
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < w; x++ {
			base := (y*w + x) * 4
			if g.At(x, y) == core.Alive {
				buf[base+0] = uint8(rOn >> 8)
				buf[base+1] = uint8(gOn >> 8)
				buf[base+2] = uint8(bOn >> 8)
				buf[base+3] = uint8(aOn >> 8)
				continue
			}
			buf[base+0] = uint8(rOff >> 8)
			buf[base+1] = uint8(gOff >> 8)
			buf[base+2] = uint8(bOff >> 8)
			buf[base+3] = uint8(aOff >> 8)
		}
	}
}

// Image draws g with every cell as a scale*scale block of pixels.
func Image(g *core.Grid, scale int, on, off color.Color) *image.RGBA {
	if scale <= 0 {
		scale = 1
	}
	w, h := g.Width(), g.Height()
	cells := image.NewRGBA(image.Rect(0, 0, w, h))
	fillBinaryRGBA(cells.Pix, g, on, off)
	if scale == 1 {
		return cells
	}

	img := image.NewRGBA(image.Rect(0, 0, w*scale, h*scale))
	for py := 0; py < h*scale; py++ {
		row := cells.Pix[(py/scale)*cells.Stride:]
		dst := img.Pix[py*img.Stride:]
		for px := 0; px < w*scale; px++ {
			copy(dst[px*4:px*4+4], row[(px/scale)*4:])
		}
	}
	return img
}
