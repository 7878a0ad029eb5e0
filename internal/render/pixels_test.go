package render

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"life-ca/internal/core"
)

func TestFillBinaryRGBA(t *testing.T) {
	g := core.MustParseGrid("O.", ".O")
	buf := make([]byte, 4*4)
	fillBinaryRGBA(buf, g, color.White, color.Black)

	want := []byte{
		255, 255, 255, 255, 0, 0, 0, 255,
		0, 0, 0, 255, 255, 255, 255, 255,
	}
	assert.Equal(t, want, buf)
}

func TestImageScalesCellsToBlocks(t *testing.T) {
	g := core.MustParseGrid(
		"O..",
		"..O",
	)
	img := Image(g, 5, AliveColor, DeadColor)
	require.Equal(t, 15, img.Bounds().Dx())
	require.Equal(t, 10, img.Bounds().Dy())

	for py := 0; py < 10; py++ {
		for px := 0; px < 15; px++ {
			want := DeadColor
			if g.Alive(px/5, py/5) {
				want = AliveColor
			}
			if got := img.RGBAAt(px, py); got != want {
				t.Fatalf("pixel (%d,%d) = %v, want %v", px, py, got, want)
			}
		}
	}
}

func TestImageUnscaled(t *testing.T) {
	g := core.MustParseGrid(".O")
	img := Image(g, 0, AliveColor, DeadColor)
	assert.Equal(t, 2, img.Bounds().Dx())
	assert.Equal(t, AliveColor, img.RGBAAt(1, 0))
	assert.Equal(t, DeadColor, img.RGBAAt(0, 0))
}
