package life

import (
	"github.com/pkg/errors"

	"life-ca/internal/core"
	"life-ca/internal/patterns"
)

// Config controls the Life simulation dimensions and seed.
type Config struct {
	Width  int
	Height int

	// Pattern names the seed placed at (OffsetX, OffsetY); OffsetX counts
	// columns and OffsetY rows. Empty means no pattern.
	Pattern string
	OffsetX int
	OffsetY int

	// Random ignores Pattern and fills the grid from Seed instead.
	Random bool
	Seed   int64
}

// DefaultConfig returns the standard configuration: a glider gun near the
// top-left corner of a 128x72 grid.
func DefaultConfig() Config {
	return Config{
		Width:   128,
		Height:  72,
		Pattern: patterns.GliderGun,
		OffsetX: 10,
		OffsetY: 10,
		Seed:    42,
	}
}

// InitialGrid builds the generation-zero grid described by c.
func (c Config) InitialGrid() (*core.Grid, error) {
	if c.Random {
		g, err := core.NewRandomGrid(c.Width, c.Height, core.NewRNG(c.Seed).Source())
		return g, errors.Wrap(err, "[InitialGrid]")
	}
	if c.Pattern == "" {
		g, err := core.NewGrid(c.Width, c.Height)
		return g, errors.Wrap(err, "[InitialGrid]")
	}
	p, err := patterns.Named(c.Pattern)
	if err != nil {
		return nil, errors.Wrap(err, "[InitialGrid]")
	}
	base, err := core.NewGrid(c.Width, c.Height)
	if err != nil {
		return nil, errors.Wrap(err, "[InitialGrid]")
	}
	g, err := patterns.Place(p, base, c.OffsetX, c.OffsetY)
	return g, errors.Wrap(err, "[InitialGrid]")
}
