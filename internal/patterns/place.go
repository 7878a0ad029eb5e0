package patterns

import (
	"github.com/pkg/errors"

	"life-ca/internal/core"
)

// ErrOutOfBounds is returned when a pattern would not fit inside the target
// grid at the requested offset.
var ErrOutOfBounds = errors.New("pattern placement out of bounds")

// Placement positions a pattern's top-left corner at column X, row Y.
type Placement struct {
	Pattern Pattern
	X, Y    int
}

// Place returns a new grid the size of base, all Dead except for p's cells
// shifted right by x columns and down by y rows. A pattern that does not fit
// entirely inside base is rejected with ErrOutOfBounds; it is never clipped
// or wrapped. Neither base nor p is modified.
func Place(p Pattern, base *core.Grid, x, y int) (*core.Grid, error) {
	if err := checkFit(p, base, x, y); err != nil {
		return nil, errors.Wrap(err, "[Place]")
	}
	return base.Map(func(cx, cy int, _ core.Cell) core.Cell {
		return p.grid.At(cx-x, cy-y)
	}), nil
}

// Overlay is like Place but keeps the Alive cells already present in base.
func Overlay(p Pattern, base *core.Grid, x, y int) (*core.Grid, error) {
	if err := checkFit(p, base, x, y); err != nil {
		return nil, errors.Wrap(err, "[Overlay]")
	}
	return base.Map(func(cx, cy int, c core.Cell) core.Cell {
		if c == core.Alive {
			return c
		}
		return p.grid.At(cx-x, cy-y)
	}), nil
}

// Compose overlays each placement, in order, onto an empty w*h grid.
func Compose(w, h int, placements ...Placement) (*core.Grid, error) {
	g, err := core.NewGrid(w, h)
	if err != nil {
		return nil, errors.Wrap(err, "[Compose]")
	}
	for _, pl := range placements {
		if g, err = Overlay(pl.Pattern, g, pl.X, pl.Y); err != nil {
			return nil, errors.Wrapf(err, "[Compose] %s at (%d,%d)", pl.Pattern.Name(), pl.X, pl.Y)
		}
	}
	return g, nil
}

func checkFit(p Pattern, base *core.Grid, x, y int) error {
	if p.grid == nil {
		return errors.Wrap(ErrUnknownPattern, "zero pattern")
	}
	if x < 0 || y < 0 || x+p.Width() > base.Width() || y+p.Height() > base.Height() {
		return errors.Wrapf(ErrOutOfBounds, "%dx%d pattern at (%d,%d) in %dx%d grid",
			p.Width(), p.Height(), x, y, base.Width(), base.Height())
	}
	return nil
}
