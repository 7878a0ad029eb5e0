// Package patterns holds the static seed pattern tables and the compositor
// that places them into simulation grids.
package patterns

import (
	"maps"
	"slices"

	"github.com/pkg/errors"

	"life-ca/internal/core"
)

// ErrUnknownPattern is returned by Named for names missing from the library.
var ErrUnknownPattern = errors.New("unknown pattern")

// GliderGun is the name of the Gosper glider gun, the default seed.
const GliderGun = "glider-gun"

// Pattern is an immutable named seed template.
type Pattern struct {
	name string
	grid *core.Grid
}

// Name returns the library name of the pattern.
func (p Pattern) Name() string { return p.name }

// Size returns the template dimensions.
func (p Pattern) Size() core.Size { return p.grid.Size() }

// Width returns the number of template columns.
func (p Pattern) Width() int { return p.grid.Width() }

// Height returns the number of template rows.
func (p Pattern) Height() int { return p.grid.Height() }

// Grid returns the template cells. Grids are immutable, so the template can be
// shared freely.
func (p Pattern) Grid() *core.Grid { return p.grid }

type table struct {
	w, h  int
	cells []core.Point
}

// Coordinates are (column, row) inside the template.
var tables = map[string]table{
	GliderGun: {
		w: 38, h: 10,
		cells: []core.Point{
			// right block
			{36, 3}, {36, 4}, {35, 3}, {35, 4},

			// right arm
			{X: 25, Y: 1}, {X: 25, Y: 2}, {X: 23, Y: 2},
			{X: 21, Y: 3}, {X: 21, Y: 4}, {X: 21, Y: 5},
			{X: 22, Y: 3}, {X: 22, Y: 4}, {X: 22, Y: 5},
			{23, 6}, {25, 6}, {25, 7},

			// hook
			{X: 18, Y: 6}, {X: 17, Y: 5}, {X: 17, Y: 6}, {X: 17, Y: 7},
			{X: 16, Y: 4}, {X: 16, Y: 8}, {X: 15, Y: 6},
			{X: 14, Y: 3}, {X: 13, Y: 3}, {X: 14, Y: 9}, {X: 13, Y: 9},
			{X: 12, Y: 4}, {X: 12, Y: 8},
			{11, 5}, {11, 6}, {11, 7},

			// left block
			{1, 5}, {2, 5}, {1, 6}, {2, 6},
		},
	},
	"glider": {
		w: 3, h: 3,
		cells: []core.Point{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}},
	},
	"block": {
		w: 2, h: 2,
		cells: []core.Point{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
	},
	"blinker": {
		w: 3, h: 1,
		cells: []core.Point{{0, 0}, {1, 0}, {2, 0}},
	},
	"toad": {
		w: 4, h: 2,
		cells: []core.Point{{1, 0}, {2, 0}, {3, 0}, {0, 1}, {1, 1}, {2, 1}},
	},
	"lwss": {
		w: 5, h: 4,
		cells: []core.Point{
			{X: 1, Y: 0}, {X: 4, Y: 0},
			{X: 0, Y: 1},
			{X: 0, Y: 2}, {X: 4, Y: 2},
			{0, 3}, {1, 3}, {2, 3}, {3, 3},
		},
	},
}

var library = buildLibrary()

func buildLibrary() map[string]Pattern {
	lib := make(map[string]Pattern, len(tables))
	for name, t := range tables {
		g, err := core.NewGridFromPoints(t.w, t.h, t.cells)
		if err != nil {
			panic(errors.Wrapf(err, "pattern table %q", name))
		}
		lib[name] = Pattern{name: name, grid: g}
	}
	return lib
}

// Named returns the pattern registered under name.
func Named(name string) (Pattern, error) {
	p, ok := library[name]
	if !ok {
		return Pattern{}, errors.Wrapf(ErrUnknownPattern, "[Named] %q", name)
	}
	return p, nil
}

// Names lists the known pattern names in sorted order.
func Names() []string {
	return slices.Sorted(maps.Keys(library))
}
