package core

import (
	"crypto/md5"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/pkg/errors"
)

// Cell is the state of a single grid cell.
type Cell uint8

const (
	// Dead marks an empty cell.
	Dead Cell = 0
	// Alive marks a populated cell.
	Alive Cell = 1
)

const (
	runeDead  = '.'
	runeAlive = 'O'
)

// Point addresses a cell by column (X) and row (Y).
type Point struct {
	X, Y int
}

// Grid stores a fixed-size 2D array of cells in row-major order. A Grid is
// never modified after it has been returned by a constructor or by Map.
type Grid struct {
	w, h int
	data []Cell
}

// NewGrid returns a w*h grid with every cell Dead.
func NewGrid(w, h int) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, errors.Wrapf(ErrInvalidSize, "[NewGrid] %dx%d", w, h)
	}
	return &Grid{w: w, h: h, data: make([]Cell, w*h)}, nil
}

// NewRandomGrid returns a w*h grid where each cell is Alive with probability
// 1/2, drawn from rng.
func NewRandomGrid(w, h int, rng *rand.Rand) (*Grid, error) {
	g, err := NewGrid(w, h)
	if err != nil {
		return nil, errors.Wrap(err, "[NewRandomGrid]")
	}
	FillBinary(rng, g.data)
	return g, nil
}

// NewGridFromPoints returns a w*h grid with the listed cells Alive.
func NewGridFromPoints(w, h int, points []Point) (*Grid, error) {
	g, err := NewGrid(w, h)
	if err != nil {
		return nil, errors.Wrap(err, "[NewGridFromPoints]")
	}
	for _, p := range points {
		if !g.contains(p.X, p.Y) {
			return nil, errors.Wrapf(ErrMalformedGrid, "[NewGridFromPoints] point (%d,%d) outside %dx%d", p.X, p.Y, w, h)
		}
		g.data[g.Index(p.X, p.Y)] = Alive
	}
	return g, nil
}

// ParseGrid builds a grid from rows of text where 'O' is Alive and '.' is Dead.
func ParseGrid(rows ...string) (*Grid, error) {
	if len(rows) == 0 {
		return nil, errors.Wrap(ErrInvalidSize, "[ParseGrid] no rows")
	}
	g, err := NewGrid(len(rows[0]), len(rows))
	if err != nil {
		return nil, errors.Wrap(err, "[ParseGrid]")
	}
	for y, row := range rows {
		if len(row) != g.w {
			return nil, errors.Wrapf(ErrMalformedGrid, "[ParseGrid] row %d has %d cells, want %d", y, len(row), g.w)
		}
		for x, r := range row {
			switch r {
			case runeAlive:
				g.data[g.Index(x, y)] = Alive
			case runeDead:
			default:
				return nil, errors.Wrapf(ErrMalformedGrid, "[ParseGrid] unexpected %q at (%d,%d)", r, x, y)
			}
		}
	}
	return g, nil
}

// MustParseGrid is like ParseGrid but panics on error. Intended for tests and
// static tables.
func MustParseGrid(rows ...string) *Grid {
	g, err := ParseGrid(rows...)
	if err != nil {
		panic(err)
	}
	return g
}

// Size returns the grid dimensions.
func (g *Grid) Size() Size { return Size{W: g.w, H: g.h} }

// Width returns the number of columns.
func (g *Grid) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.h }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.w + x }

func (g *Grid) contains(x, y int) bool {
	return x >= 0 && x < g.w && y >= 0 && y < g.h
}

// At returns the cell at (x, y). Coordinates outside the grid read as Dead.
func (g *Grid) At(x, y int) Cell {
	if !g.contains(x, y) {
		return Dead
	}
	return g.data[g.Index(x, y)]
}

// Alive reports whether the cell at (x, y) is Alive.
func (g *Grid) Alive(x, y int) bool { return g.At(x, y) == Alive }

// Cells returns a copy of the row-major cell data.
func (g *Grid) Cells() []Cell {
	return append([]Cell(nil), g.data...)
}

// Map returns a new grid of the same size whose cells are fn applied to every
// cell of g. g itself is left untouched.
func (g *Grid) Map(fn func(x, y int, c Cell) Cell) *Grid {
	next := &Grid{w: g.w, h: g.h, data: make([]Cell, len(g.data))}
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			idx := g.Index(x, y)
			next.data[idx] = fn(x, y, g.data[idx])
		}
	}
	return next
}

// Clone returns a deep copy of g.
func (g *Grid) Clone() *Grid {
	return &Grid{w: g.w, h: g.h, data: g.Cells()}
}

// Equal reports whether both grids have the same size and cells.
func (g *Grid) Equal(o *Grid) bool {
	if g == nil || o == nil {
		return g == o
	}
	if g.w != o.w || g.h != o.h || len(g.data) != len(o.data) {
		return false
	}
	for i := range g.data {
		if g.data[i] != o.data[i] {
			return false
		}
	}
	return true
}

// Population returns the number of Alive cells.
func (g *Grid) Population() (count int) {
	for _, c := range g.data {
		if c == Alive {
			count++
		}
	}
	return
}

// LivePoints lists the Alive cells in row-major order.
func (g *Grid) LivePoints() []Point {
	var pts []Point
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			if g.data[g.Index(x, y)] == Alive {
				pts = append(pts, Point{X: x, Y: y})
			}
		}
	}
	return pts
}

// Hash returns an MD5 digest of the grid state.
func (g *Grid) Hash() string {
	h := md5.New()
	fmt.Fprintf(h, "%dx%d:", g.w, g.h)
	buf := make([]byte, len(g.data))
	for i, c := range g.data {
		buf[i] = byte(c)
	}
	h.Write(buf)
	return fmt.Sprintf("%x", h.Sum(nil))
}

// Validate checks the grid invariants: positive dimensions, a fully
// rectangular backing array and only Dead/Alive values.
func (g *Grid) Validate() error {
	if g == nil {
		return errors.Wrap(ErrMalformedGrid, "[Validate] nil grid")
	}
	if g.w <= 0 || g.h <= 0 {
		return errors.Wrapf(ErrInvalidSize, "[Validate] %dx%d", g.w, g.h)
	}
	if len(g.data) != g.w*g.h {
		return errors.Wrapf(ErrMalformedGrid, "[Validate] %d cells for %dx%d", len(g.data), g.w, g.h)
	}
	for i, c := range g.data {
		if c != Dead && c != Alive {
			return errors.Wrapf(ErrMalformedGrid, "[Validate] cell %d has state %d", i, c)
		}
	}
	return nil
}

// String renders the grid with one text row per grid row.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow((g.w + 1) * g.h)
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			if g.data[g.Index(x, y)] == Alive {
				b.WriteByte(runeAlive)
			} else {
				b.WriteByte(runeDead)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
