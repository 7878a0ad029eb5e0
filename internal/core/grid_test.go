package core

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGridAllDead(t *testing.T) {
	g, err := NewGrid(7, 4)
	require.NoError(t, err)
	assert.Equal(t, Size{W: 7, H: 4}, g.Size())
	assert.Equal(t, 0, g.Population())
	assert.Len(t, g.Cells(), 28)
	require.NoError(t, g.Validate())
}

func TestNewGridRejectsBadSize(t *testing.T) {
	for _, tc := range []struct{ w, h int }{{0, 3}, {3, 0}, {0, 0}, {-1, 5}, {5, -2}} {
		g, err := NewGrid(tc.w, tc.h)
		if !errors.Is(err, ErrInvalidSize) {
			t.Fatalf("NewGrid(%d, %d) err = %v, want ErrInvalidSize", tc.w, tc.h, err)
		}
		if g != nil {
			t.Fatalf("NewGrid(%d, %d) returned a grid alongside an error", tc.w, tc.h)
		}
	}
}

func TestNewRandomGridDeterministic(t *testing.T) {
	a, err := NewRandomGrid(32, 16, NewRNG(7).Source())
	require.NoError(t, err)
	b, err := NewRandomGrid(32, 16, NewRNG(7).Source())
	require.NoError(t, err)

	if !a.Equal(b) {
		t.Fatal("same seed produced different grids")
	}
	require.NoError(t, a.Validate())

	pop := a.Population()
	if pop == 0 || pop == 32*16 {
		t.Fatalf("population %d is implausible for p=1/2", pop)
	}

	_, err = NewRandomGrid(0, 16, NewRNG(7).Source())
	assert.True(t, errors.Is(err, ErrInvalidSize))
}

func TestParseGrid(t *testing.T) {
	g, err := ParseGrid(
		"O..",
		".O.",
		"..O",
	)
	require.NoError(t, err)
	want := []Point{{0, 0}, {1, 1}, {2, 2}}
	if diff := cmp.Diff(want, g.LivePoints()); diff != "" {
		t.Fatalf("live points mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "O..\n.O.\n..O\n", g.String())
}

func TestParseGridRejectsRaggedRows(t *testing.T) {
	_, err := ParseGrid("OO.", "O.")
	assert.True(t, errors.Is(err, ErrMalformedGrid), "got %v", err)

	_, err = ParseGrid("O?")
	assert.True(t, errors.Is(err, ErrMalformedGrid), "got %v", err)

	_, err = ParseGrid()
	assert.True(t, errors.Is(err, ErrInvalidSize), "got %v", err)

	_, err = ParseGrid("")
	assert.True(t, errors.Is(err, ErrInvalidSize), "got %v", err)
}

func TestNewGridFromPoints(t *testing.T) {
	g, err := NewGridFromPoints(4, 3, []Point{{3, 0}, {0, 2}})
	require.NoError(t, err)
	assert.True(t, g.Alive(3, 0))
	assert.True(t, g.Alive(0, 2))
	assert.Equal(t, 2, g.Population())

	_, err = NewGridFromPoints(4, 3, []Point{{4, 0}})
	assert.True(t, errors.Is(err, ErrMalformedGrid))
}

func TestAtOutsideGridIsDead(t *testing.T) {
	g := MustParseGrid("OO", "OO")
	for _, p := range []Point{{-1, 0}, {0, -1}, {2, 0}, {0, 2}, {-1, -1}, {2, 2}} {
		if g.At(p.X, p.Y) != Dead {
			t.Fatalf("At(%d,%d) should read Dead outside the grid", p.X, p.Y)
		}
	}
}

func TestMapLeavesReceiverUntouched(t *testing.T) {
	g := MustParseGrid("O.", ".O")
	before := g.Clone()

	inv := g.Map(func(_, _ int, c Cell) Cell { return 1 - c })

	if !g.Equal(before) {
		t.Fatal("Map modified its receiver")
	}
	assert.Equal(t, ".O\nO.\n", inv.String())
}

func TestCellsReturnsCopy(t *testing.T) {
	g := MustParseGrid("..")
	cells := g.Cells()
	cells[0] = Alive
	assert.Equal(t, Dead, g.At(0, 0))
}

func TestHashAndEqual(t *testing.T) {
	a := MustParseGrid("O.", "..")
	b := MustParseGrid("O.", "..")
	c := MustParseGrid(".O", "..")
	d := MustParseGrid("O...")

	assert.True(t, a.Equal(b))
	assert.Equal(t, a.Hash(), b.Hash())
	assert.False(t, a.Equal(c))
	assert.NotEqual(t, a.Hash(), c.Hash())
	assert.False(t, a.Equal(d))
	assert.NotEqual(t, a.Hash(), d.Hash())
}

func TestValidateCatchesBrokenInvariants(t *testing.T) {
	ragged := &Grid{w: 3, h: 2, data: make([]Cell, 5)}
	assert.True(t, errors.Is(ragged.Validate(), ErrMalformedGrid))

	bad := &Grid{w: 1, h: 1, data: []Cell{2}}
	assert.True(t, errors.Is(bad.Validate(), ErrMalformedGrid))

	empty := &Grid{}
	assert.True(t, errors.Is(empty.Validate(), ErrInvalidSize))

	var nilGrid *Grid
	assert.Error(t, nilGrid.Validate())
}
