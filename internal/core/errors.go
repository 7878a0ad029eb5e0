package core

import "github.com/pkg/errors"

var (
	// ErrInvalidSize is returned when a grid is requested with a zero or
	// negative dimension.
	ErrInvalidSize = errors.New("invalid grid size")
	// ErrMalformedGrid is returned when grid data is ragged, out of range or
	// otherwise breaks the grid invariants.
	ErrMalformedGrid = errors.New("malformed grid")
)
