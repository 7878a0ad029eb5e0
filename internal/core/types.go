package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim defines the contract between an automaton and the loops that drive and
// draw it.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	// Snapshot returns the currently published generation. The returned grid
	// is never modified afterwards.
	Snapshot() *Grid
	Generation() uint64
}
