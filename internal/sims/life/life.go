package life

import (
	"sync/atomic"

	"github.com/pkg/errors"

	"life-ca/internal/core"
	"life-ca/internal/monitoring"
)

// Life implements Conway's Game of Life on a bounded, non-wrapping grid.
// Step and Reset belong to a single driving goroutine; Snapshot and
// Generation may be called from anywhere.
type Life struct {
	cfg     Config
	initial *core.Grid

	cur atomic.Pointer[core.Grid]
	gen atomic.Uint64
}

// New returns a Life simulation seeded according to cfg.
func New(cfg Config) (*Life, error) {
	initial, err := cfg.InitialGrid()
	if err != nil {
		return nil, errors.Wrap(err, "[life.New]")
	}
	l := &Life{cfg: cfg, initial: initial}
	l.cur.Store(initial)
	return l, nil
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return l.initial.Size() }

// Snapshot returns the current generation.
func (l *Life) Snapshot() *core.Grid { return l.cur.Load() }

// Generation returns the number of steps taken since the last reset.
func (l *Life) Generation() uint64 { return l.gen.Load() }

// Reset restores generation zero. Random grids are redrawn from seed; pattern
// seeds are deterministic and ignore it.
func (l *Life) Reset(seed int64) {
	g := l.initial
	if l.cfg.Random {
		rng := core.NewRNG(seed)
		g = l.initial.Map(func(int, int, core.Cell) core.Cell { return rng.Cell() })
	}
	l.cur.Store(g)
	l.gen.Store(0)
	monitoring.Logf("life: reset to generation 0 (population %d)", g.Population())
}

// Step advances the simulation by one generation and publishes the result.
func (l *Life) Step() {
	l.cur.Store(Advance(l.cur.Load()))
	l.gen.Add(1)
}
