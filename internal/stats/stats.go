// Package stats tracks population statistics and detects when a simulation
// has settled into a still life or a short cycle.
package stats

import (
	"gonum.org/v1/gonum/stat"

	"life-ca/internal/core"
)

// DefaultHistory is the number of recent grid hashes kept for cycle detection.
const DefaultHistory = 8

// Summary is a point-in-time view of a tracked run.
type Summary struct {
	Generations    uint64
	Population     int
	MinPopulation  int
	MaxPopulation  int
	MeanPopulation float64
	StdDev         float64
	// Period is the cycle length detected on the last observation, or 0 when
	// the latest grid did not repeat a recent one. A still life has period 1.
	Period int
}

// Tracker records the grids of consecutive generations.
type Tracker struct {
	history     []string
	limit       int
	populations []float64
	minPop      int
	maxPop      int
	gen         uint64
	period      int
}

// NewTracker returns a Tracker remembering up to history recent grids.
func NewTracker(history int) *Tracker {
	if history <= 0 {
		history = DefaultHistory
	}
	return &Tracker{limit: history}
}

// Observe records the grid published for generation gen.
func (t *Tracker) Observe(gen uint64, g *core.Grid) {
	pop := g.Population()
	if len(t.populations) == 0 || pop < t.minPop {
		t.minPop = pop
	}
	if pop > t.maxPop {
		t.maxPop = pop
	}
	t.populations = append(t.populations, float64(pop))
	t.gen = gen

	hash := g.Hash()
	t.period = 0
	for i := len(t.history) - 1; i >= 0; i-- {
		if t.history[i] == hash {
			t.period = len(t.history) - i
			break
		}
	}
	t.history = append(t.history, hash)
	if len(t.history) > t.limit {
		t.history = t.history[1:]
	}
}

// Stagnant reports whether the last observed grid repeats one of the recent
// grids.
func (t *Tracker) Stagnant() bool { return t.period > 0 }

// Summary returns the statistics gathered so far.
func (t *Tracker) Summary() Summary {
	s := Summary{
		Generations:   t.gen,
		MinPopulation: t.minPop,
		MaxPopulation: t.maxPop,
		Period:        t.period,
	}
	if n := len(t.populations); n > 0 {
		s.Population = int(t.populations[n-1])
		if n > 1 {
			s.MeanPopulation, s.StdDev = stat.MeanStdDev(t.populations, nil)
		} else {
			s.MeanPopulation = t.populations[0]
		}
	}
	return s
}
