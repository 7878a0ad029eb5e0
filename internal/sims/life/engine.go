package life

import "life-ca/internal/core"

// Transition thresholds for Conway's rule B3/S23.
const (
	// MinSurvive is the fewest live neighbors a live cell needs to survive.
	MinSurvive = 2
	// MaxSurvive is the most live neighbors a live cell can have and survive.
	MaxSurvive = 3
	// BirthCount is the exact live neighbor count that brings a dead cell to life.
	BirthCount = 3
)

// CountNeighbors returns the number of Alive cells among the up to eight cells
// adjacent to (x, y). The grid edge is a hard boundary: nothing wraps around
// and cells beyond it are not counted.
func CountNeighbors(g *core.Grid, x, y int) int {
	minX := max(0, x-1)
	maxX := min(g.Width()-1, x+1)
	minY := max(0, y-1)
	maxY := min(g.Height()-1, y+1)

	count := 0
	for ny := minY; ny <= maxY; ny++ {
		for nx := minX; nx <= maxX; nx++ {
			if nx == x && ny == y {
				continue
			}
			if g.At(nx, ny) == core.Alive {
				count++
			}
		}
	}
	return count
}

// Next returns the state of a cell in the following generation given its
// current state and live neighbor count.
func Next(c core.Cell, neighbors int) core.Cell {
	if c == core.Alive {
		if neighbors < MinSurvive || neighbors > MaxSurvive {
			return core.Dead
		}
		return core.Alive
	}
	if neighbors == BirthCount {
		return core.Alive
	}
	return core.Dead
}

// Advance returns the generation after g. g is not modified; exactly one new
// grid is allocated.
func Advance(g *core.Grid) *core.Grid {
	if core.DebugChecks {
		if err := g.Validate(); err != nil {
			panic(err)
		}
	}
	return g.Map(func(x, y int, c core.Cell) core.Cell {
		return Next(c, CountNeighbors(g, x, y))
	})
}

// AdvanceN applies Advance n times.
func AdvanceN(g *core.Grid, n int) *core.Grid {
	for i := 0; i < n; i++ {
		g = Advance(g)
	}
	return g
}
