// Package runner drives a simulation from timer ticks without a window.
package runner

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"life-ca/internal/core"
	"life-ca/internal/monitoring"
	"life-ca/internal/stats"
	"life-ca/internal/timeutil"
)

// Options controls a headless run.
type Options struct {
	// Tick is the time between generations.
	Tick time.Duration
	// Generations stops the run after this many steps; 0 runs until the
	// context is cancelled.
	Generations uint64
	// LogEvery logs a progress line every n generations; 0 disables it.
	LogEvery uint64
	// StopWhenStagnant ends the run once the grid repeats a recent state.
	StopWhenStagnant bool
	// History is the number of recent grids used for stagnation checks.
	History int
}

// Run steps sim once per timer tick until the generation limit is reached,
// the grid stagnates (if requested) or ctx is cancelled. Cancellation is a
// normal way to stop and is not reported as an error.
func Run(ctx context.Context, sim core.Sim, clock timeutil.Clock, opts Options) (stats.Summary, error) {
	if clock == nil {
		clock = timeutil.RealClock{}
	}
	tracker := stats.NewTracker(opts.History)
	tracker.Observe(sim.Generation(), sim.Snapshot())

	ticks := core.NewTickCounter()
	ctx, stop := context.WithCancel(ctx)
	defer stop()

	start := clock.Now()
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return ticks.Run(gctx, clock, opts.Tick)
	})
	g.Go(func() error {
		defer stop()
		for {
			if opts.Generations > 0 && sim.Generation() >= opts.Generations {
				return nil
			}
			select {
			case <-gctx.Done():
				return nil
			case <-ticks.C():
			}
			if !ticks.Poll() {
				continue
			}

			sim.Step()
			gen := sim.Generation()
			tracker.Observe(gen, sim.Snapshot())

			if opts.LogEvery > 0 && gen%opts.LogEvery == 0 {
				s := tracker.Summary()
				monitoring.Logf("gen %d: population %d (mean %.1f, sd %.1f)", gen, s.Population, s.MeanPopulation, s.StdDev)
			}
			if opts.StopWhenStagnant && tracker.Stagnant() {
				monitoring.Logf("gen %d: stagnant with period %d", gen, tracker.Summary().Period)
				return nil
			}
		}
	})

	err := g.Wait()
	summary := tracker.Summary()
	elapsed := clock.Since(start)
	if elapsed > 0 {
		monitoring.Logf("ran %d generations in %s (%.1f gen/sec)", summary.Generations, elapsed.Round(time.Millisecond), float64(summary.Generations)/elapsed.Seconds())
	}
	return summary, err
}
