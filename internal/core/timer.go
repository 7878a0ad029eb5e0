package core

import (
	"context"
	"sync/atomic"
	"time"

	"life-ca/internal/timeutil"
)

// TickCounter carries timer ticks from a timer goroutine to the loop that
// advances the simulation. Ticks that pile up between two polls are coalesced:
// the consumer advances at most one generation per Poll.
type TickCounter struct {
	count  atomic.Uint64
	seen   uint64
	notify chan struct{}
}

// NewTickCounter returns a counter with no ticks recorded.
func NewTickCounter() *TickCounter {
	return &TickCounter{notify: make(chan struct{}, 1)}
}

// Tick records one tick. It never blocks and is safe for concurrent use.
func (t *TickCounter) Tick() {
	t.count.Add(1)
	select {
	case t.notify <- struct{}{}:
	default:
	}
}

// Count returns the total number of ticks recorded so far.
func (t *TickCounter) Count() uint64 { return t.count.Load() }

// Poll reports whether at least one tick arrived since the previous Poll.
// Poll must only be called from the consuming goroutine.
func (t *TickCounter) Poll() bool {
	n := t.count.Load()
	if n > t.seen {
		t.seen = n
		return true
	}
	return false
}

// C is signalled after Tick so a consumer can wait instead of spinning.
// A single pending signal may stand for several ticks.
func (t *TickCounter) C() <-chan struct{} { return t.notify }

// Run calls Tick every interval until ctx is done.
func (t *TickCounter) Run(ctx context.Context, clock timeutil.Clock, interval time.Duration) error {
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	ticker := clock.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C():
			t.Tick()
		}
	}
}

// DefaultTickInterval is the generation period used when none is configured.
const DefaultTickInterval = 100 * time.Millisecond
