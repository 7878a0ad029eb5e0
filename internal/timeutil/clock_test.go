package timeutil

import (
	"testing"
	"time"
)

func TestRealClock_NewTicker(t *testing.T) {
	clock := RealClock{}
	ticker := clock.NewTicker(10 * time.Millisecond)
	defer ticker.Stop()

	select {
	case <-ticker.C():
	case <-time.After(time.Second):
		t.Error("ticker did not fire")
	}
}

func TestManualClockTick(t *testing.T) {
	start := time.Unix(100, 0)
	clock := NewManualClock(start)
	ticker := clock.NewTicker(time.Second)

	clock.Tick(time.Second)
	clock.Tick(time.Second)

	if got := clock.Since(start); got != 2*time.Second {
		t.Fatalf("Since = %v, want 2s", got)
	}
	select {
	case now := <-ticker.C():
		if !now.Equal(start.Add(time.Second)) {
			t.Fatalf("tick time = %v, want first tick", now)
		}
	default:
		t.Fatal("expected a pending tick")
	}
	select {
	case <-ticker.C():
		t.Fatal("second tick should have been dropped while the first was unread")
	default:
	}

	ticker.Stop()
	clock.Tick(time.Second)
	select {
	case <-ticker.C():
		t.Fatal("stopped ticker fired")
	default:
	}
	if clock.Tickers() != 1 {
		t.Fatalf("Tickers() = %d, want 1", clock.Tickers())
	}
}
