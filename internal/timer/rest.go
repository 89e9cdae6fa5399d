// Package timer implements the rest countdown between sets.
package timer

import (
	"context"
	"sync"
	"time"
)

// DefaultInterval is one countdown step.
const DefaultInterval = time.Second

// Tick reports the seconds left. Done is set on the final tick at zero.
type Tick struct {
	Remaining int
	Done      bool
}

// RestTimer runs at most one countdown at a time. Starting a countdown
// cancels the previous one.
type RestTimer struct {
	interval time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	gen    uint64
}

// New returns a timer that steps once per interval. A non-positive interval
// uses DefaultInterval.
func New(interval time.Duration) *RestTimer {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &RestTimer{interval: interval}
}

// Start begins a countdown from seconds and returns its tick channel. The
// first tick carries the full duration; the channel is closed after the
// zero tick, or early when ctx is cancelled, Stop is called, or another
// countdown starts.
func (t *RestTimer) Start(ctx context.Context, seconds int) <-chan Tick {
	t.mu.Lock()
	if t.cancel != nil {
		t.cancel()
	}
	ctx, cancel := context.WithCancel(ctx)
	t.cancel = cancel
	t.gen++
	gen := t.gen
	t.mu.Unlock()

	ticks := make(chan Tick)
	go t.run(ctx, gen, max(0, seconds), ticks)
	return ticks
}

func (t *RestTimer) run(ctx context.Context, gen uint64, remaining int, ticks chan<- Tick) {
	defer close(ticks)
	defer t.finish(gen)

	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		tick := Tick{Remaining: remaining, Done: remaining == 0}
		select {
		case ticks <- tick:
		case <-ctx.Done():
			return
		}
		if tick.Done {
			return
		}
		select {
		case <-ticker.C:
			remaining--
		case <-ctx.Done():
			return
		}
	}
}

func (t *RestTimer) finish(gen uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.gen == gen && t.cancel != nil {
		t.cancel()
		t.cancel = nil
	}
}

// Stop cancels the running countdown, if any.
func (t *RestTimer) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.cancel != nil {
		t.cancel()
		t.cancel = nil
	}
}

// Running reports whether a countdown is active.
func (t *RestTimer) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.cancel != nil
}
