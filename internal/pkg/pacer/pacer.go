package pacer

import (
	"context"
	"sync"
	"time"
)

// Pacer enforces a minimum spacing between successive calls to an external
// provider. The first Wait returns immediately; later calls sleep for
// whatever remains of the configured interval since the previous call.
// It never fails on its own, only when the context is cancelled mid-wait.
type Pacer struct {
	mu       sync.Mutex
	interval time.Duration
	next     time.Time
}

func New(interval time.Duration) *Pacer {
	return &Pacer{
		interval: interval,
	}
}

// Wait blocks until the minimum spacing since the previous permitted call
// has elapsed, then records the new slot. Callers are expected to issue
// calls sequentially; the mutex only guards against accidental sharing.
func (p *Pacer) Wait(ctx context.Context) error {
	p.mu.Lock()
	now := time.Now()

	var delay time.Duration
	if p.next.After(now) {
		delay = p.next.Sub(now)
	}

	p.next = now.Add(delay + p.interval)
	p.mu.Unlock()

	if delay <= 0 {
		return nil
	}

	select {
	case <-time.After(delay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Interval returns the configured spacing.
func (p *Pacer) Interval() time.Duration {
	return p.interval
}
