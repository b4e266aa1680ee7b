package llm

import (
	"context"
	"math/rand"
	"time"
)

// Backoff describes the retry policy applied around generation calls.
// The policy lives here, independent of any call site, so the same
// values govern every retried request.
type Backoff struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
	JitterFrac  float64
}

// DefaultBackoff mirrors the retry discipline of the generation host:
// few attempts, short doubling delays.
func DefaultBackoff() Backoff {
	return Backoff{
		MaxAttempts: 3,
		BaseDelay:   time.Second,
		MaxDelay:    10 * time.Second,
		JitterFrac:  0.2,
	}
}

// Delay returns how long to wait before the given attempt (1-based).
// Delays double per attempt, capped at MaxDelay, with proportional
// jitter so concurrent workers do not retry in lockstep.
func (b Backoff) Delay(attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	d := b.BaseDelay << uint(attempt-1)
	if b.MaxDelay > 0 && d > b.MaxDelay {
		d = b.MaxDelay
	}
	if b.JitterFrac > 0 {
		jitter := time.Duration(float64(d) * b.JitterFrac * (2*rand.Float64() - 1))
		d += jitter
	}
	if d < 0 {
		d = 0
	}
	return d
}

// Sleep waits the delay for the given attempt, or returns early when
// the context is cancelled.
func (b Backoff) Sleep(ctx context.Context, attempt int) error {
	timer := time.NewTimer(b.Delay(attempt))
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
