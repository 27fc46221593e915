package scrape

import (
	"context"
	"math/rand/v2"
	"time"

	"golang.org/x/time/rate"
)

// RandomDelay returns base with uniform jitter of up to ±variance.
// The result never drops below a small positive floor, so callers can
// rely on some pause even with aggressive settings.
func RandomDelay(base, variance time.Duration) time.Duration {
	d := base
	if variance > 0 {
		d += time.Duration(rand.Int64N(int64(2*variance))) - variance
	}
	if d < time.Millisecond {
		d = time.Millisecond
	}
	return d
}

// Pacer spaces page interactions with a token bucket plus per-wait
// jitter, so the scrape doesn't hit the service at a mechanical
// cadence.
type Pacer struct {
	limiter  *rate.Limiter
	variance time.Duration
}

// NewPacer creates a Pacer spacing interactions by base ± variance.
// The limiter enforces the lower edge of the band; RandomDelay supplies
// the rest per wait.
func NewPacer(base, variance time.Duration) *Pacer {
	if variance > base {
		variance = base
	}
	interval := base - variance
	if interval < time.Millisecond {
		interval = time.Millisecond
	}
	return &Pacer{
		limiter:  rate.NewLimiter(rate.Every(interval), 1),
		variance: variance,
	}
}

// Wait blocks until the next interaction is allowed.
// Returns an error if the context is canceled before the wait
// completes.
func (p *Pacer) Wait(ctx context.Context) error {
	if err := p.limiter.Wait(ctx); err != nil {
		return err
	}
	if p.variance <= 0 {
		return nil
	}

	t := time.NewTimer(RandomDelay(p.variance, p.variance))
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
