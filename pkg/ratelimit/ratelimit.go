package ratelimit

import (
	"sync"
	"time"
)

// Limiter is a sliding-window counter keyed by caller.
type Limiter struct {
	mu        sync.Mutex
	limits    map[string][]time.Time
	window    time.Duration
	maxHits   int
	now       func() time.Time
	lastSweep time.Time
}

func NewLimiter(window time.Duration, maxHits int) *Limiter {
	return &Limiter{
		limits:  make(map[string][]time.Time),
		window:  window,
		maxHits: maxHits,
		now:     time.Now,
	}
}

// Allow records a hit for key unless the window is full. When it refuses,
// retryAfter is how long until the oldest hit leaves the window.
func (l *Limiter) Allow(key string) (allowed bool, retryAfter time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	windowStart := now.Add(-l.window)

	if now.Sub(l.lastSweep) >= l.window {
		l.sweep(windowStart)
		l.lastSweep = now
	}

	valid := prune(l.limits[key], windowStart)

	if len(valid) >= l.maxHits {
		if len(valid) == 0 {
			delete(l.limits, key)
			return false, l.window
		}
		l.limits[key] = valid
		return false, valid[0].Sub(windowStart)
	}

	l.limits[key] = append(valid, now)
	return true, 0
}

// sweep drops callers with no hit left in the window, at most once per
// window, so idle keys do not accumulate.
func (l *Limiter) sweep(windowStart time.Time) {
	for key, hits := range l.limits {
		if len(hits) == 0 || !hits[len(hits)-1].After(windowStart) {
			delete(l.limits, key)
		}
	}
}

func prune(hits []time.Time, windowStart time.Time) []time.Time {
	valid := hits[:0]
	for _, hit := range hits {
		if hit.After(windowStart) {
			valid = append(valid, hit)
		}
	}
	return valid
}
