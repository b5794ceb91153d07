package ai

import (
	"context"
	"sync"

	"golang.org/x/time/rate"
)

// DefaultRateLimit is the fallback limit for outbound completion calls,
// in requests per minute.
const DefaultRateLimit = 10

// RateLimiter throttles outbound completion requests so a burst of
// admissions cannot hammer the provider. The limit can be changed at
// runtime.
type RateLimiter struct {
	mu      sync.Mutex
	limiter *rate.Limiter
	perMin  int
}

// NewRateLimiter creates a limiter for the given requests-per-minute rate.
func NewRateLimiter(perMinute int) *RateLimiter {
	if perMinute <= 0 {
		perMinute = DefaultRateLimit
	}
	return &RateLimiter{
		limiter: newLimiter(perMinute),
		perMin:  perMinute,
	}
}

func newLimiter(perMinute int) *rate.Limiter {
	// Burst equals the per-minute budget so short spikes pass through and
	// only sustained load is smoothed out.
	return rate.NewLimiter(rate.Limit(float64(perMinute)/60), perMinute)
}

// GetLimit returns the current requests-per-minute limit.
func (r *RateLimiter) GetLimit() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.perMin
}

// SetLimit replaces the limit; non-positive values reset to the default.
func (r *RateLimiter) SetLimit(perMinute int) {
	if perMinute <= 0 {
		perMinute = DefaultRateLimit
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.perMin = perMinute
	r.limiter = newLimiter(perMinute)
}

// Wait blocks until a slot is available or ctx is done.
func (r *RateLimiter) Wait(ctx context.Context) error {
	r.mu.Lock()
	limiter := r.limiter
	r.mu.Unlock()
	return limiter.Wait(ctx)
}
