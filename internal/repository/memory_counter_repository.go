package repository

import (
	"context"
	"sync"
	"time"
)

type memoryCounter struct {
	count     int64
	expiresAt time.Time
}

// MemoryCounterRepository keeps counters in a process-local map. Counts are
// not shared across instances: two replicas behind a load balancer each
// enforce the limit independently, so horizontally scaled deployments must
// use the Redis repository instead.
type MemoryCounterRepository struct {
	mu       sync.Mutex
	counters map[string]*memoryCounter
	now      func() time.Time
}

// NewMemoryCounterRepository creates an in-memory counter repository.
func NewMemoryCounterRepository() *MemoryCounterRepository {
	return &MemoryCounterRepository{
		counters: make(map[string]*memoryCounter),
		now:      time.Now,
	}
}

// IncrementAndGet implements CounterRepository. An expired counter is
// replaced as if it were absent; actual removal of stale entries is left to
// Sweep.
func (r *MemoryCounterRepository) IncrementAndGet(ctx context.Context, key string, ttl time.Duration) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	counter, ok := r.counters[key]
	if !ok || now.After(counter.expiresAt) {
		counter = &memoryCounter{expiresAt: now.Add(ttl)}
		r.counters[key] = counter
	}
	counter.count++
	return counter.count, nil
}

// Sweep removes expired counters and returns how many were dropped. Expiry
// is otherwise lazy, so a periodic sweep keeps orphaned day buckets from
// accumulating.
func (r *MemoryCounterRepository) Sweep() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	dropped := 0
	for key, counter := range r.counters {
		if now.After(counter.expiresAt) {
			delete(r.counters, key)
			dropped++
		}
	}
	return dropped
}
