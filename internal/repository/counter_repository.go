//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package repository

import (
	"context"
	"time"
)

// CounterRepository is a keyed, atomically incrementable integer store with
// per-key expiry. It is the only shared mutable state in the quota path, so
// implementations must be safe for concurrent callers on the same key.
type CounterRepository interface {
	// IncrementAndGet atomically increments the counter for key, creating it
	// at 1 when absent, and returns the post-increment value. On the call
	// that creates the key the store schedules expiry ttl from that point.
	IncrementAndGet(ctx context.Context, key string, ttl time.Duration) (int64, error)
}
