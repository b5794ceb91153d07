package repository

import "time"

// Export for testing
func SetMemoryClock(r *MemoryCounterRepository, now func() time.Time) {
	r.now = now
}
