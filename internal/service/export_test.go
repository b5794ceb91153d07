package service

import "time"

// Export for testing
func SetQuotaClock(s QuotaService, now func() time.Time) {
	if qs, ok := s.(*quotaService); ok {
		qs.now = now
	}
}
