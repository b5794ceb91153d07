//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"fixmygame/backend/internal/model"
	"fixmygame/backend/internal/repository"
)

const (
	// DefaultDailyLimit is the free diagnostics allowance per identity per
	// UTC calendar day.
	DefaultDailyLimit = 3
	// DefaultQuotaTTL bounds counter retention. It covers the current day
	// plus slack for clock skew; rolled-over buckets age out instead of
	// accumulating.
	DefaultQuotaTTL = 48 * time.Hour

	quotaKeyPrefix = "quota"
)

// QuotaService decides whether a request may proceed under today's quota.
type QuotaService interface {
	// Admit counts the request against the caller's bucket for the current
	// UTC day and reports the decision. The increment is unconditional:
	// rejected requests still raise the count and are never refunded.
	Admit(ctx context.Context, identity model.ClientIdentity) (model.QuotaDecision, error)
}

type quotaService struct {
	counters   repository.CounterRepository
	dailyLimit int
	ttl        time.Duration
	now        func() time.Time
}

// NewQuotaService creates a quota service on top of the given counter store.
// Non-positive limit or ttl fall back to the defaults.
func NewQuotaService(counters repository.CounterRepository, dailyLimit int, ttl time.Duration) QuotaService {
	if dailyLimit <= 0 {
		dailyLimit = DefaultDailyLimit
	}
	if ttl <= 0 {
		ttl = DefaultQuotaTTL
	}
	return &quotaService{
		counters:   counters,
		dailyLimit: dailyLimit,
		ttl:        ttl,
		now:        time.Now,
	}
}

func (s *quotaService) Admit(ctx context.Context, identity model.ClientIdentity) (model.QuotaDecision, error) {
	if strings.TrimSpace(identity.Key) == "" {
		return model.QuotaDecision{}, ErrInvalid
	}

	bucket := s.now().UTC().Format(time.DateOnly)
	key := fmt.Sprintf("%s:%s:%s", quotaKeyPrefix, bucket, identity.Key)

	count, err := s.counters.IncrementAndGet(ctx, key, s.ttl)
	if err != nil {
		// Fail closed: a broken counter store must not turn into free
		// admissions.
		return model.QuotaDecision{}, fmt.Errorf("increment quota counter: %w", err)
	}

	remaining := s.dailyLimit - int(count)
	if remaining < 0 {
		remaining = 0
	}

	return model.QuotaDecision{
		Admitted:   count <= int64(s.dailyLimit),
		Count:      count,
		Remaining:  remaining,
		IssueToken: identity.Kind != model.IdentityPersistentToken,
	}, nil
}
