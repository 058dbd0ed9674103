package ratelimit

//go:generate go run go.uber.org/mock/mockgen@latest -source=service.go -destination=mocks_test.go -package=ratelimit

import (
	"context"
	"fmt"
	"time"

	"affiliate-server/internal/observability"
)

const window = time.Minute

// WindowStore keeps one sliding window of hits per key. Satisfied by redis.Client.
type WindowStore interface {
	WindowCount(ctx context.Context, key string, since time.Time) (int64, time.Time, error)
	AddHit(ctx context.Context, key string, at time.Time, ttl time.Duration) error
}

// Result represents the result of a rate limit check
type Result struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetAt    time.Time
	RetryAfter time.Duration
}

// Service limits requests per key over a one minute sliding window. A Service without a store,
// or with a non-positive limit, allows everything.
type Service struct {
	store  WindowStore
	limit  int
	logger *observability.Logger
	now    func() time.Time
}

// NewService creates a new rate limiting service
func NewService(store WindowStore, limit int, logger *observability.Logger) *Service {
	return &Service{
		store:  store,
		limit:  limit,
		logger: logger,
		now:    time.Now,
	}
}

// Enabled reports whether requests are actually limited.
func (s *Service) Enabled() bool {
	return s != nil && s.store != nil && s.limit > 0
}

// Check counts a request against key. Rejected requests are not added to the window.
func (s *Service) Check(ctx context.Context, key string) (Result, error) {
	now := s.now()
	if !s.Enabled() {
		return Result{Allowed: true, Limit: s.limit, ResetAt: now}, nil
	}

	redisKey := fmt.Sprintf("rl:%s", key)
	count, oldest, err := s.store.WindowCount(ctx, redisKey, now.Add(-window))
	if err != nil {
		return Result{}, fmt.Errorf("failed to count requests: %w", err)
	}

	if int(count) >= s.limit {
		resetAt := now.Add(window)
		if !oldest.IsZero() {
			resetAt = oldest.Add(window)
		}
		retryAfter := resetAt.Sub(now)
		if retryAfter < 0 {
			retryAfter = 0
		}
		return Result{
			Allowed:    false,
			Limit:      s.limit,
			Remaining:  0,
			ResetAt:    resetAt,
			RetryAfter: retryAfter,
		}, nil
	}

	// 2x window so a quiet key outlives its newest hit
	if err := s.store.AddHit(ctx, redisKey, now, 2*window); err != nil {
		return Result{}, fmt.Errorf("failed to add request: %w", err)
	}

	return Result{
		Allowed:   true,
		Limit:     s.limit,
		Remaining: s.limit - int(count) - 1,
		ResetAt:   now.Add(window),
	}, nil
}
