package stats

//go:generate go run go.uber.org/mock/mockgen@latest -source=aggregator.go -destination=mocks_test.go -package=stats

import (
	"context"
	"errors"
	"time"

	"affiliate-server/internal/observability"
	"affiliate-server/internal/store"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// StatsStore holds the counter writes of the aggregator.
type StatsStore interface {
	IncrementDailyStats(ctx context.Context, delta store.DailyStatsDelta) error
	IncrementDeviceClicks(ctx context.Context, affiliateID uuid.UUID, deviceType string, day time.Time) error
	IncrementSourceClicks(ctx context.Context, affiliateID uuid.UUID, source string, day time.Time) error
	IncrementLinkPerformance(ctx context.Context, delta store.LinkPerformanceDelta) error
	IncrementAffiliateStats(ctx context.Context, delta store.AffiliateStatsDelta) error
	IncrementMonthlyEarnings(ctx context.Context, delta store.MonthlyEarningsDelta) error
}

// Aggregator folds click and conversion events into the denormalized counters.
//
// Every bucket is written independently: a failing bucket is logged and the remaining buckets are
// still attempted. The joined error is returned for the caller to log; it never means the other
// buckets were skipped.
type Aggregator struct {
	store    StatsStore
	logger   *observability.Logger
	location *time.Location
	now      func() time.Time
}

func NewAggregator(store StatsStore, logger *observability.Logger, location *time.Location) *Aggregator {
	if location == nil {
		location = time.Local
	}
	return &Aggregator{store: store, logger: logger, location: location, now: time.Now}
}

type bucketWrite struct {
	name  string
	write func(ctx context.Context) error
}

// RecordClick counts one click in the daily, device, source, link and lifetime buckets.
func (a *Aggregator) RecordClick(ctx context.Context, affiliateID, linkID uuid.UUID, deviceType, source string) error {
	today := Day(a.now(), a.location)
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "affiliate_id", Value: affiliateID.String()},
		observability.Field{Key: "link_id", Value: linkID.String()},
		observability.Field{Key: "stats_day", Value: today.Format("2006-01-02")},
	)

	return a.apply(ctx, []bucketWrite{
		{"daily_stats", func(ctx context.Context) error {
			return a.store.IncrementDailyStats(ctx, store.DailyStatsDelta{AffiliateID: affiliateID, Day: today, Clicks: 1})
		}},
		{"device_stats", func(ctx context.Context) error {
			return a.store.IncrementDeviceClicks(ctx, affiliateID, deviceType, today)
		}},
		{"source_stats", func(ctx context.Context) error {
			return a.store.IncrementSourceClicks(ctx, affiliateID, source, today)
		}},
		{"link_performance", func(ctx context.Context) error {
			return a.store.IncrementLinkPerformance(ctx, store.LinkPerformanceDelta{
				AffiliateID: affiliateID,
				LinkID:      linkID,
				Day:         today,
				Clicks:      1,
			})
		}},
		{"affiliate_stats", func(ctx context.Context) error {
			return a.store.IncrementAffiliateStats(ctx, store.AffiliateStatsDelta{AffiliateID: affiliateID, Clicks: 1})
		}},
	})
}

// RecordConversion counts one conversion with its revenue and commission in the daily, link,
// lifetime and monthly buckets.
func (a *Aggregator) RecordConversion(ctx context.Context, affiliateID, linkID uuid.UUID, purchaseAmount, commissionAmount decimal.Decimal) error {
	now := a.now()
	today := Day(now, a.location)
	month := Month(now, a.location)
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "affiliate_id", Value: affiliateID.String()},
		observability.Field{Key: "link_id", Value: linkID.String()},
		observability.Field{Key: "stats_day", Value: today.Format("2006-01-02")},
	)

	return a.apply(ctx, []bucketWrite{
		{"daily_stats", func(ctx context.Context) error {
			return a.store.IncrementDailyStats(ctx, store.DailyStatsDelta{
				AffiliateID: affiliateID,
				Day:         today,
				Conversions: 1,
				Earnings:    commissionAmount,
				Revenue:     purchaseAmount,
			})
		}},
		{"link_performance", func(ctx context.Context) error {
			return a.store.IncrementLinkPerformance(ctx, store.LinkPerformanceDelta{
				AffiliateID: affiliateID,
				LinkID:      linkID,
				Day:         today,
				Conversions: 1,
				Earnings:    commissionAmount,
			})
		}},
		{"affiliate_stats", func(ctx context.Context) error {
			return a.store.IncrementAffiliateStats(ctx, store.AffiliateStatsDelta{
				AffiliateID: affiliateID,
				Conversions: 1,
				Earnings:    commissionAmount,
				Revenue:     purchaseAmount,
			})
		}},
		{"monthly_earnings", func(ctx context.Context) error {
			return a.store.IncrementMonthlyEarnings(ctx, store.MonthlyEarningsDelta{
				AffiliateID: affiliateID,
				Month:       month,
				Conversions: 1,
				Earnings:    commissionAmount,
				Revenue:     purchaseAmount,
			})
		}},
	})
}

func (a *Aggregator) apply(ctx context.Context, writes []bucketWrite) error {
	var errs []error
	for _, w := range writes {
		if err := w.write(ctx); err != nil {
			a.logger.Error(observability.WithFields(ctx, observability.Field{Key: "stats_bucket", Value: w.name}),
				"failed to update stats bucket", err)
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Day truncates t to midnight of its calendar day in loc.
func Day(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// Month returns midnight of the first day of t's month in loc.
func Month(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, loc)
}
