package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const dayLayout = "2006-01-02"

// DailyStatsDelta is an increment applied to one affiliate-day.
type DailyStatsDelta struct {
	AffiliateID uuid.UUID
	Day         time.Time
	Clicks      int64
	Conversions int64
	Earnings    decimal.Decimal
	Revenue     decimal.Decimal
}

const sqlLockDailyStats = `
SELECT affiliate_id, day, clicks, conversions, earnings, revenue, updated_at
FROM daily_stats
WHERE affiliate_id = $1 AND day = $2
FOR UPDATE
`

const sqlSeedDailyStats = `
INSERT INTO daily_stats (affiliate_id, day, clicks, conversions, earnings, revenue)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (affiliate_id, day) DO UPDATE
SET clicks = daily_stats.clicks + EXCLUDED.clicks,
    conversions = daily_stats.conversions + EXCLUDED.conversions,
    earnings = daily_stats.earnings + EXCLUDED.earnings,
    revenue = daily_stats.revenue + EXCLUDED.revenue,
    updated_at = NOW()
`

const sqlIncrementDailyStats = `
UPDATE daily_stats
SET clicks = clicks + $3,
    conversions = conversions + $4,
    earnings = earnings + $5,
    revenue = revenue + $6,
    updated_at = NOW()
WHERE affiliate_id = $1 AND day = $2
`

// IncrementDailyStats applies delta to the affiliate-day row. The existing row is locked before it
// is incremented; a missing row is seeded with the delta, and a concurrent seed folds into an
// increment through the conflict clause.
func (s *Store) IncrementDailyStats(ctx context.Context, delta DailyStatsDelta) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		s.logger.Error(ctx, "failed to begin transaction", err)
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer s.rollback(ctx, tx)

	day := delta.Day.Format(dayLayout)
	args := []interface{}{delta.AffiliateID, day, delta.Clicks, delta.Conversions, delta.Earnings, delta.Revenue}

	var existing DailyStat
	err = tx.GetContext(ctx, &existing, sqlLockDailyStats, delta.AffiliateID, day)
	switch {
	case isNoRows(err):
		if _, err = tx.ExecContext(ctx, sqlSeedDailyStats, args...); err != nil {
			s.logger.Error(ctx, "failed to seed daily stats", err)
			return fmt.Errorf("failed to seed daily stats: %w", err)
		}
	case err != nil:
		s.logger.Error(ctx, "failed to lock daily stats", err)
		return fmt.Errorf("failed to lock daily stats: %w", err)
	default:
		if _, err = tx.ExecContext(ctx, sqlIncrementDailyStats, args...); err != nil {
			s.logger.Error(ctx, "failed to increment daily stats", err)
			return fmt.Errorf("failed to increment daily stats: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		s.logger.Error(ctx, "failed to commit transaction", err)
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

const sqlIncrementDeviceStats = `
INSERT INTO device_stats (affiliate_id, device_type, day, clicks)
VALUES ($1, $2, $3, 1)
ON CONFLICT (affiliate_id, device_type, day) DO UPDATE
SET clicks = device_stats.clicks + EXCLUDED.clicks
`

// IncrementDeviceClicks adds one click to the device bucket of the day
func (s *Store) IncrementDeviceClicks(ctx context.Context, affiliateID uuid.UUID, deviceType string, day time.Time) error {
	if _, err := s.db.ExecContext(ctx, sqlIncrementDeviceStats, affiliateID, deviceType, day.Format(dayLayout)); err != nil {
		s.logger.Error(ctx, "failed to increment device stats", err)
		return fmt.Errorf("failed to increment device stats: %w", err)
	}
	return nil
}

const sqlIncrementSourceStats = `
INSERT INTO source_stats (affiliate_id, source, day, clicks)
VALUES ($1, $2, $3, 1)
ON CONFLICT (affiliate_id, source, day) DO UPDATE
SET clicks = source_stats.clicks + EXCLUDED.clicks
`

// IncrementSourceClicks adds one click to the traffic-source bucket of the day
func (s *Store) IncrementSourceClicks(ctx context.Context, affiliateID uuid.UUID, source string, day time.Time) error {
	if _, err := s.db.ExecContext(ctx, sqlIncrementSourceStats, affiliateID, source, day.Format(dayLayout)); err != nil {
		s.logger.Error(ctx, "failed to increment source stats", err)
		return fmt.Errorf("failed to increment source stats: %w", err)
	}
	return nil
}

// LinkPerformanceDelta is an increment applied to one link-day.
type LinkPerformanceDelta struct {
	AffiliateID uuid.UUID
	LinkID      uuid.UUID
	Day         time.Time
	Clicks      int64
	Conversions int64
	Earnings    decimal.Decimal
}

const sqlIncrementLinkPerformance = `
INSERT INTO link_performance (affiliate_id, link_id, day, clicks, conversions, earnings)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (affiliate_id, link_id, day) DO UPDATE
SET clicks = link_performance.clicks + EXCLUDED.clicks,
    conversions = link_performance.conversions + EXCLUDED.conversions,
    earnings = link_performance.earnings + EXCLUDED.earnings
`

// IncrementLinkPerformance applies delta to the link-day row
func (s *Store) IncrementLinkPerformance(ctx context.Context, delta LinkPerformanceDelta) error {
	_, err := s.db.ExecContext(ctx, sqlIncrementLinkPerformance,
		delta.AffiliateID,
		delta.LinkID,
		delta.Day.Format(dayLayout),
		delta.Clicks,
		delta.Conversions,
		delta.Earnings)
	if err != nil {
		s.logger.Error(ctx, "failed to increment link performance", err)
		return fmt.Errorf("failed to increment link performance: %w", err)
	}
	return nil
}

// AffiliateStatsDelta is an increment applied to the lifetime totals of an affiliate.
type AffiliateStatsDelta struct {
	AffiliateID uuid.UUID
	Clicks      int64
	Conversions int64
	Earnings    decimal.Decimal
	Revenue     decimal.Decimal
}

const sqlIncrementAffiliateStats = `
INSERT INTO affiliate_stats (affiliate_id, total_clicks, total_conversions, total_earnings, total_revenue)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (affiliate_id) DO UPDATE
SET total_clicks = affiliate_stats.total_clicks + EXCLUDED.total_clicks,
    total_conversions = affiliate_stats.total_conversions + EXCLUDED.total_conversions,
    total_earnings = affiliate_stats.total_earnings + EXCLUDED.total_earnings,
    total_revenue = affiliate_stats.total_revenue + EXCLUDED.total_revenue,
    updated_at = NOW()
`

// IncrementAffiliateStats applies delta to the lifetime totals
func (s *Store) IncrementAffiliateStats(ctx context.Context, delta AffiliateStatsDelta) error {
	_, err := s.db.ExecContext(ctx, sqlIncrementAffiliateStats,
		delta.AffiliateID,
		delta.Clicks,
		delta.Conversions,
		delta.Earnings,
		delta.Revenue)
	if err != nil {
		s.logger.Error(ctx, "failed to increment affiliate stats", err)
		return fmt.Errorf("failed to increment affiliate stats: %w", err)
	}
	return nil
}

// MonthlyEarningsDelta is an increment applied to one affiliate-month.
type MonthlyEarningsDelta struct {
	AffiliateID uuid.UUID
	Month       time.Time
	Conversions int64
	Earnings    decimal.Decimal
	Revenue     decimal.Decimal
}

const sqlIncrementMonthlyEarnings = `
INSERT INTO monthly_earnings (affiliate_id, month, conversions, earnings, revenue)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (affiliate_id, month) DO UPDATE
SET conversions = monthly_earnings.conversions + EXCLUDED.conversions,
    earnings = monthly_earnings.earnings + EXCLUDED.earnings,
    revenue = monthly_earnings.revenue + EXCLUDED.revenue
`

// IncrementMonthlyEarnings applies delta to the affiliate-month row
func (s *Store) IncrementMonthlyEarnings(ctx context.Context, delta MonthlyEarningsDelta) error {
	_, err := s.db.ExecContext(ctx, sqlIncrementMonthlyEarnings,
		delta.AffiliateID,
		delta.Month.Format(dayLayout),
		delta.Conversions,
		delta.Earnings,
		delta.Revenue)
	if err != nil {
		s.logger.Error(ctx, "failed to increment monthly earnings", err)
		return fmt.Errorf("failed to increment monthly earnings: %w", err)
	}
	return nil
}

const sqlGetAffiliateStats = `
SELECT affiliate_id, total_clicks, total_conversions, total_earnings, total_revenue, updated_at
FROM affiliate_stats
WHERE affiliate_id = $1
`

// GetAffiliateStats retrieves the lifetime totals of an affiliate
func (s *Store) GetAffiliateStats(ctx context.Context, affiliateID uuid.UUID) (AffiliateStats, error) {
	var stats AffiliateStats
	err := s.db.GetContext(ctx, &stats, sqlGetAffiliateStats, affiliateID)
	if err != nil {
		if isNoRows(err) {
			return AffiliateStats{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get affiliate stats", err)
		return AffiliateStats{}, fmt.Errorf("failed to get affiliate stats: %w", err)
	}
	return stats, nil
}
