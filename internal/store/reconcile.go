package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DayActivity is the activity of one affiliate inside a time window, recomputed from the raw
// click and conversion records.
type DayActivity struct {
	Clicks      int64           `db:"clicks"`
	Conversions int64           `db:"conversions"`
	Earnings    decimal.Decimal `db:"earnings"`
	Revenue     decimal.Decimal `db:"revenue"`
}

const sqlCountActivity = `
SELECT c.clicks, v.conversions, v.earnings, v.revenue
FROM (
    SELECT COUNT(*) AS clicks
    FROM clicks
    WHERE affiliate_id = $1 AND created_at >= $2 AND created_at < $3
) c,
(
    SELECT COUNT(*) AS conversions,
           COALESCE(SUM(commission_amount), 0) AS earnings,
           COALESCE(SUM(purchase_amount), 0) AS revenue
    FROM conversions
    WHERE affiliate_id = $1 AND created_at >= $2 AND created_at < $3
) v
`

const sqlEnsureDailyStats = `
INSERT INTO daily_stats (affiliate_id, day)
VALUES ($1, $2)
ON CONFLICT (affiliate_id, day) DO NOTHING
`

const sqlOverwriteDailyStats = `
UPDATE daily_stats
SET clicks = $3,
    conversions = $4,
    earnings = $5,
    revenue = $6,
    updated_at = NOW()
WHERE affiliate_id = $1 AND day = $2
`

// ReconcileDailyStats rebuilds the affiliate-day row starting at from from the click and
// conversion records in [from, to). The row is locked for the whole recount, so counter
// increments for that day wait and apply on top of the rebuilt figures. It returns the row as it
// was before the rebuild together with the recounted activity.
func (s *Store) ReconcileDailyStats(ctx context.Context, affiliateID uuid.UUID, from, to time.Time) (DailyStat, DayActivity, error) {
	day := from.Format(dayLayout)

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		s.logger.Error(ctx, "failed to begin transaction", err)
		return DailyStat{}, DayActivity{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer s.rollback(ctx, tx)

	if _, err = tx.ExecContext(ctx, sqlEnsureDailyStats, affiliateID, day); err != nil {
		s.logger.Error(ctx, "failed to create daily stats row", err)
		return DailyStat{}, DayActivity{}, fmt.Errorf("failed to create daily stats row: %w", err)
	}

	var previous DailyStat
	if err = tx.GetContext(ctx, &previous, sqlLockDailyStats, affiliateID, day); err != nil {
		s.logger.Error(ctx, "failed to lock daily stats row", err)
		return DailyStat{}, DayActivity{}, fmt.Errorf("failed to lock daily stats row: %w", err)
	}

	var activity DayActivity
	if err = tx.GetContext(ctx, &activity, sqlCountActivity, affiliateID, from, to); err != nil {
		s.logger.Error(ctx, "failed to count activity", err)
		return DailyStat{}, DayActivity{}, fmt.Errorf("failed to count activity: %w", err)
	}

	_, err = tx.ExecContext(ctx, sqlOverwriteDailyStats,
		affiliateID,
		day,
		activity.Clicks,
		activity.Conversions,
		activity.Earnings,
		activity.Revenue)
	if err != nil {
		s.logger.Error(ctx, "failed to overwrite daily stats", err)
		return DailyStat{}, DayActivity{}, fmt.Errorf("failed to overwrite daily stats: %w", err)
	}

	if err = tx.Commit(); err != nil {
		s.logger.Error(ctx, "failed to commit transaction", err)
		return DailyStat{}, DayActivity{}, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return previous, activity, nil
}

const sqlListActiveAffiliateIDs = `
SELECT affiliate_id FROM clicks WHERE created_at >= $1 AND created_at < $2
UNION
SELECT affiliate_id FROM conversions WHERE created_at >= $1 AND created_at < $2
`

// ListActiveAffiliateIDs returns the affiliates with any click or conversion in [from, to)
func (s *Store) ListActiveAffiliateIDs(ctx context.Context, from, to time.Time) ([]uuid.UUID, error) {
	ids := []uuid.UUID{}
	if err := s.db.SelectContext(ctx, &ids, sqlListActiveAffiliateIDs, from, to); err != nil {
		s.logger.Error(ctx, "failed to list active affiliates", err)
		return nil, fmt.Errorf("failed to list active affiliates: %w", err)
	}
	return ids, nil
}
