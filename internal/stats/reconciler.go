package stats

//go:generate go run go.uber.org/mock/mockgen@latest -source=reconciler.go -destination=reconciler_mocks_test.go -package=stats

import (
	"context"
	"errors"
	"fmt"
	"time"

	"affiliate-server/internal/observability"
	"affiliate-server/internal/store"

	"github.com/google/uuid"
)

// CloseGrace is how long after midnight a day still accepts counter writes from requests that
// were in flight when it ended. Only days past their grace are reconciled.
const CloseGrace = 10 * time.Minute

// ErrDayNotClosed is returned when asked to reconcile a day that can still receive live counter
// writes.
var ErrDayNotClosed = errors.New("stats day is not closed yet")

// ReconcilerStore reads the raw click and conversion log and rewrites daily rows.
type ReconcilerStore interface {
	ReconcileDailyStats(ctx context.Context, affiliateID uuid.UUID, from, to time.Time) (store.DailyStat, store.DayActivity, error)
	ListActiveAffiliateIDs(ctx context.Context, from, to time.Time) ([]uuid.UUID, error)
}

// Reconciler rebuilds daily counters from the click and conversion log, repairing drift left by
// bucket writes that failed after the event itself was stored.
type Reconciler struct {
	store    ReconcilerStore
	logger   *observability.Logger
	location *time.Location
	now      func() time.Time
}

func NewReconciler(store ReconcilerStore, logger *observability.Logger, location *time.Location) *Reconciler {
	if location == nil {
		location = time.Local
	}
	return &Reconciler{store: store, logger: logger, location: location, now: time.Now}
}

// ReconcileDay recomputes the daily row of one affiliate for the calendar day containing day.
// The day must be closed, see ClosesAt.
func (r *Reconciler) ReconcileDay(ctx context.Context, affiliateID uuid.UUID, day time.Time) (store.DayActivity, error) {
	from, to := r.window(day)
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "affiliate_id", Value: affiliateID.String()},
		observability.Field{Key: "stats_day", Value: from.Format("2006-01-02")},
	)

	if r.now().Before(to.Add(CloseGrace)) {
		r.logger.Warn(ctx, "refusing to reconcile an open stats day")
		return store.DayActivity{}, ErrDayNotClosed
	}

	previous, activity, err := r.store.ReconcileDailyStats(ctx, affiliateID, from, to)
	if err != nil {
		r.logger.Error(ctx, "failed to reconcile daily stats", err)
		return store.DayActivity{}, fmt.Errorf("failed to reconcile daily stats: %w", err)
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "clicks", Value: activity.Clicks},
		observability.Field{Key: "conversions", Value: activity.Conversions},
	)
	if drifted(previous, activity) {
		r.logger.Warn(observability.WithFields(ctx,
			observability.Field{Key: "previous_clicks", Value: previous.Clicks},
			observability.Field{Key: "previous_conversions", Value: previous.Conversions},
			observability.Field{Key: "previous_earnings", Value: previous.Earnings.StringFixed(2)},
		), "daily stats drifted from the event log")
	}
	r.logger.Info(ctx, "daily stats reconciled")
	return activity, nil
}

// ClosesAt is the earliest time the calendar day containing day, in loc, can be reconciled.
func ClosesAt(day time.Time, loc *time.Location) time.Time {
	return Day(day, loc).AddDate(0, 0, 1).Add(CloseGrace)
}

func drifted(previous store.DailyStat, activity store.DayActivity) bool {
	return previous.Clicks != activity.Clicks ||
		previous.Conversions != activity.Conversions ||
		!previous.Earnings.Equal(activity.Earnings) ||
		!previous.Revenue.Equal(activity.Revenue)
}

// ActiveAffiliates lists the affiliates with any activity on the calendar day containing day.
func (r *Reconciler) ActiveAffiliates(ctx context.Context, day time.Time) ([]uuid.UUID, error) {
	from, to := r.window(day)
	ids, err := r.store.ListActiveAffiliateIDs(ctx, from, to)
	if err != nil {
		r.logger.Error(ctx, "failed to list active affiliates", err)
		return nil, fmt.Errorf("failed to list active affiliates: %w", err)
	}
	return ids, nil
}

func (r *Reconciler) window(day time.Time) (time.Time, time.Time) {
	from := Day(day, r.location)
	return from, from.AddDate(0, 0, 1)
}
