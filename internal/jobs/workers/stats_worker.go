package workers

//go:generate go run go.uber.org/mock/mockgen@latest -source=stats_worker.go -destination=stats_worker_mocks_test.go -package=workers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"affiliate-server/internal/jobs"
	"affiliate-server/internal/observability"
	"affiliate-server/internal/store"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// DayReconciler is satisfied by stats.Reconciler.
type DayReconciler interface {
	ReconcileDay(ctx context.Context, affiliateID uuid.UUID, day time.Time) (store.DayActivity, error)
	ActiveAffiliates(ctx context.Context, day time.Time) ([]uuid.UUID, error)
}

// StatsWorker handles stats reconciliation jobs
type StatsWorker struct {
	reconciler DayReconciler
	location   *time.Location
	logger     *observability.Logger
	now        func() time.Time
}

// NewStatsWorker creates a new stats worker
func NewStatsWorker(reconciler DayReconciler, location *time.Location, logger *observability.Logger) *StatsWorker {
	if location == nil {
		location = time.Local
	}
	return &StatsWorker{
		reconciler: reconciler,
		location:   location,
		logger:     logger,
		now:        time.Now,
	}
}

// ProcessReconcileTask rebuilds the daily row named by the task payload.
func (w *StatsWorker) ProcessReconcileTask(ctx context.Context, task *asynq.Task) error {
	var payload jobs.ReconcileJobPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		w.logger.Error(ctx, "failed to unmarshal reconcile job payload", err)
		return fmt.Errorf("failed to unmarshal reconcile job payload: %v: %w", err, asynq.SkipRetry)
	}

	day, err := payload.ParseDay(w.location)
	if err != nil {
		w.logger.Error(ctx, "invalid reconcile job payload", err)
		return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
	}

	_, err = w.reconciler.ReconcileDay(ctx, payload.AffiliateID, day)
	return err
}

// ProcessReconcileDailyTask reconciles every affiliate that had activity yesterday.
func (w *StatsWorker) ProcessReconcileDailyTask(ctx context.Context, _ *asynq.Task) error {
	yesterday := w.now().In(w.location).AddDate(0, 0, -1)
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "stats_day", Value: yesterday.Format(jobs.DayLayout)},
	)

	affiliateIDs, err := w.reconciler.ActiveAffiliates(ctx, yesterday)
	if err != nil {
		return err
	}

	var errs []error
	for _, affiliateID := range affiliateIDs {
		if _, err := w.reconciler.ReconcileDay(ctx, affiliateID, yesterday); err != nil {
			errs = append(errs, fmt.Errorf("affiliate %s: %w", affiliateID, err))
		}
	}

	w.logger.Info(ctx, fmt.Sprintf("daily reconciliation finished: %d affiliates, %d failures",
		len(affiliateIDs), len(errs)))
	return errors.Join(errs...)
}
