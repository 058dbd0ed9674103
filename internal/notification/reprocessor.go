package notification

import (
	"context"
	"fmt"
	"time"

	"affiliate-server/internal/observability"

	"github.com/go-co-op/gocron/v2"
)

// Drainer is satisfied by Dispatcher.
type Drainer interface {
	Drain(ctx context.Context, limit int) (int, error)
}

// Reprocessor periodically drains the notification queue inside the API process.
type Reprocessor struct {
	scheduler gocron.Scheduler
	drainer   Drainer
	batch     int
	logger    *observability.Logger
}

func NewReprocessor(drainer Drainer, interval time.Duration, batch int, logger *observability.Logger) (*Reprocessor, error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	r := &Reprocessor{scheduler: scheduler, drainer: drainer, batch: batch, logger: logger}
	_, err = scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(r.runOnce),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to schedule notification reprocessing: %w", err)
	}
	return r, nil
}

func (r *Reprocessor) Start() {
	r.scheduler.Start()
}

func (r *Reprocessor) Stop() error {
	return r.scheduler.Shutdown()
}

func (r *Reprocessor) runOnce() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()
	ctx = observability.WithFields(ctx, observability.Field{Key: "job", Value: "notification_reprocessor"})

	if _, err := r.drainer.Drain(ctx, r.batch); err != nil {
		r.logger.Error(ctx, "failed to drain notification queue", err)
	}
}
