package reconcile

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=reconcile

import (
	"context"
	"fmt"
	"time"

	"affiliate-server/internal/clients/kafka"
	"affiliate-server/internal/observability"
	"affiliate-server/internal/stats"
	"affiliate-server/internal/workers"

	"github.com/google/uuid"
)

// ReconcileEnqueuer is satisfied by jobs.Client.
type ReconcileEnqueuer interface {
	EnqueueReconcile(ctx context.Context, affiliateID uuid.UUID, day, processAt time.Time) error
}

// Processor turns click and conversion events into daily stats reconciliation jobs
type Processor struct {
	enqueuer ReconcileEnqueuer
	location *time.Location
	logger   *observability.Logger
}

// NewProcessor creates a new stats reconciliation event processor
func NewProcessor(enqueuer ReconcileEnqueuer, location *time.Location, logger *observability.Logger) *Processor {
	if location == nil {
		location = time.Local
	}
	return &Processor{
		enqueuer: enqueuer,
		location: location,
		logger:   logger,
	}
}

// Process handles click.recorded and conversion.recorded events
func (p *Processor) Process(ctx context.Context, event workers.EventMessage) error {
	switch event.Type {
	case kafka.EventClickRecorded, kafka.EventConversionRecorded:
	default:
		return nil
	}

	affiliateID, err := uuid.Parse(event.AffiliateID)
	if err != nil {
		// Malformed, retrying will not help.
		p.logger.Error(ctx, "invalid affiliate_id format", err)
		return nil
	}

	at, err := eventTime(event)
	if err != nil {
		p.logger.Error(ctx, "event has no usable timestamp", err)
		return nil
	}

	// the day is reconciled once, after it closes
	day := stats.Day(at, p.location)
	if err := p.enqueuer.EnqueueReconcile(ctx, affiliateID, day, stats.ClosesAt(day, p.location)); err != nil {
		p.logger.Error(ctx, "failed to enqueue reconcile job", err)
		return fmt.Errorf("failed to enqueue reconcile job: %w", err)
	}
	return nil
}

// Name returns the processor name for logging
func (p *Processor) Name() string {
	return "stats-reconciler"
}

// eventTime reads the server-side created_at, falling back to the envelope timestamp.
// Daily stats are bucketed by created_at, so the client-reported occurred_at is not used.
func eventTime(event workers.EventMessage) (time.Time, error) {
	if raw, ok := event.Data["created_at"].(string); ok && raw != "" {
		return time.Parse(time.RFC3339, raw)
	}
	return time.Parse(time.RFC3339, event.Timestamp)
}
