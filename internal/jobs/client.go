package jobs

import (
	"context"
	"errors"
	"fmt"
	"time"

	"affiliate-server/internal/observability"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// Client handles enqueueing background jobs
type Client struct {
	client *asynq.Client
	logger *observability.Logger
}

// NewClient creates a new job client
func NewClient(redisOpt asynq.RedisClientOpt, logger *observability.Logger) *Client {
	return &Client{
		client: asynq.NewClient(redisOpt),
		logger: logger,
	}
}

// Close closes the client connection
func (c *Client) Close() error {
	return c.client.Close()
}

// EnqueueReconcile schedules a rebuild of the affiliate's daily row for the given day at processAt.
// A task already pending for the same affiliate-day is not an error.
func (c *Client) EnqueueReconcile(ctx context.Context, affiliateID uuid.UUID, day, processAt time.Time) error {
	payload := ReconcileJobPayload{AffiliateID: affiliateID, Day: day.Format(DayLayout)}
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "affiliate_id", Value: affiliateID.String()},
		observability.Field{Key: "stats_day", Value: payload.Day},
	)

	task, err := NewReconcileTask(payload, processAt)
	if err != nil {
		c.logger.Error(ctx, "failed to create reconcile task", err)
		return fmt.Errorf("failed to create reconcile task: %w", err)
	}

	info, err := c.client.EnqueueContext(ctx, task)
	if errors.Is(err, asynq.ErrTaskIDConflict) || errors.Is(err, asynq.ErrDuplicateTask) {
		c.logger.Debug(ctx, "reconcile task already queued")
		return nil
	}
	if err != nil {
		c.logger.Error(ctx, "failed to enqueue reconcile task", err)
		return fmt.Errorf("failed to enqueue reconcile task: %w", err)
	}

	c.logger.Info(ctx, fmt.Sprintf("enqueued reconcile task: %s (queue: %s)", info.ID, info.Queue))
	return nil
}
