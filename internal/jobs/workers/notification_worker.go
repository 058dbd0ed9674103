package workers

//go:generate go run go.uber.org/mock/mockgen@latest -source=notification_worker.go -destination=notification_worker_mocks_test.go -package=workers

import (
	"context"
	"fmt"

	"affiliate-server/internal/observability"

	"github.com/hibiken/asynq"
)

// QueueDrainer is satisfied by notification.Dispatcher.
type QueueDrainer interface {
	Drain(ctx context.Context, limit int) (int, error)
}

// NotificationWorker retries queued notifications outside the API process.
type NotificationWorker struct {
	drainer QueueDrainer
	batch   int
	logger  *observability.Logger
}

func NewNotificationWorker(drainer QueueDrainer, batch int, logger *observability.Logger) *NotificationWorker {
	return &NotificationWorker{drainer: drainer, batch: batch, logger: logger}
}

// ProcessDrainTask delivers up to one batch of queued notifications.
func (w *NotificationWorker) ProcessDrainTask(ctx context.Context, _ *asynq.Task) error {
	delivered, err := w.drainer.Drain(ctx, w.batch)
	if err != nil {
		w.logger.Error(ctx, "failed to drain notification queue", err)
		return fmt.Errorf("failed to drain notification queue: %w", err)
	}
	if delivered > 0 {
		w.logger.Info(ctx, fmt.Sprintf("delivered %d queued notifications", delivered))
	}
	return nil
}
