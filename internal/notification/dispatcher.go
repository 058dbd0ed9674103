package notification

//go:generate go run go.uber.org/mock/mockgen@latest -source=dispatcher.go -destination=mocks_test.go -package=notification

import (
	"context"
	"errors"
	"fmt"
	"time"

	"affiliate-server/internal/observability"
	"affiliate-server/internal/store"

	"github.com/google/uuid"
)

var ErrNoChannel = errors.New("no delivery channel configured")

// Outcome is the result of a Send.
type Outcome string

const (
	Delivered Outcome = "delivered"
	Queued    Outcome = "queued"
	Failed    Outcome = "failed"
)

const (
	sentMarkerTTL       = 7 * 24 * time.Hour
	maxQueuedAttempts   = 10
	defaultPrimaryTries = 3
	defaultBackoff      = 500 * time.Millisecond
	// drainLease bounds how long a drained row stays claimed if the drainer dies mid-batch.
	drainLease = 10 * time.Minute
)

// Message is one email to one recipient. Messages with the same recipient and IdempotencyKey are
// delivered at most once by the dedup markers and queued at most once by the queue.
type Message struct {
	Recipient      string
	Subject        string
	HTML           string
	IdempotencyKey string
}

// Sender is a delivery channel.
type Sender interface {
	Name() string
	SendEmail(ctx context.Context, from, to, subject, htmlContent string) (string, error)
}

// QueueStore persists messages no channel could deliver.
type QueueStore interface {
	EnqueueNotification(ctx context.Context, params store.EnqueueNotificationParams) (store.PendingNotification, bool, error)
	ClaimPendingNotifications(ctx context.Context, limit int, lease time.Duration) ([]store.PendingNotification, error)
	MarkNotificationDelivered(ctx context.Context, id uuid.UUID) error
	RecordNotificationFailure(ctx context.Context, id uuid.UUID, lastError string, maxAttempts int) error
}

// Deduper records which messages were already delivered.
type Deduper interface {
	SetMarker(ctx context.Context, key string, ttl time.Duration) (bool, error)
	HasMarker(ctx context.Context, key string) (bool, error)
}

// Dispatcher delivers email through a primary channel with retries, then a secondary channel, and
// finally parks the message in the durable queue.
type Dispatcher struct {
	primary      Sender
	secondary    Sender
	queue        QueueStore
	dedup        Deduper
	from         string
	primaryTries int
	backoff      time.Duration
	sleep        func(ctx context.Context, d time.Duration)
	logger       *observability.Logger
}

// DispatcherConfig wires the optional collaborators. Any of them may be nil.
type DispatcherConfig struct {
	Primary      Sender
	Secondary    Sender
	Queue        QueueStore
	Dedup        Deduper
	From         string
	PrimaryTries int
	Backoff      time.Duration
}

func NewDispatcher(cfg DispatcherConfig, logger *observability.Logger) *Dispatcher {
	tries := cfg.PrimaryTries
	if tries < 1 {
		tries = defaultPrimaryTries
	}
	backoff := cfg.Backoff
	if backoff <= 0 {
		backoff = defaultBackoff
	}
	return &Dispatcher{
		primary:      cfg.Primary,
		secondary:    cfg.Secondary,
		queue:        cfg.Queue,
		dedup:        cfg.Dedup,
		from:         cfg.From,
		primaryTries: tries,
		backoff:      backoff,
		sleep:        sleepCtx,
		logger:       logger,
	}
}

// Ready reports whether at least one delivery channel is configured.
func (d *Dispatcher) Ready() bool {
	return d.primary != nil || d.secondary != nil
}

// Send delivers msg and reports how it was handled. Failed is returned only when the message could
// neither be delivered nor queued.
func (d *Dispatcher) Send(ctx context.Context, msg Message) (Outcome, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "email_to", Value: msg.Recipient},
		observability.Field{Key: "idempotency_key", Value: msg.IdempotencyKey},
	)

	if d.alreadySent(ctx, msg) {
		d.logger.Info(ctx, "notification already delivered, skipping")
		return Delivered, nil
	}

	lastErr := d.deliver(ctx, msg, d.primaryTries)
	if lastErr == nil {
		return Delivered, nil
	}

	if d.queue == nil {
		d.logger.Error(ctx, "notification undeliverable and no queue configured", lastErr)
		return Failed, lastErr
	}

	errMsg := lastErr.Error()
	_, created, err := d.queue.EnqueueNotification(ctx, store.EnqueueNotificationParams{
		Recipient:      msg.Recipient,
		Subject:        msg.Subject,
		HTMLBody:       msg.HTML,
		IdempotencyKey: d.queueKey(msg),
		LastError:      &errMsg,
	})
	if err != nil {
		d.logger.Error(ctx, "failed to queue notification", err)
		return Failed, errors.Join(lastErr, err)
	}
	if !created {
		d.logger.Info(ctx, "notification already queued")
	} else {
		d.logger.Warn(ctx, "notification queued for later delivery")
	}
	return Queued, nil
}

// Drain claims up to limit queued notifications, retries each once per channel and returns how
// many were delivered. Concurrent drains never receive the same row.
func (d *Dispatcher) Drain(ctx context.Context, limit int) (int, error) {
	if d.queue == nil {
		return 0, nil
	}

	pending, err := d.queue.ClaimPendingNotifications(ctx, limit, drainLease)
	if err != nil {
		return 0, fmt.Errorf("failed to claim pending notifications: %w", err)
	}

	delivered := 0
	for _, p := range pending {
		msg := Message{Recipient: p.Recipient, Subject: p.Subject, HTML: p.HTMLBody, IdempotencyKey: p.IdempotencyKey}
		pctx := observability.WithFields(ctx,
			observability.Field{Key: "notification_id", Value: p.ID.String()},
			observability.Field{Key: "email_to", Value: p.Recipient},
			observability.Field{Key: "attempts", Value: p.Attempts},
		)

		if !d.alreadySent(pctx, msg) {
			if sendErr := d.deliver(pctx, msg, 1); sendErr != nil {
				if err := d.queue.RecordNotificationFailure(pctx, p.ID, sendErr.Error(), maxQueuedAttempts); err != nil {
					d.logger.Error(pctx, "failed to record notification failure", err)
				}
				continue
			}
		}

		if err := d.queue.MarkNotificationDelivered(pctx, p.ID); err != nil {
			d.logger.Error(pctx, "failed to mark notification delivered", err)
			continue
		}
		delivered++
	}

	if len(pending) > 0 {
		d.logger.Info(observability.WithFields(ctx,
			observability.Field{Key: "pending", Value: len(pending)},
			observability.Field{Key: "delivered", Value: delivered},
		), "drained notification queue")
	}
	return delivered, nil
}

// deliver tries the primary channel up to tries times with linear backoff, then the secondary
// channel once.
func (d *Dispatcher) deliver(ctx context.Context, msg Message, tries int) error {
	if !d.Ready() {
		return ErrNoChannel
	}

	var lastErr error
	if d.primary != nil {
		for attempt := 1; attempt <= tries; attempt++ {
			if attempt > 1 {
				d.sleep(ctx, time.Duration(attempt-1)*d.backoff)
			}
			if _, err := d.primary.SendEmail(ctx, d.from, msg.Recipient, msg.Subject, msg.HTML); err != nil {
				lastErr = err
				continue
			}
			d.markSent(ctx, msg)
			return nil
		}
		d.logger.InfoWithError(observability.WithFields(ctx, observability.Field{Key: "mail_channel", Value: d.primary.Name()}),
			"primary channel exhausted", lastErr)
	}

	if d.secondary != nil {
		if _, err := d.secondary.SendEmail(ctx, d.from, msg.Recipient, msg.Subject, msg.HTML); err != nil {
			d.logger.InfoWithError(observability.WithFields(ctx, observability.Field{Key: "mail_channel", Value: d.secondary.Name()}),
				"secondary channel failed", err)
			return err
		}
		d.markSent(ctx, msg)
		return nil
	}
	return lastErr
}

func (d *Dispatcher) markerKey(msg Message) string {
	return fmt.Sprintf("notification:sent:%s:%s", msg.Recipient, msg.IdempotencyKey)
}

// queueKey falls back to a random key so messages without one are still queued.
func (d *Dispatcher) queueKey(msg Message) string {
	if msg.IdempotencyKey != "" {
		return msg.IdempotencyKey
	}
	return "adhoc:" + uuid.New().String()
}

func (d *Dispatcher) alreadySent(ctx context.Context, msg Message) bool {
	if d.dedup == nil || msg.IdempotencyKey == "" {
		return false
	}
	sent, err := d.dedup.HasMarker(ctx, d.markerKey(msg))
	if err != nil {
		d.logger.InfoWithError(ctx, "failed to check sent marker", err)
		return false
	}
	return sent
}

func (d *Dispatcher) markSent(ctx context.Context, msg Message) {
	if d.dedup == nil || msg.IdempotencyKey == "" {
		return
	}
	if _, err := d.dedup.SetMarker(ctx, d.markerKey(msg), sentMarkerTTL); err != nil {
		d.logger.InfoWithError(ctx, "failed to set sent marker", err)
	}
}

func sleepCtx(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
