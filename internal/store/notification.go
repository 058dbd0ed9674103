package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// EnqueueNotificationParams represents an undelivered message to keep for later delivery
type EnqueueNotificationParams struct {
	Recipient      string
	Subject        string
	HTMLBody       string
	IdempotencyKey string
	LastError      *string
}

const sqlEnqueueNotification = `
INSERT INTO pending_notifications (recipient, subject, html_body, idempotency_key, status, last_error)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (recipient, idempotency_key) DO NOTHING
RETURNING id, recipient, subject, html_body, idempotency_key, status, attempts, last_error, claimed_until, created_at, updated_at
`

// EnqueueNotification stores a pending notification. The second return value is false when a row
// with the same recipient and idempotency key already exists.
func (s *Store) EnqueueNotification(ctx context.Context, params EnqueueNotificationParams) (PendingNotification, bool, error) {
	var n PendingNotification
	err := s.db.GetContext(ctx, &n, sqlEnqueueNotification,
		params.Recipient,
		params.Subject,
		params.HTMLBody,
		params.IdempotencyKey,
		NotificationStatusPending,
		params.LastError)
	if err != nil {
		if isNoRows(err) {
			return PendingNotification{}, false, nil
		}
		s.logger.Error(ctx, "failed to enqueue notification", err)
		return PendingNotification{}, false, fmt.Errorf("failed to enqueue notification: %w", err)
	}
	return n, true, nil
}

// sqlClaimPendingNotifications hands out pending rows and rows whose claim has lapsed. Rows locked
// by a concurrent claim are skipped.
const sqlClaimPendingNotifications = `
UPDATE pending_notifications
SET status = $2, claimed_until = NOW() + $3::bigint * INTERVAL '1 millisecond', updated_at = NOW()
WHERE id IN (
    SELECT id
    FROM pending_notifications
    WHERE status = $1 OR (status = $2 AND claimed_until < NOW())
    ORDER BY created_at
    LIMIT $4
    FOR UPDATE SKIP LOCKED
)
RETURNING id, recipient, subject, html_body, idempotency_key, status, attempts, last_error, claimed_until, created_at, updated_at
`

// ClaimPendingNotifications claims up to limit of the oldest deliverable notifications for lease.
// A claimed row is not handed out again until it is released or its lease expires.
func (s *Store) ClaimPendingNotifications(ctx context.Context, limit int, lease time.Duration) ([]PendingNotification, error) {
	notifications := []PendingNotification{}
	err := s.db.SelectContext(ctx, &notifications, sqlClaimPendingNotifications,
		NotificationStatusPending,
		NotificationStatusSending,
		lease.Milliseconds(),
		limit)
	if err != nil {
		s.logger.Error(ctx, "failed to claim pending notifications", err)
		return nil, fmt.Errorf("failed to claim pending notifications: %w", err)
	}
	return notifications, nil
}

const sqlMarkNotificationDelivered = `
UPDATE pending_notifications
SET status = $2, attempts = attempts + 1, claimed_until = NULL, updated_at = NOW()
WHERE id = $1
`

// MarkNotificationDelivered flags a queued notification as sent
func (s *Store) MarkNotificationDelivered(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, sqlMarkNotificationDelivered, id, NotificationStatusDelivered)
	if err != nil {
		s.logger.Error(ctx, "failed to mark notification delivered", err)
		return fmt.Errorf("failed to mark notification delivered: %w", err)
	}
	return requireAffected(res)
}

const sqlRecordNotificationFailure = `
UPDATE pending_notifications
SET attempts = attempts + 1,
    last_error = $2,
    status = CASE WHEN attempts + 1 >= $3 THEN $4 ELSE $5 END,
    claimed_until = NULL,
    updated_at = NOW()
WHERE id = $1
`

// RecordNotificationFailure counts a failed delivery attempt and releases the claim. After
// maxAttempts the notification is given up on.
func (s *Store) RecordNotificationFailure(ctx context.Context, id uuid.UUID, lastError string, maxAttempts int) error {
	res, err := s.db.ExecContext(ctx, sqlRecordNotificationFailure, id, lastError, maxAttempts,
		NotificationStatusFailed, NotificationStatusPending)
	if err != nil {
		s.logger.Error(ctx, "failed to record notification failure", err)
		return fmt.Errorf("failed to record notification failure: %w", err)
	}
	return requireAffected(res)
}
