package events

import (
	"context"
	"time"

	"affiliate-server/internal/clients/kafka"
	"affiliate-server/internal/observability"
	"affiliate-server/internal/store"

	"github.com/google/uuid"
)

// EventProducer is satisfied by kafka.Producer.
type EventProducer interface {
	PublishEvent(ctx context.Context, event kafka.EventMessage) error
}

// Publisher handles publishing affiliate domain events. A Publisher without a producer drops
// events, which lets the API run without a broker.
type Publisher struct {
	producer EventProducer
	logger   *observability.Logger
	now      func() time.Time
}

// NewPublisher creates a new event publisher
func NewPublisher(producer EventProducer, logger *observability.Logger) *Publisher {
	return &Publisher{producer: producer, logger: logger, now: time.Now}
}

// Enabled reports whether events reach a broker.
func (p *Publisher) Enabled() bool {
	return p != nil && p.producer != nil
}

// PublishClickRecorded publishes a click.recorded event
func (p *Publisher) PublishClickRecorded(ctx context.Context, click store.Click) error {
	return p.publish(ctx, kafka.EventClickRecorded, click.AffiliateID, map[string]interface{}{
		"click_id":    click.ID.String(),
		"link_id":     click.LinkID.String(),
		"ref_code":    click.RefCode,
		"device_type": click.DeviceType,
		"source":      click.Source,
		"occurred_at": click.OccurredAt.UTC().Format(time.RFC3339),
		"created_at":  click.CreatedAt.UTC().Format(time.RFC3339),
	})
}

// PublishConversionRecorded publishes a conversion.recorded event
func (p *Publisher) PublishConversionRecorded(ctx context.Context, conversion store.Conversion) error {
	return p.publish(ctx, kafka.EventConversionRecorded, conversion.AffiliateID, map[string]interface{}{
		"conversion_id":     conversion.ID.String(),
		"link_id":           conversion.LinkID.String(),
		"ref_code":          conversion.RefCode,
		"purchase_amount":   conversion.PurchaseAmount.StringFixed(2),
		"commission_amount": conversion.CommissionAmount.StringFixed(2),
		"currency":          conversion.Currency,
		"created_at":        conversion.CreatedAt.UTC().Format(time.RFC3339),
	})
}

// PublishAffiliateRegistered publishes an affiliate.registered event
func (p *Publisher) PublishAffiliateRegistered(ctx context.Context, affiliate store.Affiliate) error {
	return p.publish(ctx, kafka.EventAffiliateRegistered, affiliate.UserID, map[string]interface{}{
		"email": affiliate.Email,
		"name":  affiliate.Name,
	})
}

func (p *Publisher) publish(ctx context.Context, eventType string, affiliateID uuid.UUID, data map[string]interface{}) error {
	if !p.Enabled() {
		return nil
	}
	return p.producer.PublishEvent(ctx, kafka.EventMessage{
		ID:          uuid.New().String(),
		Type:        eventType,
		AffiliateID: affiliateID.String(),
		Data:        data,
		Timestamp:   p.now().UTC().Format(time.RFC3339),
	})
}
