package kafka

import (
	"context"
	"encoding/json"
	"fmt"

	"affiliate-server/internal/observability"

	"github.com/segmentio/kafka-go"
)

// Event types published on the affiliate topic.
const (
	EventClickRecorded       = "click.recorded"
	EventConversionRecorded  = "conversion.recorded"
	EventAffiliateRegistered = "affiliate.registered"
)

// Producer handles publishing events to Kafka
type Producer struct {
	writer *kafka.Writer
	logger *observability.Logger
}

// ProducerConfig contains configuration for Kafka producer
type ProducerConfig struct {
	Brokers []string
	Topic   string
}

// NewProducer creates a new Kafka producer
func NewProducer(config ProducerConfig, logger *observability.Logger) *Producer {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(config.Brokers...),
		Topic:        config.Topic,
		Balancer:     &kafka.Hash{},
		Async:        false,
		Compression:  kafka.Snappy,
		BatchSize:    100,
		RequiredAcks: kafka.RequireOne,
	}

	return &Producer{
		writer: writer,
		logger: logger,
	}
}

// EventMessage is the envelope of every affiliate domain event.
type EventMessage struct {
	ID          string                 `json:"id"`
	Type        string                 `json:"type"`
	AffiliateID string                 `json:"affiliate_id"`
	Data        map[string]interface{} `json:"data"`
	Timestamp   string                 `json:"timestamp"`
}

// PublishEvent publishes an event keyed by affiliate, so one affiliate's events stay ordered.
func (p *Producer) PublishEvent(ctx context.Context, event EventMessage) error {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "event_type", Value: event.Type},
		observability.Field{Key: "event_id", Value: event.ID},
	)

	msg, err := encode(event)
	if err != nil {
		p.logger.Error(ctx, "failed to marshal event", err)
		return err
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.logger.Error(ctx, "failed to write message to kafka", err)
		return fmt.Errorf("failed to write message to kafka: %w", err)
	}

	p.logger.Debug(ctx, fmt.Sprintf("published event %s to kafka", event.Type))
	return nil
}

// Close closes the Kafka producer
func (p *Producer) Close() error {
	return p.writer.Close()
}

func encode(event EventMessage) (kafka.Message, error) {
	value, err := json.Marshal(event)
	if err != nil {
		return kafka.Message{}, fmt.Errorf("failed to marshal event: %w", err)
	}
	return kafka.Message{
		Key:   []byte(event.AffiliateID),
		Value: value,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(event.Type)},
			{Key: "affiliate_id", Value: []byte(event.AffiliateID)},
		},
	}, nil
}
