package workers

import (
	"context"

	kafka "affiliate-server/internal/clients/kafka"

	kafkago "github.com/segmentio/kafka-go"
)

// EventMessage is an alias for the Kafka event message type.
type EventMessage = kafka.EventMessage

// EventProcessor handles affiliate events read from Kafka.
// Implementations must tolerate redelivery.
type EventProcessor interface {
	// Process handles a single event. A returned error leaves the offset uncommitted.
	Process(ctx context.Context, event EventMessage) error

	// Name returns the processor name for logging.
	Name() string
}

// EventConsumer reads events from Kafka and fans them out to workers.
type EventConsumer interface {
	// Start blocks until Stop is called.
	Start(ctx context.Context) error

	// Stop drains in-flight events and returns once Start has returned.
	Stop()
}

// messageReader is the subset of kafka-go's Reader the consumer depends on.
type messageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
	Close() error
}
