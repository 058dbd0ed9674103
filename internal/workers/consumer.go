package workers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"affiliate-server/internal/observability"

	kafkago "github.com/segmentio/kafka-go"
)

var errMalformedEvent = errors.New("malformed event")

// ConsumerConfig holds configuration for the Kafka event consumer.
type ConsumerConfig struct {
	Brokers       []string
	ConsumerGroup string
	Topic         string

	// NumWorkers is the number of concurrent workers.
	NumWorkers int

	// QueueSize is the buffer size between the fetch loop and the workers.
	QueueSize int

	// Attempts is how many times a worker runs the processor on one event before leaving it uncommitted.
	Attempts int

	// RetryBackoff is the pause between attempts.
	RetryBackoff time.Duration

	// DrainTimeout bounds the wait for in-flight events during shutdown.
	DrainTimeout time.Duration
}

// DefaultConsumerConfig returns sensible defaults for a consumer.
func DefaultConsumerConfig(brokers []string, consumerGroup, topic string) ConsumerConfig {
	return ConsumerConfig{
		Brokers:       brokers,
		ConsumerGroup: consumerGroup,
		Topic:         topic,
		NumWorkers:    10,
		QueueSize:     100,
		Attempts:      3,
		RetryBackoff:  500 * time.Millisecond,
		DrainTimeout:  30 * time.Second,
	}
}

func (c ConsumerConfig) withDefaults() ConsumerConfig {
	defaults := DefaultConsumerConfig(c.Brokers, c.ConsumerGroup, c.Topic)
	if c.NumWorkers <= 0 {
		c.NumWorkers = defaults.NumWorkers
	}
	if c.QueueSize <= 0 {
		c.QueueSize = defaults.QueueSize
	}
	if c.Attempts <= 0 {
		c.Attempts = defaults.Attempts
	}
	if c.RetryBackoff < 0 {
		c.RetryBackoff = 0
	}
	if c.DrainTimeout <= 0 {
		c.DrainTimeout = defaults.DrainTimeout
	}
	return c
}

// fetched pairs a decoded event with its Kafka message for offset tracking.
type fetched struct {
	event EventMessage
	msg   kafkago.Message
}

type consumer struct {
	config    ConsumerConfig
	reader    messageReader
	processor EventProcessor
	logger    *observability.Logger

	eventCh chan fetched

	cancelFetch context.CancelFunc
	started     chan struct{}
	doneCh      chan struct{}
	stopping    atomic.Bool
	stopOnce    sync.Once
}

// NewConsumer creates a consumer reading config.Topic as part of config.ConsumerGroup.
func NewConsumer(config ConsumerConfig, processor EventProcessor, logger *observability.Logger) EventConsumer {
	config = config.withDefaults()
	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        config.Brokers,
		Topic:          config.Topic,
		GroupID:        config.ConsumerGroup,
		MinBytes:       1,
		MaxBytes:       10e6,
		StartOffset:    kafkago.FirstOffset,
		CommitInterval: 0,
	})
	return newConsumer(config, reader, processor, logger)
}

func newConsumer(config ConsumerConfig, reader messageReader, processor EventProcessor, logger *observability.Logger) *consumer {
	config = config.withDefaults()
	c := &consumer{
		config:    config,
		reader:    reader,
		processor: processor,
		logger:    logger,
		eventCh:   make(chan fetched, config.QueueSize),
		started:   make(chan struct{}),
		doneCh:    make(chan struct{}),
	}

	logger.Info(c.logContext(context.Background()), fmt.Sprintf("initialized consumer for %s processor", processor.Name()))
	return c
}

func (c *consumer) logContext(ctx context.Context) context.Context {
	return observability.WithFields(ctx,
		observability.Field{Key: "processor", Value: c.processor.Name()},
		observability.Field{Key: "consumer_group", Value: c.config.ConsumerGroup},
		observability.Field{Key: "topic", Value: c.config.Topic},
	)
}

// Start consumes until Stop is called or ctx is cancelled. In-flight events finish
// even after cancellation so their offsets can be committed.
func (c *consumer) Start(ctx context.Context) error {
	defer close(c.doneCh)

	ctx, cancel := context.WithCancel(c.logContext(ctx))
	c.cancelFetch = cancel
	close(c.started)
	defer cancel()

	c.logger.Info(ctx, fmt.Sprintf("starting consumer with %d workers", c.config.NumWorkers))

	var workerWg sync.WaitGroup
	for i := 0; i < c.config.NumWorkers; i++ {
		workerWg.Add(1)
		go c.worker(context.WithoutCancel(ctx), &workerWg, i)
	}

	c.fetchLoop(ctx)
	close(c.eventCh)

	drained := make(chan struct{})
	go func() {
		workerWg.Wait()
		close(drained)
	}()

	select {
	case <-drained:
		c.logger.Info(ctx, "all workers finished processing")
	case <-time.After(c.config.DrainTimeout):
		c.logger.Warn(ctx, "drain timeout reached, some events may be redelivered")
	}

	if err := c.reader.Close(); err != nil {
		c.logger.Error(ctx, "failed to close kafka reader", err)
	}

	c.logger.Info(ctx, "consumer stopped")
	return nil
}

func (c *consumer) fetchLoop(ctx context.Context) {
	for !c.stopping.Load() {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if c.stopping.Load() || ctx.Err() != nil {
				return
			}
			c.logger.Error(ctx, "failed to fetch message from kafka", err)
			select {
			case <-time.After(time.Second):
			case <-ctx.Done():
				return
			}
			continue
		}

		event, err := decode(msg)
		if err != nil {
			c.logger.Error(ctx, "skipping undecodable event", err)
			c.commit(ctx, msg)
			continue
		}

		select {
		case c.eventCh <- fetched{event: event, msg: msg}:
		case <-ctx.Done():
			return
		}
	}
}

func (c *consumer) worker(ctx context.Context, wg *sync.WaitGroup, id int) {
	defer wg.Done()
	ctx = observability.WithFields(ctx, observability.Field{Key: "worker_id", Value: id})

	for f := range c.eventCh {
		eventCtx := observability.WithFields(ctx,
			observability.Field{Key: "event_id", Value: f.event.ID},
			observability.Field{Key: "event_type", Value: f.event.Type},
			observability.Field{Key: "affiliate_id", Value: f.event.AffiliateID},
		)

		if err := c.process(eventCtx, f.event); err != nil {
			c.logger.Error(eventCtx, "failed to process event, leaving offset uncommitted", err)
			continue
		}
		c.commit(eventCtx, f.msg)
	}
}

func (c *consumer) process(ctx context.Context, event EventMessage) error {
	var err error
	for attempt := 1; attempt <= c.config.Attempts; attempt++ {
		if err = c.processor.Process(ctx, event); err == nil {
			return nil
		}
		if attempt < c.config.Attempts && c.config.RetryBackoff > 0 {
			time.Sleep(c.config.RetryBackoff * time.Duration(attempt))
		}
	}
	return err
}

func (c *consumer) commit(ctx context.Context, msg kafkago.Message) {
	if err := c.reader.CommitMessages(context.WithoutCancel(ctx), msg); err != nil {
		c.logger.Error(ctx, "failed to commit offset", err)
	}
}

// Stop signals the fetch loop and waits for Start to drain and return.
func (c *consumer) Stop() {
	c.stopOnce.Do(func() {
		c.logger.Info(c.logContext(context.Background()), "stopping consumer")
		c.stopping.Store(true)

		select {
		case <-c.started:
			c.cancelFetch()
			<-c.doneCh
		default:
		}
	})
}

func decode(msg kafkago.Message) (EventMessage, error) {
	var event EventMessage
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		return EventMessage{}, fmt.Errorf("%w: %v", errMalformedEvent, err)
	}
	if event.Type == "" || event.AffiliateID == "" {
		return EventMessage{}, fmt.Errorf("%w: missing type or affiliate_id", errMalformedEvent)
	}
	return event, nil
}
