package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"affiliate-server/internal/config"
	"affiliate-server/internal/jobs"
	"affiliate-server/internal/observability"
	"affiliate-server/internal/workers"
	"affiliate-server/internal/workers/reconcile"

	"github.com/hibiken/asynq"
)

func main() {
	logger := observability.NewLogger()
	defer func() { _ = logger.Sync() }()
	ctx := context.Background()

	logger.Info(ctx, "Starting Kafka event worker...")

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal(ctx, "failed to load configuration", err)
	}

	brokers := cfg.Kafka.KafkaBrokers()
	if len(brokers) == 0 {
		logger.Fatal(ctx, "KAFKA_BROKERS is required by the event worker", nil)
	}
	if !cfg.Redis.Enabled {
		logger.Fatal(ctx, "REDIS_HOST is required to enqueue reconcile jobs", nil)
	}

	jobClient := jobs.NewClient(asynq.RedisClientOpt{
		Addr:     cfg.Redis.Addr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}, logger)
	defer jobClient.Close()

	processor := reconcile.NewProcessor(jobClient, cfg.Affiliate.StatsLocation, logger)

	consumerConfig := workers.DefaultConsumerConfig(brokers, cfg.Kafka.ConsumerGroup, cfg.Kafka.Topic)
	consumerConfig.NumWorkers = cfg.Kafka.Workers
	consumer := workers.NewConsumer(consumerConfig, processor, logger)

	logger.Info(ctx, fmt.Sprintf(`Kafka event worker configuration:
  - Workers: %d
  - Kafka brokers: %v
  - Kafka topic: %s
  - Consumer group: %s`,
		consumerConfig.NumWorkers, brokers, cfg.Kafka.Topic, cfg.Kafka.ConsumerGroup))

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := consumer.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error(ctx, "event consumer stopped with error", err)
			cancel()
		}
	}()

	select {
	case <-sigChan:
		logger.Info(ctx, "Received shutdown signal, stopping consumer...")
	case <-ctx.Done():
	}
	cancel()

	consumer.Stop()
	logger.Info(ctx, "Kafka event worker stopped")
}
