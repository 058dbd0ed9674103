package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"affiliate-server/internal/bootstrap"
	redisClient "affiliate-server/internal/clients/redis"
	"affiliate-server/internal/config"
	"affiliate-server/internal/jobs"
	"affiliate-server/internal/jobs/workers"
	"affiliate-server/internal/observability"
	"affiliate-server/internal/stats"
	"affiliate-server/internal/store"

	"github.com/hibiken/asynq"
)

const drainBatch = 50

func main() {
	logger := observability.NewLogger()
	defer func() { _ = logger.Sync() }()
	ctx := context.Background()

	logger.Info(ctx, "Starting background worker server...")

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal(ctx, "failed to load configuration", err)
	}
	if !cfg.HasDatabase() {
		logger.Fatal(ctx, "database configuration not set", nil)
	}
	if !cfg.Redis.Enabled {
		logger.Fatal(ctx, "REDIS_HOST is required by the job worker", nil)
	}

	dataStore, err := store.New(cfg.Database.ConnectionString(), logger)
	if err != nil {
		logger.Fatal(ctx, "failed to initialize store", err)
	}
	defer dataStore.Close()

	cache, err := redisClient.NewClient(cfg.Redis, logger)
	if err != nil {
		logger.Error(ctx, "failed to connect to redis for dedup markers", err)
	}
	defer cache.Close()

	dispatcher := bootstrap.NewDispatcher(ctx, cfg, &dataStore, cache, logger)
	reconciler := stats.NewReconciler(&dataStore, logger, cfg.Affiliate.StatsLocation)

	statsWorker := workers.NewStatsWorker(reconciler, cfg.Affiliate.StatsLocation, logger)
	notificationWorker := workers.NewNotificationWorker(dispatcher, drainBatch, logger)

	redisOpt := asynq.RedisClientOpt{
		Addr:     cfg.Redis.Addr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}

	srv := asynq.NewServer(
		redisOpt,
		asynq.Config{
			Concurrency: cfg.Jobs.Concurrency,
			Queues: map[string]int{
				jobs.QueueHigh:   6,
				jobs.QueueMedium: 3,
				jobs.QueueLow:    1,
			},
			ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
				logger.Error(ctx, fmt.Sprintf("task %s failed", task.Type()), err)
			}),
			RetryDelayFunc: asynq.DefaultRetryDelayFunc,
			Logger:         &asynqLogger{logger: logger},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(jobs.TypeStatsReconcile, statsWorker.ProcessReconcileTask)
	mux.HandleFunc(jobs.TypeStatsReconcileDaily, statsWorker.ProcessReconcileDailyTask)
	mux.HandleFunc(jobs.TypeNotificationDrain, notificationWorker.ProcessDrainTask)

	scheduler := asynq.NewScheduler(
		redisOpt,
		&asynq.SchedulerOpts{
			Logger:   &asynqLogger{logger: logger},
			Location: cfg.Affiliate.StatsLocation,
		},
	)

	// yesterday is complete by 00:15 in the reporting location
	if _, err := scheduler.Register("15 0 * * *", jobs.NewReconcileDailyTask()); err != nil {
		logger.Error(ctx, "failed to register daily reconcile task", err)
	}
	if _, err := scheduler.Register("@every 5m", jobs.NewNotificationDrainTask()); err != nil {
		logger.Error(ctx, "failed to register notification drain task", err)
	}

	if err := scheduler.Start(); err != nil {
		logger.Fatal(ctx, "failed to start scheduler", err)
	}
	defer scheduler.Shutdown()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info(ctx, fmt.Sprintf("Worker server started on Redis: %s", cfg.Redis.Addr()))
		if err := srv.Run(mux); err != nil {
			logger.Fatal(ctx, "failed to run worker server", err)
		}
	}()

	<-sigChan
	logger.Info(ctx, "Shutting down worker server...")

	srv.Shutdown()
	logger.Info(ctx, "Worker server stopped")
}

// asynqLogger adapts observability.Logger to asynq.Logger interface
type asynqLogger struct {
	logger *observability.Logger
}

func (l *asynqLogger) Debug(args ...interface{}) {
	l.logger.Debug(context.Background(), fmt.Sprint(args...))
}

func (l *asynqLogger) Info(args ...interface{}) {
	l.logger.Info(context.Background(), fmt.Sprint(args...))
}

func (l *asynqLogger) Warn(args ...interface{}) {
	l.logger.Warn(context.Background(), fmt.Sprint(args...))
}

func (l *asynqLogger) Error(args ...interface{}) {
	l.logger.Error(context.Background(), fmt.Sprint(args...), nil)
}

func (l *asynqLogger) Fatal(args ...interface{}) {
	l.logger.Fatal(context.Background(), fmt.Sprint(args...), nil)
}
