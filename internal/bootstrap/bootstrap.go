package bootstrap

import (
	"context"
	"fmt"
	"strings"
	"time"

	affiliateHandler "affiliate-server/internal/affiliate/handler"
	affiliateProcessor "affiliate-server/internal/affiliate/processor"
	authHandler "affiliate-server/internal/auth/handler"
	authProcessor "affiliate-server/internal/auth/processor"
	kafkaClient "affiliate-server/internal/clients/kafka"
	"affiliate-server/internal/clients/mail"
	redisClient "affiliate-server/internal/clients/redis"
	"affiliate-server/internal/config"
	"affiliate-server/internal/events"
	"affiliate-server/internal/ledger"
	"affiliate-server/internal/notification"
	"affiliate-server/internal/observability"
	"affiliate-server/internal/ratelimit"
	"affiliate-server/internal/referral"
	"affiliate-server/internal/stats"
	"affiliate-server/internal/store"
	trackingHandler "affiliate-server/internal/tracking/handler"
	trackingProcessor "affiliate-server/internal/tracking/processor"
)

const (
	reprocessInterval = time.Minute
	reprocessBatch    = 50
)

// Readiness reports which backing services were configured at boot.
type Readiness struct {
	Database bool
	Email    bool
	Cache    bool
	Events   bool
	Auth     bool
}

// Dependencies holds all initialized application dependencies
type Dependencies struct {
	// Core
	Store     store.Store
	Logger    *observability.Logger
	Readiness Readiness

	// Handlers
	AuthHandler      authHandler.Handler
	AffiliateHandler affiliateHandler.Handler
	TrackingHandler  trackingHandler.Handler

	RateLimiter *ratelimit.Service

	// Background workers
	Reprocessor *notification.Reprocessor

	// Clients (for cleanup)
	Redis         *redisClient.Client
	KafkaProducer *kafkaClient.Producer
}

// Initialize sets up all application dependencies. Missing or unreachable backing services are
// logged and reported through Readiness; only programming errors fail boot.
func Initialize(ctx context.Context, cfg *config.Config, logger *observability.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Logger: logger,
	}

	for _, missing := range cfg.Missing {
		logger.Warn(ctx, fmt.Sprintf("%s is not configured", missing))
	}

	// Initialize database store
	if cfg.HasDatabase() {
		var err error
		deps.Store, err = store.New(cfg.Database.ConnectionString(), logger)
		if err != nil {
			logger.Error(ctx, "failed to connect to database", err)
		} else {
			deps.Readiness.Database = true
		}
	}

	// Initialize redis (dedup markers)
	redis, err := redisClient.NewClient(cfg.Redis, logger)
	if err != nil {
		logger.Error(ctx, "failed to connect to redis", err)
	}
	deps.Redis = redis
	deps.Readiness.Cache = redis.IsEnabled()

	var window ratelimit.WindowStore
	if redis.IsEnabled() {
		window = redis
	}
	deps.RateLimiter = ratelimit.NewService(window, cfg.Server.RateLimitPerMinute, logger)

	// Initialize Kafka producer
	var producer events.EventProducer
	if brokers := cfg.Kafka.KafkaBrokers(); len(brokers) > 0 {
		deps.KafkaProducer = kafkaClient.NewProducer(kafkaClient.ProducerConfig{
			Brokers: brokers,
			Topic:   cfg.Kafka.Topic,
		}, logger)
		producer = deps.KafkaProducer
	}
	publisher := events.NewPublisher(producer, logger)
	deps.Readiness.Events = publisher.Enabled()

	// Initialize notification dispatcher
	var queue *store.Store
	if deps.Readiness.Database {
		queue = &deps.Store
	}
	dispatcher := NewDispatcher(ctx, cfg, queue, deps.Redis, logger)
	deps.Readiness.Email = dispatcher.Ready()
	notifier := notification.NewNotifier(dispatcher, cfg.Mail.AdminEmails, cfg.Affiliate.CommissionRate, logger)

	if deps.Readiness.Database {
		deps.Reprocessor, err = notification.NewReprocessor(dispatcher, reprocessInterval, reprocessBatch, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create notification reprocessor: %w", err)
		}
	}

	// Initialize auth processor and handler
	authProc := authProcessor.New(&deps.Store, cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, logger)
	deps.Readiness.Auth = authProc.Ready()
	deps.AuthHandler = authHandler.New(authProc, logger)

	// Initialize tracking processor and handler
	balances := ledger.New(&deps.Store, logger)
	aggregator := stats.NewAggregator(&deps.Store, logger, cfg.Affiliate.StatsLocation)
	trackingProc := trackingProcessor.New(
		&deps.Store,
		balances,
		aggregator,
		notifier,
		publisher,
		cfg.Affiliate.CommissionRate,
		logger,
	)
	deps.TrackingHandler = trackingHandler.New(&trackingProc, logger)

	// Initialize affiliate processor and handler
	affiliateProc := affiliateProcessor.New(
		&deps.Store,
		referral.NewGenerator(),
		notifier,
		publisher,
		&authProc,
		cfg.Affiliate.MinimumPayout,
		logger,
	)
	deps.AffiliateHandler = affiliateHandler.New(&affiliateProc, logger)

	logger.Info(observability.WithFields(ctx,
		observability.Field{Key: "database", Value: deps.Readiness.Database},
		observability.Field{Key: "email", Value: deps.Readiness.Email},
		observability.Field{Key: "cache", Value: deps.Readiness.Cache},
		observability.Field{Key: "events", Value: deps.Readiness.Events},
		observability.Field{Key: "auth", Value: deps.Readiness.Auth},
	), "dependencies initialized")

	return deps, nil
}

// NewDispatcher builds the notification dispatcher from whichever channels are configured. queue
// and cache may be nil.
func NewDispatcher(
	ctx context.Context,
	cfg *config.Config,
	queue *store.Store,
	cache *redisClient.Client,
	logger *observability.Logger,
) *notification.Dispatcher {
	dispatcherCfg := notification.DispatcherConfig{
		From:         cfg.Mail.DefaultSender,
		PrimaryTries: cfg.Mail.MaxPrimaryAttempts,
	}

	if cfg.Mail.ResendAPIKey != "" {
		resend, err := mail.NewResendClient(cfg.Mail.ResendAPIKey, logger)
		if err != nil {
			logger.Error(ctx, "failed to create resend client", err)
		} else {
			dispatcherCfg.Primary = resend
		}
	}
	if cfg.Mail.RelayURL != "" {
		relay, err := mail.NewRelayClient(cfg.Mail.RelayURL, cfg.Mail.RelayToken, logger)
		if err != nil {
			logger.Error(ctx, "failed to create mail relay client", err)
		} else {
			dispatcherCfg.Secondary = relay
		}
	}
	if queue != nil {
		dispatcherCfg.Queue = queue
	}
	if cache.IsEnabled() {
		dispatcherCfg.Dedup = cache
	}
	if len(cfg.Mail.AdminEmails) == 0 {
		logger.Warn(ctx, "ADMIN_EMAILS is empty, admin notifications are disabled")
	}

	logger.Info(observability.WithFields(ctx,
		observability.Field{Key: "mail_channels", Value: strings.Join(channelNames(dispatcherCfg), ",")},
	), "notification dispatcher configured")
	return notification.NewDispatcher(dispatcherCfg, logger)
}

func channelNames(cfg notification.DispatcherConfig) []string {
	var names []string
	if cfg.Primary != nil {
		names = append(names, cfg.Primary.Name())
	}
	if cfg.Secondary != nil {
		names = append(names, cfg.Secondary.Name())
	}
	if cfg.Queue != nil {
		names = append(names, "queue")
	}
	return names
}

// Cleanup closes all resources that need cleanup
func (d *Dependencies) Cleanup() {
	ctx := context.Background()
	if d.Reprocessor != nil {
		if err := d.Reprocessor.Stop(); err != nil {
			d.Logger.Error(ctx, "failed to stop notification reprocessor", err)
		}
	}
	if d.KafkaProducer != nil {
		if err := d.KafkaProducer.Close(); err != nil {
			d.Logger.Error(ctx, "failed to close kafka producer", err)
		}
	}
	if err := d.Redis.Close(); err != nil {
		d.Logger.Error(ctx, "failed to close redis client", err)
	}
	if d.Readiness.Database {
		if err := d.Store.Close(); err != nil {
			d.Logger.Error(ctx, "failed to close database", err)
		}
	}
}
