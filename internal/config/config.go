package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

var ErrEmptyEnvironmentVariable = errors.New("empty environment variable")

var (
	// CommissionRate is the share of a purchase credited to the referring affiliate.
	CommissionRate = decimal.RequireFromString("0.10")
	// MinimumPayout is the available balance at which an affiliate may request a payout.
	MinimumPayout = decimal.NewFromInt(50)
)

// Config holds all application configuration
type Config struct {
	Database  DatabaseConfig
	Auth      AuthConfig
	Mail      MailConfig
	Affiliate AffiliateConfig
	Redis     RedisConfig
	Kafka     KafkaConfig
	Jobs      JobsConfig
	Server    ServerConfig

	// Missing lists the optional dependencies that could not be configured. The server still
	// boots and reports them on /health.
	Missing []string
}

type DatabaseConfig struct {
	Host     string
	Username string
	Password string
	Name     string
}

type AuthConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
}

// MailConfig configures both delivery channels and the admin recipients.
type MailConfig struct {
	ResendAPIKey       string
	DefaultSender      string
	RelayURL           string
	RelayToken         string
	AdminEmails        []string
	MaxPrimaryAttempts int
}

type AffiliateConfig struct {
	CommissionRate decimal.Decimal
	MinimumPayout  decimal.Decimal
	StatsLocation  *time.Location
}

type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
}

type KafkaConfig struct {
	Brokers       string
	Topic         string
	ConsumerGroup string
	Workers       int
}

// JobsConfig configures the asynq worker process.
type JobsConfig struct {
	Concurrency int
}

type ServerConfig struct {
	Port int
	Name string
	// RateLimitPerMinute caps public requests per client IP. Zero disables the limit.
	RateLimitPerMinute int
}

// Load reads the environment. Only malformed values are errors; absent credentials are recorded
// in Missing.
func Load() (*Config, error) {
	if os.Getenv("GO_ENV") != "production" {
		// env.local is optional in development
		_ = godotenv.Load("env.local")
	}

	cfg := &Config{}
	var err error

	cfg.Database.Host = cfg.optional("DB_HOST", "database")
	cfg.Database.Username = cfg.optional("DB_USERNAME", "database")
	cfg.Database.Password = os.Getenv("DB_PASSWORD")
	cfg.Database.Name = cfg.optional("DB_NAME", "database")

	cfg.Auth.JWTSecret = cfg.optional("JWT_SECRET", "auth")
	cfg.Auth.TokenTTL, err = time.ParseDuration(getEnvWithDefault("JWT_TTL", "24h"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse JWT_TTL: %w", err)
	}

	cfg.Mail.ResendAPIKey = cfg.optional("RESEND_API_KEY", "email")
	cfg.Mail.DefaultSender = getEnvWithDefault("DEFAULT_EMAIL_SENDER_ADDRESS", "affiliates@example.com")
	cfg.Mail.RelayURL = os.Getenv("MAIL_RELAY_URL")
	cfg.Mail.RelayToken = os.Getenv("MAIL_RELAY_TOKEN")
	cfg.Mail.AdminEmails = splitList(os.Getenv("ADMIN_EMAILS"))
	if cfg.Mail.MaxPrimaryAttempts, err = getIntWithDefault("MAIL_PRIMARY_ATTEMPTS", 3); err != nil {
		return nil, err
	}

	cfg.Affiliate.CommissionRate = CommissionRate
	cfg.Affiliate.MinimumPayout = MinimumPayout
	cfg.Affiliate.StatsLocation = time.Local
	if tz := os.Getenv("STATS_TIMEZONE"); tz != "" {
		loc, err := time.LoadLocation(tz)
		if err != nil {
			return nil, fmt.Errorf("failed to parse STATS_TIMEZONE: %w", err)
		}
		cfg.Affiliate.StatsLocation = loc
	}

	cfg.Redis.Host = os.Getenv("REDIS_HOST")
	cfg.Redis.Enabled = cfg.Redis.Host != ""
	cfg.Redis.Password = os.Getenv("REDIS_PASSWORD")
	if cfg.Redis.Port, err = getIntWithDefault("REDIS_PORT", 6379); err != nil {
		return nil, err
	}
	if cfg.Redis.DB, err = getIntWithDefault("REDIS_DB", 0); err != nil {
		return nil, err
	}

	cfg.Kafka.Brokers = os.Getenv("KAFKA_BROKERS")
	cfg.Kafka.Topic = getEnvWithDefault("KAFKA_TOPIC", "affiliate-events")
	cfg.Kafka.ConsumerGroup = getEnvWithDefault("KAFKA_CONSUMER_GROUP", "affiliate-stats")
	if cfg.Kafka.Workers, err = getIntWithDefault("KAFKA_WORKERS", 5); err != nil {
		return nil, err
	}

	if cfg.Jobs.Concurrency, err = getIntWithDefault("JOBS_CONCURRENCY", 10); err != nil {
		return nil, err
	}

	if cfg.Server.Port, err = getIntWithDefault("SERVER_PORT", 8080); err != nil {
		return nil, err
	}
	cfg.Server.Name = getEnvWithDefault("SERVER_NAME", "affiliate-server")
	if cfg.Server.RateLimitPerMinute, err = getIntWithDefault("RATE_LIMIT_PER_MINUTE", 120); err != nil {
		return nil, err
	}

	return cfg, nil
}

// HasDatabase reports whether every database setting is present.
func (c *Config) HasDatabase() bool {
	return c.Database.Host != "" && c.Database.Username != "" && c.Database.Name != ""
}

// ConnectionString returns a PostgreSQL connection string
func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s/%s",
		c.Username, c.Password, c.Host, c.Name)
}

// Addr returns host:port for the redis client.
func (c *RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// KafkaBrokers splits the comma separated broker list.
func (c *KafkaConfig) KafkaBrokers() []string {
	return splitList(c.Brokers)
}

func (c *Config) optional(key, dependency string) string {
	value, err := requireEnv(key)
	if err != nil {
		for _, m := range c.Missing {
			if m == dependency {
				return ""
			}
		}
		c.Missing = append(c.Missing, dependency)
		return ""
	}
	return value
}

// requireEnv retrieves an environment variable or returns an error if empty
func requireEnv(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("%s is not set: %w", key, ErrEmptyEnvironmentVariable)
	}
	return value, nil
}

// getEnvWithDefault retrieves an environment variable or returns a default value
func getEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getIntWithDefault(key string, defaultValue int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s: %w", key, err)
	}
	return v, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
