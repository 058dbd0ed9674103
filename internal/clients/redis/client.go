package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"affiliate-server/internal/config"
	"affiliate-server/internal/observability"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Client wraps the Redis client with observability. A nil *Client is a valid disabled client.
type Client struct {
	client *redis.Client
	logger *observability.Logger
}

// NewClient creates a new Redis client. It returns nil without error when Redis is disabled.
func NewClient(cfg config.RedisConfig, logger *observability.Logger) (*Client, error) {
	if !cfg.Enabled {
		logger.Info(context.Background(), "Redis is disabled, skipping client initialization")
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr(),
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 2,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logger.Info(observability.WithFields(ctx,
		observability.Field{Key: "redis_addr", Value: cfg.Addr()},
		observability.Field{Key: "redis_db", Value: cfg.DB},
	), "successfully connected to Redis")

	return &Client{
		client: client,
		logger: logger,
	}, nil
}

// Close closes the Redis connection
func (c *Client) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}

// IsEnabled reports whether the client is connected to a server.
func (c *Client) IsEnabled() bool {
	return c != nil && c.client != nil
}

// Ping checks connectivity.
func (c *Client) Ping(ctx context.Context) error {
	if !c.IsEnabled() {
		return fmt.Errorf("Redis client not initialized")
	}
	return c.client.Ping(ctx).Err()
}

// SetMarker stores key with a TTL if it does not exist yet. It reports whether the marker was set
// by this call.
func (c *Client) SetMarker(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	if !c.IsEnabled() {
		return false, fmt.Errorf("Redis client not initialized")
	}
	return c.client.SetNX(ctx, key, time.Now().UTC().Format(time.RFC3339), ttl).Result()
}

// HasMarker reports whether key exists.
func (c *Client) HasMarker(ctx context.Context, key string) (bool, error) {
	if !c.IsEnabled() {
		return false, fmt.Errorf("Redis client not initialized")
	}
	n, err := c.client.Exists(ctx, key).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// WindowCount drops hits at or before since from the sorted set at key and returns how many
// remain, along with the oldest remaining hit.
func (c *Client) WindowCount(ctx context.Context, key string, since time.Time) (int64, time.Time, error) {
	if !c.IsEnabled() {
		return 0, time.Time{}, fmt.Errorf("Redis client not initialized")
	}

	var card *redis.IntCmd
	var oldest *redis.ZSliceCmd
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.ZRemRangeByScore(ctx, key, "0", strconv.FormatInt(since.UnixMilli(), 10))
		card = pipe.ZCard(ctx, key)
		oldest = pipe.ZRangeWithScores(ctx, key, 0, 0)
		return nil
	})
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("failed to read window: %w", err)
	}

	var first time.Time
	if zs := oldest.Val(); len(zs) > 0 {
		first = time.UnixMilli(int64(zs[0].Score))
	}
	return card.Val(), first, nil
}

// AddHit records a hit at the given time and refreshes the key's TTL.
func (c *Client) AddHit(ctx context.Context, key string, at time.Time, ttl time.Duration) error {
	if !c.IsEnabled() {
		return fmt.Errorf("Redis client not initialized")
	}

	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.ZAdd(ctx, key, redis.Z{
			Score:  float64(at.UnixMilli()),
			Member: fmt.Sprintf("%d-%s", at.UnixNano(), uuid.NewString()),
		})
		pipe.Expire(ctx, key, ttl)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to add hit: %w", err)
	}
	return nil
}
