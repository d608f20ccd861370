// Package cache provides Redis cache access layer.
package cache

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// ShowcaseTTL keeps showcase payloads short-lived; the upstream refreshes
// profiles every few minutes and asks clients not to cache longer.
const ShowcaseTTL = 5 * time.Minute

// Cache provides Redis cache access methods. A nil *Cache is valid and
// behaves as an always-miss cache, so callers need no nil checks.
type Cache struct {
	client *redis.Client
	logger *slog.Logger
}

// New creates a new Cache with a Redis client.
func New(ctx context.Context, redisURL string, logger *slog.Logger) (*Cache, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	// Connection pool settings
	opt.PoolSize = 10
	opt.MinIdleConns = 2
	opt.PoolTimeout = 4 * time.Second
	opt.ConnMaxIdleTime = 5 * time.Minute

	client := redis.NewClient(opt)

	// Verify connection
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping Redis: %w", err)
	}

	return &Cache{client: client, logger: logger}, nil
}

// Ping checks Redis connectivity.
func (c *Cache) Ping(ctx context.Context) error {
	if c == nil {
		return nil
	}
	return c.client.Ping(ctx).Err()
}

// Close closes the Redis client.
func (c *Cache) Close() error {
	if c == nil {
		return nil
	}
	return c.client.Close()
}

func showcaseKey(uid string) string {
	return "showcase:" + uid
}

// GetShowcase returns a cached showcase payload for a UID.
func (c *Cache) GetShowcase(ctx context.Context, uid string) ([]byte, bool) {
	if c == nil {
		return nil, false
	}
	payload, err := c.client.Get(ctx, showcaseKey(uid)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("showcase cache read failed", "uid", uid, "error", err)
		}
		return nil, false
	}
	return payload, true
}

// SetShowcase stores a showcase payload. Write failures are logged and
// swallowed; the cache is advisory.
func (c *Cache) SetShowcase(ctx context.Context, uid string, payload []byte) {
	if c == nil {
		return
	}
	if err := c.client.Set(ctx, showcaseKey(uid), payload, ShowcaseTTL).Err(); err != nil {
		c.logger.Warn("showcase cache write failed", "uid", uid, "error", err)
	}
}
