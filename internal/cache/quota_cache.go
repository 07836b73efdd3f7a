package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// QuotaCache tracks per-user daily generation counts. The counter key rolls
// over at UTC midnight via its TTL.
type QuotaCache interface {
	// Increment bumps today's counter for the user and returns the new count
	Increment(ctx context.Context, userID string) (int64, error)
	// Count returns today's counter without bumping it
	Count(ctx context.Context, userID string) (int64, error)
}

type quotaCache struct {
	client *redis.Client
}

// NewQuotaCache creates a new quota cache
func NewQuotaCache(client *redis.Client) QuotaCache {
	return &quotaCache{
		client: client,
	}
}

func (c *quotaCache) key(userID string) string {
	return fmt.Sprintf("quota:%s:%s", userID, time.Now().UTC().Format("2006-01-02"))
}

func (c *quotaCache) Increment(ctx context.Context, userID string) (int64, error) {
	key := c.key(userID)

	pipe := c.client.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, 25*time.Hour) // outlives the day it counts
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, err
	}
	return incr.Val(), nil
}

func (c *quotaCache) Count(ctx context.Context, userID string) (int64, error) {
	n, err := c.client.Get(ctx, c.key(userID)).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	return n, err
}
