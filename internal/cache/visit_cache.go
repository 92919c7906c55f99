package cache

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// VisitCache backs the visitor counter with a single redis key
type VisitCache interface {
	Increment(ctx context.Context) (int64, error)
	Current(ctx context.Context) (int64, error)
}

const visitKey = "visitors:total"

type visitCache struct {
	client *redis.Client
}

// NewVisitCache creates a redis-backed visit counter
func NewVisitCache(client *redis.Client) VisitCache {
	return &visitCache{client: client}
}

func (c *visitCache) Increment(ctx context.Context) (int64, error) {
	return c.client.Incr(ctx, visitKey).Result()
}

func (c *visitCache) Current(ctx context.Context) (int64, error) {
	n, err := c.client.Get(ctx, visitKey).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	return n, err
}
