package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisCache implements domain.Cache on Redis. The announcer uses it as a
// delivery guard so a restarted daemon cannot post the same digest twice.
type RedisCache struct {
	client *redis.Client
}

// NewRedis creates the cache.
func NewRedis(client *redis.Client) *RedisCache {
	return &RedisCache{client: client}
}

// Once runs fn only if the key is not already set. The key is released
// again when fn fails, so delivery can be retried on the next trigger.
func (c *RedisCache) Once(key string, ttl time.Duration, fn func() error) error {
	ctx := context.Background()
	ok, err := c.client.SetNX(ctx, key, "1", ttl).Result()
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	if err := fn(); err != nil {
		_ = c.client.Del(ctx, key).Err()
		return err
	}
	return nil
}
