package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const scanBatch = 200

// RedisCache is a QueryCache backed by Redis
type RedisCache struct {
	client *redis.Client
}

// NewRedisCache creates a Redis-backed query cache
func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{client: client}
}

// NewRedisClient opens a client for addr
func NewRedisClient(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}

// Get returns the cached bytes for key
func (c *RedisCache) Get(ctx context.Context, key Key) ([]byte, bool, error) {
	raw, err := c.client.Get(ctx, key.String()).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get %s: %w", key, err)
	}
	return raw, true, nil
}

// Set stores value under key with the given lifetime
func (c *RedisCache) Set(ctx context.Context, key Key, value []byte, ttl time.Duration) error {
	if err := c.client.Set(ctx, key.String(), value, ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

// Invalidate deletes one key, or every key under a prefix using SCAN so the
// server is never blocked by KEYS.
func (c *RedisCache) Invalidate(ctx context.Context, inv Invalidation) error {
	if inv.Kind() == InvalidateExact {
		if err := c.client.Del(ctx, inv.Target()).Err(); err != nil {
			return fmt.Errorf("redis del %s: %w", inv.Target(), err)
		}
		return nil
	}

	var cursor uint64
	for {
		keys, next, err := c.client.Scan(ctx, cursor, inv.Target()+"*", scanBatch).Result()
		if err != nil {
			return fmt.Errorf("redis scan %s: %w", inv.Target(), err)
		}
		if len(keys) > 0 {
			if err := c.client.Del(ctx, keys...).Err(); err != nil {
				return fmt.Errorf("redis del under %s: %w", inv.Target(), err)
			}
		}
		if next == 0 {
			return nil
		}
		cursor = next
	}
}

// Ping checks connectivity
func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}
