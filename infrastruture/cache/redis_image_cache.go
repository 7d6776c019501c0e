// Package cache keeps rendered maze images in Redis and serializes their rendering with redsync.
package cache

import (
	"context"
	"errors"
	"time"

	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/redis/go-redis/v9"
)

// RedisImageCache stores PNG bytes under plain string keys.
type RedisImageCache struct {
	client *redis.Client
}

var _ i.ImageCache = &RedisImageCache{}

// NewRedisImageCache wraps an existing Redis client.
func NewRedisImageCache(client *redis.Client) (*RedisImageCache, error) {
	if client == nil {
		return nil, errors.New("redis client is nil")
	}
	return &RedisImageCache{client: client}, nil
}

// Get returns i.ErrCacheMiss when the key is absent or expired.
func (c *RedisImageCache) Get(ctx context.Context, key string) ([]byte, error) {
	img, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, i.ErrCacheMiss
	}
	if err != nil {
		return nil, err
	}
	return img, nil
}

// Set stores image under key for ttl.
func (c *RedisImageCache) Set(ctx context.Context, key string, image []byte, ttl time.Duration) error {
	return c.client.Set(ctx, key, image, ttl).Err()
}
