package i

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss is returned by ImageCache.Get when the key holds nothing.
var ErrCacheMiss = errors.New("cache miss")

// ImageCache stores rendered maze images.
type ImageCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, image []byte, ttl time.Duration) error
}

// Locker hands out exclusive locks shared by every service instance.
type Locker interface {
	// Lock blocks until the lock named key is held and returns its release function.
	Lock(ctx context.Context, key string) (unlock func(), err error)
}
