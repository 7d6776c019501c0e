package cache

import (
	"context"
	"errors"
	"time"

	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
)

const defaultLockExpiry = 10 * time.Second

// RedisLocker hands out redsync mutexes shared by every instance talking to the same Redis.
type RedisLocker struct {
	locker *redsync.Redsync
	expiry time.Duration
}

var _ i.Locker = &RedisLocker{}

// NewRedisLocker builds a redsync pool over client. A non-positive expiry uses the default.
func NewRedisLocker(client *redis.Client, expiry time.Duration) (*RedisLocker, error) {
	if client == nil {
		return nil, errors.New("redis client is nil")
	}
	if expiry <= 0 {
		expiry = defaultLockExpiry
	}
	pool := goredis.NewPool(client)
	return &RedisLocker{
		locker: redsync.New(pool),
		expiry: expiry,
	}, nil
}

// Lock blocks until the mutex named key is held or ctx is done.
func (l *RedisLocker) Lock(ctx context.Context, key string) (func(), error) {
	mutex := l.locker.NewMutex(key, redsync.WithExpiry(l.expiry))
	if err := mutex.LockContext(ctx); err != nil {
		return nil, err
	}

	return func() {
		// The lock expires on its own if the unlock is lost.
		_, _ = mutex.UnlockContext(context.Background())
	}, nil
}
