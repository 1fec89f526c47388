package booking

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"chairbook/database"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrLockTimeout is returned when a date lock cannot be acquired before the
// context is done.
var ErrLockTimeout = errors.New("timed out waiting for booking lock")

// Locker serializes booking writes per key. The returned release func must be
// called exactly once.
type Locker interface {
	Lock(ctx context.Context, key string) (release func(), err error)
}

const (
	// LockWait bounds how long a write waits for each date lock.
	LockWait = 5 * time.Second

	// criticalSectionQueries is the most repository calls made while a date
	// lock is held (create: durations, day list, insert, user link, rollback).
	criticalSectionQueries = 5

	// MinLockTTL outlives the longest critical section, including the wait
	// for a second date lock while the first is held.
	MinLockTTL = LockWait + criticalSectionQueries*database.QueryTimeout + 5*time.Second
)

func dateKey(date string) string {
	return "chairbook:booking-lock:" + date
}

// releaseScript deletes the key only while it still holds our token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisLocker is a Locker shared by every instance pointed at the same Redis.
type RedisLocker struct {
	client *redis.Client
	ttl    time.Duration
	retry  time.Duration
	logger *zap.Logger
}

// NewRedisLocker returns a RedisLocker whose locks expire after ttl. A ttl
// below MinLockTTL is raised to it.
func NewRedisLocker(client *redis.Client, ttl time.Duration, logger *zap.Logger) *RedisLocker {
	if ttl < MinLockTTL {
		ttl = MinLockTTL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RedisLocker{client: client, ttl: ttl, retry: 50 * time.Millisecond, logger: logger}
}

func (l *RedisLocker) Lock(ctx context.Context, key string) (func(), error) {
	token := uuid.NewString()
	for {
		ok, err := l.client.SetNX(ctx, key, token, l.ttl).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to acquire lock %s: %w", key, err)
		}
		if ok {
			return func() {
				// Use a fresh context so a cancelled request still releases.
				rctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
				defer cancel()
				n, err := releaseScript.Run(rctx, l.client, []string{key}, token).Int64()
				switch {
				case err != nil:
					l.logger.Error("failed to release booking lock", zap.String("key", key), zap.Error(err))
				case n == 0:
					l.logger.Warn("booking lock expired before release", zap.String("key", key), zap.Duration("ttl", l.ttl))
				}
			}, nil
		}

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: %s", ErrLockTimeout, key)
		case <-time.After(l.retry):
		}
	}
}

// MemoryLocker is a process-local Locker.
type MemoryLocker struct {
	mu    sync.Mutex
	locks map[string]chan struct{}
}

func NewMemoryLocker() *MemoryLocker {
	return &MemoryLocker{locks: make(map[string]chan struct{})}
}

func (l *MemoryLocker) Lock(ctx context.Context, key string) (func(), error) {
	for {
		l.mu.Lock()
		held, busy := l.locks[key]
		if !busy {
			done := make(chan struct{})
			l.locks[key] = done
			l.mu.Unlock()

			var once sync.Once
			return func() {
				once.Do(func() {
					l.mu.Lock()
					delete(l.locks, key)
					l.mu.Unlock()
					close(done)
				})
			}, nil
		}
		l.mu.Unlock()

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: %s", ErrLockTimeout, key)
		case <-held:
		}
	}
}
