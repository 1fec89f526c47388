package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

func newTestRedisLocker(t *testing.T) (*RedisLocker, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisLocker(client, 0, zap.NewNop()), mr
}

func TestRedisLocker_AcquireRelease(t *testing.T) {
	l, mr := newTestRedisLocker(t)
	key := dateKey("2026-10-19")

	release, err := l.Lock(context.Background(), key)
	if err != nil {
		t.Fatalf("lock: %v", err)
	}
	if !mr.Exists(key) {
		t.Fatal("expected lock key in redis")
	}
	if ttl := mr.TTL(key); ttl != MinLockTTL {
		t.Fatalf("expected ttl %s, got %s", MinLockTTL, ttl)
	}
	release()
	if mr.Exists(key) {
		t.Fatal("expected lock key removed on release")
	}
}

func TestRedisLocker_Contention(t *testing.T) {
	l, _ := newTestRedisLocker(t)
	key := dateKey("2026-10-19")

	release, err := l.Lock(context.Background(), key)
	if err != nil {
		t.Fatalf("lock: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 150*time.Millisecond)
	defer cancel()
	if _, err := l.Lock(ctx, key); !errors.Is(err, ErrLockTimeout) {
		t.Fatalf("expected ErrLockTimeout, got %v", err)
	}

	other, err := l.Lock(context.Background(), dateKey("2026-10-20"))
	if err != nil {
		t.Fatalf("independent date: %v", err)
	}
	other()

	acquired := make(chan error, 1)
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		r, err := l.Lock(ctx, key)
		if err == nil {
			r()
		}
		acquired <- err
	}()
	release()
	if err := <-acquired; err != nil {
		t.Fatalf("waiter after release: %v", err)
	}
}

func TestRedisLocker_ExpiredLockCanBeTaken(t *testing.T) {
	l, mr := newTestRedisLocker(t)
	key := dateKey("2026-10-19")

	if _, err := l.Lock(context.Background(), key); err != nil {
		t.Fatalf("lock: %v", err)
	}
	mr.FastForward(MinLockTTL + time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 150*time.Millisecond)
	defer cancel()
	release, err := l.Lock(ctx, key)
	if err != nil {
		t.Fatalf("expected expired lock to be free, got %v", err)
	}
	release()
}

func TestRedisLocker_StaleReleaseKeepsNewHolder(t *testing.T) {
	l, mr := newTestRedisLocker(t)
	key := dateKey("2026-10-19")

	stale, err := l.Lock(context.Background(), key)
	if err != nil {
		t.Fatalf("first lock: %v", err)
	}
	mr.FastForward(MinLockTTL + time.Second)

	current, err := l.Lock(context.Background(), key)
	if err != nil {
		t.Fatalf("second lock: %v", err)
	}
	holder, _ := mr.Get(key)

	stale()
	if got, _ := mr.Get(key); got != holder {
		t.Fatalf("stale release removed the current holder's lock (%q -> %q)", holder, got)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 150*time.Millisecond)
	defer cancel()
	if _, err := l.Lock(ctx, key); !errors.Is(err, ErrLockTimeout) {
		t.Fatalf("expected lock still held, got %v", err)
	}

	current()
	if mr.Exists(key) {
		t.Fatal("expected current holder to release")
	}
}

func TestNewRedisLocker_RaisesShortTTL(t *testing.T) {
	if l := NewRedisLocker(nil, time.Second, nil); l.ttl != MinLockTTL {
		t.Fatalf("expected ttl raised to %s, got %s", MinLockTTL, l.ttl)
	}
	if l := NewRedisLocker(nil, 2*MinLockTTL, nil); l.ttl != 2*MinLockTTL {
		t.Fatalf("expected ttl kept, got %s", l.ttl)
	}
}
