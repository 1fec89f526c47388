package utils

import (
	"context"
	"fmt"
	"time"

	"chairbook/config"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

// LockClient backs the per-date booking locks.
var LockClient *redis.Client

// InitLockClient connects the Redis client used for booking locks.
func InitLockClient() error {
	LockClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisLockDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := LockClient.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to connect to Redis (lock): %w", err)
	}
	return nil
}

// QueueRedisOpt returns the asynq connection for the email queue.
func QueueRedisOpt() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
}
