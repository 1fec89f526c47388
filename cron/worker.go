package cron

import (
	"context"
	"time"

	"chairbook/services/notification"
	"chairbook/services/tasks"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// InitEmailWorker starts the asynq worker that delivers queued email. The
// returned server must be shut down by the caller.
func InitEmailWorker(redisOpts asynq.RedisClientOpt, sender notification.EmailSender, logger *zap.Logger) *asynq.Server {
	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 5,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeSendEmail, handleEmailTask(sender, logger))

	go func() {
		logger.Info("starting email worker")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			err := srv.Run(mux)
			if err == nil {
				return
			}
			logger.Error("email worker failed to start",
				zap.Int("attempt", attempts), zap.Int("maxAttempts", maxAttempts), zap.Error(err))
			if attempts == maxAttempts {
				logger.Error("email worker gave up; queued email will wait for the next start")
				return
			}
			time.Sleep(time.Duration(attempts*2) * time.Second)
		}
	}()
	return srv
}

func handleEmailTask(sender notification.EmailSender, logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		p, err := tasks.ParseEmailTask(task)
		if err != nil {
			logger.Error("dropping email task", zap.Error(err))
			return asynq.SkipRetry
		}
		if err := sender.Send(ctx, p); err != nil {
			logger.Warn("email delivery failed", zap.String("to", p.To), zap.Error(err))
			return err
		}
		logger.Debug("email delivered", zap.String("to", p.To), zap.String("subject", p.Subject))
		return nil
	}
}
