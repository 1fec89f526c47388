package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"chairbook/models"

	"github.com/hibiken/asynq"
)

const TypeSendEmail = "email:send"

// NewEmailTask builds an email delivery task. Tasks are retried by the worker.
func NewEmailTask(payload models.EmailPayload) (*asynq.Task, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeSendEmail, b, asynq.MaxRetry(5), asynq.Timeout(30*time.Second)), nil
}

// ParseEmailTask decodes the payload of an email task.
func ParseEmailTask(task *asynq.Task) (models.EmailPayload, error) {
	var p models.EmailPayload
	if err := json.Unmarshal(task.Payload(), &p); err != nil {
		return p, fmt.Errorf("invalid email payload: %w", err)
	}
	return p, nil
}

// Mailer queues outgoing email.
type Mailer interface {
	EnqueueEmail(ctx context.Context, payload models.EmailPayload) error
}

// Queue enqueues tasks on the asynq queue.
type Queue struct {
	client *asynq.Client
}

func NewQueue(opt asynq.RedisClientOpt) *Queue {
	return &Queue{client: asynq.NewClient(opt)}
}

func (q *Queue) EnqueueEmail(ctx context.Context, payload models.EmailPayload) error {
	task, err := NewEmailTask(payload)
	if err != nil {
		return err
	}
	if _, err := q.client.EnqueueContext(ctx, task); err != nil {
		return fmt.Errorf("failed to enqueue email to %s: %w", payload.To, err)
	}
	return nil
}

func (q *Queue) Close() error {
	return q.client.Close()
}
