package cron

import (
	"context"
	"errors"
	"testing"

	"chairbook/models"
	"chairbook/services/tasks"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

type stubSender struct {
	got []models.EmailPayload
	err error
}

func (s *stubSender) Send(_ context.Context, p models.EmailPayload) error {
	s.got = append(s.got, p)
	return s.err
}

func TestHandleEmailTask(t *testing.T) {
	sender := &stubSender{}
	h := handleEmailTask(sender, zap.NewNop())

	task, err := tasks.NewEmailTask(models.EmailPayload{To: "ana@example.com", Subject: "Hi"})
	if err != nil {
		t.Fatalf("task: %v", err)
	}
	if err := h(context.Background(), task); err != nil {
		t.Fatalf("handle: %v", err)
	}
	if len(sender.got) != 1 || sender.got[0].To != "ana@example.com" {
		t.Fatalf("unexpected deliveries %+v", sender.got)
	}

	sender.err = errors.New("relay down")
	if err := h(context.Background(), task); err == nil {
		t.Fatal("expected delivery error to trigger a retry")
	}

	bad := asynq.NewTask(tasks.TypeSendEmail, []byte("{"))
	if err := h(context.Background(), bad); !errors.Is(err, asynq.SkipRetry) {
		t.Fatalf("expected SkipRetry for malformed payload, got %v", err)
	}
}
