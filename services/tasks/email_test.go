package tasks

import (
	"testing"

	"chairbook/models"
)

func TestEmailTaskRoundTrip(t *testing.T) {
	in := models.EmailPayload{To: "client@example.com", Subject: "Booked", Body: "See you at 3:00 PM"}
	task, err := NewEmailTask(in)
	if err != nil {
		t.Fatalf("new task: %v", err)
	}
	if task.Type() != TypeSendEmail {
		t.Fatalf("unexpected type %s", task.Type())
	}
	out, err := ParseEmailTask(task)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if out != in {
		t.Fatalf("got %+v, want %+v", out, in)
	}
}
