package notification

import (
	"context"
	"errors"
	"net/smtp"
	"strings"
	"testing"

	"chairbook/models"
)

func TestSMTPSender(t *testing.T) {
	var gotAddr, gotFrom string
	var gotTo []string
	var gotMsg []byte
	s := NewSMTPSender("mail.local", "2525", "salon@example.com")
	s.send = func(addr string, _ smtp.Auth, from string, to []string, msg []byte) error {
		gotAddr, gotFrom, gotTo, gotMsg = addr, from, to, msg
		return nil
	}

	err := s.Send(context.Background(), models.EmailPayload{To: "ana@example.com", Subject: "Hi", Body: "line1\nline2"})
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	if gotAddr != "mail.local:2525" || gotFrom != "salon@example.com" || len(gotTo) != 1 || gotTo[0] != "ana@example.com" {
		t.Fatalf("unexpected envelope %s %s %v", gotAddr, gotFrom, gotTo)
	}
	if !strings.Contains(string(gotMsg), "Subject: Hi\r\n") || !strings.HasSuffix(string(gotMsg), "line1\r\nline2") {
		t.Fatalf("unexpected message %q", gotMsg)
	}
}

func TestSMTPSender_Errors(t *testing.T) {
	s := NewSMTPSender("mail.local", "25", "salon@example.com")
	s.send = func(string, smtp.Auth, string, []string, []byte) error { return errors.New("refused") }

	if err := s.Send(context.Background(), models.EmailPayload{To: "a@b.co"}); err == nil {
		t.Fatal("expected relay error")
	}
	if err := s.Send(context.Background(), models.EmailPayload{To: "a@b.co\r\nBcc: x@y.z"}); err == nil {
		t.Fatal("expected header injection to be rejected")
	}
}
