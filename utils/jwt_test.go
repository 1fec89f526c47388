package utils

import (
	"testing"
	"time"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken("user-1", "ana@example.com", time.Hour)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	sub, err := ExtractIDFromToken(token)
	if err != nil || sub != "user-1" {
		t.Fatalf("extract: %q, %v", sub, err)
	}
}

func TestExpiredToken(t *testing.T) {
	token, err := GenerateToken("user-1", "ana@example.com", -time.Minute)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := ExtractIDFromToken(token); err == nil {
		t.Fatal("expected expired token to be rejected")
	}
	if _, err := ExtractIDFromToken("not-a-token"); err == nil {
		t.Fatal("expected malformed token to be rejected")
	}
}
