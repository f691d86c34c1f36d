package token

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestNewCodecRequiresSecret(t *testing.T) {
	if _, err := NewCodec(""); err != ErrMissingSecret {
		t.Errorf("expected ErrMissingSecret, got %v", err)
	}
}

func TestSignVerifyRoundTrip(t *testing.T) {
	codec, err := NewCodec("test-secret")
	if err != nil {
		t.Fatalf("NewCodec: %v", err)
	}

	userID := uuid.New()
	tok, err := codec.Sign(userID, "pat@example.com", "patient")
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	claims, err := codec.Verify(tok)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.UserID != userID {
		t.Errorf("user_id = %v", claims.UserID)
	}
	if claims.Email != "pat@example.com" || claims.Role != "patient" {
		t.Errorf("claims = %+v", claims)
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	a, _ := NewCodec("secret-a")
	b, _ := NewCodec("secret-b")

	tok, err := a.Sign(uuid.New(), "pat@example.com", "patient")
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	if _, err := b.Verify(tok); err != ErrInvalidToken {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	codec, _ := NewCodec("test-secret")

	issued := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	codec.now = func() time.Time { return issued }
	tok, err := codec.Sign(uuid.New(), "pat@example.com", "patient")
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	codec.now = func() time.Time { return issued.Add(AccessTokenTTL + time.Minute) }
	if _, err := codec.Verify(tok); err != ErrInvalidToken {
		t.Errorf("expected ErrInvalidToken after expiry, got %v", err)
	}
}

func TestVerifyAcceptsWithinTTL(t *testing.T) {
	codec, _ := NewCodec("test-secret")

	issued := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	codec.now = func() time.Time { return issued }
	tok, _ := codec.Sign(uuid.New(), "pat@example.com", "patient")

	codec.now = func() time.Time { return issued.Add(AccessTokenTTL - time.Minute) }
	if _, err := codec.Verify(tok); err != nil {
		t.Errorf("token should still be valid: %v", err)
	}
}

func TestVerifyRejectsGarbage(t *testing.T) {
	codec, _ := NewCodec("test-secret")
	for _, bad := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := codec.Verify(bad); err != ErrInvalidToken {
			t.Errorf("input %q: expected ErrInvalidToken, got %v", bad, err)
		}
	}
}
