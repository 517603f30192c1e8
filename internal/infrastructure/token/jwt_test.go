package token

import (
	"errors"
	"testing"
	"time"

	"CryptoPulse/internal/domain"
)

func newTestService(ttl time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		Secret: "test-secret-at-least-32-bytes-long",
		Issuer: "cryptopulse-test",
		TTL:    ttl,
	})
}

func TestIssueVerifyRoundTrip(t *testing.T) {
	t.Parallel()

	svc := newTestService(time.Hour)

	tok, err := svc.Issue("admin-42")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	adminID, err := svc.Verify(tok)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if adminID != "admin-42" {
		t.Fatalf("unexpected subject: %s", adminID)
	}
}

func TestVerifyRejectsGarbage(t *testing.T) {
	t.Parallel()

	svc := newTestService(time.Hour)

	for _, tok := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := svc.Verify(tok); !errors.Is(err, domain.ErrTokenInvalid) {
			t.Fatalf("Verify(%q) should return ErrTokenInvalid, got %v", tok, err)
		}
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	t.Parallel()

	issuer := newTestService(time.Hour)
	verifier := NewJWTService(JWTConfig{Secret: "another-secret", Issuer: "cryptopulse-test", TTL: time.Hour})

	tok, err := issuer.Issue("admin-42")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	if _, err := verifier.Verify(tok); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestVerifyRejectsExpired(t *testing.T) {
	t.Parallel()

	svc := newTestService(time.Minute)

	issuedAt := time.Date(2025, time.January, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return issuedAt }

	tok, err := svc.Issue("admin-42")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	svc.now = func() time.Time { return issuedAt.Add(2 * time.Minute) }

	if _, err := svc.Verify(tok); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid for expired token, got %v", err)
	}
}
