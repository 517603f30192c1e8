package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"CryptoPulse/internal/domain"
	"CryptoPulse/internal/ratelimit"
)

func newTestAuthService(t *testing.T) (*AuthService, domain.Admin) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("Correct1Horse"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}

	admin := domain.Admin{
		ID:           "admin-1",
		Name:         "Newsroom",
		Email:        "editor@example.com",
		PasswordHash: string(hash),
	}

	svc := NewAuthService(AuthDeps{
		Admins:     &memAdminRepo{admins: []domain.Admin{admin}},
		Tokens:     staticTokens{},
		Limiter:    ratelimit.New(),
		LoginLimit: LoginLimit{Limit: 5, Window: 15 * time.Minute},
	})
	return svc, admin
}

func TestLoginSuccess(t *testing.T) {
	t.Parallel()

	svc, admin := newTestAuthService(t)

	token, got, err := svc.Login(context.Background(), admin.Email, "Correct1Horse", "10.0.0.1")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if token != "token-for-admin-1" {
		t.Fatalf("unexpected token: %s", token)
	}
	if got.ID != admin.ID {
		t.Fatalf("unexpected admin: %+v", got)
	}
}

func TestLoginWrongPasswordAndUnknownEmailLookAlike(t *testing.T) {
	t.Parallel()

	svc, admin := newTestAuthService(t)
	ctx := context.Background()

	_, _, errWrongPass := svc.Login(ctx, admin.Email, "WrongPass1", "10.0.0.1")
	_, _, errNoUser := svc.Login(ctx, "ghost@example.com", "WrongPass1", "10.0.0.1")

	if !errors.Is(errWrongPass, domain.ErrAuthFailed) || !errors.Is(errNoUser, domain.ErrAuthFailed) {
		t.Fatalf("both failures must collapse into ErrAuthFailed: %v / %v", errWrongPass, errNoUser)
	}
}

func TestLoginRejectsMalformedEmail(t *testing.T) {
	t.Parallel()

	svc, _ := newTestAuthService(t)

	_, _, err := svc.Login(context.Background(), "not-an-email", "Correct1Horse", "10.0.0.1")
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestLoginRateLimitedPerIP(t *testing.T) {
	t.Parallel()

	admin := domain.Admin{ID: "admin-1", Email: "editor@example.com", PasswordHash: "x"}
	svc := NewAuthService(AuthDeps{
		Admins:     &memAdminRepo{admins: []domain.Admin{admin}},
		Tokens:     staticTokens{},
		Limiter:    ratelimit.New(),
		LoginLimit: LoginLimit{Limit: 2, Window: 15 * time.Minute},
	})
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		_, _, _ = svc.Login(ctx, admin.Email, "bad", "10.0.0.9")
	}

	_, _, err := svc.Login(ctx, admin.Email, "bad", "10.0.0.9")
	if !errors.Is(err, domain.ErrRateLimited) {
		t.Fatalf("expected ErrRateLimited, got %v", err)
	}

	// A different IP still gets through to the credential check.
	_, _, err = svc.Login(ctx, admin.Email, "bad", "10.0.0.10")
	if !errors.Is(err, domain.ErrAuthFailed) {
		t.Fatalf("other IP should reach auth check, got %v", err)
	}
}

func TestVerify(t *testing.T) {
	t.Parallel()

	svc, admin := newTestAuthService(t)
	ctx := context.Background()

	got, err := svc.Verify(ctx, "token-for-admin-1")
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if got.Email != admin.Email {
		t.Fatalf("unexpected admin: %+v", got)
	}

	if _, err := svc.Verify(ctx, "garbage"); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}

	// Valid token whose admin no longer exists.
	if _, err := svc.Verify(ctx, "token-for-admin-gone"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
