package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"golang.org/x/crypto/bcrypt"

	"CryptoPulse/internal/domain"
	"CryptoPulse/internal/ports"
	"CryptoPulse/internal/ratelimit"
	"CryptoPulse/internal/sanitize"
)

// LoginLimit caps login attempts per client IP.
type LoginLimit struct {
	Limit  int
	Window time.Duration
}

// AuthDeps wires the login/verify collaborators.
type AuthDeps struct {
	Admins     ports.AdminRepository
	Tokens     ports.TokenService
	Limiter    *ratelimit.Limiter
	LoginLimit LoginLimit
	Logger     *slog.Logger
}

// AuthService authenticates admins and verifies bearer tokens.
type AuthService struct {
	admins     ports.AdminRepository
	tokens     ports.TokenService
	limiter    *ratelimit.Limiter
	loginLimit LoginLimit
	logger     *slog.Logger
}

// NewAuthService constructs the service.
func NewAuthService(deps AuthDeps) *AuthService {
	s := &AuthService{
		admins:     deps.Admins,
		tokens:     deps.Tokens,
		limiter:    deps.Limiter,
		loginLimit: deps.LoginLimit,
		logger:     deps.Logger,
	}
	if s.loginLimit.Limit <= 0 {
		s.loginLimit = LoginLimit{Limit: 5, Window: 15 * time.Minute}
	}
	return s
}

// Login checks credentials and issues a token. Everything that is not a
// malformed request or a rate limit collapses into ErrAuthFailed so the
// response never reveals which check failed.
func (s *AuthService) Login(ctx context.Context, email, password, clientIP string) (string, domain.Admin, error) {
	if s.limiter != nil {
		res := s.limiter.Check("login:"+clientIP, s.loginLimit.Limit, s.loginLimit.Window)
		if !res.Allowed {
			return "", domain.Admin{}, domain.ErrRateLimited
		}
	}

	if !sanitize.ValidEmail(email) {
		return "", domain.Admin{}, domain.Validation("a valid email is required")
	}
	if password == "" {
		return "", domain.Admin{}, domain.Validation("password is required")
	}

	admin, err := s.admins.GetByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.warn("admin lookup failed", "error", err)
		}
		return "", domain.Admin{}, domain.ErrAuthFailed
	}

	if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)) != nil {
		return "", domain.Admin{}, domain.ErrAuthFailed
	}

	token, err := s.tokens.Issue(admin.ID)
	if err != nil {
		s.warn("token issuance failed", "error", err)
		return "", domain.Admin{}, domain.ErrAuthFailed
	}

	s.info("admin logged in", "admin", admin.ID)
	return token, admin, nil
}

// Verify resolves a bearer token to the admin it was issued for.
func (s *AuthService) Verify(ctx context.Context, token string) (domain.Admin, error) {
	adminID, err := s.tokens.Verify(token)
	if err != nil {
		return domain.Admin{}, domain.ErrTokenInvalid
	}

	admin, err := s.admins.GetByID(ctx, adminID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Admin{}, domain.ErrNotFound
		}
		return domain.Admin{}, err
	}
	return admin, nil
}

func (s *AuthService) info(msg string, args ...any) {
	if s.logger != nil {
		s.logger.Info(msg, args...)
	}
}

func (s *AuthService) warn(msg string, args ...any) {
	if s.logger != nil {
		s.logger.Warn(msg, args...)
	}
}
