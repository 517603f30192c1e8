package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"CryptoPulse/internal/domain"
	"CryptoPulse/internal/ports"
)

// JWTConfig wires the HS256 signing parameters.
type JWTConfig struct {
	Secret string
	Issuer string
	TTL    time.Duration
}

// JWTService issues and verifies admin bearer tokens.
type JWTService struct {
	cfg JWTConfig
	now func() time.Time
}

var _ ports.TokenService = (*JWTService)(nil)

// NewJWTService builds the service from config.
func NewJWTService(cfg JWTConfig) *JWTService {
	return &JWTService{cfg: cfg, now: time.Now}
}

// Issue generates a signed token whose subject is the admin id.
func (s *JWTService) Issue(adminID string) (string, error) {
	now := s.now()
	claims := jwt.RegisteredClaims{
		Issuer:    s.cfg.Issuer,
		Subject:   adminID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.TTL)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.Secret))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates the token and returns the admin id. All
// failure modes collapse into ErrTokenInvalid; callers must not learn
// which check failed.
func (s *JWTService) Verify(tokenStr string) (string, error) {
	parsed, err := jwt.ParseWithClaims(tokenStr, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(s.cfg.Secret), nil
	}, jwt.WithTimeFunc(func() time.Time { return s.now() }))
	if err != nil || !parsed.Valid {
		return "", domain.ErrTokenInvalid
	}

	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", domain.ErrTokenInvalid
	}

	return claims.Subject, nil
}
