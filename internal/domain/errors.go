package domain

import "errors"

// Authentication errors. Handlers map all of these to a generic 401 that
// never reveals which check failed.
var (
	ErrAuthFailed   = errors.New("authentication failed")
	ErrTokenInvalid = errors.New("token invalid or expired")
)

// Storage errors.
var (
	ErrNotFound = errors.New("record not found")
)

// Rate limiting errors.
var (
	ErrRateLimited = errors.New("rate limit exceeded")
)

// ValidationError is a malformed-input failure whose message is safe to
// surface verbatim to the caller as a 400.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// Validation builds a ValidationError with the given reason.
func Validation(reason string) *ValidationError {
	return &ValidationError{Reason: reason}
}
