package httpapi

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"CryptoPulse/internal/domain"
)

type errorResponse struct {
	Error string `json:"error"`
}

// respondError converts a domain error into the API's {error} body.
// Validation messages pass through verbatim; auth and rate-limit bodies
// stay generic on purpose.
func respondError(c echo.Context, logger *slog.Logger, err error) error {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		return c.JSON(http.StatusBadRequest, errorResponse{Error: verr.Reason})
	case errors.Is(err, domain.ErrAuthFailed), errors.Is(err, domain.ErrTokenInvalid):
		return c.JSON(http.StatusUnauthorized, errorResponse{Error: "unauthorized"})
	case errors.Is(err, domain.ErrRateLimited):
		return c.JSON(http.StatusTooManyRequests, errorResponse{Error: "too many requests, slow down"})
	case errors.Is(err, domain.ErrNotFound):
		return c.JSON(http.StatusNotFound, errorResponse{Error: "not found"})
	default:
		if logger != nil {
			logger.Error("internal error", "error", err, "path", c.Path())
		}
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}
