package httpapi

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"CryptoPulse/internal/usecase"
)

const adminIDKey = "adminID"

// RequireAdmin gates a route group on a valid bearer token. The admin id
// lands in the request context; every failure is the same generic 401.
func RequireAdmin(auth *usecase.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := bearerToken(c.Request().Header.Get("Authorization"))
			if token == "" {
				return c.JSON(http.StatusUnauthorized, errorResponse{Error: "unauthorized"})
			}

			admin, err := auth.Verify(c.Request().Context(), token)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, errorResponse{Error: "unauthorized"})
			}

			c.Set(adminIDKey, admin.ID)
			return next(c)
		}
	}
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return strings.TrimSpace(header[len(prefix):])
	}
	return ""
}

func adminID(c echo.Context) string {
	id, _ := c.Get(adminIDKey).(string)
	return id
}
