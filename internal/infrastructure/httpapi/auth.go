package httpapi

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"CryptoPulse/internal/domain"
	"CryptoPulse/internal/usecase"
)

// AuthHandler serves login and token verification.
type AuthHandler struct {
	auth   *usecase.AuthService
	logger *slog.Logger
}

// NewAuthHandler creates the handler.
func NewAuthHandler(auth *usecase.AuthService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, logger: logger}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type adminResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

type loginResponse struct {
	Token string        `json:"token"`
	Admin adminResponse `json:"admin"`
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, h.logger, domain.Validation("malformed request body"))
	}

	token, admin, err := h.auth.Login(c.Request().Context(), req.Email, req.Password, c.RealIP())
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, loginResponse{
		Token: token,
		Admin: adminResponse{ID: admin.ID, Email: admin.Email, Name: admin.Name},
	})
}

// Verify handles GET /auth/verify.
func (h *AuthHandler) Verify(c echo.Context) error {
	token := bearerToken(c.Request().Header.Get("Authorization"))
	if token == "" {
		return c.JSON(http.StatusUnauthorized, errorResponse{Error: "unauthorized"})
	}

	admin, err := h.auth.Verify(c.Request().Context(), token)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, map[string]adminResponse{
		"admin": {ID: admin.ID, Email: admin.Email, Name: admin.Name},
	})
}
