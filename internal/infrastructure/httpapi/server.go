package httpapi

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"CryptoPulse/internal/usecase"
)

// ServerDeps wires the handlers and middleware of the HTTP API.
type ServerDeps struct {
	Articles *usecase.ArticleService
	Auth     *usecase.AuthService
	Ingestor *usecase.Ingestor
	Prices   PriceSnapshot
	Logger   *slog.Logger
}

// NewServer builds the Echo instance with all routes registered.
func NewServer(deps ServerDeps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(requestLogger(deps.Logger))
	e.Use(middleware.Recover())

	articles := NewArticleHandler(deps.Articles, deps.Logger)
	auth := NewAuthHandler(deps.Auth, deps.Logger)
	webhook := NewWebhookHandler(deps.Ingestor, deps.Logger)
	ticker := NewTickerHandler(deps.Prices)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	// Public read path.
	e.GET("/articles", articles.List)
	e.GET("/articles/:id", articles.Get)
	e.GET("/ticker", ticker.Handle)

	// Auth.
	e.POST("/auth/login", auth.Login)
	e.GET("/auth/verify", auth.Verify)

	// Admin write path.
	admin := e.Group("", RequireAdmin(deps.Auth))
	admin.POST("/articles", articles.Create)
	admin.PUT("/articles/:id", articles.Update)
	admin.DELETE("/articles/:id", articles.Delete)

	// Anonymous ingestion channel: deliberately no auth, no rate limit.
	e.POST("/telegram-webhook", webhook.Handle)

	return e
}

func requestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		Skipper: func(c echo.Context) bool {
			return c.Request().URL.Path == "/health"
		},
		LogStatus:  true,
		LogURI:     true,
		LogMethod:  true,
		LogLatency: true,
		LogError:   true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			if logger == nil {
				return nil
			}
			if v.Error == nil {
				logger.Info("request completed",
					"method", v.Method,
					"uri", v.URI,
					"status", v.Status,
					"latency_ms", v.Latency.Milliseconds())
			} else {
				logger.Error("request failed",
					"method", v.Method,
					"uri", v.URI,
					"status", v.Status,
					"latency_ms", v.Latency.Milliseconds(),
					"error", v.Error.Error())
			}
			return nil
		},
	})
}
