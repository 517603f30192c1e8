package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/sync/errgroup"

	"CryptoPulse/internal/config"
	"CryptoPulse/internal/infrastructure/httpapi"
	"CryptoPulse/internal/infrastructure/market"
	"CryptoPulse/internal/infrastructure/storage"
	"CryptoPulse/internal/infrastructure/telegram"
	"CryptoPulse/internal/infrastructure/token"
	"CryptoPulse/internal/logging"
	"CryptoPulse/internal/ratelimit"
	"CryptoPulse/internal/usecase"
)

// Application wires configs to use cases and lifecycle orchestration.
type Application struct {
	cfg     config.Config
	logger  *slog.Logger
	db      *sql.DB
	server  *echo.Echo
	limiter *ratelimit.Limiter
	prices  *market.Cache
}

// New builds a runnable application instance.
func New(cfg config.Config, baseLogger *slog.Logger) (*Application, error) {
	if baseLogger == nil {
		baseLogger = logging.New(cfg.Logging.Level)
	}

	db, err := storage.Open(cfg.Database.DSN)
	if err != nil {
		return nil, fmt.Errorf("connect storage: %w", err)
	}

	limiter := ratelimit.New()
	articleRepo := storage.NewArticleRepository(db)
	adminRepo := storage.NewAdminRepository(db)

	tokens := token.NewJWTService(token.JWTConfig{
		Secret: cfg.Auth.TokenSecret,
		Issuer: cfg.Auth.TokenIssuer,
		TTL:    cfg.Auth.TokenTTL.Std(),
	})

	articles := usecase.NewArticleService(usecase.ArticleDeps{
		Repository: articleRepo,
		Limiter:    limiter,
		CreateLimit: usecase.CreateLimit{
			Limit:  cfg.RateLimit.CreateLimit,
			Window: cfg.RateLimit.CreateWindow.Std(),
		},
		Logger: baseLogger.With("component", "articles"),
	})

	auth := usecase.NewAuthService(usecase.AuthDeps{
		Admins:  adminRepo,
		Tokens:  tokens,
		Limiter: limiter,
		LoginLimit: usecase.LoginLimit{
			Limit:  cfg.RateLimit.LoginLimit,
			Window: cfg.RateLimit.LoginWindow.Std(),
		},
		Logger: baseLogger.With("component", "auth"),
	})

	ingestor := usecase.NewIngestor(usecase.IngestDeps{
		Repository: articleRepo,
		Media:      telegram.NewFileResolver(cfg.Telegram.BotToken),
		Logger:     baseLogger.With("component", "ingest"),
	})

	prices := market.NewCache(
		market.NewClient(cfg.Market.APIURL, cfg.Market.Coins),
		baseLogger.With("component", "market"),
	)

	server := httpapi.NewServer(httpapi.ServerDeps{
		Articles: articles,
		Auth:     auth,
		Ingestor: ingestor,
		Prices:   prices,
		Logger:   baseLogger.With("component", "http"),
	})

	return &Application{
		cfg:     cfg,
		logger:  baseLogger,
		db:      db,
		server:  server,
		limiter: limiter,
		prices:  prices,
	}, nil
}

// Run starts the HTTP server and the background loops, then blocks until
// the context is cancelled or the server fails.
func (a *Application) Run(ctx context.Context) error {
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.logger.Info("listening", "addr", a.cfg.Server.Addr())
		if err := a.server.Start(a.cfg.Server.Addr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		a.limiter.Run(gCtx, a.cfg.RateLimit.SweepInterval.Std())
		return nil
	})

	g.Go(func() error {
		a.prices.Run(gCtx, a.cfg.Market.RefreshInterval.Std())
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		a.logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := a.server.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return a.db.Close()
	})

	if err := g.Wait(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
