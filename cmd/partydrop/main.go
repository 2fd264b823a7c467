package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/partydrop/partydrop/internal/app"
	"github.com/partydrop/partydrop/internal/auth"
	"github.com/partydrop/partydrop/internal/events"
	"github.com/partydrop/partydrop/internal/platform/cache"
	"github.com/partydrop/partydrop/internal/platform/db"
	"github.com/partydrop/partydrop/internal/shared"
)

const sessionCookieName = "token"

func main() {
	if app.InTestMode() {
		slog.Default().Info("test mode detected, skipping runtime startup")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)

	dbpool, err := db.New(ctx, cfg.PGDSN)
	if err != nil {
		logger.Error("connect postgres", slog.Any("error", err))
		os.Exit(1)
	}
	defer dbpool.Close()

	redisClient, err := cache.New(ctx, cfg.RedisAddr)
	if err != nil {
		// The public cache is best-effort; the service runs without it.
		logger.Warn("redis unavailable, public event cache disabled", slog.Any("error", err))
		redisClient = nil
	} else {
		defer func() {
			if err := redisClient.Close(); err != nil {
				logger.Warn("redis close", slog.Any("error", err))
			}
		}()
	}

	sessionManager := shared.NewSessionManager(sessionCookieName, cfg.TokenSecret, cfg.TokenTTL, cfg.IsProduction())
	guard := auth.Middleware{Sessions: sessionManager, Logger: logger}

	authRepo := auth.NewRepository(dbpool)
	authService := auth.NewService(authRepo)
	authHandler := auth.NewHandler(logger, authService, sessionManager)

	eventsRepo := events.NewRepository(dbpool)
	eventsCache := events.NewPublicCache(redisClient, cfg.PublicCacheTTL)
	eventsService := events.NewService(eventsRepo, eventsCache, cfg.WebBaseURL)
	eventsHandler := events.NewHandler(logger, eventsService, guard)

	router := app.NewRouter(app.RouterParams{
		Logger:        logger,
		Config:        cfg,
		AuthHandler:   authHandler,
		EventsHandler: eventsHandler,
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	go func() {
		logger.Info("starting http server", slog.String("addr", cfg.AppAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown", slog.Any("error", err))
	}
}
