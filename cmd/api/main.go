package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/admin-gate/internal/api/http"
	"github.com/spec-kit/admin-gate/internal/api/http/handlers"
	"github.com/spec-kit/admin-gate/internal/auth"
	"github.com/spec-kit/admin-gate/internal/config"
	"github.com/spec-kit/admin-gate/internal/observability"
	"github.com/spec-kit/admin-gate/internal/persistence"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if err := cfg.RequireSecret(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	metrics := observability.NewMetrics("admin_api")
	production := cfg.App.IsProduction()

	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes)
	authMiddleware := auth.NewAuthMiddleware(tokens, metrics)

	app := fiber.New(fiber.Config{
		AppName:               cfg.App.Name,
		DisableStartupMessage: true,
		ErrorHandler:          httptransport.NewErrorHandler(logger, metrics, production),
	})
	httptransport.RegisterMiddlewares(app, httptransport.MiddlewareConfig{
		Logger:         logger,
		Metrics:        metrics,
		Timeout:        cfg.App.RequestTimeout(),
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		Production:     production,
	})

	healthHandler := handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, map[string]handlers.Pinger{
		"postgres": pg,
		"redis":    redis,
	})

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         healthHandler,
		Session:        handlers.NewSessionHandler(),
		AuthMiddleware: authMiddleware,
		Metrics:        metrics.Handler(),
	})

	go func() {
		logger.Info("api listening", zap.String("addr", cfg.App.Addr()), zap.String("env", cfg.App.Env))
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
