package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/admin-gate/internal/config"
	"github.com/spec-kit/admin-gate/internal/edge"
	"github.com/spec-kit/admin-gate/internal/observability"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	metrics := observability.NewMetrics("edge")

	app := fiber.New(fiber.Config{
		AppName:               cfg.App.Name + "-edge",
		DisableStartupMessage: true,
	})
	app.Use(observability.RequestLogger(logger, metrics))
	app.Get("/metrics", metrics.Handler())
	app.Use(edge.NewGuard(cfg.Edge.CookieName, logger, metrics).Handle)
	if err := edge.Mount(app, cfg.Edge); err != nil {
		logger.Fatal("mount frontend", zap.Error(err))
	}

	go func() {
		logger.Info("edge listening", zap.String("addr", cfg.Edge.Addr()), zap.String("upstream", cfg.Edge.UpstreamURL))
		if err := app.Listen(cfg.Edge.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))

	_ = app.Shutdown()
}
