package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/nati-tewolde/online-store/internal/app"
	"github.com/nati-tewolde/online-store/internal/config"
	"github.com/nati-tewolde/online-store/pkg/logger"
	"github.com/nati-tewolde/online-store/pkg/tracing"
)

func main() {
	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize structured logger.
	log := logger.New("online-store", cfg.LogLevel)
	log.Info("starting online store",
		slog.String("environment", cfg.Environment),
		slog.String("catalog", cfg.CatalogPath),
	)

	// Install the tracer provider when enabled.
	shutdownTracer := tracing.InitTracer(tracing.Config{
		ServiceName: "online-store",
		Environment: cfg.Environment,
		Enabled:     cfg.Tracing,
	})
	defer func() {
		if err := shutdownTracer(context.Background()); err != nil {
			log.Error("tracer shutdown error", slog.String("error", err.Error()))
		}
	}()

	// Create the application with all dependencies wired.
	application, err := app.NewApp(cfg, log, os.Stdin, os.Stdout)
	if err != nil {
		log.Error("failed to initialize application", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Create a context that is cancelled on SIGINT or SIGTERM.
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Run the application. This blocks until the shopper exits.
	if err := application.Run(ctx); err != nil {
		log.Error("application error", slog.String("error", err.Error()))
		os.Exit(1)
	}

	log.Info("online store stopped")
}
