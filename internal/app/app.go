package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/nati-tewolde/online-store/internal/config"
	"github.com/nati-tewolde/online-store/internal/domain"
	"github.com/nati-tewolde/online-store/internal/handler/console"
	"github.com/nati-tewolde/online-store/internal/metrics"
	"github.com/nati-tewolde/online-store/internal/repository/file"
	"github.com/nati-tewolde/online-store/internal/repository/memory"
	"github.com/nati-tewolde/online-store/internal/service"
	"github.com/nati-tewolde/online-store/pkg/clock"
	apperrors "github.com/nati-tewolde/online-store/pkg/errors"
	"github.com/nati-tewolde/online-store/pkg/logger"
	"github.com/nati-tewolde/online-store/pkg/tracing"
)

const catalogLoadTimeout = 10 * time.Second

// App wires together all dependencies and runs the store session.
type App struct {
	cfg      *config.Config
	logger   *slog.Logger
	registry *prometheus.Registry
	catalog  *file.LoadResult
	session  *console.Session
}

// NewApp loads the catalog and builds the dependency graph. A catalog read
// failure is reported on out and the store starts with whatever was loaded.
func NewApp(cfg *config.Config, logger *slog.Logger, in io.Reader, out io.Writer) (*App, error) {
	ctx, cancel := context.WithTimeout(context.Background(), catalogLoadTimeout)
	defer cancel()

	registry := prometheus.NewRegistry()
	m := metrics.New(registry)

	loader := file.NewCatalogLoader(logger, m, out)
	catalog, err := loader.Load(ctx, cfg.CatalogPath)
	if err != nil {
		if catalog == nil {
			return nil, fmt.Errorf("load catalog: %w", err)
		}
		fmt.Fprintln(out, "Error reading file.")
		logger.Error("catalog read failed, continuing with partial inventory",
			slog.String("path", cfg.CatalogPath),
			slog.Int("products", len(catalog.Products)),
			slog.String("error", err.Error()),
		)
	}

	// Build the dependency graph.
	repo := memory.NewProductRepository(catalog.Products)
	cart := domain.NewCart()
	productService := service.NewProductService(repo, logger)
	cartService := service.NewCartService(repo, cart, m, logger)
	checkoutService := service.NewCheckoutService(cart, clock.NewSystem(), m, logger)

	session := console.NewSession(productService, cartService, checkoutService, in, out, cfg.CurrencySymbol, logger)

	return &App{
		cfg:      cfg,
		logger:   logger,
		registry: registry,
		catalog:  catalog,
		session:  session,
	}, nil
}

// Run drives the session and blocks until the shopper exits or the context
// is canceled.
func (a *App) Run(ctx context.Context) (err error) {
	ctx = logger.WithSessionID(ctx, uuid.New().String())
	ctx, end := tracing.TraceOperation(ctx, "store.Session",
		attribute.String("catalog.path", a.catalog.Path),
	)
	defer func() { end(err) }()

	errCh := make(chan error, 1)

	go func() {
		a.logger.Info("starting session",
			slog.String("catalog", a.catalog.Path),
			slog.Int("products", len(a.catalog.Products)),
			slog.Int("skipped_lines", len(a.catalog.Skipped)),
		)
		errCh <- a.runSession(ctx)
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("shutdown signal received")
	case err = <-errCh:
		if err != nil && ctx.Err() == nil {
			err = fmt.Errorf("session: %w", err)
		} else {
			err = nil
		}
	}

	a.Shutdown()
	return err
}

// runSession runs the session and turns a panic into an error so the
// shutdown path still runs.
func (a *App) runSession(ctx context.Context) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			a.logger.ErrorContext(ctx, "panic recovered",
				slog.Any("panic", rec),
				slog.String("stack", string(debug.Stack())),
			)
			err = apperrors.Internal(fmt.Errorf("panic: %v", rec))
		}
	}()
	return a.session.Run(ctx)
}

// Shutdown reports the session counters when enabled.
func (a *App) Shutdown() {
	if a.cfg.MetricsSummary {
		a.logSummary()
	}
	a.logger.Info("application shutdown complete")
}

func (a *App) logSummary() {
	samples, err := metrics.Summarize(a.registry)
	if err != nil {
		a.logger.Error("metrics summary failed", slog.String("error", err.Error()))
		return
	}

	attrs := make([]any, 0, len(samples))
	for _, s := range samples {
		attrs = append(attrs, slog.Float64(s.Name, s.Value))
	}
	a.logger.Warn("session metrics", attrs...)
}
