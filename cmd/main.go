package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
	"golang.org/x/sync/errgroup"

	"campaign-api/internal/adapter/countries"
	httpadapter "campaign-api/internal/adapter/http"
	"campaign-api/internal/adapter/postgres"
	"campaign-api/internal/adapter/usecase"
	"campaign-api/internal/config"
	"campaign-api/internal/db"
)

// main is the entry point of the campaign API. It loads configuration and
// the country catalog, optionally migrates and seeds the database, then
// serves HTTP until SIGINT or SIGTERM and shuts down gracefully.
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := slog.New(cfg.Log.NewHandler(os.Stdout)).With(slog.String("env", cfg.Env))
	slog.SetDefault(logger)

	if err = run(cfg, logger); err != nil {
		logger.Error("server stopped with error", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(cfg config.Config, logger *slog.Logger) error {
	catalog, err := countries.LoadFile(cfg.CountriesPath)
	if err != nil {
		return fmt.Errorf("load countries: %w", err)
	}
	logger.Info("country catalog loaded", slog.Int("countries", len(catalog.All())))

	if cfg.Psql.RunMigrations {
		if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		logger.Info("migrations applied successfully")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		return fmt.Errorf("database connection: %w", err)
	}
	defer pool.Close()

	if cfg.Psql.Seed {
		if err = db.Seed(ctx, pool, catalog.Codes()); err != nil {
			return fmt.Errorf("seed: %w", err)
		}
	}

	repo := postgres.NewCampaignRepository(pool)
	svc := usecase.NewCampaignUseCase(repo, catalog, logger)

	var opts []httpadapter.Option
	if cfg.HTTP.TrustProxy {
		opts = append(opts, httpadapter.WithTrustedProxy())
	}
	if cfg.RateLimit.Enabled {
		rate, err := limiter.NewRateFromFormatted(cfg.RateLimit.Rate)
		if err != nil {
			return fmt.Errorf("rate limit: %w", err)
		}
		opts = append(opts, httpadapter.WithRateLimiter(limiter.New(memory.NewStore(), rate)))
		logger.Info("rate limiting enabled", slog.String("rate", cfg.RateLimit.Rate))
	}

	handler := httpadapter.NewHandler(svc, logger, opts...)
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:      handler.Router(),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown: %w", err)
		}
		logger.Info("server gracefully stopped")
		return nil
	})
	return g.Wait()
}
