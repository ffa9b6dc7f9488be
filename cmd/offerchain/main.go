package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpadapter "offerchain/internal/adapter/http"
	"offerchain/internal/adapter/postgres"
	"offerchain/internal/adapter/usecase"
	"offerchain/internal/cache"
	"offerchain/internal/config"
	"offerchain/internal/db"
	"offerchain/internal/identity"
	"offerchain/internal/tracing"
)

// main is the entry point of the offerchain service. It loads
// configuration, optionally runs database migrations and seeding,
// initializes the database pool, cache, tracing and repositories, then
// starts the HTTP server. On receiving a termination signal it gracefully
// shuts down the server.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	var logger *slog.Logger
	{
		// Initialise structured logger based on configuration.
		var handler slog.Handler
		level := cfg.Log.SlogLevel()
		switch cfg.Log.SlogFormat() {
		case "json":
			handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		default:
			handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		}
		logger = slog.New(handler)
	}

	if cfg.Psql.RunMigrations {
		if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
			logger.Error("migration error", slog.Any("error", err))
		} else {
			logger.Info("migrations applied successfully")
		}
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		logger.Error("database connection error", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	if cfg.Psql.RunSeed {
		if err = db.Seed(ctx, pool); err != nil {
			logger.Error("seed error", slog.Any("error", err))
		} else {
			logger.Info("demo offers seeded")
		}
	}

	var offerCache cache.Cache = cache.Disabled{}
	if cfg.Redis.Address != "" {
		redisCache, err := cache.NewRedis(ctx, cfg.Redis.Address, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			logger.Error("redis connection error", slog.Any("error", err))
			os.Exit(1)
		}
		defer redisCache.Close()
		offerCache = redisCache
	}

	var extra []func(http.Handler) http.Handler
	if cfg.Trace.Enabled {
		provider, err := tracing.New(tracing.Config{
			Endpoint:    cfg.Trace.Endpoint,
			ServiceName: cfg.Trace.ServiceName,
			Environment: cfg.Env,
		})
		if err != nil {
			logger.Error("tracing init error", slog.Any("error", err))
			os.Exit(1)
		}
		defer func() {
			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer shutdownCancel()
			if err := provider.Shutdown(shutdownCtx); err != nil {
				logger.Error("tracing shutdown error", slog.Any("error", err))
			}
		}()
		extra = append(extra, provider.Middleware())
	}

	leads := postgres.NewLeadRepository(pool)
	offers := postgres.NewOfferRepository(pool)
	actions := postgres.NewActionRepository(pool)

	svc := httpadapter.Services{
		Identity: usecase.NewIdentityUseCase(leads),
		Ledger:   usecase.NewLedgerUseCase(leads, actions),
		Catalog:  usecase.NewCatalogUseCase(offers, offerCache, cfg.Redis.OfferTTL),
		Stats:    usecase.NewStatsUseCase(actions),
	}
	verifier := httpadapter.NewStaticCredentials(cfg.Admin.Username, cfg.Admin.Password)

	handler := httpadapter.NewHandler(svc, verifier, identity.Environment(cfg.Env), logger, extra...)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err = srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.Any("error", err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	value := <-quit
	exitCode = 128 + int(value.(syscall.Signal))

	ctx, cancelTimeout := context.WithTimeout(ctx, 5*time.Second)
	defer cancelTimeout()
	if err = srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
}
