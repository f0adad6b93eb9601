package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/myhost-cloud/myhost/internal/config"
	"github.com/myhost-cloud/myhost/internal/infra"
	"github.com/myhost-cloud/myhost/internal/logging"
	"github.com/myhost-cloud/myhost/internal/server"
)

func main() {
	// Optional .env for local development; real deployments set the
	// environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(cfg.LogLevel, cfg.AppEnv)

	if cfg.UsesDefaultSecret() {
		logger.Warn("JWT_SECRET is unset, falling back to the built-in default; do not run this in production")
	}

	ctx := context.Background()

	// In dev mode both stores are optional: missing DATABASE_URL switches the
	// repositories to their in-memory implementations, missing REDIS_URL
	// disables the Redis-backed middleware.
	var db *pgxpool.Pool
	if cfg.DatabaseURL != "" {
		db, err = infra.NewPostgresPool(ctx, cfg.DatabaseURL)
		if err != nil {
			logger.Error("connect postgres", "error", err)
			os.Exit(1)
		}
		defer db.Close()

		if err := infra.MigrateUp(cfg.DatabaseURL, cfg.MigrationsDir, logger); err != nil {
			logger.Error("run migrations", "error", err)
			os.Exit(1)
		}
	} else {
		logger.Warn("DATABASE_URL not set, using in-memory repositories")
	}

	var cache *redis.Client
	if cfg.RedisURL != "" {
		cache, err = infra.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			logger.Error("connect redis", "error", err)
			os.Exit(1)
		}
		defer func() {
			if err := cache.Close(); err != nil {
				logger.Warn("close redis", "error", err)
			}
		}()
	} else {
		logger.Warn("REDIS_URL not set, rate limiting and idempotency disabled")
	}

	srv, err := server.New(cfg, db, cache, logger)
	if err != nil {
		logger.Error("build server", "error", err)
		os.Exit(1)
	}

	srvErrCh := make(chan error, 1)
	go func() {
		srvErrCh <- srv.Listen()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.Info("shutdown signal received", "signal", sig.String())
	case err := <-srvErrCh:
		if err != nil {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
		return
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownPeriod)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", "error", err)
		os.Exit(1)
	}

	logger.Info("server exited cleanly")
}
