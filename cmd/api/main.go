// AngelaMos | 2026
// main.go

package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	goredis "github.com/redis/go-redis/v9"

	"github.com/carterperez-dev/bookhaven/internal/admin"
	"github.com/carterperez-dev/bookhaven/internal/analytics"
	"github.com/carterperez-dev/bookhaven/internal/auth"
	"github.com/carterperez-dev/bookhaven/internal/book"
	"github.com/carterperez-dev/bookhaven/internal/booking"
	"github.com/carterperez-dev/bookhaven/internal/config"
	"github.com/carterperez-dev/bookhaven/internal/core"
	"github.com/carterperez-dev/bookhaven/internal/health"
	"github.com/carterperez-dev/bookhaven/internal/metrics"
	"github.com/carterperez-dev/bookhaven/internal/middleware"
	"github.com/carterperez-dev/bookhaven/internal/server"
	"github.com/carterperez-dev/bookhaven/internal/subscriber"
	"github.com/carterperez-dev/bookhaven/internal/user"
)

const (
	drainDelay = 5 * time.Second
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

//nolint:funlen // bootstrap code is inherently verbose
func run(configPath string) error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
	)
	defer stop()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger := setupLogger(cfg.Log)
	slog.SetDefault(logger)

	logger.Info("starting application",
		"name", cfg.App.Name,
		"version", cfg.App.Version,
		"environment", cfg.App.Environment,
	)

	telemetry, err := core.NewTelemetry(ctx, cfg.Otel, cfg.App)
	if err != nil {
		logger.Warn("failed to initialize telemetry", "error", err)
	} else if cfg.Otel.Enabled {
		logger.Info("OpenTelemetry tracer initialized",
			"endpoint", cfg.Otel.Endpoint,
		)
	}

	db, err := core.NewDatabase(ctx, cfg.Database)
	if err != nil {
		return err
	}
	logger.Info("database connected",
		"database", cfg.Database.Name,
		"max_pool_size", cfg.Database.MaxPoolSize,
	)

	if err := db.EnsureIndexes(ctx); err != nil {
		logger.Warn("failed to ensure indexes", "error", err)
	}

	// Redis is optional at runtime: rate limiting falls back to local
	// buckets and logout stops denylisting tokens.
	var (
		redisClient *goredis.Client
		redisCheck  health.Checker
	)
	rdb, err := core.NewRedis(ctx, cfg.Redis)
	if err != nil {
		logger.Warn("redis unavailable, continuing without it", "error", err)
	} else {
		redisClient = rdb.Client
		redisCheck = rdb
		logger.Info("redis connected", "pool_size", cfg.Redis.PoolSize)
	}

	jwtManager, err := auth.NewJWTManager(cfg.JWT)
	if err != nil {
		return err
	}
	logger.Info("JWT manager initialized",
		"algorithm", "HS256",
		"expire", cfg.JWT.Expire.String(),
	)

	registry := prometheus.NewRegistry()
	collector := metrics.NewCollector(registry)

	var tx core.TxRunner = core.NoTx{}
	if cfg.Database.TransactionalCascade {
		tx = db
	}

	authSvc := auth.NewService(jwtManager, redisClient, cfg.JWT.RevokeOnLogout)
	authHandler := auth.NewHandler(authSvc, cfg.IsProduction())

	userSvc := user.NewService(user.NewRepository(db))
	userHandler := user.NewHandler(userSvc)

	bookHandler := book.NewHandler(
		book.NewService(book.NewRepository(db), tx, collector),
	)
	bookingHandler := booking.NewHandler(
		booking.NewService(booking.NewRepository(db)),
	)
	subscriberHandler := subscriber.NewHandler(
		subscriber.NewService(subscriber.NewRepository(db)),
	)
	analyticsHandler := analytics.NewHandler(
		analytics.NewService(analytics.NewRepository(db)),
	)

	adminCfg := admin.HandlerConfig{
		DBPing:   db.Ping,
		Gateways: []admin.Gateway{userHandler, bookingHandler, subscriberHandler},
	}
	if rdb != nil {
		adminCfg.RedisPing = rdb.Ping
		adminCfg.RedisStats = rdb.Stats
	}
	adminHandler := admin.NewHandler(adminCfg)

	healthHandler := health.NewHandler(
		health.Dependency{Name: "mongodb", Checker: db, Critical: true},
		health.Dependency{Name: "redis", Checker: redisCheck},
	)

	globalLimiter := middleware.NewRateLimiter(redisClient, middleware.RateLimitConfig{
		Name: "global",
		Limit: middleware.PerWindow(
			cfg.RateLimit.Requests,
			cfg.RateLimit.Burst,
			cfg.RateLimit.Window,
		),
		FailOpen: true,
	})
	tokenLimiter := middleware.NewRateLimiter(redisClient, middleware.RateLimitConfig{
		Name: "token",
		Limit: middleware.PerWindow(
			cfg.RateLimit.TokenRequests,
			cfg.RateLimit.TokenBurst,
			cfg.RateLimit.Window,
		),
	})

	srv := server.New(server.Config{
		ServerConfig:  cfg.Server,
		HealthHandler: healthHandler,
		Logger:        logger,
	})
	srv.UseStack(server.StackConfig{
		Logger:      logger,
		Metrics:     collector,
		RateLimiter: globalLimiter,
		CORS:        cfg.CORS,
		Production:  cfg.IsProduction(),
	})

	router := srv.Router()

	healthHandler.RegisterRoutes(router)
	if cfg.Metrics.Enabled {
		router.Handle(cfg.Metrics.Path, metrics.Handler(registry))
	}

	authenticator := middleware.Authenticator(authSvc)
	guard := middleware.NewGuard(
		userSvc,
		cfg.Access.DemoAdminEmail,
		middleware.WithDenialRecorder(collector),
	)

	authHandler.RegisterRoutes(router, tokenLimiter.Handler)
	bookHandler.RegisterRoutes(router, authenticator, guard)
	bookingHandler.RegisterRoutes(router, authenticator, guard)
	userHandler.RegisterRoutes(router, authenticator, guard)
	subscriberHandler.RegisterRoutes(router)
	analyticsHandler.RegisterRoutes(router, authenticator, guard)
	adminHandler.RegisterRoutes(router, authenticator, guard)

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		cfg.Server.ShutdownTimeout+drainDelay+5*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx, drainDelay); err != nil {
		logger.Error("server shutdown error", "error", err)
	}

	globalLimiter.Close()
	tokenLimiter.Close()

	if err := telemetry.Shutdown(shutdownCtx); err != nil {
		logger.Error("telemetry shutdown error", "error", err)
	}

	if err := rdb.Close(); err != nil {
		logger.Error("redis close error", "error", err)
	}

	if err := db.Close(shutdownCtx); err != nil {
		logger.Error("database close error", "error", err)
	}

	logger.Info("application stopped")
	return nil
}

func setupLogger(cfg config.LogConfig) *slog.Logger {
	var handler slog.Handler

	level := slog.LevelInfo
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}

	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}
