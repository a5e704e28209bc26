package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	httpAdapter "github.com/iho/positiondraft/internal/adapter/http"
	"github.com/iho/positiondraft/internal/adapter/http/handler"
	"github.com/iho/positiondraft/internal/adapter/http/middleware"
	"github.com/iho/positiondraft/internal/adapter/repository/memory"
	redisRepo "github.com/iho/positiondraft/internal/adapter/repository/redis"
	"github.com/iho/positiondraft/internal/infrastructure/config"
	"github.com/iho/positiondraft/internal/infrastructure/logger"
	"github.com/iho/positiondraft/internal/infrastructure/metrics"
	"github.com/iho/positiondraft/internal/infrastructure/redis"
	"github.com/iho/positiondraft/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Setup logger
	log.Logger = logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat, Service: "positions-server"})

	ctx := context.Background()

	// Connect to Redis
	redisClient, err := redis.NewClient(ctx, redis.Config{URL: cfg.RedisURL, PoolSize: cfg.RedisPoolSize, PingTimeout: cfg.RedisPingTimeout})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close()
	log.Info().Msg("connected to redis")

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	var rateLimiter *middleware.RateLimiter
	if cfg.RateLimitEnabled() {
		rateLimiter = middleware.NewRateLimiter(cfg.HTTPRateLimit, cfg.HTTPRateBurst)
		go cleanupLimiter(ctx, rateLimiter, time.Minute)
	}

	router := newRouter(cfg, redisClient, rateLimiter, log.Logger, reg)

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("starting positions server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}

// newRouter wires the repositories, the position service and the HTTP layer.
func newRouter(cfg *config.Config, redisClient *goredis.Client, rateLimiter *middleware.RateLimiter, logger zerolog.Logger, reg *prometheus.Registry) http.Handler {
	m := metrics.New(reg)

	positionRepo := redisRepo.NewPositionRepository(redisClient, m)
	idempotencyStore := redisRepo.NewIdempotencyStore(redisClient, m)
	idGen := memory.NewULIDGenerator("")

	positionSvc := usecase.NewPositionService(positionRepo, idGen, logger, m)

	return httpAdapter.NewRouter(httpAdapter.RouterConfig{
		PositionsHandler: handler.NewPositionsHandler(positionSvc),
		HealthHandler:    handler.NewHealthHandler(handler.RedisCheck(redisClient)),
		IdempotencyStore: idempotencyStore,
		IdempotencyTTL:   cfg.IdempotencyTTL,
		RateLimiter:      rateLimiter,
		Logger:           logger,
		Metrics:          m,
		MetricsHandler:   promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
	})
}

func cleanupLimiter(ctx context.Context, rl *middleware.RateLimiter, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			rl.Cleanup(now)
		}
	}
}
