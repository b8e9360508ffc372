package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/chouette-app/chouette-backend/internal/api/router"
	"github.com/chouette-app/chouette-backend/internal/app/bootstrap"
	appconfig "github.com/chouette-app/chouette-backend/internal/config"
	"github.com/chouette-app/chouette-backend/internal/http/handlers"
	"github.com/chouette-app/chouette-backend/internal/observability/metrics"
	"github.com/chouette-app/chouette-backend/internal/quota"
	"github.com/chouette-app/chouette-backend/pkg/logging"
)

func main() {
	// Local development convenience; absence of a .env file is fine.
	_ = godotenv.Load()

	cfg := appconfig.Load()

	logger := logging.New(cfg.LogLevel)
	logger.Info("starting chouette-backend API server",
		"env", cfg.Env,
		"port", cfg.Port,
	)

	ctx := context.Background()

	// Optional infrastructure: the refinement engine itself is pure, so a
	// missing database or Redis only disables history and quotas.
	pool := bootstrap.BuildPGPool(ctx, cfg, logger)
	if pool != nil {
		defer pool.Close()
	}
	redisClient := bootstrap.BuildRedisClient(ctx, cfg, logger, true)
	if redisClient != nil {
		defer redisClient.Close()
	}

	limiter := quota.New(redisClient, cfg.DailyRefineQuota, logger)
	refineMetrics := metrics.NewRefineMetrics(nil)

	var store handlers.RefineStore
	if s := bootstrap.BuildSuggestionStore(pool, cfg, logger); s != nil {
		store = s
	}

	refineHandler := handlers.NewRefineHandler(store, limiter, refineMetrics, cfg.HistoryLimit, logger)
	healthHandler := handlers.NewHealthHandler(cfg.Env)

	r := router.New(&router.Config{
		Logger:             logger,
		RefineHandler:      refineHandler,
		HealthHandler:      healthHandler,
		MetricsHandler:     promhttp.Handler(),
		CORSAllowedOrigins: cfg.AllowedOrigins,
		RateLimitPerMinute: cfg.RateLimitPerMinute,
		RateLimitBurst:     cfg.RateLimitBurst,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  cfg.RequestTimeout,
		WriteTimeout: cfg.RequestTimeout,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}
