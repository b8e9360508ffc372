package bootstrap

import (
	"context"
	"crypto/tls"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	appconfig "github.com/chouette-app/chouette-backend/internal/config"
	"github.com/chouette-app/chouette-backend/internal/suggestion"
	"github.com/chouette-app/chouette-backend/pkg/logging"
)

// BuildRedisClient returns a configured Redis client or nil when disabled.
// When verify is true, a ping is issued and failures return nil.
func BuildRedisClient(ctx context.Context, cfg *appconfig.Config, logger *logging.Logger, verify bool) *redis.Client {
	if cfg == nil || strings.TrimSpace(cfg.RedisAddr) == "" {
		return nil
	}
	if logger == nil {
		logger = logging.Default()
	}
	if ctx == nil {
		ctx = context.Background()
	}

	redisOptions := &redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	}
	if cfg.RedisTLS {
		redisOptions.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}
	client := redis.NewClient(redisOptions)
	if !verify {
		return client
	}
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn("redis not available", "error", err)
		return nil
	}
	return client
}

// BuildPGPool returns a pgx pool or nil when no database is configured.
// Refinement never depends on the database, so failures only disable history.
func BuildPGPool(ctx context.Context, cfg *appconfig.Config, logger *logging.Logger) *pgxpool.Pool {
	if cfg == nil || strings.TrimSpace(cfg.DatabaseURL) == "" {
		return nil
	}
	if logger == nil {
		logger = logging.Default()
	}
	if ctx == nil {
		ctx = context.Background()
	}

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Warn("database not available, history disabled", "error", err)
		return nil
	}
	if err := pool.Ping(ctx); err != nil {
		logger.Warn("database ping failed, history disabled", "error", err)
		pool.Close()
		return nil
	}
	return pool
}

// BuildSuggestionStore wires optional refinement history persistence.
func BuildSuggestionStore(pool *pgxpool.Pool, cfg *appconfig.Config, logger *logging.Logger) *suggestion.Store {
	if cfg == nil || !cfg.HistoryEnabled || pool == nil {
		return nil
	}
	if logger == nil {
		logger = logging.Default()
	}
	logger.Info("refinement history persistence enabled")
	return suggestion.NewStore(pool)
}
