package quota

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/chouette-app/chouette-backend/pkg/logging"
)

// Limiter enforces a per-organization daily refinement quota backed by Redis.
// Refinement itself stays pure, so the limiter sits at the HTTP layer and
// fails open: an unreachable Redis never blocks a request.
type Limiter struct {
	client *redis.Client
	logger *logging.Logger
	limit  int
	now    func() time.Time
}

// New creates a Limiter. A nil client or non-positive limit disables it.
func New(client *redis.Client, limit int, logger *logging.Logger) *Limiter {
	if logger == nil {
		logger = logging.Default()
	}
	return &Limiter{client: client, logger: logger, limit: limit, now: time.Now}
}

// Enabled reports whether the limiter can actually enforce anything.
func (l *Limiter) Enabled() bool {
	return l != nil && l.client != nil && l.limit > 0
}

// Allow increments the org's daily counter and reports whether the request is
// within quota. The counter key expires at the end of the UTC day.
func (l *Limiter) Allow(ctx context.Context, orgID string) bool {
	if !l.Enabled() || orgID == "" {
		return true
	}

	day := l.now().UTC().Format("2006-01-02")
	key := fmt.Sprintf("quota:refine:%s:%s", orgID, day)

	count, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		l.logger.Warn("quota check failed, allowing request", "org_id", orgID, "error", err)
		return true
	}
	if count == 1 {
		// First hit of the day sets the expiry; 48h covers clock skew.
		if err := l.client.Expire(ctx, key, 48*time.Hour).Err(); err != nil {
			l.logger.Warn("quota expiry failed", "org_id", orgID, "error", err)
		}
	}
	return count <= int64(l.limit)
}

// Remaining returns how many refinements the org has left today.
func (l *Limiter) Remaining(ctx context.Context, orgID string) int {
	if !l.Enabled() || orgID == "" {
		return -1
	}
	day := l.now().UTC().Format("2006-01-02")
	key := fmt.Sprintf("quota:refine:%s:%s", orgID, day)

	count, err := l.client.Get(ctx, key).Int64()
	if err != nil && err != redis.Nil {
		return -1
	}
	left := l.limit - int(count)
	if left < 0 {
		return 0
	}
	return left
}
