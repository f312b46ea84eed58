package util

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Deduper is the "already processed" cache: a redis SetNX lock per
// handler + message. The engine itself is stateless, so this is the only
// idempotency state in the system.
type Deduper struct {
	rdb    *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewDeduper(rdb *redis.Client, ttl time.Duration, logger *zap.Logger) *Deduper {
	return &Deduper{
		rdb:    rdb,
		ttl:    ttl,
		logger: logger,
	}
}

// AcquireOnce tries to acquire a dedup lock for a given handler + message id.
// It returns true the first time, false for duplicates. When redis is
// unavailable it fails open and allows processing; the database-level
// idempotency check still catches duplicates.
func (d *Deduper) AcquireOnce(ctx context.Context, handler string, messageRawID int) bool {
	key := fmt.Sprintf("dedup:%s:%d", handler, messageRawID)

	ok, err := d.rdb.SetNX(ctx, key, 1, d.ttl).Result()
	if err != nil {
		if d.logger != nil {
			d.logger.Warn("Redis dedup check failed, allowing processing",
				zap.String("handler", handler),
				zap.Int("message_raw_id", messageRawID),
				zap.Error(err),
			)
		}
		return true
	}

	if !ok && d.logger != nil {
		d.logger.Info("Skipped duplicated event",
			zap.String("handler", handler),
			zap.Int("message_raw_id", messageRawID),
			zap.String("dedup_key", key),
		)
	}

	return ok
}
