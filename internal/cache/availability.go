package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog/log"

	"github.com/RestoSuiteApp/resto-scheduler/internal/domain/availability"
)

// AvailabilityCache keeps compiled availability results in Redis for a
// short TTL. The compiler itself is cheap; the cache mainly shields the
// slot/exception queries behind the public endpoint. A nil cache is a
// valid no-op, so tests and deployments without Redis skip it entirely.
type AvailabilityCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewAvailabilityCache(rdb *redis.Client, ttl time.Duration) *AvailabilityCache {
	if rdb == nil {
		return nil
	}
	if ttl <= 0 {
		ttl = 60 * time.Second
	}
	return &AvailabilityCache{rdb: rdb, ttl: ttl}
}

func key(establishmentID uint, date string) string {
	return fmt.Sprintf("availability:%d:%s", establishmentID, date)
}

func (c *AvailabilityCache) Get(ctx context.Context, establishmentID uint, date string) ([]availability.ServiceGroup, bool) {
	if c == nil {
		return nil, false
	}

	raw, err := c.rdb.Get(ctx, key(establishmentID, date)).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Warn().Err(err).Msg("availability cache read failed")
		}
		return nil, false
	}

	var groups []availability.ServiceGroup
	if err := json.Unmarshal(raw, &groups); err != nil {
		return nil, false
	}
	return groups, true
}

func (c *AvailabilityCache) Set(ctx context.Context, establishmentID uint, date string, groups []availability.ServiceGroup) {
	if c == nil {
		return
	}

	raw, err := json.Marshal(groups)
	if err != nil {
		return
	}

	if err := c.rdb.Set(ctx, key(establishmentID, date), raw, c.ttl).Err(); err != nil {
		log.Warn().Err(err).Msg("availability cache write failed")
	}
}

// Invalidate drops every cached date of an establishment. Called after
// any slot or exception write.
func (c *AvailabilityCache) Invalidate(ctx context.Context, establishmentID uint) {
	if c == nil {
		return
	}

	pattern := fmt.Sprintf("availability:%d:*", establishmentID)

	iter := c.rdb.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		if err := c.rdb.Del(ctx, iter.Val()).Err(); err != nil {
			log.Warn().Err(err).Str("key", iter.Val()).Msg("availability cache invalidation failed")
		}
	}
	if err := iter.Err(); err != nil {
		log.Warn().Err(err).Msg("availability cache scan failed")
	}
}
