package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/BruksfildServices01/barber-booking/internal/config"
	"github.com/BruksfildServices01/barber-booking/internal/domain/booking"
)

const minGenerationTTL = 24 * time.Hour

func NewRedisClient(cfg *config.Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
}

// ViewCache stores rendered views as JSON under their ViewKey. Each key has
// a generation counter; a view is stored for the generation that was current
// before it was computed, and invalidating a key moves readers to the next
// generation. A view computed before an invalidation can therefore never be
// served after it.
type ViewCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewViewCache(rdb *redis.Client, ttl time.Duration) *ViewCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &ViewCache{rdb: rdb, ttl: ttl}
}

func generationKey(key booking.ViewKey) string {
	return string(key) + ":gen"
}

func viewKey(key booking.ViewKey, gen int64) string {
	return fmt.Sprintf("%s@%d", key, gen)
}

// generationTTL outlives every view written under an older generation.
func (c *ViewCache) generationTTL() time.Duration {
	if ttl := 2 * c.ttl; ttl > minGenerationTTL {
		return ttl
	}
	return minGenerationTTL
}

// Get returns the current generation of key and, when a view is stored for
// it, decodes the view into dst.
func (c *ViewCache) Get(ctx context.Context, key booking.ViewKey, dst any) (int64, bool, error) {
	gen, err := c.rdb.Get(ctx, generationKey(key)).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return 0, false, err
	}

	b, err := c.rdb.Get(ctx, viewKey(key, gen)).Bytes()
	if errors.Is(err, redis.Nil) {
		return gen, false, nil
	}
	if err != nil {
		return gen, false, err
	}
	if err := json.Unmarshal(b, dst); err != nil {
		return gen, false, fmt.Errorf("decode cached view %s: %w", key, err)
	}
	return gen, true, nil
}

// Set stores v for generation gen, as returned by Get before v was computed.
func (c *ViewCache) Set(ctx context.Context, key booking.ViewKey, gen int64, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, viewKey(key, gen), b, c.ttl).Err()
}

// Invalidate bumps the generation of key so the next Get misses.
func (c *ViewCache) Invalidate(ctx context.Context, key booking.ViewKey) error {
	_, err := c.rdb.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.Incr(ctx, generationKey(key))
		p.Expire(ctx, generationKey(key), c.generationTTL())
		return nil
	})
	return err
}
