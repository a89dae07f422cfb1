package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/cofd-tools/character-api/internal/api/metrics"
	"github.com/cofd-tools/character-api/internal/core/domain"
)

const (
	meritListKey    = "merits:all"
	defaultMeritTTL = 5 * time.Minute
)

// MeritCache keeps the serialized merit catalog under a single key.
type MeritCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewMeritCache(client *redis.Client, ttl time.Duration) *MeritCache {
	if ttl <= 0 {
		ttl = defaultMeritTTL
	}
	return &MeritCache{client: client, ttl: ttl}
}

// Get returns the cached catalog. ok is false on a miss.
func (c *MeritCache) Get(ctx context.Context) ([]domain.Merit, bool, error) {
	raw, err := c.client.Get(ctx, meritListKey).Bytes()
	if errors.Is(err, redis.Nil) {
		metrics.MeritCacheTotal.WithLabelValues("miss").Inc()
		return nil, false, nil
	}
	if err != nil {
		metrics.MeritCacheTotal.WithLabelValues("error").Inc()
		return nil, false, fmt.Errorf("merit cache get: %w", err)
	}

	var merits []domain.Merit
	if err := json.Unmarshal(raw, &merits); err != nil {
		metrics.MeritCacheTotal.WithLabelValues("error").Inc()
		return nil, false, fmt.Errorf("merit cache decode: %w", err)
	}
	metrics.MeritCacheTotal.WithLabelValues("hit").Inc()
	return merits, true, nil
}

func (c *MeritCache) Set(ctx context.Context, merits []domain.Merit) error {
	raw, err := json.Marshal(merits)
	if err != nil {
		return fmt.Errorf("merit cache encode: %w", err)
	}
	return c.client.Set(ctx, meritListKey, raw, c.ttl).Err()
}

func (c *MeritCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, meritListKey).Err()
}
