package plan

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultCacheKey = "bundler:plan_catalog"

// CachedSource serves plan catalog snapshots from Redis with a TTL,
// falling back to the wrapped Source on a miss. Cache failures degrade to
// the underlying source rather than failing the resolution.
type CachedSource struct {
	src Source
	rdb redis.UniversalClient
	ttl time.Duration
	key string
}

// CachedSourceOption configures a CachedSource.
type CachedSourceOption func(*CachedSource)

// WithCacheTTL sets the snapshot lifetime. Non-positive values are ignored.
func WithCacheTTL(ttl time.Duration) CachedSourceOption {
	return func(c *CachedSource) {
		if ttl > 0 {
			c.ttl = ttl
		}
	}
}

// WithCacheKey overrides the Redis key the snapshot is stored under.
func WithCacheKey(key string) CachedSourceOption {
	return func(c *CachedSource) {
		if key != "" {
			c.key = key
		}
	}
}

// NewCachedSource wraps src with a Redis-backed snapshot cache.
func NewCachedSource(src Source, rdb redis.UniversalClient, opts ...CachedSourceOption) *CachedSource {
	c := &CachedSource{
		src: src,
		rdb: rdb,
		ttl: 30 * time.Second,
		key: defaultCacheKey,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Load returns the cached catalog snapshot, refreshing it from the wrapped
// source when missing or unreadable.
func (c *CachedSource) Load(ctx context.Context) (Catalog, error) {
	raw, err := c.rdb.Get(ctx, c.key).Bytes()
	if err == nil {
		var catalog Catalog
		if err := json.Unmarshal(raw, &catalog); err == nil {
			return catalog, nil
		}
		// Unreadable payload: drop it and fall through to the source.
		_ = c.rdb.Del(ctx, c.key).Err()
	}

	catalog, err := c.src.Load(ctx)
	if err != nil {
		return nil, err
	}

	encoded, err := json.Marshal(catalog)
	if err != nil {
		return nil, errors.Join(ErrFailedToEncodeCatalog, err)
	}
	// Best effort: a failed cache write must not fail the load.
	_ = c.rdb.Set(ctx, c.key, encoded, c.ttl).Err()

	return catalog, nil
}

// Invalidate drops the cached snapshot. Wire it as the lifecycle service's
// on-change hook so admin mutations become visible within one load.
func (c *CachedSource) Invalidate(ctx context.Context) error {
	return c.rdb.Del(ctx, c.key).Err()
}
