package cache

import (
	"context"
	"time"
)

// catalogPrefix namespaces every catalog listing key.
const catalogPrefix = "catalog:"

// CatalogCache stores public catalog listings in Redis. A nil *CatalogCache
// is a disabled cache: reads miss and writes are dropped.
type CatalogCache struct {
	redis *RedisClient
	ttl   time.Duration
}

// NewCatalogCache creates a CatalogCache whose entries expire after ttl.
func NewCatalogCache(redis *RedisClient, ttl time.Duration) *CatalogCache {
	return &CatalogCache{redis: redis, ttl: ttl}
}

// Get decodes the listing stored under key into dest and reports whether it was found.
func (c *CatalogCache) Get(ctx context.Context, key string, dest any) (bool, error) {
	if c == nil {
		return false, nil
	}
	return c.redis.GetJSON(ctx, catalogPrefix+key, dest)
}

// Set stores value under key.
func (c *CatalogCache) Set(ctx context.Context, key string, value any) error {
	if c == nil {
		return nil
	}
	return c.redis.SetJSON(ctx, catalogPrefix+key, value, c.ttl)
}

// Invalidate drops every cached listing.
func (c *CatalogCache) Invalidate(ctx context.Context) error {
	if c == nil {
		return nil
	}
	_, err := c.redis.DeleteByPrefix(ctx, catalogPrefix)
	return err
}
