package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/bistroboss/bistro-api/internal/api/metrics"
)

const defaultCacheTTL = 5 * time.Minute

// CatalogCache holds catalog listings as JSON blobs with a TTL.
// Key format: catalog:<collection>
type CatalogCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCatalogCache creates a CatalogCache wrapping the given Redis client.
func NewCatalogCache(client *redis.Client, ttl time.Duration) *CatalogCache {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &CatalogCache{client: client, ttl: ttl}
}

// Get loads the cached listing for collection into v. It reports whether the
// key was present; a miss is not an error.
func (c *CatalogCache) Get(ctx context.Context, collection string, v any) (bool, error) {
	b, err := c.client.Get(ctx, c.key(collection)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			metrics.CatalogCacheTotal.WithLabelValues(collection, "miss").Inc()
			return false, nil
		}
		return false, fmt.Errorf("cache get: %w", err)
	}
	if err := json.Unmarshal(b, v); err != nil {
		return false, fmt.Errorf("cache decode: %w", err)
	}
	metrics.CatalogCacheTotal.WithLabelValues(collection, "hit").Inc()
	return true, nil
}

// Set stores the listing for collection, expiring after the configured TTL.
func (c *CatalogCache) Set(ctx context.Context, collection string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("cache encode: %w", err)
	}
	return c.client.Set(ctx, c.key(collection), b, c.ttl).Err()
}

func (c *CatalogCache) key(collection string) string {
	return "catalog:" + collection
}

// Ping reports whether the cache connection is healthy.
func (c *CatalogCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close releases the underlying connection.
func (c *CatalogCache) Close() error {
	return c.client.Close()
}
