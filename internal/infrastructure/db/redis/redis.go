package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const dialTimeout = 5 * time.Second

// Config captures the settings for the catalog cache connection.
type Config struct {
	Addr     string
	DB       int
	CacheTTL time.Duration
}

// Connect dials Redis, validates connectivity with a ping, and returns the
// catalog cache bound to that connection. CacheTTL falls back to the package
// default when unset.
func Connect(ctx context.Context, cfg Config) (*CatalogCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.Addr,
		DB:   cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, dialTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return NewCatalogCache(client, cfg.CacheTTL), nil
}
