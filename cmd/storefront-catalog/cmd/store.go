package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/donaldgifford/storefront-catalog/internal/cache"
	"github.com/donaldgifford/storefront-catalog/internal/config"
	"github.com/donaldgifford/storefront-catalog/internal/store"
)

// openStore connects to the configured database. The returned close
// function releases the connection.
func openStore(ctx context.Context, db *config.DatabaseConfig) (store.Store, func(), error) {
	switch db.Driver {
	case config.DriverMongo:
		s, err := store.NewMongoStore(ctx, db.Mongo.URI, db.Mongo.Database)
		if err != nil {
			return nil, nil, fmt.Errorf("connecting to mongodb: %w", err)
		}
		return s, s.Close, nil
	default:
		s, err := store.NewPostgresStore(ctx, db.DSN())
		if err != nil {
			return nil, nil, fmt.Errorf("connecting to database: %w", err)
		}
		return s, s.Close, nil
	}
}

// withFacetCache wraps s in a Redis facet cache when one is configured.
func withFacetCache(
	ctx context.Context,
	s store.Store,
	cfg *config.CacheConfig,
	log *slog.Logger,
) (store.Store, func(), error) {
	if cfg.RedisURL == "" {
		return s, func() {}, nil
	}

	rdb, err := cache.NewRedisClient(ctx, cfg.RedisURL)
	if err != nil {
		return nil, nil, fmt.Errorf("connecting to redis: %w", err)
	}

	log.Info("facet cache enabled", "ttl", cfg.FacetTTL)
	closeFn := func() {
		if err := rdb.Close(); err != nil {
			log.Warn("closing redis client", "error", err)
		}
	}
	return cache.NewFacetStore(s, rdb, cfg.FacetTTL, cache.WithLogger(log)), closeFn, nil
}
