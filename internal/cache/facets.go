package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/donaldgifford/storefront-catalog/internal/metrics"
	"github.com/donaldgifford/storefront-catalog/internal/store"
	"github.com/donaldgifford/storefront-catalog/pkg/catalog"
	domain "github.com/donaldgifford/storefront-catalog/pkg/types"
)

const (
	keyPrefix = "catalog:facet:"
	genKey    = keyPrefix + "gen"
)

// facetFields are the fields whose values are cached.
var facetFields = []catalog.Field{
	catalog.FieldBrand,
	catalog.FieldCategory,
	catalog.FieldColor,
	catalog.FieldSize,
}

// KV is the subset of the Redis client the cache uses.
type KV interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
	Incr(ctx context.Context, key string) *redis.IntCmd
}

// FacetStore is a store.Store whose DistinctValues results are cached in
// Redis. Every brand, category or product write drops the cached facets.
// Cache failures are logged and fall through to the wrapped store.
//
// Entry keys carry a generation number that Invalidate bumps. A miss that
// loaded its values before a concurrent write stores them under the old
// generation, where no reader looks, instead of resurrecting stale facets.
type FacetStore struct {
	store.Store

	kv  KV
	ttl time.Duration
	log *slog.Logger
}

// Option configures a FacetStore.
type Option func(*FacetStore)

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) Option {
	return func(f *FacetStore) {
		f.log = l
	}
}

// NewFacetStore wraps s with a facet cache held in kv for ttl.
func NewFacetStore(s store.Store, kv KV, ttl time.Duration, opts ...Option) *FacetStore {
	f := &FacetStore{
		Store: s,
		kv:    kv,
		ttl:   ttl,
		log:   slog.Default(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func facetKey(gen int64, field catalog.Field) string {
	return keyPrefix + strconv.FormatInt(gen, 10) + ":" + string(field)
}

// generation returns the current cache generation. A missing counter is
// generation 0.
func (f *FacetStore) generation(ctx context.Context) (int64, error) {
	gen, err := f.kv.Get(ctx, genKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return gen, err
}

// DistinctValues serves facet values from cache, loading them from the
// wrapped store on a miss.
func (f *FacetStore) DistinctValues(ctx context.Context, field catalog.Field) ([]string, error) {
	gen, err := f.generation(ctx)
	if err != nil {
		metrics.FacetCacheErrorsTotal.Inc()
		f.log.Warn("reading facet cache generation", "error", err)
		metrics.FacetCacheMissesTotal.WithLabelValues(string(field)).Inc()
		return f.load(ctx, field)
	}
	key := facetKey(gen, field)

	raw, err := f.kv.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var vals []string
		if jerr := json.Unmarshal(raw, &vals); jerr == nil {
			metrics.FacetCacheHitsTotal.WithLabelValues(string(field)).Inc()
			return vals, nil
		}
		f.log.Warn("discarding malformed facet cache entry", "key", key)
	case errors.Is(err, redis.Nil):
	default:
		metrics.FacetCacheErrorsTotal.Inc()
		f.log.Warn("reading facet cache", "key", key, "error", err)
	}

	metrics.FacetCacheMissesTotal.WithLabelValues(string(field)).Inc()

	vals, err := f.load(ctx, field)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(vals)
	if err == nil {
		err = f.kv.Set(ctx, key, data, f.ttl).Err()
	}
	if err != nil {
		metrics.FacetCacheErrorsTotal.Inc()
		f.log.Warn("writing facet cache", "key", key, "error", err)
	}

	return vals, nil
}

func (f *FacetStore) load(ctx context.Context, field catalog.Field) ([]string, error) {
	vals, err := f.Store.DistinctValues(ctx, field)
	if err != nil {
		return nil, err
	}
	if vals == nil {
		vals = []string{}
	}
	return vals, nil
}

// Invalidate moves the cache to a new generation and deletes the entries
// of the previous one. Entries written late under an older generation
// expire with their TTL.
func (f *FacetStore) Invalidate(ctx context.Context) {
	gen, err := f.kv.Incr(ctx, genKey).Result()
	if err != nil {
		metrics.FacetCacheErrorsTotal.Inc()
		f.log.Warn("invalidating facet cache", "error", err)
		return
	}

	keys := make([]string, 0, len(facetFields))
	for _, field := range facetFields {
		keys = append(keys, facetKey(gen-1, field))
	}
	if err := f.kv.Del(ctx, keys...).Err(); err != nil {
		metrics.FacetCacheErrorsTotal.Inc()
		f.log.Warn("deleting stale facet entries", "error", err)
	}
}

// invalidateAfter drops cached facets when a write succeeded.
func (f *FacetStore) invalidateAfter(ctx context.Context, err error) error {
	if err == nil {
		f.Invalidate(ctx)
	}
	return err
}

// CreateBrand inserts a brand and drops cached facets.
func (f *FacetStore) CreateBrand(ctx context.Context, b *domain.Brand) error {
	return f.invalidateAfter(ctx, f.Store.CreateBrand(ctx, b))
}

// UpdateBrand updates a brand and drops cached facets.
func (f *FacetStore) UpdateBrand(ctx context.Context, b *domain.Brand) error {
	return f.invalidateAfter(ctx, f.Store.UpdateBrand(ctx, b))
}

// DeleteBrand deletes a brand and drops cached facets.
func (f *FacetStore) DeleteBrand(ctx context.Context, id string) error {
	return f.invalidateAfter(ctx, f.Store.DeleteBrand(ctx, id))
}

// CreateCategory inserts a category and drops cached facets.
func (f *FacetStore) CreateCategory(ctx context.Context, c *domain.Category) error {
	return f.invalidateAfter(ctx, f.Store.CreateCategory(ctx, c))
}

// UpdateCategory updates a category and drops cached facets.
func (f *FacetStore) UpdateCategory(ctx context.Context, c *domain.Category) error {
	return f.invalidateAfter(ctx, f.Store.UpdateCategory(ctx, c))
}

// DeleteCategory deletes a category and drops cached facets.
func (f *FacetStore) DeleteCategory(ctx context.Context, id string) error {
	return f.invalidateAfter(ctx, f.Store.DeleteCategory(ctx, id))
}

// CreateProduct inserts a product and drops cached facets.
func (f *FacetStore) CreateProduct(ctx context.Context, p *domain.Product) error {
	return f.invalidateAfter(ctx, f.Store.CreateProduct(ctx, p))
}

// UpdateProduct updates a product and drops cached facets.
func (f *FacetStore) UpdateProduct(ctx context.Context, p *domain.Product) error {
	return f.invalidateAfter(ctx, f.Store.UpdateProduct(ctx, p))
}

// ToggleProductActive flips a product's active flag and drops cached
// facets.
func (f *FacetStore) ToggleProductActive(ctx context.Context, id string) (bool, error) {
	active, err := f.Store.ToggleProductActive(ctx, id)
	return active, f.invalidateAfter(ctx, err)
}
