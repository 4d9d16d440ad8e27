package querycache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"neuroclinic/internal/domain/entity"
	"neuroclinic/internal/observability/metrics"

	"github.com/cespare/xxhash/v2"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

var ErrUnexpectedResult = errors.New("cached result has unexpected type")

// Cache is a cache-aside layer for list queries. Concurrent reads of the same
// query share one load. Invalidating an entity bumps its generation, which is
// part of every key that depends on it, so loads started before the bump can
// only populate keys nobody reads anymore.
type Cache struct {
	store   Store
	group   singleflight.Group
	ttl     time.Duration
	prefix  string
	log     *logrus.Logger
	metrics *metrics.CacheMetrics
}

type Options struct {
	TTL    time.Duration
	Prefix string
}

func New(store Store, opts Options, log *logrus.Logger, m *metrics.CacheMetrics) *Cache {
	if opts.Prefix == "" {
		opts.Prefix = "neuroclinic"
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Cache{
		store:   store,
		ttl:     opts.TTL,
		prefix:  opts.Prefix,
		log:     log,
		metrics: m,
	}
}

func (c *Cache) generationKey(t entity.Type) string {
	return c.prefix + ":gen:" + string(t)
}

// Key returns the storage key for query under the current generations.
func (c *Cache) Key(ctx context.Context, query entity.ListQuery) (string, error) {
	deps := query.Dependencies()
	gens := make([]string, 0, len(deps))
	for _, dep := range deps {
		gen, err := c.store.Generation(ctx, c.generationKey(dep))
		if err != nil {
			return "", fmt.Errorf("generation of %s: %w", dep, err)
		}
		gens = append(gens, strconv.FormatInt(gen, 10))
	}
	return fmt.Sprintf("%s:list:%s:g%s:%016x",
		c.prefix, query.Entity, strings.Join(gens, "."), xxhash.Sum64String(query.Key())), nil
}

// Invalidate marks every cached list depending on the given types as stale.
func (c *Cache) Invalidate(ctx context.Context, types ...entity.Type) error {
	var errs []error
	for _, t := range types {
		if _, err := c.store.Bump(ctx, c.generationKey(t)); err != nil {
			errs = append(errs, fmt.Errorf("invalidate %s: %w", t, err))
			continue
		}
		c.metrics.ObserveInvalidation(string(t))
	}
	return errors.Join(errs...)
}

// Fetch returns the rows for query, loading them at most once per key for
// all concurrent callers. A caller whose ctx ends stops waiting; the shared
// load keeps running for the others and still fills the cache. Load errors
// are returned as-is and never cached.
func Fetch[T any](ctx context.Context, c *Cache, query entity.ListQuery, load func(context.Context) ([]T, error)) ([]T, error) {
	entityName := string(query.Entity)
	logger := c.log.WithField("entity", entityName)

	key, err := c.Key(ctx, query)
	if err != nil {
		logger.WithError(err).Warn("Failed to compute cache key, loading without cache")
		c.metrics.ObserveRequest(entityName, "error")
		return load(ctx)
	}

	raw, found, err := c.store.Get(ctx, key)
	switch {
	case err != nil:
		logger.WithError(err).Warn("Failed to read cache")
		c.metrics.ObserveRequest(entityName, "error")
	case found:
		var rows []T
		if err := json.Unmarshal(raw, &rows); err == nil {
			c.metrics.ObserveRequest(entityName, "hit")
			if rows == nil {
				rows = []T{}
			}
			return rows, nil
		}
		logger.WithError(err).Warn("Failed to decode cached rows")
	default:
		c.metrics.ObserveRequest(entityName, "miss")
	}

	ch := c.group.DoChan(key, func() (any, error) {
		loadCtx := context.WithoutCancel(ctx)
		start := time.Now()
		rows, err := load(loadCtx)
		c.metrics.ObserveLoad(entityName, time.Since(start).Seconds())
		if err != nil {
			return nil, err
		}
		if rows == nil {
			rows = []T{}
		}

		encoded, err := json.Marshal(rows)
		if err != nil {
			logger.WithError(err).Warn("Failed to encode rows for cache")
			return rows, nil
		}
		if err := c.store.Set(loadCtx, key, encoded, c.ttl); err != nil {
			logger.WithError(err).Warn("Failed to write cache")
		}
		return rows, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		rows, ok := res.Val.([]T)
		if !ok {
			return nil, fmt.Errorf("%w: %T", ErrUnexpectedResult, res.Val)
		}
		out := make([]T, len(rows))
		copy(out, rows)
		return out, nil
	}
}
