package search

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/tavaresm/garimpo/internal/domain/dto"
	"github.com/tavaresm/garimpo/internal/domain/models"
	"github.com/tavaresm/garimpo/internal/logger"
)

// Aggregator orchestrates the whole search pipeline: filter validation,
// quota admission, cache lookup, concurrent provider fan-out and cache fill.
// It owns the process-wide cache and quota state; nothing else touches them.
type Aggregator struct {
	providers []Provider
	cache     *QueryCache
	quota     *QuotaGuard
	limit     int
	flight    singleflight.Group
}

// NewAggregator wires providers with the shared cache and quota guard.
func NewAggregator(providers []Provider, cache *QueryCache, quota *QuotaGuard) *Aggregator {
	return &Aggregator{
		providers: providers,
		cache:     cache,
		quota:     quota,
		limit:     DefaultLimit,
	}
}

// Search runs one aggregation call for the given filter.
//
// Pipeline: BuildQuery (ErrInvalidFilter before any quota or network
// activity) → quota Admit (ErrQuotaExceeded; cache hits still spend quota) →
// cache lookup → provider fan-out → cache fill. Concurrent calls with the
// same canonical query collapse into one fan-out via singleflight, so the
// cache is never populated twice for one key.
//
// A failing optional provider degrades to an empty result set; a failing
// load-bearing provider fails the whole call and nothing is cached.
func (a *Aggregator) Search(ctx context.Context, filter dto.SearchRequest) (models.Catalog, error) {
	query, err := BuildQuery(filter)
	if err != nil {
		return nil, err
	}

	if err := a.quota.Admit(); err != nil {
		logger.L().Warn().Str("query", query).Msg("quota rejected")
		return nil, err
	}

	if catalog, ok := a.cache.Get(query); ok {
		logger.L().Debug().Str("query", query).Msg("cache hit")
		return catalog, nil
	}

	v, err, _ := a.flight.Do(query, func() (interface{}, error) {
		// a sibling flight may have filled the cache between our lookup
		// and joining the flight
		if catalog, ok := a.cache.Get(query); ok {
			return catalog, nil
		}
		catalog, err := a.fanOut(ctx, query)
		if err != nil {
			return nil, err
		}
		a.cache.Put(query, catalog)
		return catalog, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(models.Catalog), nil
}

// fanOut queries every provider concurrently and assembles the catalog.
// Combined latency is bounded by the slowest adapter; each adapter carries
// its own timeout. One attempt per provider, no retries.
func (a *Aggregator) fanOut(ctx context.Context, query string) (models.Catalog, error) {
	catalog := models.NewCatalog()
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	for _, p := range a.providers {
		g.Go(func() error {
			start := time.Now()
			items, err := p.Fetch(gctx, query, a.limit)
			if err != nil {
				if p.Critical() {
					logger.L().Error().Str("provider", p.Name()).Err(err).Msg("load-bearing provider failed")
					return err
				}
				logger.L().Warn().Str("provider", p.Name()).Err(err).Msg("optional provider failed")
				return nil
			}

			logger.L().Debug().
				Str("provider", p.Name()).
				Int("results", len(items)).
				Dur("elapsed", time.Since(start)).
				Msg("provider done")

			if items == nil {
				items = []models.Product{}
			}
			mu.Lock()
			catalog[p.Name()] = items
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return catalog, nil
}

// CacheStats exposes cache counters for diagnostics.
func (a *Aggregator) CacheStats() CacheStats {
	return a.cache.Stats()
}
