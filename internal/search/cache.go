package search

import (
	"sync"

	"github.com/tavaresm/garimpo/internal/domain/models"
)

// QueryCache maps canonical query strings to previously assembled catalogs.
// No eviction and no TTL: upstream providers are rate-limited and the daily
// quota makes repeat fan-outs expensive, so unconditional reuse was preferred
// over freshness. Unbounded growth over the process lifetime is the accepted
// tradeoff.
type QueryCache struct {
	mu      sync.RWMutex
	entries map[string]models.Catalog
	hits    uint64
	misses  uint64
}

// CacheStats reports cache performance counters.
type CacheStats struct {
	Entries int    `json:"entries"`
	Hits    uint64 `json:"hits"`
	Misses  uint64 `json:"misses"`
}

// NewQueryCache builds an empty cache.
func NewQueryCache() *QueryCache {
	return &QueryCache{entries: make(map[string]models.Catalog)}
}

// Get returns the catalog stored under key, if any.
func (c *QueryCache) Get(key string) (models.Catalog, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	catalog, ok := c.entries[key]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return catalog, ok
}

// Put stores a catalog under key, replacing any previous entry.
func (c *QueryCache) Put(key string, catalog models.Catalog) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = catalog
}

// Stats returns a snapshot of the cache counters.
func (c *QueryCache) Stats() CacheStats {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return CacheStats{Entries: len(c.entries), Hits: c.hits, Misses: c.misses}
}
