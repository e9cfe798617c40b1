package search

import (
	"context"

	"github.com/tavaresm/garimpo/internal/domain/models"
)

// DefaultLimit is the maximum number of results kept per provider.
const DefaultLimit = 5

// Provider is the contract every external product-search source implements,
// regardless of its actual transport.
//
// Fetch issues a single attempt against the provider with the caller's
// canonical query, truncates to the provider's first limit items (no
// re-ranking) and maps each raw item into models.Product. Per-item missing
// fields yield zero values, never item-level errors; transport and decode
// failures surface as *ProviderError.
//
// Critical tells the aggregator how to treat a Fetch failure: a critical
// (load-bearing) provider fails the whole aggregation call, an optional one
// degrades to an empty result set.
type Provider interface {
	Name() string
	Critical() bool
	Fetch(ctx context.Context, query string, limit int) ([]models.Product, error)
}
