package models

// Provider keys of the combined response. The set is fixed: every key is
// present in every Catalog, a failed or empty optional provider maps to an
// empty slice rather than a missing key.
const (
	ProviderMarketplace     = "marketplace"
	ProviderShoppingGeneral = "shopping_general"
	ProviderShoppingVendorA = "shopping_vendor_a"
	ProviderShoppingVendorB = "shopping_vendor_b"
	ProviderVisualSearch    = "visual_search"
)

// ProviderNames lists all response keys in a stable order.
var ProviderNames = []string{
	ProviderMarketplace,
	ProviderShoppingGeneral,
	ProviderShoppingVendorA,
	ProviderShoppingVendorB,
	ProviderVisualSearch,
}

// Catalog is the combined aggregation response: provider name to its
// (at most 5) results, order preserved from the provider's own ranking.
type Catalog map[string][]Product

// NewCatalog returns a Catalog with every provider key present and empty.
func NewCatalog() Catalog {
	c := make(Catalog, len(ProviderNames))
	for _, name := range ProviderNames {
		c[name] = []Product{}
	}
	return c
}
