package search

// Price/currency/image extraction for providers that return semi-structured
// page metadata ("pagemap") instead of a clean product API. Retailers embed
// structured product data inconsistently, so extraction is an ordered
// fallback chain; the priority order is part of the output contract and must
// not be reordered.

// priceUnknown is the literal price reported when no structure yields one.
const priceUnknown = "N/A"

// pagemap holds the structured page metadata of a single search result.
// Entries decode as raw string maps so provider-specific key casings survive.
type pagemap struct {
	Offer    []map[string]string `json:"offer"`
	Product  []map[string]string `json:"product"`
	Metatags []map[string]string `json:"metatags"`
	CSEImage []map[string]string `json:"cse_image"`
}

// extractOffer resolves price and currency from a pagemap. Priority, first
// matching structure wins:
//
//  1. offer[0]: price; currency under "pricecurrency" or "priceCurrency".
//  2. product[0]: same fields.
//  3. metatags[0]: "product:price:amount" falling back to "og:price:amount";
//     currency "product:price:currency" falling back to "og:price:currency".
//
// When no structure is present, or the chosen structure carries no price,
// price is the literal "N/A" and currency is empty.
func extractOffer(pm pagemap) (price, currency string) {
	switch {
	case len(pm.Offer) > 0:
		price, currency = entryPrice(pm.Offer[0])
	case len(pm.Product) > 0:
		price, currency = entryPrice(pm.Product[0])
	case len(pm.Metatags) > 0:
		mt := pm.Metatags[0]
		price = firstOf(mt, "product:price:amount", "og:price:amount")
		currency = firstOf(mt, "product:price:currency", "og:price:currency")
	}
	if price == "" {
		price = priceUnknown
	}
	return price, currency
}

// extractImage resolves the content image source URL, independent of the
// price chain. Empty when the pagemap has no cse_image entry.
func extractImage(pm pagemap) string {
	if len(pm.CSEImage) > 0 {
		return pm.CSEImage[0]["src"]
	}
	return ""
}

// entryPrice reads price and currency from an offer- or product-style entry.
// The currency key appears in the wild under two casings.
func entryPrice(entry map[string]string) (price, currency string) {
	price = entry["price"]
	currency = firstOf(entry, "pricecurrency", "priceCurrency")
	return price, currency
}

func firstOf(m map[string]string, keys ...string) string {
	for _, k := range keys {
		if v, ok := m[k]; ok && v != "" {
			return v
		}
	}
	return ""
}
