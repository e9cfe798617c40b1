package search

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/tavaresm/garimpo/internal/domain/models"
)

const defaultMarketplaceBaseURL = "https://api.mercadolibre.com"

// Marketplace is the public marketplace search adapter. It needs no
// credentials, only a site code (e.g. "MLB"), and is load-bearing.
type Marketplace struct {
	site    string
	baseURL string
	client  *http.Client
}

// NewMarketplace builds the marketplace adapter for the given site code.
func NewMarketplace(site string, timeout time.Duration) *Marketplace {
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &Marketplace{
		site:    site,
		baseURL: defaultMarketplaceBaseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

func (p *Marketplace) Name() string { return models.ProviderMarketplace }

func (p *Marketplace) Critical() bool { return true }

// marketplaceResponse matches the marketplace search API response structure.
type marketplaceResponse struct {
	Results []marketplaceItem `json:"results"`
}

type marketplaceItem struct {
	Title     string      `json:"title"`
	Price     json.Number `json:"price"`
	Permalink string      `json:"permalink"`
	Thumbnail string      `json:"thumbnail"`
}

// Fetch queries the marketplace site search and maps the first limit results.
// The marketplace reports prices as numbers; they are carried over verbatim
// as strings.
func (p *Marketplace) Fetch(ctx context.Context, query string, limit int) ([]models.Product, error) {
	reqURL := p.baseURL + "/sites/" + p.site + "/search?q=" + EncodeQuery(query)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, &ProviderError{Provider: p.Name(), Err: err}
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, &ProviderError{Provider: p.Name(), Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, &ProviderError{Provider: p.Name(), Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}

	var raw marketplaceResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, &ProviderError{Provider: p.Name(), Err: fmt.Errorf("decode response: %w", err)}
	}

	items := raw.Results
	if len(items) > limit {
		items = items[:limit]
	}

	products := make([]models.Product, 0, len(items))
	for _, it := range items {
		products = append(products, models.Product{
			Title: it.Title,
			Price: it.Price.String(),
			URL:   it.Permalink,
			Image: it.Thumbnail,
		})
	}
	return products, nil
}
