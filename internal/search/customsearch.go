package search

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/tavaresm/garimpo/internal/domain/models"
)

const defaultWebSearchBaseURL = "https://www.googleapis.com/customsearch/v1"

// WebSearch is a custom-web-search adapter. One instance serves the general
// shopping search (load-bearing) and one per vendor-restricted scope
// (optional enrichments); they differ only in name, criticality and the
// scope identifier (cx).
type WebSearch struct {
	name     string
	critical bool
	apiKey   string
	cx       string
	baseURL  string
	client   *http.Client
}

// NewGeneralSearch builds the load-bearing general shopping search adapter.
func NewGeneralSearch(apiKey, cx string, timeout time.Duration) *WebSearch {
	return newWebSearch(models.ProviderShoppingGeneral, true, apiKey, cx, timeout)
}

// NewVendorSearch builds an optional vendor-scoped search adapter. An empty
// cx leaves the adapter enabled but always returning an empty result set.
func NewVendorSearch(name, apiKey, cx string, timeout time.Duration) *WebSearch {
	return newWebSearch(name, false, apiKey, cx, timeout)
}

func newWebSearch(name string, critical bool, apiKey, cx string, timeout time.Duration) *WebSearch {
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &WebSearch{
		name:     name,
		critical: critical,
		apiKey:   apiKey,
		cx:       cx,
		baseURL:  defaultWebSearchBaseURL,
		client:   &http.Client{Timeout: timeout},
	}
}

func (p *WebSearch) Name() string { return p.name }

func (p *WebSearch) Critical() bool { return p.critical }

// webSearchResponse matches the custom search API response structure.
type webSearchResponse struct {
	Items []webSearchItem `json:"items"`
}

type webSearchItem struct {
	Title   string  `json:"title"`
	Link    string  `json:"link"`
	Snippet string  `json:"snippet"`
	Pagemap pagemap `json:"pagemap"`
}

// Fetch queries the custom search API and normalizes the first limit items.
// Price, currency and image come from the pagemap heuristic (extractOffer,
// extractImage); the API has no clean product fields.
func (p *WebSearch) Fetch(ctx context.Context, query string, limit int) ([]models.Product, error) {
	if p.cx == "" {
		// unconfigured vendor scope
		return []models.Product{}, nil
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("key", p.apiKey)
	params.Set("cx", p.cx)
	params.Set("num", strconv.Itoa(limit))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, &ProviderError{Provider: p.name, Err: err}
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, &ProviderError{Provider: p.name, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, &ProviderError{Provider: p.name, Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}

	var raw webSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, &ProviderError{Provider: p.name, Err: fmt.Errorf("decode response: %w", err)}
	}

	items := raw.Items
	if len(items) > limit {
		items = items[:limit]
	}

	products := make([]models.Product, 0, len(items))
	for _, it := range items {
		price, currency := extractOffer(it.Pagemap)
		products = append(products, models.Product{
			Title:    it.Title,
			URL:      it.Link,
			Snippet:  it.Snippet,
			Price:    price,
			Currency: currency,
			Image:    extractImage(it.Pagemap),
		})
	}
	return products, nil
}
