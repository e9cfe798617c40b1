package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/tavaresm/garimpo/internal/domain/models"
)

const defaultActorBaseURL = "https://api.apify.com"

// VisualSearch is the actor-style visual search adapter. Unlike the other
// providers it is invoked with a JSON body against a run-sync endpoint that
// executes a hosted actor and returns its dataset. Actor runs are slow, so
// its timeout defaults to 30s instead of the 10s baseline. Optional: its
// failures degrade to an empty result set.
type VisualSearch struct {
	token   string
	actorID string
	baseURL string
	client  *http.Client
}

// NewVisualSearch builds the visual search adapter.
func NewVisualSearch(token, actorID string, timeout time.Duration) *VisualSearch {
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &VisualSearch{
		token:   token,
		actorID: actorID,
		baseURL: defaultActorBaseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

func (p *VisualSearch) Name() string { return models.ProviderVisualSearch }

func (p *VisualSearch) Critical() bool { return false }

// actorRequest is the run-sync invocation body.
type actorRequest struct {
	SearchTerm string `json:"searchTerm"`
}

// actorResponse matches the actor dataset structure.
type actorResponse struct {
	Items []actorItem `json:"items"`
}

type actorItem struct {
	Name     string     `json:"name"`
	Price    actorPrice `json:"price"`
	URL      string     `json:"url"`
	ImageURL string     `json:"imageUrl"`
}

type actorPrice struct {
	Amount   json.Number `json:"amount"`
	Currency string      `json:"currency"`
}

// Fetch runs the actor synchronously with the query as search term and maps
// the first limit dataset items.
func (p *VisualSearch) Fetch(ctx context.Context, query string, limit int) ([]models.Product, error) {
	reqURL := fmt.Sprintf("%s/v2/acts/%s/run-sync-get-dataset?token=%s",
		p.baseURL, p.actorID, url.QueryEscape(p.token))

	body, err := json.Marshal(actorRequest{SearchTerm: query})
	if err != nil {
		return nil, &ProviderError{Provider: p.Name(), Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(body))
	if err != nil {
		return nil, &ProviderError{Provider: p.Name(), Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, &ProviderError{Provider: p.Name(), Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &ProviderError{Provider: p.Name(), Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}

	var raw actorResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, &ProviderError{Provider: p.Name(), Err: fmt.Errorf("decode response: %w", err)}
	}

	items := raw.Items
	if len(items) > limit {
		items = items[:limit]
	}

	products := make([]models.Product, 0, len(items))
	for _, it := range items {
		products = append(products, models.Product{
			Title:    it.Name,
			Price:    it.Price.Amount.String(),
			Currency: it.Price.Currency,
			URL:      it.URL,
			Image:    it.ImageURL,
		})
	}
	return products, nil
}
