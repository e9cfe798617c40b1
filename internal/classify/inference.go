package classify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// InferenceClient calls a hosted pretrained-model inference endpoint with
// the raw image bytes and picks the top-scoring prediction.
type InferenceClient struct {
	url    string
	token  string
	client *http.Client
}

// NewInferenceClient builds the client. An empty url leaves the capability
// unavailable, which the HTTP layer reports as such.
func NewInferenceClient(url, token string, timeout time.Duration) *InferenceClient {
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &InferenceClient{
		url:    url,
		token:  token,
		client: &http.Client{Timeout: timeout},
	}
}

// Available reports whether an inference endpoint is configured.
func (c *InferenceClient) Available() bool {
	return c.url != ""
}

// prediction matches one entry of the inference response array.
type prediction struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// Classify posts the image to the inference endpoint and returns the
// prediction with the highest score.
func (c *InferenceClient) Classify(ctx context.Context, image []byte) (Label, error) {
	if !c.Available() {
		return Label{}, fmt.Errorf("inference endpoint not configured")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(image))
	if err != nil {
		return Label{}, err
	}
	req.Header.Set("Content-Type", "application/octet-stream")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return Label{}, fmt.Errorf("inference request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return Label{}, fmt.Errorf("inference returned status %d", resp.StatusCode)
	}

	var preds []prediction
	if err := json.NewDecoder(resp.Body).Decode(&preds); err != nil {
		return Label{}, fmt.Errorf("decode inference response: %w", err)
	}
	if len(preds) == 0 {
		return Label{}, fmt.Errorf("inference returned no predictions")
	}

	top := preds[0]
	for _, p := range preds[1:] {
		if p.Score > top.Score {
			top = p
		}
	}
	return Label{Name: top.Label, Confidence: top.Score}, nil
}
