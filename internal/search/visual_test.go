package search

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/tavaresm/garimpo/internal/domain/models"
)

func TestVisualSearch_Fetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method=%q", r.Method)
		}
		if r.URL.Path != "/v2/acts/some~actor/run-sync-get-dataset" {
			t.Errorf("path=%q", r.URL.Path)
		}
		if got := r.URL.Query().Get("token"); got != "secret-token" {
			t.Errorf("token=%q", got)
		}

		var body actorRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode body: %v", err)
		}
		if body.SearchTerm != "vestido floral" {
			t.Errorf("searchTerm=%q", body.SearchTerm)
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"items":[
			{"name":"Vestido Floral","price":{"amount":"89.00","currency":"USD"},"url":"https://v.example.com/1","imageUrl":"https://v.example.com/1.jpg"},
			{"name":"Vestido Liso","price":{"amount":59.9,"currency":"USD"},"url":"https://v.example.com/2","imageUrl":"https://v.example.com/2.jpg"}
		]}`))
	}))
	defer server.Close()

	p := NewVisualSearch("secret-token", "some~actor", 5*time.Second)
	p.baseURL = server.URL

	products, err := p.Fetch(context.Background(), "vestido floral", 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("expected 2 products, got %d", len(products))
	}
	if products[0].Title != "Vestido Floral" || products[0].Price != "89.00" || products[0].Currency != "USD" {
		t.Fatalf("unexpected first product: %+v", products[0])
	}
	if products[0].URL != "https://v.example.com/1" || products[0].Image != "https://v.example.com/1.jpg" {
		t.Fatalf("url/image mapping failed: %+v", products[0])
	}
	// numeric amounts are carried verbatim too
	if products[1].Price != "59.9" {
		t.Fatalf("numeric price mapping failed: %+v", products[1])
	}
}

func TestVisualSearch_Truncation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"items":[
			{"name":"1"},{"name":"2"},{"name":"3"},
			{"name":"4"},{"name":"5"},{"name":"6"}
		]}`))
	}))
	defer server.Close()

	p := NewVisualSearch("t", "a", time.Second)
	p.baseURL = server.URL

	products, err := p.Fetch(context.Background(), "q", 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(products) != 5 {
		t.Fatalf("expected 5 products, got %d", len(products))
	}
}

func TestVisualSearch_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	p := NewVisualSearch("t", "a", time.Second)
	p.baseURL = server.URL

	_, err := p.Fetch(context.Background(), "q", 5)
	if err == nil {
		t.Fatalf("expected error for non-2xx status")
	}
	pe, ok := err.(*ProviderError)
	if !ok || pe.Provider != models.ProviderVisualSearch {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestVisualSearch_Identity(t *testing.T) {
	p := NewVisualSearch("t", "a", 0)
	if p.Name() != models.ProviderVisualSearch {
		t.Fatalf("name=%q", p.Name())
	}
	if p.Critical() {
		t.Fatalf("visual search must be optional")
	}
	if p.client.Timeout != 30*time.Second {
		t.Fatalf("default timeout=%v, want 30s", p.client.Timeout)
	}
}
