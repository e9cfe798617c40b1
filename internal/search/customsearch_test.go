package search

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/tavaresm/garimpo/internal/domain/models"
)

const webSearchFixture = `{
	"items": [
		{
			"title": "Tênis Casual Masculino",
			"link": "https://loja.example.com/p/1",
			"snippet": "Tênis casual em couro",
			"pagemap": {
				"offer": [{"price": "199.90", "pricecurrency": "BRL"}],
				"cse_image": [{"src": "https://loja.example.com/img/1.jpg"}]
			}
		},
		{
			"title": "Tênis Esportivo",
			"link": "https://loja.example.com/p/2",
			"snippet": "Para corrida",
			"pagemap": {
				"metatags": [{"og:price:amount": "249.90", "og:price:currency": "BRL"}]
			}
		},
		{
			"title": "Sem preço",
			"link": "https://loja.example.com/p/3",
			"pagemap": {}
		}
	]
}`

func TestWebSearch_Fetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("q") != "tênis masculino" {
			t.Errorf("q=%q", q.Get("q"))
		}
		if q.Get("key") != "test-key" || q.Get("cx") != "general-cx" {
			t.Errorf("credentials not forwarded: key=%q cx=%q", q.Get("key"), q.Get("cx"))
		}
		if q.Get("num") != "5" {
			t.Errorf("num=%q", q.Get("num"))
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(webSearchFixture))
	}))
	defer server.Close()

	p := NewGeneralSearch("test-key", "general-cx", 10*time.Second)
	p.baseURL = server.URL

	products, err := p.Fetch(context.Background(), "tênis masculino", 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(products) != 3 {
		t.Fatalf("expected 3 products, got %d", len(products))
	}

	first := products[0]
	if first.Title != "Tênis Casual Masculino" || first.URL != "https://loja.example.com/p/1" {
		t.Fatalf("unexpected first product: %+v", first)
	}
	if first.Price != "199.90" || first.Currency != "BRL" {
		t.Fatalf("offer extraction failed: %+v", first)
	}
	if first.Image != "https://loja.example.com/img/1.jpg" {
		t.Fatalf("image extraction failed: %+v", first)
	}

	if products[1].Price != "249.90" {
		t.Fatalf("metatag extraction failed: %+v", products[1])
	}
	if products[2].Price != "N/A" || products[2].Currency != "" {
		t.Fatalf("fallback price failed: %+v", products[2])
	}
}

func TestWebSearch_Truncation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"items":[
			{"title":"1"},{"title":"2"},{"title":"3"},
			{"title":"4"},{"title":"5"},{"title":"6"},{"title":"7"}
		]}`))
	}))
	defer server.Close()

	p := NewGeneralSearch("k", "cx", time.Second)
	p.baseURL = server.URL

	products, err := p.Fetch(context.Background(), "q", 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(products) != 5 {
		t.Fatalf("expected truncation to 5, got %d", len(products))
	}
	if products[0].Title != "1" || products[4].Title != "5" {
		t.Fatalf("provider order not preserved: %+v", products)
	}
}

func TestWebSearch_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	p := NewGeneralSearch("k", "cx", time.Second)
	p.baseURL = server.URL

	_, err := p.Fetch(context.Background(), "q", 5)
	if err == nil {
		t.Fatalf("expected error for non-200 status")
	}
	pe, ok := err.(*ProviderError)
	if !ok {
		t.Fatalf("expected *ProviderError, got %T", err)
	}
	if pe.Provider != models.ProviderShoppingGeneral {
		t.Fatalf("provider=%q", pe.Provider)
	}
}

func TestWebSearch_UnconfiguredVendorScope(t *testing.T) {
	p := NewVendorSearch(models.ProviderShoppingVendorA, "k", "", time.Second)

	products, err := p.Fetch(context.Background(), "q", 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if products == nil || len(products) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", products)
	}
	if p.Critical() {
		t.Fatalf("vendor scope must be optional")
	}
}

func TestWebSearch_Names(t *testing.T) {
	g := NewGeneralSearch("k", "cx", 0)
	if g.Name() != models.ProviderShoppingGeneral || !g.Critical() {
		t.Fatalf("general search misconfigured: %q critical=%v", g.Name(), g.Critical())
	}
	v := NewVendorSearch(models.ProviderShoppingVendorB, "k", "cx", 0)
	if v.Name() != models.ProviderShoppingVendorB || v.Critical() {
		t.Fatalf("vendor search misconfigured: %q critical=%v", v.Name(), v.Critical())
	}
}
