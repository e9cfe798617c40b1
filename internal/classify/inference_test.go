package classify

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestInferenceClient_Available(t *testing.T) {
	if NewInferenceClient("", "", 0).Available() {
		t.Fatalf("empty url must be unavailable")
	}
	if !NewInferenceClient("http://model.example.com", "", 0).Available() {
		t.Fatalf("configured url must be available")
	}
}

func TestInferenceClient_Classify(t *testing.T) {
	image := []byte{0xFF, 0xD8, 0xFF} // jpeg magic

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method=%q", r.Method)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer tok" {
			t.Errorf("authorization=%q", got)
		}
		body, _ := io.ReadAll(r.Body)
		if !bytes.Equal(body, image) {
			t.Errorf("image bytes not forwarded verbatim")
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"label":"boot","score":0.40},
			{"label":"sneaker","score":0.93},
			{"label":"sandal","score":0.05}
		]`))
	}))
	defer server.Close()

	c := NewInferenceClient(server.URL, "tok", 5*time.Second)
	label, err := c.Classify(context.Background(), image)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if label.Name != "sneaker" || label.Confidence != 0.93 {
		t.Fatalf("expected top-scoring prediction, got %+v", label)
	}
}

func TestInferenceClient_Errors(t *testing.T) {
	cases := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "non-200 status",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusServiceUnavailable)
			},
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{not json`))
			},
		},
		{
			name: "no predictions",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`[]`))
			},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(tc.handler)
			defer server.Close()
			c := NewInferenceClient(server.URL, "", time.Second)
			if _, err := c.Classify(context.Background(), []byte("img")); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestInferenceClient_Unconfigured(t *testing.T) {
	c := NewInferenceClient("", "", 0)
	if _, err := c.Classify(context.Background(), []byte("img")); err == nil {
		t.Fatalf("expected error when unconfigured")
	}
}
