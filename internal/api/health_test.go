package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestHealthEndpoints(t *testing.T) {
	cases := []struct {
		name       string
		ready      func() error
		path       string
		wantStatus int
	}{
		{name: "healthz always ok", ready: nil, path: "/healthz", wantStatus: 200},
		{name: "readyz ok", ready: func() error { return nil }, path: "/readyz", wantStatus: 200},
		{name: "readyz degraded", ready: func() error { return errors.New("no credentials") }, path: "/readyz", wantStatus: 503},
		{name: "readyz nil check ok", ready: nil, path: "/readyz", wantStatus: 200},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gin.SetMode(gin.TestMode)
			r := gin.New()
			NewHealthHandler(tc.ready).Register(r)

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tc.path, nil))
			if w.Code != tc.wantStatus {
				t.Fatalf("expected %d, got %d", tc.wantStatus, w.Code)
			}
		})
	}
}
