package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/filadex/filadex/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		Primary: config.Primary{Env: "test"},
		Server: config.ServerConfig{
			Port:         "8080",
			ReadTimeout:  10,
			WriteTimeout: 10,
			IdleTimeout:  60,
		},
	}
}

func TestHealthRoute(t *testing.T) {
	s := New(testConfig(), nil, zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	rec := httptest.NewRecorder()
	s.Echo.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d", http.StatusOK, rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "healthy") {
		t.Fatalf("expected healthy status, got %s", rec.Body.String())
	}
}

func TestImportRoutesRegistered(t *testing.T) {
	s := New(testConfig(), nil, zerolog.Nop())

	for _, path := range []string{
		"/api/v1/import/vendors",
		"/api/v1/import/filaments",
		"/api/v1/import/spools",
	} {
		req := httptest.NewRequest(http.MethodPost, path, nil)
		rec := httptest.NewRecorder()
		s.Echo.ServeHTTP(rec, req)
		// no file attached: the route exists and rejects the request itself
		if rec.Code == http.StatusNotFound {
			t.Fatalf("route %s not registered", path)
		}
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected %d for %s, got %d", http.StatusBadRequest, path, rec.Code)
		}
	}
}
