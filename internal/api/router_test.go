package api

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cityDesk/internal/api/handlers/http/admin"
	"cityDesk/internal/api/handlers/http/dashboard"
	"cityDesk/internal/api/handlers/http/system"
	"cityDesk/internal/config"
	"cityDesk/internal/middleware"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	logger := slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
	cfg := &config.Config{
		APIKey: "secret",
		Http: config.HttpConfig{
			AllowedOrigins: []string{"http://localhost:5173"},
			AdminRPS:       100,
			AdminBurst:     100,
			PublicRPS:      100,
			PublicBurst:    100,
		},
	}

	return InitRouter(ctx, cfg,
		admin.NewHandler(logger, nil, nil),
		dashboard.NewHandler(logger, nil, nil),
		system.NewHandler(logger, nil),
		logger,
	)
}

func TestRouter_Health(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	newTestRouter(t).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d", http.StatusOK, rr.Code)
	}
}

func TestRouter_AdminRequiresAPIKey(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	cases := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/v1/admin/issues"},
		{http.MethodPatch, "/api/v1/admin/issues/0b9c1c1e-8a43-4f0e-9f55-5a1d3c1b2a10/status"},
		{http.MethodPut, "/api/v1/admin/users/0b9c1c1e-8a43-4f0e-9f55-5a1d3c1b2a10/areas"},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(tc.method, tc.path, strings.NewReader(`{}`))
		req.Header.Set(middleware.APIKeyHeader, "wrong")
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		if rr.Code != http.StatusUnauthorized {
			t.Fatalf("%s %s: expected %d got %d", tc.method, tc.path, http.StatusUnauthorized, rr.Code)
		}
	}
}

func TestRouter_AdminBindingRunsAfterAuth(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/issues", strings.NewReader(`{"title":""}`))
	req.Header.Set(middleware.APIKeyHeader, "secret")
	rr := httptest.NewRecorder()

	newTestRouter(t).ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d, body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}
}

func TestRouter_InvalidUserID(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	newTestRouter(t).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/users/nope/issues", nil))

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d", http.StatusBadRequest, rr.Code)
	}
}

func TestRouter_CORSPreflight(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/areas", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rr := httptest.NewRecorder()

	newTestRouter(t).ServeHTTP(rr, req)

	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Fatalf("unexpected allow-origin %q", got)
	}
}

func TestRouter_UnknownRoute(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	newTestRouter(t).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/incidents", nil))

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected %d got %d", http.StatusNotFound, rr.Code)
	}
}
