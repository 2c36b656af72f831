package middleware

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestAPIKeyMiddleware(t *testing.T) {
	t.Parallel()

	h := APIKeyMiddleware("secret")(okHandler())

	cases := []struct {
		name string
		key  string
		want int
	}{
		{"missing", "", http.StatusUnauthorized},
		{"wrong", "nope", http.StatusUnauthorized},
		{"ok", "secret", http.StatusOK},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodPost, "/admin", nil)
			if tc.key != "" {
				req.Header.Set(APIKeyHeader, tc.key)
			}
			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, req)

			if rr.Code != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, rr.Code)
			}
		})
	}
}

func TestLimit_RejectsOverBurst(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := Limit(ctx, 0.001, 2, time.Minute, logger)(okHandler())

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.0.0.1:5000"
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		codes = append(codes, rr.Code)
	}
	if codes[0] != http.StatusOK || codes[1] != http.StatusOK || codes[2] != http.StatusTooManyRequests {
		t.Fatalf("unexpected codes: %v", codes)
	}

	// other clients have their own bucket
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.2:5000"
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 for another ip, got %d", rr.Code)
	}
}

func TestRateLimiter_Evict(t *testing.T) {
	t.Parallel()

	l := &rateLimiter{visitors: map[string]*visitor{}, limit: 1, burst: 1, ttl: time.Minute}
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	l.getVisitor("a", now.Add(-2*time.Minute))
	l.getVisitor("b", now)

	if n := l.evict(now); n != 1 {
		t.Fatalf("expected 1 eviction, got %d", n)
	}
	if _, ok := l.visitors["b"]; !ok {
		t.Fatalf("fresh visitor evicted")
	}
}

type bindReq struct {
	Name string `json:"name" validate:"required"`
}

func TestBindJSON(t *testing.T) {
	t.Parallel()

	h := BindJSON(func(w http.ResponseWriter, r *http.Request, req bindReq) {
		_, _ = io.WriteString(w, req.Name)
	})

	cases := []struct {
		name string
		body string
		want int
	}{
		{"ok", `{"name":"x"}`, http.StatusOK},
		{"malformed", `{"name":`, http.StatusBadRequest},
		{"unknown field", `{"name":"x","extra":1}`, http.StatusBadRequest},
		{"trailing data", `{"name":"x"} {}`, http.StatusBadRequest},
		{"fails validation", `{"name":""}`, http.StatusBadRequest},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tc.body)))
			if rr.Code != tc.want {
				t.Fatalf("expected %d, got %d (%s)", tc.want, rr.Code, rr.Body.String())
			}
			if tc.want == http.StatusOK && rr.Body.String() != "x" {
				t.Fatalf("handler got %q", rr.Body.String())
			}
		})
	}
}

func TestDecodeJSON_SkipsValidation(t *testing.T) {
	t.Parallel()

	called := false
	h := DecodeJSON(func(w http.ResponseWriter, r *http.Request, req bindReq) {
		called = true
		w.WriteHeader(http.StatusNoContent)
	})

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":""}`)))
	if rr.Code != http.StatusNoContent || !called {
		t.Fatalf("expected handler to run, got %d (%s)", rr.Code, rr.Body.String())
	}

	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":`)))
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed body, got %d", rr.Code)
	}
}
