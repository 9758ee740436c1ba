package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"glamhaven/pkg/middleware"
	"glamhaven/pkg/utils"

	"go.uber.org/zap"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRateLimitPerIP(t *testing.T) {
	rl := middleware.NewRateLimiter(1, 2)
	handler := middleware.RateLimit(rl)(okHandler())

	send := func(addr string) int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = addr
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	if code := send("10.0.0.1:1000"); code != http.StatusOK {
		t.Fatalf("first request: expected 200, got %d", code)
	}
	if code := send("10.0.0.1:1000"); code != http.StatusOK {
		t.Fatalf("second request: expected 200, got %d", code)
	}
	if code := send("10.0.0.1:1000"); code != http.StatusTooManyRequests {
		t.Errorf("third request: expected 429, got %d", code)
	}

	// Other clients keep their own bucket.
	if code := send("10.0.0.2:1000"); code != http.StatusOK {
		t.Errorf("other ip: expected 200, got %d", code)
	}
}

func TestAdminGuard(t *testing.T) {
	handler := middleware.Admin(zap.NewNop())(okHandler())

	send := func(role string) int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if role != "" {
			req = req.WithContext(utils.SetUserContext(req.Context(), 1, role))
		}
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	if code := send(""); code != http.StatusUnauthorized {
		t.Errorf("no identity: expected 401, got %d", code)
	}
	if code := send("customer"); code != http.StatusForbidden {
		t.Errorf("customer: expected 403, got %d", code)
	}
	if code := send("admin"); code != http.StatusOK {
		t.Errorf("admin: expected 200, got %d", code)
	}
}
