package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
}

func requestFrom(ip string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/contatos", nil)
	req.RemoteAddr = ip + ":54321"
	return req
}

func TestRateLimiter_BlocksAfterBurst(t *testing.T) {
	rl := NewRateLimiter(1, 2)
	h := rl.Middleware(okHandler())

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, requestFrom("10.0.0.1"))
		assert.Equal(t, http.StatusNoContent, w.Code)
	}

	w := httptest.NewRecorder()
	h.ServeHTTP(w, requestFrom("10.0.0.1"))

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "1", w.Header().Get("Retry-After"))
	assert.Contains(t, w.Body.String(), "RATE_LIMITED")
}

func TestRateLimiter_KeysByIP(t *testing.T) {
	rl := NewRateLimiter(1, 1)
	h := rl.Middleware(okHandler())

	w1 := httptest.NewRecorder()
	h.ServeHTTP(w1, requestFrom("10.0.0.1"))
	w2 := httptest.NewRecorder()
	h.ServeHTTP(w2, requestFrom("10.0.0.2"))

	assert.Equal(t, http.StatusNoContent, w1.Code)
	assert.Equal(t, http.StatusNoContent, w2.Code)
}

func TestRateLimiter_CleanupDropsIdleVisitors(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(5, 5)
	rl.now = func() time.Time { return now }

	rl.limiter("10.0.0.1")
	now = now.Add(11 * time.Minute)
	rl.limiter("10.0.0.2")
	rl.Cleanup()

	assert.NotContains(t, rl.visitors, "10.0.0.1")
	assert.Contains(t, rl.visitors, "10.0.0.2")
}

func TestMetrics_PassesThroughStatus(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Metrics)
	r.Get("/api/v1/contatos/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/contatos/99", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRoutePattern_Unmatched(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/qualquer", nil)
	assert.Equal(t, "unmatched", routePattern(req))
}

func TestClientIP_IgnoresForwardedFor(t *testing.T) {
	req := requestFrom("10.0.0.9")
	req.Header.Set("X-Forwarded-For", "200.1.1.1, 10.0.0.1")

	assert.Equal(t, "10.0.0.9", clientIP(req))
	assert.Equal(t, "10.0.0.9", clientIP(requestFrom("10.0.0.9")))
}

func TestRateLimiter_RotatingForwardedForDoesNotResetBucket(t *testing.T) {
	rl := NewRateLimiter(1, 1)
	h := rl.Middleware(okHandler())

	first := requestFrom("10.0.0.5")
	first.Header.Set("X-Forwarded-For", "1.1.1.1")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, first)
	assert.Equal(t, http.StatusNoContent, w.Code)

	second := requestFrom("10.0.0.5")
	second.Header.Set("X-Forwarded-For", "2.2.2.2")
	w = httptest.NewRecorder()
	h.ServeHTTP(w, second)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}
