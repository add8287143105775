// AngelaMos | 2026
// ratelimit_test.go

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func hit(h http.Handler, remoteAddr string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/jwt", nil)
	req.RemoteAddr = remoteAddr
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRateLimiterRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	rl := NewRateLimiter(client, RateLimitConfig{
		Name:  "token",
		Limit: PerWindow(2, 2, time.Minute),
	})
	t.Cleanup(rl.Close)
	h := rl.Handler(http.HandlerFunc(okHandler))

	first := hit(h, "10.0.0.1:5000")
	require.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, "2", first.Header().Get("X-RateLimit-Limit"))

	require.Equal(t, http.StatusOK, hit(h, "10.0.0.1:5000").Code)

	limited := hit(h, "10.0.0.1:5000")
	require.Equal(t, http.StatusTooManyRequests, limited.Code)
	assert.NotEmpty(t, limited.Header().Get("Retry-After"))
	assert.Contains(t, limited.Body.String(), "RATE_LIMITED")

	assert.Equal(t, http.StatusOK, hit(h, "10.0.0.2:5000").Code)
	assert.NotEmpty(t, mr.Keys())
}

func TestRateLimiterFallsBackWhenRedisDown(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{
		Addr:       mr.Addr(),
		MaxRetries: -1,
	})
	t.Cleanup(func() { _ = client.Close() })
	mr.Close()

	rl := NewRateLimiter(client, RateLimitConfig{
		Limit: PerWindow(1, 1, time.Minute),
	})
	t.Cleanup(rl.Close)
	h := rl.Handler(http.HandlerFunc(okHandler))

	assert.Equal(t, http.StatusOK, hit(h, "10.0.0.1:5000").Code)
	assert.Equal(t, http.StatusTooManyRequests, hit(h, "10.0.0.1:5000").Code)
}

func TestRateLimiterInvalidLimit(t *testing.T) {
	closed := NewRateLimiter(nil, RateLimitConfig{Limit: PerWindow(0, 0, time.Minute)})
	t.Cleanup(closed.Close)
	assert.Equal(t, http.StatusServiceUnavailable,
		hit(closed.Handler(http.HandlerFunc(okHandler)), "10.0.0.1:5000").Code)

	open := NewRateLimiter(nil, RateLimitConfig{
		Limit:    PerWindow(0, 0, time.Minute),
		FailOpen: true,
	})
	t.Cleanup(open.Close)
	assert.Equal(t, http.StatusOK,
		hit(open.Handler(http.HandlerFunc(okHandler)), "10.0.0.1:5000").Code)
}

func TestKeyByIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.0.2.7:4411"
	assert.Equal(t, "ip:192.0.2.7", KeyByIP(req))

	req.Header.Set("X-Forwarded-For", "198.51.100.1, 203.0.113.9")
	assert.Equal(t, "ip:203.0.113.9", KeyByIP(req))
}
