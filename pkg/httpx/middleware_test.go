package httpx

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func appendMiddleware(tag string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Add("X-Trace", tag)
			next.ServeHTTP(w, r)
		})
	}
}

func TestChainAppliesInDeclarationOrder(t *testing.T) {
	t.Parallel()

	handler := Chain(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}),
		appendMiddleware("outer"),
		appendMiddleware("inner"),
	)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Equal(t, []string{"outer", "inner"}, rec.Header().Values("X-Trace"))
}

func TestIPKeyExtractor(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.9:1234"
	require.Equal(t, "10.0.0.9", IPKeyExtractor(req))

	req.Header.Set("X-Real-IP", "203.0.113.7")
	require.Equal(t, "203.0.113.7", IPKeyExtractor(req))

	// X-Forwarded-For wins, first hop only.
	req.Header.Set("X-Forwarded-For", "198.51.100.1, 10.0.0.1")
	require.Equal(t, "198.51.100.1", IPKeyExtractor(req))
}

func TestRateLimitMiddleware(t *testing.T) {
	t.Parallel()

	limited := RateLimitMiddleware(RateLimitConfig{
		RequestsPerWindow: 2,
		Window:            time.Minute,
		Burst:             2,
	}, IPKeyExtractor)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	send := func(ip string) int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = ip + ":1234"
		rec := httptest.NewRecorder()
		limited.ServeHTTP(rec, req)
		return rec.Code
	}

	require.Equal(t, http.StatusOK, send("10.0.0.1"))
	require.Equal(t, http.StatusOK, send("10.0.0.1"))
	require.Equal(t, http.StatusTooManyRequests, send("10.0.0.1"))

	// Buckets are per key.
	require.Equal(t, http.StatusOK, send("10.0.0.2"))
}
