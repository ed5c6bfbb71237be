package httpx

import (
	"net"
	"net/http"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/keyfold/authd/pkg/slogx"
)

// RateLimitConfig defines the rate limiting parameters for a route.
type RateLimitConfig struct {
	// RequestsPerWindow is the number of requests allowed in the window.
	RequestsPerWindow int
	// Window is the time window for rate limiting.
	Window time.Duration
	// Burst allows temporary bursts above the steady rate.
	Burst int
}

// Rate limit profiles for different endpoint types. Overridable via
// RATELIMIT_{STRICT,MODERATE,PUBLIC}_{REQUESTS,WINDOW_SEC,BURST}.
var (
	// StrictLimit for credential endpoints (brute force prevention).
	StrictLimit = RateLimitConfig{
		RequestsPerWindow: 5,
		Window:            time.Minute,
		Burst:             5,
	}

	// ModerateLimit for token verification/refresh traffic.
	ModerateLimit = RateLimitConfig{
		RequestsPerWindow: 20,
		Window:            time.Minute,
		Burst:             20,
	}

	// PublicLimit for public read-only endpoints like health probes.
	PublicLimit = RateLimitConfig{
		RequestsPerWindow: 1000,
		Window:            time.Minute,
		Burst:             1000,
	}
)

func init() {
	StrictLimit = ParseRateLimitFromEnv("STRICT", StrictLimit)
	ModerateLimit = ParseRateLimitFromEnv("MODERATE", ModerateLimit)
	PublicLimit = ParseRateLimitFromEnv("PUBLIC", PublicLimit)
}

// ParseRateLimitFromEnv reads rate limit overrides from environment
// variables following the pattern RATELIMIT_{prefix}_{field}.
func ParseRateLimitFromEnv(prefix string, defaults RateLimitConfig) RateLimitConfig {
	config := defaults

	if val := os.Getenv("RATELIMIT_" + prefix + "_REQUESTS"); val != "" {
		if n, err := strconv.Atoi(val); err == nil && n > 0 {
			config.RequestsPerWindow = n
		}
	}
	if val := os.Getenv("RATELIMIT_" + prefix + "_WINDOW_SEC"); val != "" {
		if sec, err := strconv.Atoi(val); err == nil && sec > 0 {
			config.Window = time.Duration(sec) * time.Second
		}
	}
	if val := os.Getenv("RATELIMIT_" + prefix + "_BURST"); val != "" {
		if n, err := strconv.Atoi(val); err == nil && n > 0 {
			config.Burst = n
		}
	}

	return config
}

// KeyExtractor derives the bucket key for a request (e.g. client IP).
type KeyExtractor func(*http.Request) string

// IPKeyExtractor extracts the client IP address from the request,
// honoring X-Forwarded-For and X-Real-IP for proxied traffic.
func IPKeyExtractor(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		if ips := strings.Split(xff, ","); len(ips) > 0 {
			return strings.TrimSpace(ips[0])
		}
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}

	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// rateLimiter manages per-key token buckets.
type rateLimiter struct {
	limiters sync.Map // map[string]*rate.Limiter
	rate     rate.Limit
	burst    int

	mu          sync.Mutex
	lastCleanup time.Time
}

func (rl *rateLimiter) getLimiter(key string) *rate.Limiter {
	if limiter, ok := rl.limiters.Load(key); ok {
		return limiter.(*rate.Limiter)
	}

	limiter := rate.NewLimiter(rl.rate, rl.burst)
	actual, _ := rl.limiters.LoadOrStore(key, limiter)

	rl.maybeCleanup()

	return actual.(*rate.Limiter)
}

// maybeCleanup drops idle limiters so ephemeral keys don't accumulate
// forever. A limiter with a full bucket hasn't been used recently.
func (rl *rateLimiter) maybeCleanup() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if time.Since(rl.lastCleanup) < 5*time.Minute {
		return
	}
	rl.lastCleanup = time.Now()

	rl.limiters.Range(func(key, value any) bool {
		if value.(*rate.Limiter).Tokens() >= float64(rl.burst) {
			rl.limiters.Delete(key)
		}
		return true
	})
}

// RateLimitMiddleware creates a rate limiting middleware with the given
// configuration. The keyExtractor determines how requests are grouped.
func RateLimitMiddleware(config RateLimitConfig, keyExtractor KeyExtractor) Middleware {
	rl := &rateLimiter{
		rate:        rate.Limit(float64(config.RequestsPerWindow) / config.Window.Seconds()),
		burst:       config.Burst,
		lastCleanup: time.Now(),
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := slogx.FromContext(r.Context())

			key := keyExtractor(r)
			if key == "" {
				// No key means no bucket; allow rather than blackhole.
				log.Warn("rate limit: unable to extract key, allowing request")
				next.ServeHTTP(w, r)
				return
			}

			limiter := rl.getLimiter(key)
			if !limiter.Allow() {
				reservation := limiter.Reserve()
				delay := reservation.Delay()
				reservation.Cancel() // only needed the delay estimate

				retryAfter := max(int(delay.Seconds()), 1)
				w.Header().Set("Retry-After", strconv.Itoa(retryAfter))

				log.Warn("rate limit exceeded", "key", key)
				WriteJSON(w, http.StatusTooManyRequests, map[string]string{
					"message": "rate limit exceeded",
				})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RateLimitByIP creates a rate limiter that limits by IP address only.
func RateLimitByIP(config RateLimitConfig) Middleware {
	return RateLimitMiddleware(config, IPKeyExtractor)
}
