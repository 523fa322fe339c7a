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

	"github.com/aussiebroadwan/clients/pkg/slogx"
)

// RateLimitConfig is a token bucket: RequestsPerWindow refill over Window,
// with up to Burst available at once.
type RateLimitConfig struct {
	RequestsPerWindow int
	Window            time.Duration
	Burst             int
}

// Profiles. Every write fans out into several upstream calls, so writes get
// a much smaller budget than reads. Override with RATELIMIT_<NAME>_REQUESTS,
// RATELIMIT_<NAME>_WINDOW_SEC and RATELIMIT_<NAME>_BURST.
var (
	ReadLimit = RateLimitConfig{
		RequestsPerWindow: 120,
		Window:            time.Minute,
		Burst:             30,
	}

	WriteLimit = RateLimitConfig{
		RequestsPerWindow: 20,
		Window:            time.Minute,
		Burst:             10,
	}

	// StrictLimit budgets failed logins; each one costs an upstream call.
	StrictLimit = RateLimitConfig{
		RequestsPerWindow: 5,
		Window:            time.Minute,
		Burst:             5,
	}
)

func init() {
	ReadLimit = ParseRateLimitFromEnv("READ", ReadLimit)
	WriteLimit = ParseRateLimitFromEnv("WRITE", WriteLimit)
	StrictLimit = ParseRateLimitFromEnv("STRICT", StrictLimit)
}

// ParseRateLimitFromEnv overlays RATELIMIT_<prefix>_* variables on def.
// Unparseable or non-positive values are ignored.
func ParseRateLimitFromEnv(prefix string, def RateLimitConfig) RateLimitConfig {
	cfg := def
	envInt := func(name string) (int, bool) {
		n, err := strconv.Atoi(os.Getenv("RATELIMIT_" + prefix + "_" + name))
		return n, err == nil && n > 0
	}

	if n, ok := envInt("REQUESTS"); ok {
		cfg.RequestsPerWindow = n
	}
	if n, ok := envInt("WINDOW_SEC"); ok {
		cfg.Window = time.Duration(n) * time.Second
	}
	if n, ok := envInt("BURST"); ok {
		cfg.Burst = n
	}
	return cfg
}

// KeyExtractor groups requests into buckets.
type KeyExtractor func(*http.Request) string

// IPKeyExtractor uses the first X-Forwarded-For hop, then X-Real-IP, then
// the connection address.
func IPKeyExtractor(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		return strings.TrimSpace(first)
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

func UserIDKeyExtractor(r *http.Request) string {
	id, _ := UserIDFromContext(r.Context())
	return id
}

// BasicAuthUserKeyExtractor uses the username of the Basic credentials, which
// are not yet verified.
func BasicAuthUserKeyExtractor(r *http.Request) string {
	user, _, _ := r.BasicAuth()
	return user
}

// CompositeKeyExtractor joins the non-empty keys of extractors with sep.
func CompositeKeyExtractor(sep string, extractors ...KeyExtractor) KeyExtractor {
	return func(r *http.Request) string {
		var parts []string
		for _, extract := range extractors {
			if key := extract(r); key != "" {
				parts = append(parts, key)
			}
		}
		return strings.Join(parts, sep)
	}
}

type bucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type rateLimiter struct {
	mu      sync.Mutex
	buckets map[string]*bucket
	limit   rate.Limit
	burst   int
	idle    time.Duration
	swept   time.Time
}

func (rl *rateLimiter) get(key string, now time.Time) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if now.Sub(rl.swept) > rl.idle {
		for k, b := range rl.buckets {
			if now.Sub(b.lastSeen) > rl.idle {
				delete(rl.buckets, k)
			}
		}
		rl.swept = now
	}

	b, ok := rl.buckets[key]
	if !ok {
		b = &bucket{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.buckets[key] = b
	}
	b.lastSeen = now
	return b.limiter
}

func newRateLimiter(cfg RateLimitConfig) *rateLimiter {
	return &rateLimiter{
		buckets: make(map[string]*bucket),
		limit:   rate.Limit(float64(cfg.RequestsPerWindow) / cfg.Window.Seconds()),
		burst:   cfg.Burst,
		idle:    max(cfg.Window, 5*time.Minute),
		swept:   time.Now(),
	}
}

// RateLimitMiddleware rejects requests over cfg with 429 and a Retry-After
// header. Requests without a key pass through.
func RateLimitMiddleware(cfg RateLimitConfig, keyFn KeyExtractor) Middleware {
	rl := newRateLimiter(cfg)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := keyFn(r)
			if key == "" {
				next.ServeHTTP(w, r)
				return
			}

			now := time.Now()
			res := rl.get(key, now).ReserveN(now, 1)
			if res.DelayFrom(now) > 0 {
				rejectOverLimit(w, r, cfg, key, res)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// rejectOverLimit answers 429 and cancels res, which is only used to learn
// the delay until the next token.
func rejectOverLimit(w http.ResponseWriter, r *http.Request, cfg RateLimitConfig, key string, res *rate.Reservation) {
	now := time.Now()
	retryAfter := max(int(res.DelayFrom(now).Seconds()), 1)
	res.CancelAt(now)

	w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
	w.Header().Set("X-RateLimit-Limit", strconv.Itoa(cfg.RequestsPerWindow))
	w.Header().Set("X-RateLimit-Window", cfg.Window.String())

	slogx.FromContext(r.Context()).Warn("rate limit exceeded",
		"key", key,
		"endpoint", r.URL.Path,
		"retry_after", retryAfter,
	)
	writeError(w, r, http.StatusTooManyRequests, "too many requests, please try again later")
}

// RateLimitByUser limits per authenticated user, falling back to the
// client IP.
func RateLimitByUser(cfg RateLimitConfig) Middleware {
	return RateLimitMiddleware(cfg, func(r *http.Request) string {
		if id := UserIDKeyExtractor(r); id != "" {
			return "user:" + id
		}
		return "ip:" + IPKeyExtractor(r)
	})
}

func RateLimitByIP(cfg RateLimitConfig) Middleware {
	return RateLimitMiddleware(cfg, IPKeyExtractor)
}

// RateLimitFailures charges only requests answered with 401 and rejects a key
// with 429 once its budget is spent. Placed in front of BasicAuthMiddleware
// it throttles password guessing without limiting accepted callers.
func RateLimitFailures(cfg RateLimitConfig, keyFn KeyExtractor) Middleware {
	rl := newRateLimiter(cfg)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := keyFn(r)
			if key == "" {
				next.ServeHTTP(w, r)
				return
			}

			now := time.Now()
			limiter := rl.get(key, now)
			if limiter.TokensAt(now) < 1 {
				rejectOverLimit(w, r, cfg, key, limiter.Reserve())
				return
			}

			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(sw, r)
			if sw.status == http.StatusUnauthorized {
				// Concurrent failures may overdraw by one each.
				_ = limiter.AllowN(time.Now(), 1)
			}
		})
	}
}

// RateLimitFailedLogins keys failed Basic logins by client IP and username.
func RateLimitFailedLogins(cfg RateLimitConfig) Middleware {
	return RateLimitFailures(cfg, CompositeKeyExtractor(":", IPKeyExtractor, BasicAuthUserKeyExtractor))
}
