package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"elastic-views/internal/handler/http/respond"
	"elastic-views/pkg/config"
)

// RateLimitConfig configures the per-client token bucket.
type RateLimitConfig struct {
	Enabled bool
	// RequestsPerMinute is the sustained rate per client IP.
	RequestsPerMinute int
	// Burst is the bucket size.
	Burst int
	// IdleTTL is how long an unused client bucket is kept.
	IdleTTL time.Duration
}

// LoadRateLimitConfig reads SEARCH_RATE_LIMIT_* from the environment.
// Defaults: enabled, 100 requests per minute, burst 10.
func LoadRateLimitConfig() RateLimitConfig {
	return RateLimitConfig{
		Enabled:           config.GetEnvBool("SEARCH_RATE_LIMIT_ENABLED", true),
		RequestsPerMinute: config.GetEnvInt("SEARCH_RATE_LIMIT_PER_MINUTE", 100),
		Burst:             config.GetEnvInt("SEARCH_RATE_LIMIT_BURST", 10),
		IdleTTL:           config.GetEnvDuration("SEARCH_RATE_LIMIT_IDLE_TTL", 10*time.Minute),
	}
}

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter keeps one token bucket per client IP.
type RateLimiter struct {
	cfg         RateLimitConfig
	ipExtractor IPExtractor

	mu      sync.Mutex
	clients map[string]*clientLimiter
	now     func() time.Time
}

// NewRateLimiter creates a RateLimiter.
//
//	limiter := NewRateLimiter(LoadRateLimitConfig(), &RemoteAddrExtractor{})
//	mux.Handle("GET /search/", limiter.Middleware(handler))
func NewRateLimiter(cfg RateLimitConfig, ipExtractor IPExtractor) *RateLimiter {
	if cfg.Burst < 1 {
		cfg.Burst = 1
	}
	return &RateLimiter{
		cfg:         cfg,
		ipExtractor: ipExtractor,
		clients:     make(map[string]*clientLimiter),
		now:         time.Now,
	}
}

// Middleware answers 429 with a Retry-After header once a client has used
// up its bucket. A disabled limiter passes every request through.
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	if !rl.cfg.Enabled {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip, err := rl.ipExtractor.ExtractIP(r)
		if err != nil {
			slog.Warn("rate limiter: client ip extraction failed",
				slog.String("remote_addr", r.RemoteAddr),
				slog.String("error", err.Error()))
			ip = r.RemoteAddr
		}

		res := rl.reserve(ip)
		if delay := res.DelayFrom(rl.now()); delay > 0 {
			res.CancelAt(rl.now())
			slog.Warn("rate limit exceeded",
				slog.String("ip", ip),
				slog.String("path", r.URL.Path))
			w.Header().Set("Retry-After", strconv.Itoa(int(delay.Seconds())+1))
			respond.JSON(w, http.StatusTooManyRequests, map[string]string{"error": "too many requests"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (rl *RateLimiter) reserve(ip string) *rate.Reservation {
	now := rl.now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	c, ok := rl.clients[ip]
	if !ok {
		perSecond := rate.Limit(float64(rl.cfg.RequestsPerMinute) / 60)
		c = &clientLimiter{limiter: rate.NewLimiter(perSecond, rl.cfg.Burst)}
		rl.clients[ip] = c
	}
	c.lastSeen = now
	return c.limiter.ReserveN(now, 1)
}

// CleanupExpired drops buckets idle for longer than IdleTTL and returns
// how many were removed.
func (rl *RateLimiter) CleanupExpired() int {
	cutoff := rl.now().Add(-rl.cfg.IdleTTL)

	rl.mu.Lock()
	defer rl.mu.Unlock()

	removed := 0
	for ip, c := range rl.clients {
		if c.lastSeen.Before(cutoff) {
			delete(rl.clients, ip)
			removed++
		}
	}
	slog.Debug("rate limiter: cleanup completed",
		slog.Int("active_clients", len(rl.clients)),
		slog.Int("removed", removed))
	return removed
}

// StartCleanup runs CleanupExpired every interval until ctx is done.
func (rl *RateLimiter) StartCleanup(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			rl.CleanupExpired()
		}
	}
}
