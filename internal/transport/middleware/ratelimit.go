package middleware

import (
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/heartmarshall/slang-backend/internal/config"
	"github.com/heartmarshall/slang-backend/pkg/ctxutil"
)

// RateLimiter is a token bucket per client IP, shared by every route it
// wraps. Buckets idle for longer than the cleanup interval are evicted.
type RateLimiter struct {
	perMinute int
	idleAfter time.Duration
	now       func() time.Time

	clients sync.Map // client ip -> *tokenBucket
	stop    chan struct{}
	once    sync.Once
}

type tokenBucket struct {
	mu       sync.Mutex
	tokens   float64
	lastSeen time.Time
}

// NewRateLimiter starts a limiter for cfg.RequestsPerMinute requests per
// client. Call Stop on shutdown.
func NewRateLimiter(cfg config.RateLimitConfig) *RateLimiter {
	rl := &RateLimiter{
		perMinute: cfg.RequestsPerMinute,
		idleAfter: cfg.CleanupInterval,
		now:       time.Now,
		stop:      make(chan struct{}),
	}
	go rl.evictLoop(cfg.CleanupInterval)
	return rl
}

// Stop ends the eviction goroutine. Safe to call twice.
func (rl *RateLimiter) Stop() {
	rl.once.Do(func() { close(rl.stop) })
}

// Middleware rejects requests over the limit with 429 and a Retry-After
// header. The client is the address resolved by ClientIP, else RemoteAddr.
// RateLimit-Limit and RateLimit-Remaining are set on every answer.
func (rl *RateLimiter) Middleware() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			client := ctxutil.ClientIPFromCtx(r.Context())
			if client == "" {
				client = r.RemoteAddr
			}

			ok, remaining := rl.take(client)
			w.Header().Set("RateLimit-Limit", strconv.Itoa(rl.perMinute))
			w.Header().Set("RateLimit-Remaining", strconv.Itoa(remaining))
			if !ok {
				w.Header().Set("Retry-After", strconv.Itoa(rl.retryAfter()))
				writeErrorEnvelope(w, r, http.StatusTooManyRequests, "Too many requests, please try again later")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// take spends one token for client and reports what is left.
func (rl *RateLimiter) take(client string) (bool, int) {
	now := rl.now()
	v, _ := rl.clients.LoadOrStore(client, &tokenBucket{
		tokens:   float64(rl.perMinute),
		lastSeen: now,
	})
	b := v.(*tokenBucket)

	b.mu.Lock()
	defer b.mu.Unlock()

	capacity := float64(rl.perMinute)
	b.tokens = math.Min(capacity, b.tokens+now.Sub(b.lastSeen).Minutes()*capacity)
	b.lastSeen = now

	if b.tokens < 1 {
		return false, 0
	}
	b.tokens--
	return true, int(b.tokens)
}

// retryAfter is the time in whole seconds until one token is back.
func (rl *RateLimiter) retryAfter() int {
	return int(math.Ceil(60 / float64(rl.perMinute)))
}

func (rl *RateLimiter) evictLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
			rl.evictIdle()
		}
	}
}

func (rl *RateLimiter) evictIdle() {
	cutoff := rl.now().Add(-rl.idleAfter)
	rl.clients.Range(func(key, value any) bool {
		b := value.(*tokenBucket)
		b.mu.Lock()
		idle := b.lastSeen.Before(cutoff)
		b.mu.Unlock()
		if idle {
			rl.clients.Delete(key)
		}
		return true
	})
}
