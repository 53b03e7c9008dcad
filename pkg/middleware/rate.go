// Package middleware provides the HTTP middleware used by rasoi.
package middleware

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/shashiranjanraj/rasoi/pkg/cache"
)

// bucket tracks a fixed-window request count for one IP. Used when Redis is
// unavailable; counts are then per-process.
type bucket struct {
	mu      sync.Mutex
	count   int
	resetAt time.Time
}

func (b *bucket) allow(max int, window time.Duration) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := time.Now()
	if now.After(b.resetAt) {
		b.count = 0
		b.resetAt = now.Add(window)
	}

	b.count++
	return b.count <= max
}

var (
	bucketsMu sync.Mutex
	buckets   = map[string]*bucket{}
)

func init() {
	// Evict expired buckets every minute so long-running servers don't grow
	// without bound.
	go func() {
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()
		for range ticker.C {
			now := time.Now()
			bucketsMu.Lock()
			for ip, b := range buckets {
				b.mu.Lock()
				expired := now.After(b.resetAt)
				b.mu.Unlock()
				if expired {
					delete(buckets, ip)
				}
			}
			bucketsMu.Unlock()
		}
	}()
}

func getBucket(ip string) *bucket {
	bucketsMu.Lock()
	defer bucketsMu.Unlock()

	if b, ok := buckets[ip]; ok {
		return b
	}

	b := &bucket{resetAt: time.Now().Add(time.Minute)}
	buckets[ip] = b
	return b
}

// allowRedis counts the request in Redis (INCR + EXPIRE on first hit of the
// window). Shared across replicas. Falls back to allowing the request on
// Redis errors — the limiter must not take the API down with it.
func allowRedis(ctx context.Context, ip string, max int, window time.Duration) bool {
	key := fmt.Sprintf("ratelimit:%s", ip)

	n, err := cache.RDB.Incr(ctx, key).Result()
	if err != nil {
		return true
	}
	if n == 1 {
		cache.RDB.Expire(ctx, key, window)
	}
	return n <= int64(max)
}

// RateLimit limits each client IP to max requests per window. Counters live
// in Redis when available, otherwise in per-process memory.
func RateLimit(max int, window time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := r.RemoteAddr
			if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
				ip = fwd
			}

			allowed := false
			if cache.Available() {
				allowed = allowRedis(r.Context(), ip, max, window)
			} else {
				allowed = getBucket(ip).allow(max, window)
			}

			if !allowed {
				http.Error(w, `{"message":"Too Many Requests"}`, http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
