package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// TokenBucket is a simple per-client token bucket.
type TokenBucket struct {
	rate       float64 // tokens refilled per second
	capacity   int
	tokens     float64
	lastRefill time.Time
	lastSeen   time.Time
	mu         sync.Mutex
}

// NewTokenBucket creates a full bucket
func NewTokenBucket(rate float64, capacity int) *TokenBucket {
	now := time.Now()
	return &TokenBucket{
		rate:       rate,
		capacity:   capacity,
		tokens:     float64(capacity),
		lastRefill: now,
		lastSeen:   now,
	}
}

// Allow takes one token if available
func (tb *TokenBucket) Allow() bool {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	now := time.Now()
	elapsed := now.Sub(tb.lastRefill).Seconds()
	tb.lastRefill = now
	tb.lastSeen = now

	tb.tokens += elapsed * tb.rate
	if tb.tokens > float64(tb.capacity) {
		tb.tokens = float64(tb.capacity)
	}

	if tb.tokens >= 1 {
		tb.tokens--
		return true
	}
	return false
}

var (
	ipLimiters   = make(map[string]*TokenBucket)
	ipLimitersMu sync.Mutex
	pruneOnce    sync.Once
)

func getIPLimiter(key string, rate float64, burst int) *TokenBucket {
	ipLimitersMu.Lock()
	defer ipLimitersMu.Unlock()

	limiter, exists := ipLimiters[key]
	if !exists {
		limiter = NewTokenBucket(rate, burst)
		ipLimiters[key] = limiter
	}
	return limiter
}

// IPRateLimiter limits requests per client IP. Used on the public
// lead-capture endpoints to keep form spam in check. The first limiter
// built also starts the hourly pruning of idle client buckets.
func IPRateLimiter(rate float64, burst int) gin.HandlerFunc {
	pruneOnce.Do(startLimiterPruning)

	return func(c *gin.Context) {
		limiter := getIPLimiter(c.ClientIP(), rate, burst)
		if !limiter.Allow() {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"message": "Too many requests, please try again later",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

// pruneIdleLimiters drops the buckets of clients last seen before cutoff.
func pruneIdleLimiters(cutoff time.Time) {
	ipLimitersMu.Lock()
	defer ipLimitersMu.Unlock()

	for key, limiter := range ipLimiters {
		limiter.mu.Lock()
		idle := limiter.lastSeen.Before(cutoff)
		limiter.mu.Unlock()
		if idle {
			delete(ipLimiters, key)
		}
	}
}

func startLimiterPruning() {
	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()

		for range ticker.C {
			pruneIdleLimiters(time.Now().Add(-time.Hour))
		}
	}()
}
