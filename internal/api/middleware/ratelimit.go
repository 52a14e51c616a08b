package middleware

import (
	"net/http"
	"sync"
	"time"

	"team-lifecycle-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// KeyedRateLimiter manages one token bucket per key
type KeyedRateLimiter struct {
	mu       sync.RWMutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
}

// NewKeyedRateLimiter allows perMinute events per key with the given burst
func NewKeyedRateLimiter(perMinute, burst int) *KeyedRateLimiter {
	if burst < 1 {
		burst = 1
	}
	return &KeyedRateLimiter{
		limiters: make(map[string]*rate.Limiter),
		limit:    rate.Every(time.Minute / time.Duration(max(perMinute, 1))),
		burst:    burst,
	}
}

// Allow reports whether an event for key may happen now
func (k *KeyedRateLimiter) Allow(key string) bool {
	return k.getLimiter(key).Allow()
}

func (k *KeyedRateLimiter) getLimiter(key string) *rate.Limiter {
	k.mu.RLock()
	limiter, exists := k.limiters[key]
	k.mu.RUnlock()
	if exists {
		return limiter
	}

	k.mu.Lock()
	defer k.mu.Unlock()
	if limiter, exists = k.limiters[key]; exists {
		return limiter
	}
	limiter = rate.NewLimiter(k.limit, k.burst)
	k.limiters[key] = limiter
	return limiter
}

// PerUser throttles requests by authenticated user, falling back to the client IP.
// A nil limiter disables throttling.
func PerUser(limiter *KeyedRateLimiter, metrics *HTTPMetrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limiter == nil {
			c.Next()
			return
		}
		key := c.ClientIP()
		if userID, ok := c.Get("user_id"); ok {
			if id, ok := userID.(string); ok && id != "" {
				key = id
			}
		}
		if !limiter.Allow(key) {
			metrics.rateLimited(c.FullPath())
			logger.WithContext(c).WithField("path", c.FullPath()).Warn("Rate limit exceeded")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests, slow down"})
			return
		}
		c.Next()
	}
}
