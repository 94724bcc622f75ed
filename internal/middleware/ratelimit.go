package middleware

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/moodpath/backend/internal/apierror"
	"github.com/moodpath/backend/internal/logger"
)

// RateLimiter tracks request counts per client within a sliding window.
type RateLimiter struct {
	mu       sync.Mutex
	requests map[string][]time.Time
	rate     int
	window   time.Duration
	name     string
}

// NewRateLimiter creates a rate limiter allowing rate requests per window.
func NewRateLimiter(rate int, window time.Duration, name string) *RateLimiter {
	rl := &RateLimiter{
		requests: make(map[string][]time.Time),
		rate:     rate,
		window:   window,
		name:     name,
	}

	go rl.cleanup()

	return rl
}

// isAllowed reports whether key may make another request now, recording
// the request when it is allowed.
func (rl *RateLimiter) isAllowed(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	cutoff := now.Add(-rl.window)

	timestamps := rl.requests[key]
	valid := timestamps[:0]
	for _, ts := range timestamps {
		if ts.After(cutoff) {
			valid = append(valid, ts)
		}
	}

	if len(valid) >= rl.rate {
		rl.requests[key] = valid
		return false
	}

	rl.requests[key] = append(valid, now)
	return true
}

// cleanup periodically drops keys with no requests inside the window.
func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(rl.window)
	defer ticker.Stop()

	for range ticker.C {
		rl.mu.Lock()
		cutoff := time.Now().Add(-rl.window)
		for key, timestamps := range rl.requests {
			active := false
			for _, ts := range timestamps {
				if ts.After(cutoff) {
					active = true
					break
				}
			}
			if !active {
				delete(rl.requests, key)
			}
		}
		rl.mu.Unlock()
	}
}

// RateLimit limits requests per client IP. Exceeding clients receive a
// problem+json response with a Retry-After header.
func RateLimit(rl *RateLimiter, log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.ClientIP()

		if !rl.isAllowed(key) {
			log.Warn("rate limit exceeded",
				logger.String("limiter", rl.name),
				logger.String("client_ip", key),
				logger.String("path", c.Request.URL.Path),
			)

			retryAfter := int(rl.window.Seconds())
			problem := apierror.NewRateLimitError(apierror.GetRequestID(c), retryAfter)
			apierror.WriteProblem(c, problem)
			c.Abort()
			return
		}

		c.Next()
	}
}
