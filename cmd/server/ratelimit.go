package main

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
)

// rateLimiter counts requests per client IP in fixed windows. Counters
// expire with their window, so an idle client starts fresh.
type rateLimiter struct {
	limit  int
	window time.Duration
	hits   *cache.Cache
}

func newRateLimiter(limit int, window time.Duration) *rateLimiter {
	return &rateLimiter{
		limit:  limit,
		window: window,
		hits:   cache.New(window, 2*window),
	}
}

// allow records a hit for key and reports whether it is within the limit,
// the remaining allowance and when the current window closes.
func (l *rateLimiter) allow(key string) (bool, int, time.Time) {
	count := 1
	if err := l.hits.Add(key, 1, cache.DefaultExpiration); err != nil {
		n, err := l.hits.IncrementInt(key, 1)
		if err != nil {
			// expired between Add and IncrementInt
			l.hits.Set(key, 1, cache.DefaultExpiration)
			n = 1
		}
		count = n
	}

	reset := time.Now().Add(l.window)
	if _, exp, ok := l.hits.GetWithExpiration(key); ok && !exp.IsZero() {
		reset = exp
	}

	remaining := l.limit - count
	if remaining < 0 {
		remaining = 0
	}
	return count <= l.limit, remaining, reset
}

func (l *rateLimiter) middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, remaining, reset := l.allow(c.ClientIP())

		c.Header("X-RateLimit-Limit", strconv.Itoa(l.limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(reset.Unix(), 10))

		if !ok {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"success": false,
				"error":   "Too many requests from this IP, please try again later.",
			})
			return
		}
		c.Next()
	}
}
