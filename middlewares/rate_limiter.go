package middlewares

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter keeps one token bucket per client IP.
type RateLimiter struct {
	limit rate.Limit
	burst int
	// idle is how long a client may stay silent before its bucket is dropped.
	// It is never shorter than a full refill, so dropping a bucket grants nothing extra.
	idle time.Duration
	now  func() time.Time

	mu       sync.Mutex
	limiters map[string]*clientLimiter
}

// NewRateLimiter allows burst requests at once and refills at one token every interval.
func NewRateLimiter(burst int, interval time.Duration) *RateLimiter {
	idle := time.Duration(burst) * interval
	if idle < time.Minute {
		idle = time.Minute
	}
	return &RateLimiter{
		limit:    rate.Every(interval),
		burst:    burst,
		idle:     idle,
		now:      time.Now,
		limiters: make(map[string]*clientLimiter),
	}
}

// NewStrictRateLimiter is for login and register: 5 attempts, then one per 12 seconds.
func NewStrictRateLimiter() *RateLimiter {
	return NewRateLimiter(5, 12*time.Second)
}

func (rl *RateLimiter) limiterFor(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	cl, ok := rl.limiters[ip]
	if !ok {
		for key, other := range rl.limiters {
			if now.Sub(other.lastSeen) > rl.idle {
				delete(rl.limiters, key)
			}
		}
		cl = &clientLimiter{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.limiters[ip] = cl
	}
	cl.lastSeen = now
	return cl.limiter
}

// Clients reports how many client buckets are tracked.
func (rl *RateLimiter) Clients() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.limiters)
}

func (rl *RateLimiter) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.limiterFor(c.ClientIP()).Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"status":  false,
				"message": "too many requests, please wait a moment",
			})
			return
		}
		c.Next()
	}
}
