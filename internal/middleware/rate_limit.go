package middleware

import (
	"catalog/pkg/httperror"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	maxTrackedClients = 1000
	clientTTL         = 5 * time.Minute
)

// RateLimiter hands every client IP its own token bucket. Idle buckets expire.
type RateLimiter struct {
	mu       sync.Mutex
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func NewRateLimiter(requestsPerMin int) *RateLimiter {
	return &RateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](maxTrackedClients, nil, clientTTL),
		rate:     rate.Limit(float64(requestsPerMin) / 60.0),
		burst:    max(requestsPerMin/10, 1),
	}
}

func (rl *RateLimiter) Allow(key string) bool {
	return rl.limiter(key).Allow()
}

// limiter returns the bucket for key, creating it under mu so concurrent first requests share one.
func (rl *RateLimiter) limiter(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(key, limiter)
	}
	return limiter
}

// NewRateLimitMiddleware answers 429 once a client runs out of tokens. A non-positive rate disables it.
func NewRateLimitMiddleware(requestsPerMin int) fiber.Handler {
	if requestsPerMin <= 0 {
		return func(c *fiber.Ctx) error {
			return c.Next()
		}
	}

	limiter := NewRateLimiter(requestsPerMin)
	return func(c *fiber.Ctx) error {
		if limiter.Allow(c.IP()) {
			return c.Next()
		}

		err := httperror.TooManyRequests(
			"catalog.rate_limit.exceeded",
			"Too many requests",
			nil,
		)
		zap.L().Warn("Rate limit exceeded", zap.String("ip", c.IP()))

		return c.Status(err.Status).JSON(fiber.Map{
			"code":    err.Code,
			"message": err.Message,
		})
	}
}
