package ratelimit

import (
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"
)

// Limiter is a per-key token bucket limiter with auto-cleanup of idle keys.
type Limiter struct {
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

// New allows requestsPerMin per key, with a burst of a tenth of that (at least 1).
func New(requestsPerMin int) *Limiter {
	if requestsPerMin <= 0 {
		requestsPerMin = 1
	}
	burst := requestsPerMin / 10
	if burst < 1 {
		burst = 1
	}
	return &Limiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](
			1000,          // Max 1000 unique sources
			nil,           // No eviction callback
			time.Minute*5, // TTL: 5 minutes
		),
		rate:  rate.Limit(float64(requestsPerMin) / 60.0), // Per second
		burst: burst,
	}
}

// Allow consumes one token for key.
func (rl *Limiter) Allow(key string) error {
	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(key, limiter)
	}

	if !limiter.Allow() {
		return fmt.Errorf("rate limit exceeded for %s", key)
	}
	return nil
}
