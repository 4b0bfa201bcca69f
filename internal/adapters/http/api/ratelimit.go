package api

import (
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"
)

// Default per-client toggle throttle.
const (
	defaultToggleRate  = 3
	defaultToggleBurst = 5
	limiterIdleTTL     = 10 * time.Minute
)

// clientLimiter hands out one token bucket per client id. Idle buckets
// expire so the set stays bounded by recently active clients.
type clientLimiter struct {
	mu       sync.Mutex
	limit    rate.Limit
	burst    int
	limiters *cache.Cache
}

func newClientLimiter(perSecond float64, burst int) *clientLimiter {
	return &clientLimiter{
		limit:    rate.Limit(perSecond),
		burst:    burst,
		limiters: cache.New(limiterIdleTTL, limiterIdleTTL),
	}
}

// allow reports whether clientID may act now and consumes a token if so.
func (l *clientLimiter) allow(clientID string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	var limiter *rate.Limiter
	if v, ok := l.limiters.Get(clientID); ok {
		limiter = v.(*rate.Limiter)
	} else {
		limiter = rate.NewLimiter(l.limit, l.burst)
	}
	l.limiters.Set(clientID, limiter, cache.DefaultExpiration)
	return limiter.Allow()
}
