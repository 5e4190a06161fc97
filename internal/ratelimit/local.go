package ratelimit

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// LocalBucket keeps one token bucket per key in process memory. Suitable for
// single-instance deployments where Redis is not configured. Stale entries
// are evicted so the map does not grow forever.
type LocalBucket struct {
	mu      sync.Mutex
	clients map[string]*localClient

	ratePerS float64
	burst    int
}

type localClient struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func NewLocalBucket(ratePerSecond float64, burst int) *LocalBucket {
	lb := &LocalBucket{
		clients:  make(map[string]*localClient),
		ratePerS: ratePerSecond,
		burst:    burst,
	}
	go lb.evictLoop()
	return lb
}

func (lb *LocalBucket) Allow(_ context.Context, key string) (bool, error) {
	lb.mu.Lock()
	defer lb.mu.Unlock()

	c, ok := lb.clients[key]
	if !ok {
		c = &localClient{limiter: rate.NewLimiter(rate.Limit(lb.ratePerS), lb.burst)}
		lb.clients[key] = c
	}
	c.lastSeen = time.Now()
	return c.limiter.Allow(), nil
}

func (lb *LocalBucket) evictLoop() {
	for {
		time.Sleep(time.Minute)
		lb.mu.Lock()
		for key, c := range lb.clients {
			if time.Since(c.lastSeen) > 3*time.Minute {
				delete(lb.clients, key)
			}
		}
		lb.mu.Unlock()
	}
}
