package ratelimit

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// ClientLimiter keeps one token bucket per inbound caller. Calls made to the
// offers API are never throttled.
type ClientLimiter struct {
	limiters map[string]*entry
	mu       sync.RWMutex
	defaults RateLimitConfig
	now      func() time.Time
}

type entry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type RateLimitConfig struct {
	RequestsPerSecond float64
	BurstSize         int
}

func DefaultConfig() RateLimitConfig {
	return RateLimitConfig{
		RequestsPerSecond: 5,
		BurstSize:         10,
	}
}

func NewClientLimiter(config RateLimitConfig) *ClientLimiter {
	return &ClientLimiter{
		limiters: make(map[string]*entry),
		defaults: config,
		now:      time.Now,
	}
}

func NewClientLimiterWithDefaults() *ClientLimiter {
	return NewClientLimiter(DefaultConfig())
}

func (p *ClientLimiter) GetLimiter(client string) *rate.Limiter {
	now := p.now()

	p.mu.Lock()
	defer p.mu.Unlock()

	if e, exists := p.limiters[client]; exists {
		e.lastSeen = now
		return e.limiter
	}

	e := &entry{
		limiter:  rate.NewLimiter(rate.Limit(p.defaults.RequestsPerSecond), p.defaults.BurstSize),
		lastSeen: now,
	}
	p.limiters[client] = e
	return e.limiter
}

// Allow reports whether client may make a request now.
func (p *ClientLimiter) Allow(client string) bool {
	return p.GetLimiter(client).Allow()
}

// Evict drops the buckets of clients not seen for longer than idle and returns
// how many were removed.
func (p *ClientLimiter) Evict(idle time.Duration) int {
	cutoff := p.now().Add(-idle)

	p.mu.Lock()
	defer p.mu.Unlock()

	removed := 0
	for client, e := range p.limiters {
		if e.lastSeen.Before(cutoff) {
			delete(p.limiters, client)
			removed++
		}
	}
	return removed
}

func (p *ClientLimiter) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.limiters)
}

// RunEviction calls Evict every interval until stop is closed.
func (p *ClientLimiter) RunEviction(interval, idle time.Duration, stop <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			p.Evict(idle)
		case <-stop:
			return
		}
	}
}
