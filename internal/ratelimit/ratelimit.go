package ratelimit

import (
	"context"
	"sync"
	"time"
)

// Limiter is a token bucket rate limiter shared by the outbound API clients.
type Limiter struct {
	rate       float64 // tokens per second
	tokens     float64
	maxTokens  float64
	lastUpdate time.Time
	mu         sync.Mutex
}

// New creates a limiter allowing rps requests per second with a burst of rps.
func New(rps float64) *Limiter {
	if rps <= 0 {
		rps = 1.0
	}
	return &Limiter{
		rate:       rps,
		tokens:     rps,
		maxTokens:  rps,
		lastUpdate: time.Now(),
	}
}

// Wait blocks until a token is available or the context is cancelled.
func (l *Limiter) Wait(ctx context.Context) error {
	for {
		ok, retry := l.take()
		if ok {
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(retry):
		}
	}
}

// take refills the bucket from elapsed time and attempts to consume a token.
// When the bucket is empty it returns a hint for how long to wait before the
// next token is due.
func (l *Limiter) take() (bool, time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	l.tokens += now.Sub(l.lastUpdate).Seconds() * l.rate
	if l.tokens > l.maxTokens {
		l.tokens = l.maxTokens
	}
	l.lastUpdate = now

	if l.tokens >= 1.0 {
		l.tokens -= 1.0
		return true, 0
	}

	deficit := 1.0 - l.tokens
	return false, time.Duration(deficit / l.rate * float64(time.Second))
}
