package dictionaryapi

import (
	"context"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// defaultRetryAfter is the backoff used when a 429 carries no Retry-After.
const defaultRetryAfter = 30 * time.Second

// RateLimiter throttles requests to the dictionary API.
// It uses a token bucket with a backoff window set by 429 responses.
type RateLimiter struct {
	mu      sync.Mutex
	limiter *rate.Limiter
	retryAt time.Time
}

// NewRateLimiter creates a rate limiter allowing rps sustained requests per
// second with the given burst.
func NewRateLimiter(rps float64, burst int) *RateLimiter {
	return &RateLimiter{
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
	}
}

// SetLimit changes the sustained rate and burst.
func (r *RateLimiter) SetLimit(rps float64, burst int) {
	r.limiter.SetLimit(rate.Limit(rps))
	r.limiter.SetBurst(burst)
}

// Wait blocks until a request can be made without exceeding the rate limit.
// It also respects any backoff period set by RecordRateLimitError.
func (r *RateLimiter) Wait(ctx context.Context) error {
	r.mu.Lock()
	retryAt := r.retryAt
	r.mu.Unlock()

	if time.Now().Before(retryAt) {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Until(retryAt)):
		}
	}

	return r.limiter.Wait(ctx)
}

// RecordRateLimitError records a 429 and sets the backoff period from the
// Retry-After header value (seconds). Unparseable values use a default.
func (r *RateLimiter) RecordRateLimitError(retryAfter string) {
	wait := defaultRetryAfter
	if secs, err := strconv.Atoi(retryAfter); err == nil && secs > 0 {
		wait = time.Duration(secs) * time.Second
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.retryAt = time.Now().Add(wait)
}

// RetryAt returns the end of the current backoff window.
func (r *RateLimiter) RetryAt() time.Time {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.retryAt
}

// Allow reports whether a request can be made immediately.
func (r *RateLimiter) Allow() bool {
	r.mu.Lock()
	retryAt := r.retryAt
	r.mu.Unlock()

	if time.Now().Before(retryAt) {
		return false
	}
	return r.limiter.Allow()
}
