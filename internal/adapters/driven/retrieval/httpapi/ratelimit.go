package httpapi

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// HeaderRetryAfter is the retry-after header (seconds).
const HeaderRetryAfter = "Retry-After"

// RateLimiter paces outgoing requests with a token bucket and backs off
// when the service answers 429 with a Retry-After header.
type RateLimiter struct {
	mu         sync.Mutex
	bucket     *rate.Limiter
	retryAfter time.Time
}

// NewRateLimiter creates a limiter allowing perSecond requests per second.
// A non-positive rate disables proactive pacing.
func NewRateLimiter(perSecond float64) *RateLimiter {
	limit := rate.Inf
	if perSecond > 0 {
		limit = rate.Limit(perSecond)
	}
	return &RateLimiter{bucket: rate.NewLimiter(limit, 1)}
}

// Wait blocks until it's safe to make a request.
func (r *RateLimiter) Wait(ctx context.Context) error {
	r.mu.Lock()
	until := r.retryAfter
	r.mu.Unlock()

	if d := time.Until(until); d > 0 {
		timer := time.NewTimer(d)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}

	return r.bucket.Wait(ctx)
}

// Observe records back-off hints from a response.
func (r *RateLimiter) Observe(resp *http.Response) {
	if resp == nil || resp.StatusCode != http.StatusTooManyRequests {
		return
	}
	seconds, err := strconv.Atoi(resp.Header.Get(HeaderRetryAfter))
	if err != nil || seconds <= 0 {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	until := time.Now().Add(time.Duration(seconds) * time.Second)
	if until.After(r.retryAfter) {
		r.retryAfter = until
	}
}

// RetryAfter returns the time before which requests are held back.
func (r *RateLimiter) RetryAfter() time.Time {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.retryAfter
}
