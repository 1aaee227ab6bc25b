package transport

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// RateLimit paces requests with a client-side token bucket and tracks the
// server's X-RateLimit-* headers. When the server reports the quota as
// exhausted, requests block until the advertised reset instant instead of
// burning round trips on guaranteed 403s. Waits respect the request
// context.
type RateLimit struct {
	base    http.RoundTripper
	limiter *rate.Limiter

	mu        sync.Mutex
	remaining int
	reset     time.Time
	known     bool
}

var _ http.RoundTripper = (*RateLimit)(nil)

// NewRateLimit wraps base with client-side pacing of limit events per
// second and the given burst. A nil base uses http.DefaultTransport.
func NewRateLimit(base http.RoundTripper, limit rate.Limit, burst int) *RateLimit {
	if base == nil {
		base = http.DefaultTransport
	}
	return &RateLimit{
		base:    base,
		limiter: rate.NewLimiter(limit, burst),
	}
}

// RoundTrip implements http.RoundTripper.
func (r *RateLimit) RoundTrip(req *http.Request) (*http.Response, error) {
	if err := r.limiter.Wait(req.Context()); err != nil {
		return nil, err
	}
	if err := r.waitForReset(req); err != nil {
		return nil, err
	}

	resp, err := r.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	r.update(resp.Header)
	return resp, nil
}

// waitForReset blocks until the server's quota window resets when the last
// response reported zero remaining requests.
func (r *RateLimit) waitForReset(req *http.Request) error {
	r.mu.Lock()
	if !r.known || r.remaining > 0 {
		r.mu.Unlock()
		return nil
	}
	sleep := time.Until(r.reset)
	r.mu.Unlock()

	if sleep <= 0 {
		return nil
	}

	timer := time.NewTimer(sleep)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-req.Context().Done():
		return req.Context().Err()
	}
}

// update records quota state from response headers. Responses without the
// headers leave the tracker untouched.
func (r *RateLimit) update(header http.Header) {
	remainingValue := header.Get("X-RateLimit-Remaining")
	resetValue := header.Get("X-RateLimit-Reset")
	if remainingValue == "" || resetValue == "" {
		return
	}

	remaining, err := strconv.Atoi(remainingValue)
	if err != nil {
		return
	}
	resetUnix, err := strconv.ParseInt(resetValue, 10, 64)
	if err != nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.remaining = remaining
	r.reset = time.Unix(resetUnix, 0)
	r.known = true
}
