package transport

import (
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"golang.org/x/xerrors"
)

// Retry re-issues idempotent requests that failed at the transport level or
// came back 429/5xx, with exponential backoff between attempts. The
// relation-traversal core never retries; installing this wrapper is the
// opt-in way to get retry behavior without teaching the core about it.
//
// Non-idempotent methods (POST, PATCH) and requests whose body cannot be
// replayed pass through with a single attempt.
type Retry struct {
	// Base is the wrapped RoundTripper. Defaults to
	// http.DefaultTransport.
	Base http.RoundTripper

	// Attempts is the maximum number of tries per request. Defaults
	// to 3.
	Attempts int

	// Floor and Ceil bound the backoff delay. Default to 100ms and 2s.
	Floor, Ceil time.Duration
}

var _ http.RoundTripper = (*Retry)(nil)

// RoundTrip implements http.RoundTripper.
func (r *Retry) RoundTrip(req *http.Request) (*http.Response, error) {
	base := r.Base
	if base == nil {
		base = http.DefaultTransport
	}

	if !retryable(req) {
		return base.RoundTrip(req)
	}

	attempts := r.Attempts
	if attempts <= 0 {
		attempts = 3
	}

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = r.Floor
	if policy.InitialInterval <= 0 {
		policy.InitialInterval = 100 * time.Millisecond
	}
	policy.MaxInterval = r.Ceil
	if policy.MaxInterval <= 0 {
		policy.MaxInterval = 2 * time.Second
	}
	policy.MaxElapsedTime = 0

	var (
		resp *http.Response
		try  int
	)
	err := backoff.Retry(func() error {
		try++

		attempt := req
		if req.Body != nil {
			body, err := req.GetBody()
			if err != nil {
				return backoff.Permanent(xerrors.Errorf("replay request body: %w", err))
			}
			attempt = req.Clone(req.Context())
			attempt.Body = body
		}

		got, err := base.RoundTrip(attempt)
		if err != nil {
			return err
		}

		// On the final attempt the response is handed back whatever
		// its status; statuses are the caller's data.
		if try < attempts && (got.StatusCode == http.StatusTooManyRequests || got.StatusCode >= 500) {
			// Drain so the connection can be reused.
			_, _ = io.Copy(io.Discard, got.Body)
			_ = got.Body.Close()
			return xerrors.Errorf("retryable status %d", got.StatusCode)
		}

		resp = got
		return nil
	}, backoff.WithContext(backoff.WithMaxRetries(policy, uint64(attempts-1)), req.Context()))
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// retryable reports whether a request is safe to issue more than once.
func retryable(req *http.Request) bool {
	switch req.Method {
	case http.MethodGet, http.MethodHead, http.MethodPut, http.MethodDelete:
	default:
		return false
	}
	return req.Body == nil || req.GetBody != nil
}
