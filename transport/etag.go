package transport

import (
	"bytes"
	"io"
	"net/http"
	"sync"
)

// etagEntry holds one cached GET response.
type etagEntry struct {
	etag   string
	status int
	header http.Header
	body   []byte
}

// ETagCache sends If-None-Match on repeated GETs and replays the cached
// response when the server answers 304 Not Modified, so unchanged resources
// cost no rate-limit quota. Only GET responses carrying an ETag header are
// cached.
//
// There is no eviction: the cache lives as long as the wrapper and is
// bounded by the number of distinct URLs requested through it.
type ETagCache struct {
	// Base is the wrapped RoundTripper. Defaults to
	// http.DefaultTransport.
	Base http.RoundTripper

	mu      sync.Mutex
	entries map[string]etagEntry
}

var _ http.RoundTripper = (*ETagCache)(nil)

// RoundTrip implements http.RoundTripper.
func (c *ETagCache) RoundTrip(req *http.Request) (*http.Response, error) {
	base := c.Base
	if base == nil {
		base = http.DefaultTransport
	}
	if req.Method != http.MethodGet {
		return base.RoundTrip(req)
	}

	key := req.URL.String()

	c.mu.Lock()
	cached, ok := c.entries[key]
	c.mu.Unlock()

	if ok {
		req = req.Clone(req.Context())
		req.Header.Set("If-None-Match", cached.etag)
	}

	resp, err := base.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusNotModified && ok {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
		return replay(resp, cached), nil
	}

	if etag := resp.Header.Get("ETag"); etag != "" && resp.StatusCode == http.StatusOK {
		body, err := io.ReadAll(resp.Body)
		_ = resp.Body.Close()
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		if c.entries == nil {
			c.entries = make(map[string]etagEntry)
		}
		c.entries[key] = etagEntry{etag: etag, status: resp.StatusCode, header: resp.Header.Clone(), body: body}
		c.mu.Unlock()

		resp.Body = io.NopCloser(bytes.NewReader(body))
	}

	return resp, nil
}

// replay rebuilds a response from a cache entry, keeping the 304's rate
// limit headers visible alongside the cached payload.
func replay(notModified *http.Response, cached etagEntry) *http.Response {
	header := cached.header.Clone()
	for name, values := range notModified.Header {
		header[name] = append([]string(nil), values...)
	}
	return &http.Response{
		Status:        http.StatusText(cached.status),
		StatusCode:    cached.status,
		Proto:         notModified.Proto,
		ProtoMajor:    notModified.ProtoMajor,
		ProtoMinor:    notModified.ProtoMinor,
		Header:        header,
		Body:          io.NopCloser(bytes.NewReader(cached.body)),
		ContentLength: int64(len(cached.body)),
		Request:       notModified.Request,
	}
}
