package transport_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/octorel/octorel/transport"
)

func TestETagCacheReplaysNotModified(t *testing.T) {
	t.Parallel()

	var hits int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&hits, 1)

		if r.Header.Get("If-None-Match") == `"v1"` {
			w.Header().Set("X-RateLimit-Remaining", "4998")
			w.WriteHeader(http.StatusNotModified)
			return
		}

		w.Header().Set("ETag", `"v1"`)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"login":"github"}`))
	}))
	t.Cleanup(server.Close)

	client := &http.Client{Transport: &transport.ETagCache{}}

	fetch := func() *http.Response {
		req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, server.URL, nil)
		require.NoError(t, err)
		resp, err := client.Do(req)
		require.NoError(t, err)
		return resp
	}

	first := fetch()
	body, err := io.ReadAll(first.Body)
	require.NoError(t, err)
	first.Body.Close()
	require.JSONEq(t, `{"login":"github"}`, string(body))

	// Second fetch: the server answers 304, the caller sees the cached
	// 200 with the original payload.
	second := fetch()
	body, err = io.ReadAll(second.Body)
	require.NoError(t, err)
	second.Body.Close()

	require.Equal(t, http.StatusOK, second.StatusCode)
	require.JSONEq(t, `{"login":"github"}`, string(body))
	require.Equal(t, "4998", second.Header.Get("X-RateLimit-Remaining"), "headers from the 304 stay visible")
	require.EqualValues(t, 2, atomic.LoadInt64(&hits), "both requests hit the server")
}

func TestETagCacheSkipsNonGET(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Empty(t, r.Header.Get("If-None-Match"))
		w.Header().Set("ETag", `"v1"`)
		w.WriteHeader(http.StatusNoContent)
	}))
	t.Cleanup(server.Close)

	client := &http.Client{Transport: &transport.ETagCache{}}

	for i := 0; i < 2; i++ {
		req, err := http.NewRequestWithContext(context.Background(), http.MethodPut, server.URL, nil)
		require.NoError(t, err)
		resp, err := client.Do(req)
		require.NoError(t, err)
		resp.Body.Close()
		require.Equal(t, http.StatusNoContent, resp.StatusCode)
	}
}
