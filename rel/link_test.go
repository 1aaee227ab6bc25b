package rel_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/octorel/octorel/rel"
)

// newTestClient points a relation client at a test server.
func newTestClient(t *testing.T, handler http.Handler, table rel.RelTable) (*rel.Client, *httptest.Server) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	u, err := url.Parse(server.URL)
	require.NoError(t, err, "failed to parse test server URL")

	client, err := rel.NewClient(rel.ClientOptions{
		BaseURL:  u,
		RelTable: table,
	})
	require.NoError(t, err, "failed to create rel.Client")

	return client, server
}

func TestUnsupportedVerbFailsBeforeDispatch(t *testing.T) {
	t.Parallel()

	var hits int64
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&hits, 1)
	}), rel.RelTable{
		"organization": {Template: "/orgs/{org}", Verbs: []string{http.MethodGet, http.MethodPatch}},
	})

	link, err := client.StaticRoot().Rel("organization")
	require.NoError(t, err)

	_, err = link.Post(context.Background(), rel.Options{URIParams: rel.Params{"org": "github"}})
	require.Error(t, err)

	var unsupported *rel.UnsupportedVerbError
	require.ErrorAs(t, err, &unsupported)
	require.Equal(t, http.MethodPost, unsupported.Verb)
	require.Zero(t, atomic.LoadInt64(&hits), "no network call may precede verb validation")
}

func TestMissingParameterFailsBeforeDispatch(t *testing.T) {
	t.Parallel()

	var hits int64
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&hits, 1)
	}), rel.RelTable{
		"organization": {Template: "/orgs/{org}"},
	})

	link, err := client.StaticRoot().Rel("organization")
	require.NoError(t, err)

	_, err = link.Get(context.Background(), rel.Options{})
	var missing *rel.MissingParameterError
	require.ErrorAs(t, err, &missing)
	require.Zero(t, atomic.LoadInt64(&hits), "no network call may precede template expansion")
}

func TestExplicitEmptyBody(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Zero(t, r.ContentLength, "explicit empty body declares a zero content length")

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.Empty(t, body)

		w.WriteHeader(http.StatusNoContent)
	}), rel.RelTable{
		"team_member": {Template: "/teams/{team_id}/members/{user}", Verbs: []string{http.MethodGet, http.MethodPut, http.MethodDelete}},
	})

	link, err := client.StaticRoot().Rel("team_member")
	require.NoError(t, err)

	result, err := link.Put(context.Background(), rel.Options{
		URIParams: rel.Params{"team_id": "100000", "user": "mojombo"},
		Body:      rel.EmptyBody,
	})
	require.NoError(t, err)
	require.True(t, result.Boolean())
}

func TestBodyAndQueryMerging(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			require.Equal(t, "/organizations", r.URL.Path)
			require.Equal(t, "100", r.URL.Query().Get("since"))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`[]`))
		case http.MethodPost:
			require.Equal(t, "application/json", r.Header.Get("Content-Type"))
			body, err := io.ReadAll(r.Body)
			require.NoError(t, err)
			require.JSONEq(t, `{"name":"justice league"}`, string(body))
			w.WriteHeader(http.StatusCreated)
		default:
			t.Errorf("unexpected method %s", r.Method)
		}
	}), rel.RelTable{
		"organizations":      {Template: "/organizations", Verbs: []string{http.MethodGet}},
		"organization_teams": {Template: "/orgs/{org}/teams", Verbs: []string{http.MethodGet, http.MethodPost}},
	})

	root := client.StaticRoot()

	link, err := root.Rel("organizations")
	require.NoError(t, err)
	result, err := link.Get(context.Background(), rel.Options{
		Query: url.Values{"since": {"100"}},
	})
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, result.Status)

	link, err = root.Rel("organization_teams")
	require.NoError(t, err)
	result, err = link.Post(context.Background(), rel.Options{
		URIParams: rel.Params{"org": "github"},
		Body:      map[string]string{"name": "justice league"},
	})
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, result.Status)
}

func TestOptionsAreNotMutated(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}), rel.RelTable{
		"organization": {Template: "/orgs/{org}"},
	})

	params := rel.Params{"org": "github"}
	query := url.Values{"page": {"2"}}
	opts := rel.Options{URIParams: params, Query: query}

	link, err := client.StaticRoot().Rel("organization")
	require.NoError(t, err)
	_, err = link.Get(context.Background(), opts)
	require.NoError(t, err)

	require.Equal(t, rel.Params{"org": "github"}, params, "caller-owned params must not change")
	require.Equal(t, url.Values{"page": {"2"}}, query, "caller-owned query must not change")
}
