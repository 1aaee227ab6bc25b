package github_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/octorel/octorel/github"
)

// newTestClient points a github.Client at a test server.
func newTestClient(t *testing.T, handler http.Handler) *github.Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	u, err := url.Parse(server.URL)
	require.NoError(t, err, "failed to parse test server URL")

	client, err := github.NewClient(github.ClientOptions{BaseURL: u})
	require.NoError(t, err, "failed to create github.Client")

	return client
}

func TestOrganization(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/orgs/github", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": 9919,
			"login": "github",
			"name": "GitHub",
			"location": "San Francisco, CA",
			"public_repos": 439
		}`))
	}))

	org, err := client.Organization(context.Background(), "github")
	require.NoError(t, err)
	require.EqualValues(t, 9919, org.ID)
	require.Equal(t, "github", org.Login)
	require.Equal(t, "GitHub", org.Name)
	require.Equal(t, 439, org.PublicRepos)
}

func TestOrganizationNotFound(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"Not Found","documentation_url":"https://docs.github.com"}`))
	}))

	_, err := client.Organization(context.Background(), "nope")
	require.Error(t, err)

	var apiErr *github.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusNotFound, apiErr.Status)
	require.Equal(t, "Not Found", apiErr.Message)
}

func TestUpdateOrganizationIsPartial(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPatch, r.Method)
		require.Equal(t, "/orgs/github", r.URL.Path)

		var body map[string]interface{}
		require.NoError(t, jsonDecode(r, &body))
		require.Equal(t, map[string]interface{}{"billing_email": "support@github.com"}, body,
			"only the fields being changed are sent")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":9919,"login":"github","billing_email":"support@github.com"}`))
	}))

	email := "support@github.com"
	org, err := client.UpdateOrganization(context.Background(), "github", github.UpdateOrganizationReq{
		BillingEmail: &email,
	})
	require.NoError(t, err)
	require.Equal(t, "support@github.com", org.BillingEmail)
}

func TestOrganizations(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/users/defunkt/orgs", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":9919,"login":"github"},{"id":44,"login":"oss"}]`))
	}))

	orgs, err := client.Organizations(context.Background(), "defunkt")
	require.NoError(t, err)
	require.Len(t, orgs, 2)
	require.Equal(t, "github", orgs[0].Login)
}

func TestAllOrganizationsSince(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/organizations", r.URL.Path)
		require.Equal(t, "9919", r.URL.Query().Get("since"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":9920,"login":"next"}]`))
	}))

	orgs, err := client.AllOrganizations(context.Background(), 9919)
	require.NoError(t, err)
	require.Len(t, orgs, 1)
}

func TestMembershipPredicates(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		switch r.URL.Path {
		case "/orgs/github/members/defunkt":
			w.WriteHeader(http.StatusNoContent)
		case "/orgs/github/members/stranger":
			w.WriteHeader(http.StatusNotFound)
		case "/orgs/github/public_members/defunkt":
			w.WriteHeader(http.StatusNoContent)
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))

	ctx := context.Background()

	member, err := client.IsOrganizationMember(ctx, "github", "defunkt")
	require.NoError(t, err)
	require.True(t, member)

	member, err = client.IsOrganizationMember(ctx, "github", "stranger")
	require.NoError(t, err, "a 404 means no, it is not an error")
	require.False(t, member)

	public, err := client.IsOrganizationPublicMember(ctx, "github", "defunkt")
	require.NoError(t, err)
	require.True(t, public)
}

func TestPublicizeAndConcealMembership(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/orgs/github/public_members/defunkt", r.URL.Path)
		switch r.Method {
		case http.MethodPut, http.MethodDelete:
			w.WriteHeader(http.StatusNoContent)
		default:
			t.Errorf("unexpected method %s", r.Method)
		}
	}))

	ctx := context.Background()

	ok, err := client.PublicizeMembership(ctx, "github", "defunkt")
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = client.ConcealMembership(ctx, "github", "defunkt")
	require.NoError(t, err)
	require.True(t, ok)
}

func TestOrganizationMemberships(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/user/memberships/orgs":
			require.Equal(t, "pending", r.URL.Query().Get("state"))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`[{"state":"pending","role":"member","organization":{"login":"github"}}]`))
		case "/user/memberships/orgs/github":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"state":"active","role":"admin"}`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))

	ctx := context.Background()

	memberships, err := client.OrganizationMemberships(ctx, "pending")
	require.NoError(t, err)
	require.Len(t, memberships, 1)
	require.Equal(t, "pending", memberships[0].State)
	require.Equal(t, "github", memberships[0].Organization.Login)

	membership, err := client.OrganizationMembership(ctx, "github")
	require.NoError(t, err)
	require.Equal(t, "active", membership.State)
	require.Equal(t, "admin", membership.Role)
}

func TestUpdateOrganizationMembership(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/orgs/github/memberships/defunkt", r.URL.Path)

		var body map[string]interface{}
		require.NoError(t, jsonDecode(r, &body))
		require.Equal(t, "admin", body["role"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"state":"pending","role":"admin","user":{"login":"defunkt"}}`))
	}))

	membership, err := client.UpdateOrganizationMembership(context.Background(), "github", "defunkt", "admin")
	require.NoError(t, err)
	require.Equal(t, "pending", membership.State)
	require.Equal(t, "defunkt", membership.User.Login)
}

func TestRemoveOrganizationMembership(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		require.Equal(t, "/orgs/github/memberships/defunkt", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))

	ok, err := client.RemoveOrganizationMembership(context.Background(), "github", "defunkt")
	require.NoError(t, err)
	require.True(t, ok)
}
