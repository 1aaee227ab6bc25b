package rel_test

import (
	"net/http"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/octorel/octorel/rel"
)

func TestRelsLookup(t *testing.T) {
	t.Parallel()

	rels := rel.Rels{
		"organization": rel.NewLink(nil, "organization", "/orgs/{org}", rel.Verbs{http.MethodGet, http.MethodPatch}),
	}

	link, err := rels.Rel("organization")
	require.NoError(t, err)
	require.Equal(t, "organization", link.Rel())
	require.Equal(t, "/orgs/{org}", link.Template())

	// Repeated lookups return equivalent Links.
	again, err := rels.Rel("organization")
	require.NoError(t, err)
	require.Empty(t, cmp.Diff(link.Template(), again.Template()))
	require.Empty(t, cmp.Diff(link.Verbs(), again.Verbs()))
	require.Empty(t, cmp.Diff(link.Rel(), again.Rel()))
}

func TestRelsUnknownRelation(t *testing.T) {
	t.Parallel()

	rels := rel.Rels{
		"team": rel.NewLink(nil, "team", "/teams/{team_id}", nil),
	}

	_, err := rels.Rel("gists")
	require.Error(t, err)

	var unknown *rel.UnknownRelationError
	require.ErrorAs(t, err, &unknown)
	require.Equal(t, "gists", unknown.Name)
	require.Equal(t, []string{"team"}, unknown.Available)
}

func TestVerbsContains(t *testing.T) {
	t.Parallel()

	verbs := rel.Verbs{http.MethodGet, http.MethodDelete}
	require.True(t, verbs.Contains(http.MethodGet))
	require.True(t, verbs.Contains("get"), "method matching is case-insensitive")
	require.False(t, verbs.Contains(http.MethodPost))

	require.True(t, rel.AllVerbs.Contains(http.MethodPatch))
}
