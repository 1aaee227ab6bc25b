package rel

import (
	"io"
	"net/http"

	"golang.org/x/xerrors"
	"gopkg.in/yaml.v3"
)

// RelDef is the configuration shape for one root relation: a URI template
// and the methods it accepts. An empty verb list means every verb.
type RelDef struct {
	Template string   `yaml:"template" json:"template"`
	Verbs    []string `yaml:"verbs,omitempty" json:"verbs,omitempty"`
}

// RelTable is the static relation configuration for a client's root
// resource: the well-known entry points that exist before any response has
// been decoded. Tables are plain data so deployments can override templates
// (GitHub Enterprise, gitea and friends) without recompiling.
type RelTable map[string]RelDef

// LoadRelTable parses a YAML relation table, e.g.:
//
//	organization:
//	  template: /orgs/{org}
//	  verbs: [GET, PATCH]
func LoadRelTable(r io.Reader) (RelTable, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, xerrors.Errorf("read relation table: %w", err)
	}
	var table RelTable
	if err := yaml.Unmarshal(raw, &table); err != nil {
		return nil, xerrors.Errorf("parse relation table: %w", err)
	}
	for name, def := range table {
		if def.Template == "" {
			return nil, xerrors.Errorf("relation table: %q has no template", name)
		}
	}
	return table, nil
}

// DefaultRelTable is the root relation table for the GitHub v3 API surface
// this module drives. Verb sets are deliberately narrow: invoking a verb an
// endpoint does not serve is a caller bug, caught before the wire.
func DefaultRelTable() RelTable {
	get := []string{http.MethodGet}
	return RelTable{
		"organization":                 {Template: "/orgs/{org}", Verbs: []string{http.MethodGet, http.MethodPatch}},
		"organizations":                {Template: "/organizations{?since,per_page}", Verbs: get},
		"user_organizations":           {Template: "/users/{user}/orgs", Verbs: get},
		"organization_repositories":    {Template: "/orgs/{org}/repos{?type,page,per_page,sort}", Verbs: get},
		"organization_members":         {Template: "/orgs/{org}/members{?filter,role}", Verbs: get},
		"organization_member":          {Template: "/orgs/{org}/members/{user}", Verbs: []string{http.MethodGet, http.MethodDelete}},
		"organization_public_members":  {Template: "/orgs/{org}/public_members", Verbs: get},
		"organization_public_member":   {Template: "/orgs/{org}/public_members/{user}", Verbs: []string{http.MethodGet, http.MethodPut, http.MethodDelete}},
		"organization_teams":           {Template: "/orgs/{org}/teams", Verbs: []string{http.MethodGet, http.MethodPost}},
		"organization_memberships":     {Template: "/user/memberships/orgs{?state}", Verbs: get},
		"organization_membership":      {Template: "/user/memberships/orgs/{org}", Verbs: []string{http.MethodGet, http.MethodPatch}},
		"organization_user_membership": {Template: "/orgs/{org}/memberships/{user}", Verbs: []string{http.MethodGet, http.MethodPut, http.MethodDelete}},
		"team":                         {Template: "/teams/{team_id}", Verbs: []string{http.MethodGet, http.MethodPatch, http.MethodDelete}},
		"team_members":                 {Template: "/teams/{team_id}/members{?role}", Verbs: get},
		"team_member":                  {Template: "/teams/{team_id}/members/{user}", Verbs: []string{http.MethodGet, http.MethodPut, http.MethodDelete}},
		"team_membership":              {Template: "/teams/{team_id}/memberships/{user}", Verbs: []string{http.MethodGet, http.MethodPut, http.MethodDelete}},
		"team_repositories":            {Template: "/teams/{team_id}/repos", Verbs: get},
		"team_repository":              {Template: "/teams/{team_id}/repos/{owner}/{repo}", Verbs: []string{http.MethodGet, http.MethodPut, http.MethodDelete}},
		"user_teams":                   {Template: "/user/teams", Verbs: get},
	}
}
