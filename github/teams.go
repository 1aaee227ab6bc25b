package github

import (
	"context"
	"net/http"
	"strconv"

	"github.com/octorel/octorel/rel"
)

// teamParams returns the URI parameters identifying a team.
func teamParams(teamID int64) rel.Params {
	return rel.Params{"team_id": strconv.FormatInt(teamID, 10)}
}

// OrganizationTeams lists an organization's teams.
func (c *Client) OrganizationTeams(ctx context.Context, org string) ([]Team, error) {
	var out []Team
	err := c.getInto(ctx, "organization_teams", rel.Options{
		URIParams: rel.Params{"org": org},
	}, &out)
	return out, err
}

// CreateTeam creates a team in an organization.
func (c *Client) CreateTeam(ctx context.Context, org string, req CreateTeamReq) (*Team, error) {
	link, err := c.rel("organization_teams")
	if err != nil {
		return nil, err
	}
	result, err := link.Post(ctx, rel.Options{
		URIParams: rel.Params{"org": org},
		Body:      req,
	})
	if err != nil {
		return nil, err
	}
	if result.Status != http.StatusCreated {
		return nil, apiError(result)
	}
	var out Team
	if err := result.Decode(&out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Team fetches a single team by ID.
func (c *Client) Team(ctx context.Context, teamID int64) (*Team, error) {
	var out Team
	err := c.getInto(ctx, "team", rel.Options{URIParams: teamParams(teamID)}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateTeam applies a partial update to a team.
func (c *Client) UpdateTeam(ctx context.Context, teamID int64, req UpdateTeamReq) (*Team, error) {
	link, err := c.rel("team")
	if err != nil {
		return nil, err
	}
	result, err := link.Patch(ctx, rel.Options{
		URIParams: teamParams(teamID),
		Body:      req,
	})
	if err != nil {
		return nil, err
	}
	if result.Status != http.StatusOK {
		return nil, apiError(result)
	}
	var out Team
	if err := result.Decode(&out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteTeam deletes a team. True means the service confirmed with 204.
func (c *Client) DeleteTeam(ctx context.Context, teamID int64) (bool, error) {
	return c.boolean(ctx, "team", http.MethodDelete, rel.Options{
		URIParams: teamParams(teamID),
	})
}

// TeamMembers lists a team's members.
func (c *Client) TeamMembers(ctx context.Context, teamID int64) ([]User, error) {
	var out []User
	err := c.getInto(ctx, "team_members", rel.Options{
		URIParams: teamParams(teamID),
	}, &out)
	return out, err
}

// IsTeamMember reports whether a user belongs to a team.
func (c *Client) IsTeamMember(ctx context.Context, teamID int64, user string) (bool, error) {
	return c.boolean(ctx, "team_member", http.MethodGet, rel.Options{
		URIParams: withUser(teamParams(teamID), user),
	})
}

// AddTeamMember adds a user to a team. The remote service requires this
// PUT to carry an explicit Content-Length: 0 body and rejects the request
// without one, so the empty body here is deliberate and must stay.
func (c *Client) AddTeamMember(ctx context.Context, teamID int64, user string) (bool, error) {
	return c.boolean(ctx, "team_member", http.MethodPut, rel.Options{
		URIParams: withUser(teamParams(teamID), user),
		Body:      rel.EmptyBody,
	})
}

// RemoveTeamMember removes a user from a team. Like AddTeamMember, the
// DELETE carries an explicit zero-length body.
func (c *Client) RemoveTeamMember(ctx context.Context, teamID int64, user string) (bool, error) {
	return c.boolean(ctx, "team_member", http.MethodDelete, rel.Options{
		URIParams: withUser(teamParams(teamID), user),
		Body:      rel.EmptyBody,
	})
}

// TeamMembership fetches a user's membership state on a team.
func (c *Client) TeamMembership(ctx context.Context, teamID int64, user string) (*Membership, error) {
	var out Membership
	err := c.getInto(ctx, "team_membership", rel.Options{
		URIParams: withUser(teamParams(teamID), user),
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// AddTeamMembership invites a user to a team, or activates the membership
// directly when the requester may do so. The returned membership's State
// reports which happened.
func (c *Client) AddTeamMembership(ctx context.Context, teamID int64, user string) (*Membership, error) {
	link, err := c.rel("team_membership")
	if err != nil {
		return nil, err
	}
	result, err := link.Put(ctx, rel.Options{
		URIParams: withUser(teamParams(teamID), user),
		Body:      rel.EmptyBody,
	})
	if err != nil {
		return nil, err
	}
	if result.Status != http.StatusOK {
		return nil, apiError(result)
	}
	var out Membership
	if err := result.Decode(&out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RemoveTeamMembership removes a user's membership on a team.
func (c *Client) RemoveTeamMembership(ctx context.Context, teamID int64, user string) (bool, error) {
	return c.boolean(ctx, "team_membership", http.MethodDelete, rel.Options{
		URIParams: withUser(teamParams(teamID), user),
	})
}

// TeamRepositories lists the repositories a team has access to.
func (c *Client) TeamRepositories(ctx context.Context, teamID int64) ([]Repository, error) {
	var out []Repository
	err := c.getInto(ctx, "team_repositories", rel.Options{
		URIParams: teamParams(teamID),
	}, &out)
	return out, err
}

// IsTeamRepository reports whether a team manages a repository. The repo
// argument accepts any shape ParseRepo does.
func (c *Client) IsTeamRepository(ctx context.Context, teamID int64, repo interface{}) (bool, error) {
	identity, err := ParseRepo(repo)
	if err != nil {
		return false, err
	}
	return c.boolean(ctx, "team_repository", http.MethodGet, rel.Options{
		URIParams: withRepo(teamParams(teamID), identity),
	})
}

// AddTeamRepository grants a team access to a repository. The repo
// argument accepts any shape ParseRepo does.
func (c *Client) AddTeamRepository(ctx context.Context, teamID int64, repo interface{}) (bool, error) {
	identity, err := ParseRepo(repo)
	if err != nil {
		return false, err
	}
	return c.boolean(ctx, "team_repository", http.MethodPut, rel.Options{
		URIParams: withRepo(teamParams(teamID), identity),
	})
}

// RemoveTeamRepository revokes a team's access to a repository. The
// repository itself is untouched.
func (c *Client) RemoveTeamRepository(ctx context.Context, teamID int64, repo interface{}) (bool, error) {
	identity, err := ParseRepo(repo)
	if err != nil {
		return false, err
	}
	return c.boolean(ctx, "team_repository", http.MethodDelete, rel.Options{
		URIParams: withRepo(teamParams(teamID), identity),
	})
}

// UserTeams lists the authenticated user's teams across organizations.
func (c *Client) UserTeams(ctx context.Context) ([]Team, error) {
	var out []Team
	err := c.getInto(ctx, "user_teams", rel.Options{}, &out)
	return out, err
}

func withUser(params rel.Params, user string) rel.Params {
	params["user"] = user
	return params
}

func withRepo(params rel.Params, repo Repo) rel.Params {
	params["owner"] = repo.Owner
	params["repo"] = repo.Name
	return params
}
