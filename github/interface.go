package github

import (
	"context"

	"github.com/octorel/octorel/rel"
)

// ensure that Client implements API.
var _ = API(&Client{})

// API is the organization/team surface of the client. This is an interface
// to allow for mocking in callers' tests.
type API interface {
	// Discover overlays the live root endpoint's relation templates on
	// the static table.
	Discover(ctx context.Context) error

	// Root returns the entry Resource currently in use.
	Root() *rel.Resource

	// Organization fetches a single organization by login.
	Organization(ctx context.Context, org string) (*Organization, error)

	// UpdateOrganization applies a partial update to an organization.
	UpdateOrganization(ctx context.Context, org string, req UpdateOrganizationReq) (*Organization, error)

	// Organizations lists the public organization memberships of a user.
	Organizations(ctx context.Context, user string) ([]Organization, error)

	// AllOrganizations lists organizations instance-wide after since.
	AllOrganizations(ctx context.Context, since int64) ([]Organization, error)

	// OrganizationRepositories lists an organization's repositories.
	OrganizationRepositories(ctx context.Context, org string) ([]Repository, error)

	// OrganizationMembers lists the users belonging to an organization.
	OrganizationMembers(ctx context.Context, org string) ([]User, error)

	// OrganizationPublicMembers lists an organization's public members.
	OrganizationPublicMembers(ctx context.Context, org string) ([]User, error)

	// IsOrganizationMember reports whether a user belongs to an organization.
	IsOrganizationMember(ctx context.Context, org, user string) (bool, error)

	// IsOrganizationPublicMember reports whether a membership is public.
	IsOrganizationPublicMember(ctx context.Context, org, user string) (bool, error)

	// RemoveOrganizationMember removes a user from an organization's teams.
	RemoveOrganizationMember(ctx context.Context, org, user string) (bool, error)

	// PublicizeMembership makes an organization membership public.
	PublicizeMembership(ctx context.Context, org, user string) (bool, error)

	// ConcealMembership makes an organization membership private.
	ConcealMembership(ctx context.Context, org, user string) (bool, error)

	// OrganizationMemberships lists the authenticated user's memberships.
	OrganizationMemberships(ctx context.Context, state string) ([]Membership, error)

	// OrganizationMembership fetches one of the authenticated user's memberships.
	OrganizationMembership(ctx context.Context, org string) (*Membership, error)

	// UpdateOrganizationMembership sets a user's organization role.
	UpdateOrganizationMembership(ctx context.Context, org, user, role string) (*Membership, error)

	// RemoveOrganizationMembership removes a user's organization membership.
	RemoveOrganizationMembership(ctx context.Context, org, user string) (bool, error)

	// OrganizationTeams lists an organization's teams.
	OrganizationTeams(ctx context.Context, org string) ([]Team, error)

	// CreateTeam creates a team in an organization.
	CreateTeam(ctx context.Context, org string, req CreateTeamReq) (*Team, error)

	// Team fetches a single team by ID.
	Team(ctx context.Context, teamID int64) (*Team, error)

	// UpdateTeam applies a partial update to a team.
	UpdateTeam(ctx context.Context, teamID int64, req UpdateTeamReq) (*Team, error)

	// DeleteTeam deletes a team.
	DeleteTeam(ctx context.Context, teamID int64) (bool, error)

	// TeamMembers lists a team's members.
	TeamMembers(ctx context.Context, teamID int64) ([]User, error)

	// IsTeamMember reports whether a user belongs to a team.
	IsTeamMember(ctx context.Context, teamID int64, user string) (bool, error)

	// AddTeamMember adds a user to a team.
	AddTeamMember(ctx context.Context, teamID int64, user string) (bool, error)

	// RemoveTeamMember removes a user from a team.
	RemoveTeamMember(ctx context.Context, teamID int64, user string) (bool, error)

	// TeamMembership fetches a user's membership state on a team.
	TeamMembership(ctx context.Context, teamID int64, user string) (*Membership, error)

	// AddTeamMembership invites or activates a user's team membership.
	AddTeamMembership(ctx context.Context, teamID int64, user string) (*Membership, error)

	// RemoveTeamMembership removes a user's team membership.
	RemoveTeamMembership(ctx context.Context, teamID int64, user string) (bool, error)

	// TeamRepositories lists the repositories a team has access to.
	TeamRepositories(ctx context.Context, teamID int64) ([]Repository, error)

	// IsTeamRepository reports whether a team manages a repository.
	IsTeamRepository(ctx context.Context, teamID int64, repo interface{}) (bool, error)

	// AddTeamRepository grants a team access to a repository.
	AddTeamRepository(ctx context.Context, teamID int64, repo interface{}) (bool, error)

	// RemoveTeamRepository revokes a team's access to a repository.
	RemoveTeamRepository(ctx context.Context, teamID int64, repo interface{}) (bool, error)

	// UserTeams lists the authenticated user's teams.
	UserTeams(ctx context.Context) ([]Team, error)
}
