package github

import "time"

// Organization describes a GitHub organization account.
type Organization struct {
	ID          int64  `json:"id"`
	Login       string `json:"login"`
	Name        string `json:"name,omitempty"`
	Company     string `json:"company,omitempty"`
	Blog        string `json:"blog,omitempty"`
	Location    string `json:"location,omitempty"`
	Email       string `json:"email,omitempty"`
	Description string `json:"description,omitempty"`

	PublicRepos       int `json:"public_repos"`
	PublicGists       int `json:"public_gists"`
	Followers         int `json:"followers"`
	Following         int `json:"following"`
	TotalPrivateRepos int `json:"total_private_repos,omitempty"`
	OwnedPrivateRepos int `json:"owned_private_repos,omitempty"`
	Collaborators     int `json:"collaborators,omitempty"`

	BillingEmail string `json:"billing_email,omitempty"`
	Type         string `json:"type,omitempty"`

	HTMLURL   string     `json:"html_url,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// UpdateOrganizationReq is the partial document for updating an
// organization. Only the fields set are sent; the update is a PATCH.
type UpdateOrganizationReq struct {
	BillingEmail *string `json:"billing_email,omitempty"`
	Company      *string `json:"company,omitempty"`
	Email        *string `json:"email,omitempty"`
	Location     *string `json:"location,omitempty"`
	Name         *string `json:"name,omitempty"`
	Description  *string `json:"description,omitempty"`
	Blog         *string `json:"blog,omitempty"`
}

// Team describes a team within an organization.
type Team struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Slug         string `json:"slug,omitempty"`
	Description  string `json:"description,omitempty"`
	Privacy      string `json:"privacy,omitempty"`
	Permission   string `json:"permission,omitempty"`
	MembersCount int    `json:"members_count,omitempty"`
	ReposCount   int    `json:"repos_count,omitempty"`

	Organization *Organization `json:"organization,omitempty"`
}

// CreateTeamReq defines the parameters for creating a team.
type CreateTeamReq struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Privacy     string   `json:"privacy,omitempty"`
	Permission  string   `json:"permission,omitempty"`
	RepoNames   []string `json:"repo_names,omitempty"`
	Maintainers []string `json:"maintainers,omitempty"`
}

// UpdateTeamReq is the partial document for updating a team.
type UpdateTeamReq struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Privacy     *string `json:"privacy,omitempty"`
	Permission  *string `json:"permission,omitempty"`
}

// User describes a GitHub user account, as embedded in member listings.
type User struct {
	ID        int64  `json:"id"`
	Login     string `json:"login"`
	Type      string `json:"type,omitempty"`
	SiteAdmin bool   `json:"site_admin,omitempty"`
	HTMLURL   string `json:"html_url,omitempty"`
}

// Repository describes a repository, as returned by team and organization
// repository listings.
type Repository struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	FullName    string `json:"full_name,omitempty"`
	Description string `json:"description,omitempty"`
	Private     bool   `json:"private"`
	Fork        bool   `json:"fork,omitempty"`
	HTMLURL     string `json:"html_url,omitempty"`

	Owner *User `json:"owner,omitempty"`
}

// Membership describes a user's standing in an organization or team.
type Membership struct {
	// State is "active" or "pending".
	State string `json:"state"`
	// Role is "member", "maintainer" or "admin", depending on scope.
	Role string `json:"role,omitempty"`

	Organization *Organization `json:"organization,omitempty"`
	User         *User         `json:"user,omitempty"`
}
