package github

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/octorel/octorel/rel"
)

// Organization fetches a single organization by login.
func (c *Client) Organization(ctx context.Context, org string) (*Organization, error) {
	var out Organization
	err := c.getInto(ctx, "organization", rel.Options{
		URIParams: rel.Params{"org": org},
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateOrganization applies a partial update to an organization. Fields
// left nil in req are not sent and keep their current values.
func (c *Client) UpdateOrganization(ctx context.Context, org string, req UpdateOrganizationReq) (*Organization, error) {
	link, err := c.rel("organization")
	if err != nil {
		return nil, err
	}
	result, err := link.Patch(ctx, rel.Options{
		URIParams: rel.Params{"org": org},
		Body:      req,
	})
	if err != nil {
		return nil, err
	}
	if result.Status != http.StatusOK {
		return nil, apiError(result)
	}
	var out Organization
	if err := result.Decode(&out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Organizations lists the public organization memberships of a user.
func (c *Client) Organizations(ctx context.Context, user string) ([]Organization, error) {
	var out []Organization
	err := c.getInto(ctx, "user_organizations", rel.Options{
		URIParams: rel.Params{"user": user},
	}, &out)
	return out, err
}

// AllOrganizations lists organizations across the whole instance, in
// ascending ID order starting after since. Pass zero to start from the
// beginning.
func (c *Client) AllOrganizations(ctx context.Context, since int64) ([]Organization, error) {
	opts := rel.Options{}
	if since > 0 {
		opts.Query = url.Values{"since": {strconv.FormatInt(since, 10)}}
	}
	var out []Organization
	err := c.getInto(ctx, "organizations", opts, &out)
	return out, err
}

// OrganizationRepositories lists an organization's repositories.
func (c *Client) OrganizationRepositories(ctx context.Context, org string) ([]Repository, error) {
	var out []Repository
	err := c.getInto(ctx, "organization_repositories", rel.Options{
		URIParams: rel.Params{"org": org},
	}, &out)
	return out, err
}

// OrganizationMembers lists the users belonging to an organization.
func (c *Client) OrganizationMembers(ctx context.Context, org string) ([]User, error) {
	var out []User
	err := c.getInto(ctx, "organization_members", rel.Options{
		URIParams: rel.Params{"org": org},
	}, &out)
	return out, err
}

// OrganizationPublicMembers lists the members of an organization whose
// membership is public.
func (c *Client) OrganizationPublicMembers(ctx context.Context, org string) ([]User, error) {
	var out []User
	err := c.getInto(ctx, "organization_public_members", rel.Options{
		URIParams: rel.Params{"org": org},
	}, &out)
	return out, err
}

// IsOrganizationMember reports whether a user belongs to an organization.
// The service answers 204 for yes and 404 for no; neither is an error
// here.
func (c *Client) IsOrganizationMember(ctx context.Context, org, user string) (bool, error) {
	return c.boolean(ctx, "organization_member", http.MethodGet, rel.Options{
		URIParams: rel.Params{"org": org, "user": user},
	})
}

// IsOrganizationPublicMember reports whether a user's organization
// membership is public.
func (c *Client) IsOrganizationPublicMember(ctx context.Context, org, user string) (bool, error) {
	return c.boolean(ctx, "organization_public_member", http.MethodGet, rel.Options{
		URIParams: rel.Params{"org": org, "user": user},
	})
}

// RemoveOrganizationMember removes a user from every team of an
// organization.
func (c *Client) RemoveOrganizationMember(ctx context.Context, org, user string) (bool, error) {
	return c.boolean(ctx, "organization_member", http.MethodDelete, rel.Options{
		URIParams: rel.Params{"org": org, "user": user},
	})
}

// PublicizeMembership makes a user's organization membership public.
func (c *Client) PublicizeMembership(ctx context.Context, org, user string) (bool, error) {
	return c.boolean(ctx, "organization_public_member", http.MethodPut, rel.Options{
		URIParams: rel.Params{"org": org, "user": user},
	})
}

// ConcealMembership makes a user's organization membership private again.
func (c *Client) ConcealMembership(ctx context.Context, org, user string) (bool, error) {
	return c.boolean(ctx, "organization_public_member", http.MethodDelete, rel.Options{
		URIParams: rel.Params{"org": org, "user": user},
	})
}

// OrganizationMemberships lists the authenticated user's organization
// memberships. State filters to "active" or "pending" when non-empty.
func (c *Client) OrganizationMemberships(ctx context.Context, state string) ([]Membership, error) {
	opts := rel.Options{}
	if state != "" {
		opts.Query = url.Values{"state": {state}}
	}
	var out []Membership
	err := c.getInto(ctx, "organization_memberships", opts, &out)
	return out, err
}

// OrganizationMembership fetches the authenticated user's membership in
// one organization.
func (c *Client) OrganizationMembership(ctx context.Context, org string) (*Membership, error) {
	var out Membership
	err := c.getInto(ctx, "organization_membership", rel.Options{
		URIParams: rel.Params{"org": org},
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateOrganizationMembership sets the role of a user's membership in an
// organization. Adding a user this way leaves the membership "pending"
// until they accept.
func (c *Client) UpdateOrganizationMembership(ctx context.Context, org, user, role string) (*Membership, error) {
	link, err := c.rel("organization_user_membership")
	if err != nil {
		return nil, err
	}
	result, err := link.Put(ctx, rel.Options{
		URIParams: rel.Params{"org": org, "user": user},
		Body:      map[string]string{"role": role},
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

// RemoveOrganizationMembership removes a user's membership in an
// organization entirely.
func (c *Client) RemoveOrganizationMembership(ctx context.Context, org, user string) (bool, error) {
	return c.boolean(ctx, "organization_user_membership", http.MethodDelete, rel.Options{
		URIParams: rel.Params{"org": org, "user": user},
	})
}
