package github

import (
	"strings"

	"github.com/octorel/octorel/rel"
)

// Repo is the canonical two-field repository identity used as URI
// parameters by every repository-scoped operation.
type Repo struct {
	Owner string
	Name  string
}

// String renders the identity back to "owner/name" shorthand.
func (r Repo) String() string { return r.Owner + "/" + r.Name }

// uriParams returns the identity as template parameters.
func (r Repo) uriParams() rel.Params {
	return rel.Params{"owner": r.Owner, "repo": r.Name}
}

// ParseRepo normalizes any of the accepted repository shapes into a Repo:
//
//   - the "owner/name" shorthand string
//   - a map with "owner" and "name" (or "repo") keys
//   - a Repo or *Repo, returned as-is
//   - a *rel.Resource whose payload carries those fields, e.g. an element
//     of a repository listing
//
// Shapes that cannot be parsed fail with *rel.InvalidRepoIdentifierError.
func ParseRepo(id interface{}) (Repo, error) {
	switch v := id.(type) {
	case Repo:
		if v.Owner == "" || v.Name == "" {
			return Repo{}, &rel.InvalidRepoIdentifierError{Value: id}
		}
		return v, nil

	case *Repo:
		if v == nil {
			return Repo{}, &rel.InvalidRepoIdentifierError{Value: id}
		}
		return ParseRepo(*v)

	case string:
		parts := strings.Split(v, "/")
		if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
			return Repo{}, &rel.InvalidRepoIdentifierError{Value: id}
		}
		return Repo{Owner: parts[0], Name: parts[1]}, nil

	case map[string]string:
		generic := make(map[string]interface{}, len(v))
		for key, value := range v {
			generic[key] = value
		}
		return repoFromFields(generic, id)

	case map[string]interface{}:
		return repoFromFields(v, id)

	case *rel.Resource:
		if v == nil {
			return Repo{}, &rel.InvalidRepoIdentifierError{Value: id}
		}
		return repoFromFields(v.Fields(), id)

	default:
		return Repo{}, &rel.InvalidRepoIdentifierError{Value: id}
	}
}

// repoFromFields extracts the identity from decoded fields. A "full_name"
// shorthand wins, then an owner object or string paired with "name"/"repo".
func repoFromFields(fields map[string]interface{}, original interface{}) (Repo, error) {
	if full, ok := fields["full_name"].(string); ok {
		return ParseRepo(full)
	}

	name, ok := fields["name"].(string)
	if !ok {
		name, ok = fields["repo"].(string)
	}
	if !ok || name == "" {
		return Repo{}, &rel.InvalidRepoIdentifierError{Value: original}
	}

	switch owner := fields["owner"].(type) {
	case string:
		if owner == "" {
			return Repo{}, &rel.InvalidRepoIdentifierError{Value: original}
		}
		return Repo{Owner: owner, Name: name}, nil
	case map[string]interface{}:
		login, ok := owner["login"].(string)
		if !ok || login == "" {
			return Repo{}, &rel.InvalidRepoIdentifierError{Value: original}
		}
		return Repo{Owner: login, Name: name}, nil
	default:
		return Repo{}, &rel.InvalidRepoIdentifierError{Value: original}
	}
}
