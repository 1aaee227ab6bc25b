package rel

import (
	"fmt"
	"sort"
	"strings"
)

// MissingParameterError describes a URI template whose required placeholder
// had no corresponding entry in the supplied parameters. It is a construction
// error: the request was never issued.
type MissingParameterError struct {
	Template string
	Name     string
}

func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("uri template %q: no value for required parameter %q", e.Template, e.Name)
}

// UnknownRelationError describes a lookup of a relation name the resource
// does not expose. It usually indicates a caller/API version mismatch.
type UnknownRelationError struct {
	Name      string
	Available []string
}

func (e *UnknownRelationError) Error() string {
	if len(e.Available) == 0 {
		return fmt.Sprintf("unknown relation %q (resource exposes no relations)", e.Name)
	}
	available := append([]string(nil), e.Available...)
	sort.Strings(available)
	return fmt.Sprintf("unknown relation %q (have: %s)", e.Name, strings.Join(available, ", "))
}

// UnsupportedVerbError describes an attempt to invoke a Link with an HTTP
// method outside its allowed set. It is a programming error and is returned
// before any network I/O takes place.
type UnsupportedVerbError struct {
	Rel  string
	Verb string
}

func (e *UnsupportedVerbError) Error() string {
	return fmt.Sprintf("relation %q does not support %s", e.Rel, e.Verb)
}

// InvalidRepoIdentifierError describes a repository identifier that could not
// be normalized into an owner/name pair.
type InvalidRepoIdentifierError struct {
	Value interface{}
}

func (e *InvalidRepoIdentifierError) Error() string {
	return fmt.Sprintf("invalid repository identifier %+v", e.Value)
}
