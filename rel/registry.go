package rel

import (
	"net/http"
	"sort"
	"strings"
)

// Verbs is the set of HTTP methods a Link accepts.
type Verbs []string

// Contains reports whether the set includes the given method.
func (v Verbs) Contains(method string) bool {
	for _, verb := range v {
		if strings.EqualFold(verb, method) {
			return true
		}
	}
	return false
}

// AllVerbs is the full method set. Links derived from hypermedia metadata
// use it, since link templates do not advertise which methods they accept.
var AllVerbs = Verbs{
	http.MethodGet,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
}

// RelationSource is anything that can resolve a named relation to a Link:
// a Resource carrying hypermedia metadata, a Rels registry, or the client's
// static root table. All sources produce the same Link shape, so callers
// never need to know which one served them.
type RelationSource interface {
	Rel(name string) (Link, error)
}

// Rels is a relation registry: a mapping from relation name to Link. It is
// built once per resource and not mutated afterwards.
type Rels map[string]Link

var _ RelationSource = Rels(nil)

// Rel looks up a relation by name. Absent names fail with a
// *UnknownRelationError; repeated lookups of a present name return
// equivalent Links.
func (r Rels) Rel(name string) (Link, error) {
	link, ok := r[name]
	if !ok {
		return Link{}, &UnknownRelationError{Name: name, Available: r.Names()}
	}
	return link, nil
}

// Names lists the registered relation names in sorted order.
func (r Rels) Names() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
