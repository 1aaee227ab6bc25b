package rel

import (
	"context"
	"net/http"

	"golang.org/x/xerrors"
)

// Link is a bound relation: a URI template, the methods it accepts, and the
// client that will dispatch it. Links are immutable values; a Link obtained
// from a Resource may be invoked concurrently from any number of call sites.
type Link struct {
	rel      string
	template string
	verbs    Verbs
	client   *Client
}

// NewLink binds a relation to a client. Most callers obtain Links from a
// Resource or the client's root table instead of constructing them directly.
func NewLink(client *Client, relName, template string, verbs Verbs) Link {
	if len(verbs) == 0 {
		verbs = AllVerbs
	}
	return Link{rel: relName, template: template, verbs: verbs, client: client}
}

// Rel returns the relation name the Link was registered under.
func (l Link) Rel() string { return l.rel }

// Template returns the Link's unexpanded URI template.
func (l Link) Template() string { return l.template }

// Verbs returns the methods the Link accepts.
func (l Link) Verbs() Verbs { return append(Verbs(nil), l.verbs...) }

// Get dispatches a GET against the expanded URI.
func (l Link) Get(ctx context.Context, opts Options) (*Result, error) {
	return l.dispatch(ctx, http.MethodGet, opts)
}

// Post dispatches a POST against the expanded URI.
func (l Link) Post(ctx context.Context, opts Options) (*Result, error) {
	return l.dispatch(ctx, http.MethodPost, opts)
}

// Put dispatches a PUT against the expanded URI.
func (l Link) Put(ctx context.Context, opts Options) (*Result, error) {
	return l.dispatch(ctx, http.MethodPut, opts)
}

// Patch dispatches a PATCH against the expanded URI. The body is a partial
// document; fields absent from it are left untouched by the server.
func (l Link) Patch(ctx context.Context, opts Options) (*Result, error) {
	return l.dispatch(ctx, http.MethodPatch, opts)
}

// Delete dispatches a DELETE against the expanded URI.
func (l Link) Delete(ctx context.Context, opts Options) (*Result, error) {
	return l.dispatch(ctx, http.MethodDelete, opts)
}

// dispatch validates the verb, expands the template, and hands the request
// to the client. Verb validation happens before any network I/O.
func (l Link) dispatch(ctx context.Context, method string, opts Options) (*Result, error) {
	if l.client == nil {
		return nil, xerrors.Errorf("relation %q: link is not bound to a client", l.rel)
	}
	if !l.verbs.Contains(method) {
		return nil, &UnsupportedVerbError{Rel: l.rel, Verb: method}
	}

	path, err := Expand(l.template, opts.URIParams)
	if err != nil {
		return nil, err
	}

	return l.client.do(ctx, method, path, opts)
}
