package rel

import (
	"net/http"
	"net/url"
)

// emptyBody is the type of the EmptyBody sentinel.
type emptyBody struct{}

// EmptyBody forces a request to carry an explicit zero-length body with
// Content-Length: 0 rather than no body at all. Some endpoints (team
// membership add, for one) are served by backends that reject a bodyless
// PUT; the distinction is part of the remote contract and is preserved
// here rather than normalized away.
var EmptyBody emptyBody

// Options carries the caller-supplied inputs for a single Link invocation.
// The zero value means "no options": no extra URI parameters, no query
// string, no body.
type Options struct {
	// URIParams are merged into the parameters used for template
	// expansion.
	URIParams Params

	// Query is appended to the expanded URI's query string.
	Query url.Values

	// Body is JSON-encoded into the request body. Pass EmptyBody to send
	// an explicit zero-length body; leave nil to send no body.
	Body interface{}

	// Header adds request headers to this dispatch only.
	Header http.Header
}

// Merge layers overlay onto o and returns the combination as a new value.
// Overlay entries win on collision; a non-nil overlay Body replaces the
// base Body. Neither input is mutated.
func (o Options) Merge(overlay Options) Options {
	merged := Options{
		URIParams: mergeParams(o.URIParams, overlay.URIParams),
		Query:     mergeQuery(o.Query, overlay.Query),
		Body:      o.Body,
	}
	if overlay.Body != nil {
		merged.Body = overlay.Body
	}
	if len(o.Header) > 0 || len(overlay.Header) > 0 {
		merged.Header = make(http.Header, len(o.Header)+len(overlay.Header))
		for name, values := range o.Header {
			merged.Header[name] = append([]string(nil), values...)
		}
		for name, values := range overlay.Header {
			merged.Header[name] = append([]string(nil), values...)
		}
	}
	return merged
}

// mergeParams layers overlay over base into a fresh map. Neither input is
// mutated.
func mergeParams(base, overlay Params) Params {
	merged := make(Params, len(base)+len(overlay))
	for name, value := range base {
		merged[name] = value
	}
	for name, value := range overlay {
		merged[name] = value
	}
	return merged
}

// mergeQuery layers overlay over base into fresh url.Values. Neither input
// is mutated.
func mergeQuery(base, overlay url.Values) url.Values {
	merged := make(url.Values, len(base)+len(overlay))
	for name, values := range base {
		merged[name] = append([]string(nil), values...)
	}
	for name, values := range overlay {
		merged[name] = append([]string(nil), values...)
	}
	return merged
}
