// Package transport provides http.RoundTripper middleware for the
// relation-traversal client: authentication, rate limiting, retries and
// conditional-request caching. Each wrapper is independent; compose them by
// chaining Base fields and install the outermost one in an http.Client.
package transport

import "net/http"

// DefaultAccept is the media type requested from GitHub-style APIs.
const DefaultAccept = "application/vnd.github.v3+json"

// apiVersion pins the REST API version header so behavior stays consistent
// as the remote service evolves.
const apiVersion = "2022-11-28"

// TokenAuth injects token authentication and the standard accept headers
// into every request.
type TokenAuth struct {
	// Token is the personal access or installation token.
	Token string

	// Base is the wrapped RoundTripper. Defaults to
	// http.DefaultTransport.
	Base http.RoundTripper
}

var _ http.RoundTripper = (*TokenAuth)(nil)

// RoundTrip implements http.RoundTripper. The request is cloned before
// mutation, per the RoundTripper contract.
func (t *TokenAuth) RoundTrip(req *http.Request) (*http.Response, error) {
	clone := req.Clone(req.Context())
	if t.Token != "" {
		clone.Header.Set("Authorization", "token "+t.Token)
	}
	if clone.Header.Get("Accept") == "" {
		clone.Header.Set("Accept", DefaultAccept)
	}
	clone.Header.Set("X-GitHub-Api-Version", apiVersion)
	return t.base().RoundTrip(clone)
}

func (t *TokenAuth) base() http.RoundTripper {
	if t.Base == nil {
		return http.DefaultTransport
	}
	return t.Base
}
