// Package github maps organization and team operations onto the generic
// relation-traversal client in package rel. Every method is a thin
// delegation: merge the caller's options, follow a named relation, invoke a
// verb, and unwrap either the decoded body or the no-content boolean. No
// business logic, retry policy or caching lives here.
package github

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"sync"

	"cdr.dev/slog"
	"golang.org/x/xerrors"

	"github.com/octorel/octorel/rel"
	"github.com/octorel/octorel/transport"
)

// defaultBaseURL is the public GitHub API endpoint.
const defaultBaseURL = "https://api.github.com"

// ClientOptions contains options for the GitHub client.
type ClientOptions struct {
	// BaseURL is the API root (optional). Defaults to the public GitHub
	// API; point it at a GitHub Enterprise or compatible installation
	// otherwise.
	BaseURL *url.URL

	// Token authenticates requests (optional). When set and no
	// HTTPClient is supplied, a transport.TokenAuth is installed.
	Token string

	// HTTPClient is the http.Client to use for requests (optional).
	// Supply one to bring your own transport middleware (rate limiting,
	// retries, conditional caching from package transport, or anything
	// else).
	HTTPClient *http.Client

	// RelTable overrides the static root relation table (optional).
	RelTable rel.RelTable

	// Log receives debug logging from the relation layer (optional).
	Log slog.Logger
}

// Client is the GitHub organization/team API surface. The zero value is
// meaningless; use NewClient.
type Client struct {
	api *rel.Client

	mu   sync.RWMutex
	root *rel.Resource
}

// NewClient creates a GitHub client.
func NewClient(opts ClientOptions) (*Client, error) {
	baseURL := opts.BaseURL
	if baseURL == nil {
		parsed, err := url.Parse(defaultBaseURL)
		if err != nil {
			return nil, xerrors.Errorf("parse default base URL: %w", err)
		}
		baseURL = parsed
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Transport: &transport.TokenAuth{Token: opts.Token},
		}
	} else if opts.Token != "" {
		return nil, errors.New("supply either Token or HTTPClient, not both; wrap your transport with transport.TokenAuth instead")
	}

	api, err := rel.NewClient(rel.ClientOptions{
		BaseURL:    baseURL,
		HTTPClient: httpClient,
		RelTable:   opts.RelTable,
		Log:        opts.Log,
	})
	if err != nil {
		return nil, err
	}

	return &Client{api: api, root: api.StaticRoot()}, nil
}

// Discover fetches the live root endpoint and overlays its advertised
// relation templates on the static table. Calling it is optional; the
// static table alone serves every operation in this package.
func (c *Client) Discover(ctx context.Context) error {
	root, err := c.api.Root(ctx)
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.root = root
	c.mu.Unlock()
	return nil
}

// Root returns the entry Resource currently in use.
func (c *Client) Root() *rel.Resource {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.root
}

// rel resolves a relation on the entry resource.
func (c *Client) rel(name string) (rel.Link, error) {
	return c.Root().Rel(name)
}

// getInto follows a relation with GET and decodes a 200 body into out.
func (c *Client) getInto(ctx context.Context, relName string, opts rel.Options, out interface{}) error {
	link, err := c.rel(relName)
	if err != nil {
		return err
	}
	result, err := link.Get(ctx, opts)
	if err != nil {
		return err
	}
	if result.Status != http.StatusOK {
		return apiError(result)
	}
	return result.Decode(out)
}

// boolean follows a relation with the given verb and reports the
// no-content convention: true exactly when the response status is 204.
// A transport or construction failure is the only error path.
func (c *Client) boolean(ctx context.Context, relName, verb string, opts rel.Options) (bool, error) {
	link, err := c.rel(relName)
	if err != nil {
		return false, err
	}

	var result *rel.Result
	switch verb {
	case http.MethodGet:
		result, err = link.Get(ctx, opts)
	case http.MethodPut:
		result, err = link.Put(ctx, opts)
	case http.MethodDelete:
		result, err = link.Delete(ctx, opts)
	default:
		return false, xerrors.Errorf("no boolean convention for %s", verb)
	}
	if err != nil {
		return false, err
	}
	return result.Boolean(), nil
}
