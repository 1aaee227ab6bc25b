package rel

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"

	"cdr.dev/slog"
	"golang.org/x/xerrors"
)

// ClientOptions configures a relation-traversal Client.
type ClientOptions struct {
	// BaseURL is the root URL of the API (required). Relative templates
	// are expanded against it; absolute templates from hypermedia
	// metadata are used verbatim.
	BaseURL *url.URL

	// HTTPClient is the http.Client used for requests (optional). It is
	// the single pluggable transport: connection pooling, timeouts,
	// cancellation, authentication and any middleware (rate limiting,
	// retries, conditional caching) all live in it or its RoundTripper.
	//
	// If omitted, http.DefaultClient is used.
	HTTPClient *http.Client

	// RelTable overrides the client's static root relation table
	// (optional). Defaults to DefaultRelTable.
	RelTable RelTable

	// Log receives per-dispatch debug logging (optional). The zero
	// Logger discards everything.
	Log slog.Logger
}

// Client dispatches Link invocations. It holds no mutable state after
// construction, so a single Client may be shared freely across goroutines.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	table      RelTable
	log        slog.Logger
}

// NewClient creates a relation-traversal client.
func NewClient(opts ClientOptions) (*Client, error) {
	if opts.BaseURL == nil {
		return nil, errors.New("the BaseURL parameter is required")
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	table := opts.RelTable
	if table == nil {
		table = DefaultRelTable()
	}

	return &Client{
		baseURL:    opts.BaseURL,
		httpClient: httpClient,
		table:      table,
		log:        opts.Log,
	}, nil
}

// BaseURL returns the client's base URL.
func (c *Client) BaseURL() url.URL { return *c.baseURL }

// StaticRoot returns the entry Resource built purely from the static
// relation table, with no network round trip. Its payload is empty; only
// its relations are populated.
func (c *Client) StaticRoot() *Resource {
	return &Resource{rels: c.tableRels()}
}

// Root fetches the live root endpoint and returns the entry Resource. Any
// relation templates the server advertises overlay the static table's
// templates; relations the server does not mention keep their static
// definition, and both populate the same Link shape.
func (c *Client) Root(ctx context.Context) (*Resource, error) {
	result, err := c.do(ctx, http.MethodGet, "/", Options{})
	if err != nil {
		return nil, err
	}

	rels := c.tableRels()
	if result.Data != nil {
		for name, link := range result.Data.Rels() {
			if static, ok := rels[name]; ok {
				// Keep the static verb set; hypermedia templates
				// do not advertise allowed methods.
				rels[name] = NewLink(c, name, link.Template(), static.verbs)
				continue
			}
			rels[name] = link
		}
	}

	root := &Resource{rels: rels}
	if result.Data != nil {
		root.fields = result.Data.fields
	}
	return root, nil
}

func (c *Client) tableRels() Rels {
	rels := make(Rels, len(c.table))
	for name, def := range c.table {
		rels[name] = NewLink(c, name, def.Template, Verbs(def.Verbs))
	}
	return rels
}

// do expands nothing and retries nothing: it builds one request, hands it
// to the transport, and wraps whatever came back. Transport failures pass
// through wrapped for context; HTTP statuses of every class are data.
func (c *Client) do(ctx context.Context, method, path string, opts Options) (*Result, error) {
	target := path
	if !strings.Contains(path, "://") {
		target = strings.TrimRight(c.baseURL.String(), "/") + path
	}
	if len(opts.Query) > 0 {
		sep := "?"
		if strings.Contains(target, "?") {
			sep = "&"
		}
		target += sep + opts.Query.Encode()
	}

	var payload io.Reader
	jsonBody := false
	switch body := opts.Body.(type) {
	case nil:
	case emptyBody:
		// Explicit zero-length body: Body is non-nil and
		// Content-Length: 0 goes on the wire.
		payload = bytes.NewReader(nil)
	default:
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, xerrors.Errorf("marshal request body: %w", err)
		}
		payload = bytes.NewReader(encoded)
		jsonBody = true
	}

	req, err := http.NewRequestWithContext(ctx, method, target, payload)
	if err != nil {
		return nil, xerrors.Errorf("create request: %w", err)
	}
	if jsonBody {
		req.Header.Set("Content-Type", "application/json")
	}
	for name, values := range opts.Header {
		req.Header[name] = append([]string(nil), values...)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, xerrors.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }() // Best effort, likely connection dropped.

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, xerrors.Errorf("read response body: %w", err)
	}

	c.log.Debug(ctx, "dispatched request",
		slog.F("method", method),
		slog.F("url", target),
		slog.F("status", resp.StatusCode),
	)

	result := &Result{
		Status: resp.StatusCode,
		Header: resp.Header,
		body:   raw,
	}
	if decoded, ok := decodeJSON(resp.Header.Get("Content-Type"), raw); ok {
		result.Data = newResource(c, decoded)
	}
	return result, nil
}

// decodeJSON decodes a response body when it plausibly carries JSON. Empty
// and non-JSON bodies report false; the Result's Data stays nil for them.
func decodeJSON(contentType string, body []byte) (interface{}, bool) {
	if len(body) == 0 {
		return nil, false
	}
	if contentType != "" && !strings.Contains(contentType, "json") {
		return nil, false
	}
	var decoded interface{}
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, false
	}
	return decoded, true
}
