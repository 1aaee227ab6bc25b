package rel

import (
	"encoding/json"
	"net/http"

	"golang.org/x/xerrors"
)

// Result is the outcome of dispatching a Link: the raw status, the response
// headers, and the decoded payload. Non-2xx statuses are not errors at this
// layer; several endpoints legitimately answer 204 for success and 404 for
// "no", and the calling convention branches on Status directly.
type Result struct {
	// Status is the HTTP status code, whatever its class.
	Status int

	// Header holds the response headers.
	Header http.Header

	// Data is the decoded payload with its derived relations, or nil when
	// the body was empty or not JSON.
	Data *Resource

	body []byte
}

// Boolean interprets the result under the no-content convention used by
// mutating, bodyless endpoints: true exactly when the status is 204.
func (r *Result) Boolean() bool {
	return r.Status == http.StatusNoContent
}

// Body returns the raw response body.
func (r *Result) Body() []byte { return r.body }

// Decode unmarshals the raw response body into out.
func (r *Result) Decode(out interface{}) error {
	if len(r.body) == 0 {
		return xerrors.New("decode result: empty body")
	}
	if err := json.Unmarshal(r.body, out); err != nil {
		return xerrors.Errorf("decode result: %w", err)
	}
	return nil
}
