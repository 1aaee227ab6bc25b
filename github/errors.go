package github

import (
	"encoding/json"
	"fmt"

	"github.com/octorel/octorel/rel"
)

// APIError reports a response status a typed accessor could not interpret.
// The relation layer hands every status back as data; methods in this
// package that promise a decoded value convert unexpected statuses into an
// APIError so callers get a regular Go error instead of a half-filled
// struct.
type APIError struct {
	// Status is the HTTP status code.
	Status int

	// Message is the service's error description, when the body carried
	// one.
	Message string

	// DocumentationURL points at the relevant API documentation, when
	// present.
	DocumentationURL string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("unexpected status %d", e.Status)
	}
	return fmt.Sprintf("%s (status %d)", e.Message, e.Status)
}

// apiError builds an APIError from a non-2xx Result, pulling the message
// out of the standard {"message", "documentation_url"} error body.
func apiError(result *rel.Result) error {
	e := &APIError{Status: result.Status}

	var body struct {
		Message          string `json:"message"`
		DocumentationURL string `json:"documentation_url"`
	}
	if err := json.Unmarshal(result.Body(), &body); err == nil {
		e.Message = body.Message
		e.DocumentationURL = body.DocumentationURL
	}
	return e
}
