package github_test

import (
	"encoding/json"
	"net/http"
)

// jsonDecode unmarshals a request body for assertions.
func jsonDecode(r *http.Request, out interface{}) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(out)
}
