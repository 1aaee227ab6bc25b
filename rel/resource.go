package rel

import (
	"strings"

	"github.com/mitchellh/mapstructure"
	"golang.org/x/xerrors"
)

// Resource is a decoded API payload together with the relation registry
// derived from its hypermedia metadata. A Resource is an immutable value:
// it is created when a response body is decoded and carries no state beyond
// what that body contained.
//
// Two metadata conventions feed the registry. Fields named `<rel>_url`
// holding a string register a relation named `<rel>` (the GitHub style),
// and a `links` array of {rel, href} objects registers one relation per
// entry (the JRD/HAL style). Both produce identical Link shapes.
type Resource struct {
	fields map[string]interface{}
	items  []*Resource
	rels   Rels
}

var _ RelationSource = (*Resource)(nil)

// NewResource builds a Resource from already-decoded fields, deriving the
// relation registry from any hypermedia metadata among them. Links on a
// Resource built this way are unbound: they resolve and validate but cannot
// dispatch. Intended for fixtures and mocks; live Resources come from
// dispatching Links.
func NewResource(fields map[string]interface{}) *Resource {
	return newResource(nil, fields)
}

// newResource derives a Resource from a decoded JSON value. Objects get a
// relation registry; arrays become a list of element Resources; scalars
// produce an empty Resource.
func newResource(client *Client, value interface{}) *Resource {
	switch payload := value.(type) {
	case map[string]interface{}:
		return &Resource{fields: payload, rels: relsFromPayload(client, payload)}
	case []interface{}:
		items := make([]*Resource, 0, len(payload))
		for _, element := range payload {
			items = append(items, newResource(client, element))
		}
		return &Resource{items: items}
	default:
		return &Resource{}
	}
}

// relsFromPayload extracts the relation registry embedded in a decoded
// object. Hypermedia templates do not advertise allowed methods, so links
// built here accept every verb.
func relsFromPayload(client *Client, payload map[string]interface{}) Rels {
	rels := Rels{}

	for key, value := range payload {
		template, ok := value.(string)
		if !ok || !strings.HasSuffix(key, "_url") || template == "" {
			continue
		}
		name := strings.TrimSuffix(key, "_url")
		rels[name] = NewLink(client, name, template, AllVerbs)
	}

	links, ok := payload["links"].([]interface{})
	if !ok {
		return rels
	}
	for _, entry := range links {
		object, ok := entry.(map[string]interface{})
		if !ok {
			continue
		}
		name, _ := object["rel"].(string)
		href, _ := object["href"].(string)
		if name == "" || href == "" {
			continue
		}
		rels[name] = NewLink(client, name, href, AllVerbs)
	}
	return rels
}

// Rel resolves a named relation from the resource's registry.
func (r *Resource) Rel(name string) (Link, error) {
	return r.rels.Rel(name)
}

// Rels returns the resource's relation registry.
func (r *Resource) Rels() Rels { return r.rels }

// IsArray reports whether the payload was a JSON array.
func (r *Resource) IsArray() bool { return r.items != nil }

// Array returns the element Resources of an array payload, or nil for an
// object payload.
func (r *Resource) Array() []*Resource { return r.items }

// Fields returns a copy of the object payload's top-level fields.
func (r *Resource) Fields() map[string]interface{} {
	fields := make(map[string]interface{}, len(r.fields))
	for key, value := range r.fields {
		fields[key] = value
	}
	return fields
}

// String returns a top-level string field.
func (r *Resource) String(key string) (string, bool) {
	value, ok := r.fields[key].(string)
	return value, ok
}

// Int returns a top-level numeric field. JSON numbers decode as float64;
// the value is truncated toward zero.
func (r *Resource) Int(key string) (int64, bool) {
	value, ok := r.fields[key].(float64)
	return int64(value), ok
}

// Bool returns a top-level boolean field.
func (r *Resource) Bool(key string) (bool, bool) {
	value, ok := r.fields[key].(bool)
	return value, ok
}

// Decode unpacks an object payload into out, matching fields by their json
// struct tags.
func (r *Resource) Decode(out interface{}) error {
	if r.fields == nil {
		return xerrors.New("decode resource: payload is not an object")
	}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: "json",
		Result:  out,
	})
	if err != nil {
		return xerrors.Errorf("build decoder: %w", err)
	}
	if err := decoder.Decode(r.fields); err != nil {
		return xerrors.Errorf("decode resource: %w", err)
	}
	return nil
}
