package rel

import (
	"net/url"
	"strings"

	"golang.org/x/xerrors"
)

// Params are the named values substituted into a URI template.
type Params map[string]string

// Expand resolves a URI template against the given parameters.
//
// Plain `{name}` placeholders are required: every one must have an entry in
// params or Expand returns a *MissingParameterError. Values are
// percent-encoded as path segments. The RFC 6570 forms `{/name}` (optional
// path segment) and `{?a,b}` / `{&a,b}` (query expansion) are resolved from
// whichever of the listed parameters are present and drop the rest, matching
// the templates GitHub-style APIs advertise from their root endpoint.
//
// Parameters without a matching placeholder are ignored; they remain the
// caller's to use as query or body data. Expansion is deterministic and
// stateless.
func Expand(template string, params Params) (string, error) {
	var b strings.Builder
	rest := template

	for {
		open := strings.IndexByte(rest, '{')
		if open < 0 {
			b.WriteString(rest)
			return b.String(), nil
		}
		b.WriteString(rest[:open])
		rest = rest[open+1:]

		end := strings.IndexByte(rest, '}')
		if end < 0 {
			return "", xerrors.Errorf("uri template %q: unterminated placeholder", template)
		}
		expr := rest[:end]
		rest = rest[end+1:]

		if expr == "" {
			return "", xerrors.Errorf("uri template %q: empty placeholder", template)
		}

		switch expr[0] {
		case '?', '&':
			expandQuery(&b, expr, params)
		case '/':
			if value, ok := params[expr[1:]]; ok {
				b.WriteByte('/')
				b.WriteString(url.PathEscape(value))
			}
		default:
			value, ok := params[expr]
			if !ok {
				return "", &MissingParameterError{Template: template, Name: expr}
			}
			b.WriteString(url.PathEscape(value))
		}
	}
}

// expandQuery appends the present members of a {?a,b} or {&a,b} expression
// in the order the template lists them.
func expandQuery(b *strings.Builder, expr string, params Params) {
	sep := byte('?')
	if expr[0] == '&' || strings.Contains(b.String(), "?") {
		sep = '&'
	}
	for _, name := range strings.Split(expr[1:], ",") {
		value, ok := params[name]
		if !ok {
			continue
		}
		b.WriteByte(sep)
		sep = '&'
		b.WriteString(url.QueryEscape(name))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(value))
	}
}

// TemplateParams lists the parameter names a template references, in order
// of appearance. Names inside optional expressions are included.
func TemplateParams(template string) []string {
	var names []string
	rest := template
	for {
		open := strings.IndexByte(rest, '{')
		if open < 0 {
			return names
		}
		rest = rest[open+1:]
		end := strings.IndexByte(rest, '}')
		if end < 0 {
			return names
		}
		expr := strings.TrimLeft(rest[:end], "?&/")
		rest = rest[end+1:]
		for _, name := range strings.Split(expr, ",") {
			if name != "" {
				names = append(names, name)
			}
		}
	}
}
