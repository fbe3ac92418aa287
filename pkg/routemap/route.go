// Package routemap builds typed route trees from a declarative description
// of application routes.
//
// The package produces immutable Route values (HTTP method + path pattern)
// arranged in an insertion-ordered Map. Application code obtains fragments
// from the Resource/Resources generators, nests them into a Tree literal and
// hands the tree to CreateRoutes, which normalizes every leaf into a Route.
// A matching engine consumes the resulting Map; this package never performs
// request dispatch itself and never parses pattern syntax beyond plain
// string concatenation.
package routemap

import (
	"strings"

	"github.com/dministrator/routemap/internal/pattern"
)

// MethodAny is the wildcard method sentinel: a Route carrying it is intended
// to match any HTTP verb.
const MethodAny = "*"

// Route is an immutable (method, pattern) pair. Two Routes are equal iff
// both fields are equal; the struct is comparable so == works directly.
type Route struct {
	Method  string
	Pattern string
}

// NewRoute constructs a Route. Method must be a non-empty verb token or
// MethodAny, and pattern a non-empty path string. Both are programming
// errors when violated, so NewRoute panics rather than returning an error.
func NewRoute(method, p string) Route {
	if method == "" {
		panic("routemap: route method cannot be empty")
	}
	if p == "" {
		panic("routemap: route pattern cannot be empty")
	}
	if method != MethodAny {
		method = strings.ToUpper(method)
	}
	return Route{Method: method, Pattern: p}
}

// Equal reports structural equality on (method, pattern).
func (r Route) Equal(o Route) bool { return r == o }

// Href substitutes the pattern's parameter placeholders with values from
// params and returns the concrete path. It returns an error wrapping
// pattern.ErrMissingParam when a required placeholder has no value.
func (r Route) Href(params map[string]string) (string, error) {
	return pattern.Expand(r.Pattern, params)
}

// URL is Href joined onto an absolute base, e.g.
// URL("https://example.com", ...) -> "https://example.com/users/42".
func (r Route) URL(base string, params map[string]string) (string, error) {
	path, err := r.Href(params)
	if err != nil {
		return "", err
	}
	return strings.TrimSuffix(base, "/") + path, nil
}

// String renders the route as "METHOD /pattern" for logs and route tables.
func (r Route) String() string {
	return r.Method + " " + r.Pattern
}
