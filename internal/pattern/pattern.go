// Package pattern owns the path-template placeholder syntax used across the
// route-map library. A pattern is a plain path string whose parameter
// segments start with a colon (e.g. "/users/:id"). The rest of the library
// treats patterns as opaque strings and delegates substitution here.
package pattern

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// ErrMissingParam is returned (wrapped) by Expand when a pattern contains a
// parameter segment with no corresponding value.
var ErrMissingParam = errors.New("pattern: missing param")

// Expand substitutes the :name segments of pattern with values from params
// and returns the concrete path. Values are path-escaped. Params may be nil
// when the pattern has no parameter segments.
func Expand(p string, params map[string]string) (string, error) {
	trimmed := strings.Trim(p, "/")
	if trimmed == "" {
		return "/", nil
	}

	segs := strings.Split(trimmed, "/")
	parts := make([]string, 0, len(segs))
	for _, s := range segs {
		if !strings.HasPrefix(s, ":") {
			parts = append(parts, s)
			continue
		}
		name := strings.TrimPrefix(s, ":")
		v, ok := params[name]
		if !ok {
			return "", fmt.Errorf("%w: %s in %s", ErrMissingParam, name, p)
		}
		parts = append(parts, url.PathEscape(v))
	}
	return "/" + strings.Join(parts, "/"), nil
}

// Names returns the parameter names that appear in pattern, in order.
func Names(p string) []string {
	var names []string
	for _, s := range strings.Split(strings.Trim(p, "/"), "/") {
		if strings.HasPrefix(s, ":") && len(s) > 1 {
			names = append(names, s[1:])
		}
	}
	return names
}
