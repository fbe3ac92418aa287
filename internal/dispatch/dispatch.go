// Package dispatch matches incoming HTTP requests against the Route leaves
// of a routemap.Map. It is the consuming side of the route-map contract: the
// map fixes the set, order and patterns of the routes, and the Mux attaches
// handlers to them by dotted name ("posts.comments.show").
//
// Matching is segment-based and tries routes in map order, so the canonical
// resource ordering (new before show) is what disambiguates /posts/new from
// /posts/:id. Parameter segments start with ':' and match a single path
// segment; captured values are injected into the request context.
package dispatch

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/dministrator/routemap/pkg/routemap"
)

// ctxParamsKey is the context key used to store path parameters on requests.
type ctxParamsKey struct{}

// ParamsFromContext returns the route parameters stored on the request's
// context. If none are present an empty map is returned.
func ParamsFromContext(ctx context.Context) map[string]string {
	if ctx == nil {
		return map[string]string{}
	}
	if v, ok := ctx.Value(ctxParamsKey{}).(map[string]string); ok && v != nil {
		return v
	}
	return map[string]string{}
}

// Param is a convenience helper to fetch a single path parameter by name.
// It returns an empty string when not present.
func Param(r *http.Request, name string) string {
	return ParamsFromContext(r.Context())[name]
}

// entry holds the compiled representation of a single named route.
type entry struct {
	name     string
	route    routemap.Route
	segments []string // pattern split by '/'
	handler  http.HandlerFunc
}

// Mux dispatches requests over the routes of a routemap.Map. Routes without
// a registered handler never match. The route map is treated as immutable;
// a Mux may be shared freely across goroutines once handlers are attached.
type Mux struct {
	entries []*entry
	byName  map[string]*entry

	// NotFound handler can be customized. If nil, http.NotFound is used.
	NotFound http.Handler
	// MethodNotAllowed handler called when a path matches but method doesn't.
	MethodNotAllowed http.Handler
}

// New compiles the map's Route leaves into a Mux, preserving map order.
func New(m *routemap.Map) *Mux {
	mux := &Mux{byName: make(map[string]*entry)}
	for _, nr := range m.Flatten() {
		e := &entry{
			name:     nr.Name,
			route:    nr.Route,
			segments: splitPath(nr.Route.Pattern),
		}
		mux.entries = append(mux.entries, e)
		mux.byName[nr.Name] = e
	}
	return mux
}

// Handle attaches a handler to the named route. It returns an error when the
// name does not exist in the route map.
func (m *Mux) Handle(name string, h http.HandlerFunc) error {
	e, ok := m.byName[name]
	if !ok {
		return fmt.Errorf("dispatch: unknown route %s", name)
	}
	e.handler = h
	return nil
}

// MustHandle is Handle that panics on an unknown route name. Intended for
// wiring at startup where a bad name is a programming error.
func (m *Mux) MustHandle(name string, h http.HandlerFunc) {
	if err := m.Handle(name, h); err != nil {
		panic(err)
	}
}

// Route returns the Route registered under name.
func (m *Mux) Route(name string) (routemap.Route, bool) {
	e, ok := m.byName[name]
	if !ok {
		return routemap.Route{}, false
	}
	return e.route, true
}

// URL builds a concrete path for the named route by substituting params into
// its pattern. Returns an error if the name is unknown or a required param
// is missing.
func (m *Mux) URL(name string, params map[string]string) (string, error) {
	e, ok := m.byName[name]
	if !ok {
		return "", fmt.Errorf("dispatch: unknown route %s", name)
	}
	return e.route.Href(params)
}

// ServeHTTP implements http.Handler. It finds the first matching route in
// map order, injects params into the request context, and invokes the
// handler. If no route matches, NotFound is called. If a path matches but
// the method does not, MethodNotAllowed is called.
func (m *Mux) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	path := normalizePath(req.URL.Path)
	var methodMismatch bool

	for _, e := range m.entries {
		if e.handler == nil {
			continue
		}
		ok, params := matchSegments(e.segments, path)
		if !ok {
			continue
		}
		if e.route.Method != routemap.MethodAny && e.route.Method != req.Method {
			methodMismatch = true
			continue
		}

		ctx := context.WithValue(req.Context(), ctxParamsKey{}, params)
		e.handler(w, req.WithContext(ctx))
		return
	}

	if methodMismatch {
		if m.MethodNotAllowed != nil {
			m.MethodNotAllowed.ServeHTTP(w, req)
			return
		}
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	if m.NotFound != nil {
		m.NotFound.ServeHTTP(w, req)
		return
	}
	http.NotFound(w, req)
}

// splitPath splits a pattern into segments, preserving parameter segments.
// Example: "/users/:id/edit" -> ["users", ":id", "edit"]
func splitPath(p string) []string {
	p = strings.Trim(p, "/")
	if p == "" {
		return []string{}
	}
	return strings.Split(p, "/")
}

// normalizePath prepares an incoming request path for matching.
// It removes a trailing slash unless the path is just "/".
func normalizePath(p string) string {
	if p == "/" {
		return p
	}
	p = strings.TrimSuffix(p, "/")
	if p == "" {
		return "/"
	}
	return p
}

// matchSegments attempts to match the candidate path to the route segments.
// Returns ok and a map of captured parameters when matched.
func matchSegments(segs []string, path string) (bool, map[string]string) {
	if len(segs) == 0 {
		return path == "/", map[string]string{}
	}

	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return false, nil
	}
	parts := strings.Split(trimmed, "/")
	if len(parts) != len(segs) {
		return false, nil
	}

	params := map[string]string{}
	for i := 0; i < len(segs); i++ {
		s := segs[i]
		p := parts[i]
		if strings.HasPrefix(s, ":") {
			name := strings.TrimPrefix(s, ":")
			if name == "" {
				return false, nil
			}
			params[name] = p
			continue
		}
		if s != p {
			return false, nil
		}
	}
	return true, params
}
