package routemap

import "strings"

// Map is an insertion-ordered, string-keyed route tree. A value is either a
// Route leaf or a nested *Map. Key order is observable and preserved through
// every operation; Map is deliberately backed by a pair list rather than a
// Go map so iteration order never depends on hashing.
//
// The zero value is not useful; use NewMap or one of the generators.
type Map struct {
	entries []mapEntry
}

type mapEntry struct {
	key   string
	route Route // valid when sub == nil
	sub   *Map
}

// NewMap returns an empty Map.
func NewMap() *Map { return &Map{} }

// Len returns the number of entries at this level.
func (m *Map) Len() int { return len(m.entries) }

// Keys returns the keys at this level in insertion order.
func (m *Map) Keys() []string {
	keys := make([]string, len(m.entries))
	for i, e := range m.entries {
		keys[i] = e.key
	}
	return keys
}

// Route returns the Route stored under key at this level. The second return
// is false when the key is absent or holds a nested Map.
func (m *Map) Route(key string) (Route, bool) {
	for _, e := range m.entries {
		if e.key == key && e.sub == nil {
			return e.route, true
		}
	}
	return Route{}, false
}

// Sub returns the nested Map stored under key, or nil when the key is absent
// or holds a Route leaf.
func (m *Map) Sub(key string) *Map {
	for _, e := range m.entries {
		if e.key == key && e.sub != nil {
			return e.sub
		}
	}
	return nil
}

// Has reports whether key is present at this level (leaf or branch).
func (m *Map) Has(key string) bool {
	for _, e := range m.entries {
		if e.key == key {
			return true
		}
	}
	return false
}

// Set stores a Route under key. An existing entry keeps its position and is
// overwritten; a new key appends.
func (m *Map) Set(key string, r Route) {
	for i := range m.entries {
		if m.entries[i].key == key {
			m.entries[i] = mapEntry{key: key, route: r}
			return
		}
	}
	m.entries = append(m.entries, mapEntry{key: key, route: r})
}

// SetSub stores a nested Map under key with the same position semantics as
// Set. The sub map is stored as given, not copied.
func (m *Map) SetSub(key string, sub *Map) {
	for i := range m.entries {
		if m.entries[i].key == key {
			m.entries[i] = mapEntry{key: key, sub: sub}
			return
		}
	}
	m.entries = append(m.entries, mapEntry{key: key, sub: sub})
}

// merge splices the entries of other into m, preserving the position of keys
// already present (their value is replaced) and appending new ones.
func (m *Map) merge(other *Map) {
	for _, e := range other.entries {
		if e.sub != nil {
			m.SetSub(e.key, e.sub)
		} else {
			m.Set(e.key, e.route)
		}
	}
}

// Clone returns a deep copy of the map. Route values are shared (they are
// immutable); the tree structure is copied.
func (m *Map) Clone() *Map {
	if m == nil {
		return nil
	}
	out := &Map{entries: make([]mapEntry, len(m.entries))}
	for i, e := range m.entries {
		if e.sub != nil {
			out.entries[i] = mapEntry{key: e.key, sub: e.sub.Clone()}
		} else {
			out.entries[i] = e
		}
	}
	return out
}

// NamedRoute pairs a Route with its dotted path in the tree, e.g.
// "posts.comments.show".
type NamedRoute struct {
	Name  string
	Route Route
}

// Walk visits every Route leaf depth-first in insertion order, passing the
// dotted name. Returning a non-nil error from fn stops the walk.
func (m *Map) Walk(fn func(name string, r Route) error) error {
	return m.walk(nil, fn)
}

func (m *Map) walk(prefix []string, fn func(string, Route) error) error {
	for _, e := range m.entries {
		path := append(prefix, e.key)
		if e.sub != nil {
			if err := e.sub.walk(path, fn); err != nil {
				return err
			}
			continue
		}
		if err := fn(strings.Join(path, "."), e.route); err != nil {
			return err
		}
	}
	return nil
}

// Flatten returns every Route leaf with its dotted name, depth-first in
// insertion order. This is the view the dispatch engine and route-table
// printers consume.
func (m *Map) Flatten() []NamedRoute {
	var out []NamedRoute
	_ = m.Walk(func(name string, r Route) error {
		out = append(out, NamedRoute{Name: name, Route: r})
		return nil
	})
	return out
}
