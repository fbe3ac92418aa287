package routemap

import (
	"errors"
	"fmt"
)

// ErrInvalidDescriptor is returned (wrapped) by CreateRoutes when a leaf of
// the input tree is not a recognized route descriptor shape.
var ErrInvalidDescriptor = errors.New("routemap: invalid route descriptor")

// Tree is the ordered literal input to CreateRoutes. Each Entry pairs a key
// with a value; values may be:
//
//   - string: a bare path pattern, normalized to a Route with MethodAny
//   - Route: an explicit (method, pattern) descriptor, kept as-is
//   - *Map: an already-built fragment, e.g. the output of Resources
//   - Tree: a nested sub-tree, composed recursively
//
// An Entry with an empty Key splices its fragment's entries into the current
// level instead of nesting them, mirroring object-spread composition:
//
//	routemap.Tree{
//		{Key: "brands", Value: routemap.Tree{
//			{Value: routemap.Resources("brands", nil)},
//			{Key: "products", Value: routemap.Resources("brands/:brandId/products", nil)},
//		}},
//	}
type Tree []Entry

// Entry is a single key/value pair of a Tree literal.
type Entry struct {
	Key   string
	Value any
}

// CreateRoutes walks the input tree and produces a structurally identical
// Map whose every leaf is a Route. Key order follows the input enumeration
// order; a duplicate key keeps its first position and takes the last value.
//
// CreateRoutes performs no prefix inheritance: nested generator fragments
// must be constructed with their fully qualified base path. Input fragments
// are never mutated (already-built Maps are cloned into the output), so
// composition is idempotent and the same fragment may appear in several
// places. A leaf that matches none of the Tree value shapes fails fast with
// an error wrapping ErrInvalidDescriptor that names the offending key path.
func CreateRoutes(tree Tree) (*Map, error) {
	return composeTree(tree, "")
}

func composeTree(tree Tree, at string) (*Map, error) {
	m := NewMap()
	for _, e := range tree {
		if e.Key == "" {
			frag, err := composeFragment(e.Value, at)
			if err != nil {
				return nil, err
			}
			m.merge(frag)
			continue
		}

		path := joinPath(at, e.Key)
		switch v := e.Value.(type) {
		case string:
			if v == "" {
				return nil, fmt.Errorf("%w: empty pattern at %q", ErrInvalidDescriptor, path)
			}
			m.Set(e.Key, Route{Method: MethodAny, Pattern: v})
		case Route:
			if v.Method == "" || v.Pattern == "" {
				return nil, fmt.Errorf("%w: incomplete route %q at %q", ErrInvalidDescriptor, v, path)
			}
			m.Set(e.Key, v)
		case *Map:
			m.SetSub(e.Key, v.Clone())
		case Tree:
			sub, err := composeTree(v, path)
			if err != nil {
				return nil, err
			}
			m.SetSub(e.Key, sub)
		default:
			return nil, fmt.Errorf("%w: unsupported value %T at %q", ErrInvalidDescriptor, e.Value, path)
		}
	}
	return m, nil
}

// composeFragment normalizes a spliced (empty-key) entry value, which must
// resolve to a whole map level rather than a single leaf.
func composeFragment(v any, at string) (*Map, error) {
	switch f := v.(type) {
	case *Map:
		return f.Clone(), nil
	case Tree:
		return composeTree(f, at)
	default:
		return nil, fmt.Errorf("%w: spliced value %T at %q is not a fragment", ErrInvalidDescriptor, v, at)
	}
}

func joinPath(at, key string) string {
	if at == "" {
		return key
	}
	return at + "." + key
}
