package routemap

import (
	"net/http"
	"strings"
)

// Resource expands base into the canonical route set of a singleton
// resource: a single addressable entity with no collection index.
//
//	new      GET    /base/new
//	show     GET    /base
//	create   POST   /base
//	edit     GET    /base/edit
//	update   PUT    /base
//	destroy  DELETE /base
//
// opts may be nil. Only filters actions (canonical order preserved), Names
// relabels output keys. Resource is a pure function: it performs no I/O and
// never mutates its arguments.
func Resource(base string, opts *ResourceOptions) *Map {
	root := "/" + strings.Trim(base, "/")

	m := NewMap()
	for _, a := range singletonActions {
		if !opts.allows(a) {
			continue
		}
		m.Set(opts.label(a), singletonRoute(a, root))
	}
	return m
}

func singletonRoute(a Action, root string) Route {
	switch a {
	case ActionNew:
		return NewRoute(http.MethodGet, root+"/new")
	case ActionShow:
		return NewRoute(http.MethodGet, root)
	case ActionCreate:
		return NewRoute(http.MethodPost, root)
	case ActionEdit:
		return NewRoute(http.MethodGet, root+"/edit")
	case ActionUpdate:
		return NewRoute(http.MethodPut, root)
	case ActionDestroy:
		return NewRoute(http.MethodDelete, root)
	}
	panic("routemap: unknown singleton action " + string(a))
}
