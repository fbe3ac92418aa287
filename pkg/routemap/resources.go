package routemap

import (
	"net/http"
	"strings"
)

// Resources expands base into the canonical route set of a collection
// resource. Member actions address a single element via a :param segment
// (default ":id", overridable through opts.Param); collection actions do
// not carry the member segment.
//
//	index    GET    /base
//	new      GET    /base/new
//	show     GET    /base/:id
//	create   POST   /base
//	edit     GET    /base/:id/edit
//	update   PUT    /base/:id
//	destroy  DELETE /base/:id
//
// The emitted key order is exactly the order above filtered by opts.Only;
// "new" always precedes "show" so a matching engine trying routes in map
// order resolves /base/new before /base/:id. opts may be nil.
func Resources(base string, opts *ResourceOptions) *Map {
	root := "/" + strings.Trim(base, "/")
	member := root + "/:" + opts.param()

	m := NewMap()
	for _, a := range collectionActions {
		if !opts.allows(a) {
			continue
		}
		m.Set(opts.label(a), collectionRoute(a, root, member))
	}
	return m
}

func collectionRoute(a Action, root, member string) Route {
	switch a {
	case ActionIndex:
		return NewRoute(http.MethodGet, root)
	case ActionNew:
		return NewRoute(http.MethodGet, root+"/new")
	case ActionShow:
		return NewRoute(http.MethodGet, member)
	case ActionCreate:
		return NewRoute(http.MethodPost, root)
	case ActionEdit:
		return NewRoute(http.MethodGet, member+"/edit")
	case ActionUpdate:
		return NewRoute(http.MethodPut, member)
	case ActionDestroy:
		return NewRoute(http.MethodDelete, member)
	}
	panic("routemap: unknown collection action " + string(a))
}
