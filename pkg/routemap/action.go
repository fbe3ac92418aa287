package routemap

// Action names one of the canonical resource actions. The set is closed;
// generators ignore unrecognized values in ResourceOptions.
type Action string

const (
	ActionIndex   Action = "index"
	ActionNew     Action = "new"
	ActionShow    Action = "show"
	ActionCreate  Action = "create"
	ActionEdit    Action = "edit"
	ActionUpdate  Action = "update"
	ActionDestroy Action = "destroy"
)

// collectionActions is the canonical emission order for a collection
// resource. The position of "new" between "index" and "show" is significant:
// consumers iterate the generated map in key order and a matching engine
// must try /base/new before /base/:id.
var collectionActions = []Action{
	ActionIndex,
	ActionNew,
	ActionShow,
	ActionCreate,
	ActionEdit,
	ActionUpdate,
	ActionDestroy,
}

// singletonActions is the canonical order for a singleton resource: the
// collection order without "index".
var singletonActions = collectionActions[1:]

// ResourceOptions tunes the output of the Resource and Resources generators.
// The zero value (or a nil pointer) means: all actions, canonical names,
// member param "id".
type ResourceOptions struct {
	// Only restricts which canonical actions are generated. Output order is
	// always the canonical action order filtered by membership, never the
	// order of this slice.
	Only []Action

	// Names relabels the output key of individual actions. Filtering via
	// Only always refers to canonical names; renaming a filtered-out action
	// has no effect.
	Names map[Action]string

	// Param is the member identifier segment name used by Resources
	// (default "id"). The singleton generator ignores it.
	Param string
}

// allows reports whether the action survives the Only filter.
func (o *ResourceOptions) allows(a Action) bool {
	if o == nil || o.Only == nil {
		return true
	}
	for _, want := range o.Only {
		if want == a {
			return true
		}
	}
	return false
}

// label returns the output key for the action: the custom name when one is
// configured, the canonical name otherwise.
func (o *ResourceOptions) label(a Action) string {
	if o != nil {
		if name, ok := o.Names[a]; ok && name != "" {
			return name
		}
	}
	return string(a)
}

// param returns the configured member identifier or the "id" default.
func (o *ResourceOptions) param() string {
	if o != nil && o.Param != "" {
		return o.Param
	}
	return "id"
}
