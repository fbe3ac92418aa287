package routemap

import (
	"reflect"
	"testing"
)

func TestResourceCanonicalSet(t *testing.T) {
	m := Resource("profile", nil)

	want := []struct {
		key   string
		route Route
	}{
		{"new", Route{"GET", "/profile/new"}},
		{"show", Route{"GET", "/profile"}},
		{"create", Route{"POST", "/profile"}},
		{"edit", Route{"GET", "/profile/edit"}},
		{"update", Route{"PUT", "/profile"}},
		{"destroy", Route{"DELETE", "/profile"}},
	}

	keys := m.Keys()
	if len(keys) != len(want) {
		t.Fatalf("expected %d actions, got %d (%v)", len(want), len(keys), keys)
	}
	for i, w := range want {
		if keys[i] != w.key {
			t.Fatalf("key %d: expected %q, got %q", i, w.key, keys[i])
		}
		got, _ := m.Route(w.key)
		if got != w.route {
			t.Fatalf("%s: expected %v, got %v", w.key, w.route, got)
		}
	}
}

func TestResourceNeverHasIndex(t *testing.T) {
	cases := []*ResourceOptions{
		nil,
		{Only: []Action{ActionIndex, ActionShow}},
		{Names: map[Action]string{ActionIndex: "list"}},
		{Param: "slug"},
	}
	for _, opts := range cases {
		m := Resource("profile", opts)
		if m.Has("index") || m.Has("list") {
			t.Fatalf("singleton resource emitted an index action (opts %+v): %v", opts, m.Keys())
		}
	}
}

func TestResourceOnly(t *testing.T) {
	m := Resource("book", &ResourceOptions{Only: []Action{ActionShow, ActionUpdate}})

	if got, want := m.Keys(), []string{"show", "update"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("expected keys %v, got %v", want, got)
	}
	show, _ := m.Route("show")
	if want := (Route{"GET", "/book"}); show != want {
		t.Fatalf("show: expected %v, got %v", want, show)
	}
	update, _ := m.Route("update")
	if want := (Route{"PUT", "/book"}); update != want {
		t.Fatalf("update: expected %v, got %v", want, update)
	}
}

func TestResourceIgnoresParam(t *testing.T) {
	m := Resource("profile", &ResourceOptions{Param: "slug"})
	for _, nr := range m.Flatten() {
		if want := "/profile"; nr.Route.Pattern != want && nr.Route.Pattern != want+"/new" && nr.Route.Pattern != want+"/edit" {
			t.Fatalf("unexpected pattern %q for %s", nr.Route.Pattern, nr.Name)
		}
	}
}
