package pattern

import (
	"errors"
	"reflect"
	"testing"
)

func TestExpand(t *testing.T) {
	t.Run("static pattern passes through", func(t *testing.T) {
		got, err := Expand("/about", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "/about" {
			t.Fatalf("expected /about, got %s", got)
		}
	})

	t.Run("root", func(t *testing.T) {
		got, err := Expand("/", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "/" {
			t.Fatalf("expected /, got %s", got)
		}
	})

	t.Run("substitutes multiple params", func(t *testing.T) {
		got, err := Expand("/orgs/:org/users/:id", map[string]string{"org": "acme", "id": "7"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "/orgs/acme/users/7" {
			t.Fatalf("expected /orgs/acme/users/7, got %s", got)
		}
	})

	t.Run("missing param", func(t *testing.T) {
		_, err := Expand("/users/:id", map[string]string{"other": "x"})
		if !errors.Is(err, ErrMissingParam) {
			t.Fatalf("expected ErrMissingParam, got %v", err)
		}
	})

	t.Run("escapes values", func(t *testing.T) {
		got, err := Expand("/tags/:tag", map[string]string{"tag": "hello world"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "/tags/hello%20world" {
			t.Fatalf("expected escaped value, got %s", got)
		}
	})
}

func TestNames(t *testing.T) {
	cases := []struct {
		pattern string
		want    []string
	}{
		{"/users/:id", []string{"id"}},
		{"/brands/:brandId/products/:id", []string{"brandId", "id"}},
		{"/about", nil},
		{"/", nil},
	}
	for _, tc := range cases {
		if got := Names(tc.pattern); !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("Names(%q): expected %v, got %v", tc.pattern, tc.want, got)
		}
	}
}
