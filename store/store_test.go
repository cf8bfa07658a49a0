package store

import (
	"reflect"
	"strings"
	"testing"
)

func TestInsertAndGet(t *testing.T) {
	t.Parallel()

	s := New()
	s.Insert([]string{"ui", "button", "save"}, "Save")
	s.Insert([]string{"ui", "button", "cancel"}, "Cancel")
	s.Insert([]string{"greeting"}, "Hello")

	if s.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", s.Len())
	}

	if v, ok := s.Get([]string{"ui", "button", "save"}); !ok || v != "Save" {
		t.Fatalf("Get(ui.button.save) = %q, %v", v, ok)
	}
	if _, ok := s.Get([]string{"ui", "button"}); ok {
		t.Fatal("Get(ui.button) should miss: interior node is not a key")
	}
	if _, ok := s.Get([]string{"missing"}); ok {
		t.Fatal("Get(missing) should miss")
	}
}

func TestInsertOverwrites(t *testing.T) {
	t.Parallel()

	s := New()
	s.Insert([]string{"a"}, "one")
	s.Insert([]string{"a"}, "two")

	if s.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", s.Len())
	}
	if v, _ := s.Get([]string{"a"}); v != "two" {
		t.Fatalf("Get(a) = %q, want two", v)
	}
}

func TestFlattenRoundTrip(t *testing.T) {
	t.Parallel()

	keys := []string{"ui.button.save", "ui.button.cancel", "ui.title", "greeting"}

	s := New()
	for _, k := range keys {
		s.Insert(strings.Split(k, "."), "v:"+k)
	}

	entries := s.Flatten()
	if len(entries) != len(keys) {
		t.Fatalf("Flatten() returned %d entries, want %d", len(entries), len(keys))
	}

	// Rejoining segments with "." reproduces the original dotted key.
	got := make([]string, len(entries))
	for i, e := range entries {
		got[i] = strings.Join(e.Path, ".")
		if e.Value != "v:"+got[i] {
			t.Fatalf("entry %q has value %q", got[i], e.Value)
		}
	}
	if !reflect.DeepEqual(got, keys) {
		t.Fatalf("Flatten() keys = %v, want insertion order %v", got, keys)
	}
}

func TestFlattenInteriorAndLeaf(t *testing.T) {
	t.Parallel()

	// A path that is both a key and a prefix of a longer key.
	s := New()
	s.Insert([]string{"nav"}, "Navigation")
	s.Insert([]string{"nav", "home"}, "Home")

	entries := s.Flatten()
	if len(entries) != 2 {
		t.Fatalf("Flatten() returned %d entries, want 2", len(entries))
	}
	if strings.Join(entries[0].Path, ".") != "nav" || strings.Join(entries[1].Path, ".") != "nav.home" {
		t.Fatalf("unexpected flatten order: %v", entries)
	}
}

func TestEmptyPathIgnored(t *testing.T) {
	t.Parallel()

	s := New()
	s.Insert(nil, "nothing")
	if s.Len() != 0 {
		t.Fatalf("Len() = %d after empty insert, want 0", s.Len())
	}
}
