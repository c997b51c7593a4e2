package ucl

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMapOps(t *testing.T) {
	m := NewMap[Integer]()
	m.Insert("one", NewInteger(1))
	m.Insert("two", NewInteger(2))
	m.Insert("three", NewInteger(3))

	if v, ok := m.Find("two"); !ok || v.Value() != 2 {
		t.Errorf("find two: %v %v", v, ok)
	}
	if _, ok := m.Find("four"); ok {
		t.Error("found missing key")
	}
	if _, err := m.Get("four"); !errors.Is(err, ErrKeyNotFound) {
		t.Errorf("get missing: %v", err)
	}
	if diff := cmp.Diff([]string{"one", "two", "three"}, m.Keys()); diff != "" {
		t.Errorf("keys (-want +got):\n%s", diff)
	}

	m.Insert("one", NewInteger(10))
	if diff := cmp.Diff([]string{"one", "two", "three"}, m.Keys()); diff != "" {
		t.Errorf("replace moved key (-want +got):\n%s", diff)
	}
	if v, _ := m.Get("one"); v.Value() != 10 {
		t.Errorf("replaced value %d", v.Value())
	}

	if !m.Remove("two") {
		t.Error("remove existing returned false")
	}
	if m.Remove("two") {
		t.Error("remove missing returned true")
	}
	v, ok := m.Pop("three")
	if !ok || v.Value() != 3 {
		t.Errorf("pop: %v %v", v, ok)
	}
	if _, ok := m.Pop("three"); ok {
		t.Error("pop missing returned true")
	}
	got := map[string]int64{}
	for k, v := range m.All() {
		got[k] = v.Value()
	}
	if diff := cmp.Diff(map[string]int64{"one": 10}, got); diff != "" {
		t.Errorf("all (-want +got):\n%s", diff)
	}
}

func TestMapCastHeterogeneous(t *testing.T) {
	m := NewObject()
	m.Insert("i", NewInteger(1).Object())
	m.Insert("s", NewString("x").Object())
	if _, err := Cast[Map[Integer]](m.Object()); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("got %v", err)
	}
	if _, err := Cast[Map[Object]](m.Object()); err != nil {
		t.Error(err)
	}
}

func TestFromAny(t *testing.T) {
	in := map[string]any{
		"int":   42,
		"real":  1.5,
		"str":   "x",
		"bool":  true,
		"null":  nil,
		"array": []any{uint64(1), "two"},
		"obj":   map[string]any{"k": int8(-1)},
	}
	o, err := FromAny(in)
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]any{
		"int":   int64(42),
		"real":  1.5,
		"str":   "x",
		"bool":  true,
		"null":  nil,
		"array": []any{int64(1), "two"},
		"obj":   map[string]any{"k": int64(-1)},
	}
	if diff := cmp.Diff(want, ToAny(o)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if _, err := FromAny(struct{}{}); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("struct: %v", err)
	}
	if _, err := FromAny(uint64(1 << 63)); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("overflow: %v", err)
	}
}
