package ucl

import "testing"

func obj(kvs ...any) Object {
	m := NewObject()
	for i := 0; i < len(kvs); i += 2 {
		m.Insert(kvs[i].(string), kvs[i+1].(Typed).Object())
	}
	return m.Object()
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Object
		expected int
	}{
		{"Null < Boolean", Null(), NewBoolean(false).Object(), -1},
		{"Boolean < Integer", NewBoolean(true).Object(), NewInteger(0).Object(), -1},
		{"Integer < Real", NewInteger(100).Object(), NewReal(1).Object(), -1},
		{"Real < String", NewReal(1).Object(), NewString("").Object(), -1},
		{"String < Array", NewString("z").Object(), NewArray[Object]().Object(), -1},
		{"Array < Object", NewArray[Object]().Object(), NewObject().Object(), -1},

		{"null == null", Null(), Null(), 0},
		{"false < true", NewBoolean(false).Object(), NewBoolean(true).Object(), -1},
		{"42 < 43", NewInteger(42).Object(), NewInteger(43).Object(), -1},
		{"42 == 42", NewInteger(42).Object(), NewInteger(42).Object(), 0},
		{"real", NewReal(42.5).Object(), NewReal(42.2).Object(), 1},
		{"string", NewString("a").Object(), NewString("b").Object(), -1},

		{"short object < long object", obj("a", NewInteger(1)), obj("a", NewInteger(1), "b", NewInteger(2)), -1},
		{"object key", obj("a", NewInteger(1)), obj("b", NewInteger(1)), -1},
		{"object value", obj("a", NewInteger(1)), obj("a", NewInteger(2)), -1},
		{"object order independent", obj("a", NewInteger(1), "b", NewInteger(2)), obj("b", NewInteger(2), "a", NewInteger(1)), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compare(tt.a, tt.b); got != tt.expected {
				t.Errorf("Compare(%#v, %#v) = %d, want %d", tt.a, tt.b, got, tt.expected)
			}
			if got := Compare(tt.b, tt.a); got != -tt.expected {
				t.Errorf("Compare(%#v, %#v) = %d, want %d", tt.b, tt.a, got, -tt.expected)
			}
		})
	}
}

func TestEqualIgnoresKey(t *testing.T) {
	m := NewMap[Integer]()
	m.Insert("k", NewInteger(5))
	v, _ := m.Find("k")
	if !Equal(v.Object(), NewInteger(5).Object()) {
		t.Error("key affected equality")
	}
}
