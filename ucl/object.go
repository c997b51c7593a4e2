package ucl

import (
	"fmt"
	"iter"
	"slices"
)

type value struct {
	refs int
	typ  Type

	b bool
	i int64
	f float64
	s string

	elems  []Object
	keys   []string
	fields map[string]Object
}

func (v *value) clone() *value {
	c := &value{refs: 1, typ: v.typ, b: v.b, i: v.i, f: v.f, s: v.s}
	switch v.typ {
	case ArrayType:
		c.elems = make([]Object, len(v.elems))
		for i, e := range v.elems {
			c.elems[i] = e.Ref()
		}
	case ObjectType:
		c.keys = slices.Clone(v.keys)
		c.fields = make(map[string]Object, len(v.fields))
		for k, e := range v.fields {
			c.fields[k] = e.Ref()
		}
	}
	return c
}

// Object is a handle onto a UCL value. The zero Object is empty.
type Object struct {
	v      *value
	key    string
	hasKey bool
}

func newObject(v *value) Object {
	v.refs = 1
	return Object{v: v}
}

// Null returns a new null object.
func Null() Object {
	return newObject(&value{typ: NullType})
}

func (o Object) val() *value {
	if o.v == nil || o.v.refs <= 0 {
		emptyHandle()
	}
	return o.v
}

// Valid reports whether o refers to a value.
func (o Object) Valid() bool { return o.v != nil && o.v.refs > 0 }

func (o Object) Type() Type { return o.val().typ }

// Key returns the key under which o is stored in a map, or "" if o was
// not obtained from a map.
func (o Object) Key() string {
	o.val()
	return o.key
}

func (o Object) HasKey() bool {
	o.val()
	return o.hasKey
}

// Ref returns a new handle onto the value of o, incrementing its
// reference count.
func (o Object) Ref() Object {
	v := o.val()
	v.refs++
	return o
}

// Release drops the reference held by o and empties it.
func (o *Object) Release() {
	v := o.val()
	v.refs--
	o.v = nil
	o.key, o.hasKey = "", false
}

// Refs returns the number of references to the value of o.
func (o Object) Refs() int { return o.val().refs }

func (o Object) Object() Object { return o }

func (o Object) castFrom(p Object) (any, error) {
	p.val()
	return p, nil
}

// unshare gives o its own copy of a shared value before mutation.
func (o *Object) unshare() *value {
	v := o.val()
	if v.refs > 1 {
		v.refs--
		o.v = v.clone()
	}
	return o.v
}

func (o Object) withKey(k string) Object {
	o.key, o.hasKey = k, true
	return o
}

func (o Object) withoutKey() Object {
	o.key, o.hasKey = "", false
	return o
}

// Len returns the number of elements of an array or entries of an
// object, and 0 for scalars.
func (o Object) Len() int {
	v := o.val()
	switch v.typ {
	case ArrayType:
		return len(v.elems)
	case ObjectType:
		return len(v.keys)
	}
	return 0
}

// Lookup returns a new reference to the value stored under key if o is
// an object.
func (o Object) Lookup(key string) (Object, bool) {
	v := o.val()
	if v.typ != ObjectType {
		return Object{}, false
	}
	e, ok := v.fields[key]
	if !ok {
		return Object{}, false
	}
	return e.Ref(), true
}

// Index returns a new reference to element i of an array.
func (o Object) Index(i int) (Object, error) {
	v := o.val()
	if v.typ != ArrayType {
		return Object{}, mismatch(ArrayType, v.typ)
	}
	if i < 0 || i >= len(v.elems) {
		return Object{}, fmt.Errorf("%w: %d (length %d)", ErrOutOfRange, i, len(v.elems))
	}
	return v.elems[i].Ref(), nil
}

// Elems iterates over the elements of an array. Scalars and objects
// yield nothing.
func (o Object) Elems() iter.Seq2[int, Object] {
	v := o.val()
	return func(yield func(int, Object) bool) {
		if v.typ != ArrayType {
			return
		}
		for i, e := range v.elems {
			if !yield(i, e.Ref()) {
				return
			}
		}
	}
}

// Entries iterates over the entries of an object in insertion order.
func (o Object) Entries() iter.Seq2[string, Object] {
	v := o.val()
	return func(yield func(string, Object) bool) {
		if v.typ != ObjectType {
			return
		}
		for _, k := range v.keys {
			if !yield(k, v.fields[k].Ref()) {
				return
			}
		}
	}
}

// Compare orders o against p; see [Compare].
func (o Object) Compare(p Object) int { return Compare(o, p) }

func (o Object) Equal(p Object) bool { return Compare(o, p) == 0 }

// GoString renders o for debugging.
func (o Object) GoString() string {
	if !o.Valid() {
		return "ucl.Object{}"
	}
	v := o.v
	switch v.typ {
	case NullType:
		return "null"
	case BooleanType:
		return fmt.Sprint(v.b)
	case IntegerType:
		return fmt.Sprint(v.i)
	case RealType:
		return fmt.Sprint(v.f)
	case StringType:
		return fmt.Sprintf("%q", v.s)
	case ArrayType:
		res := "["
		for i, e := range v.elems {
			if i > 0 {
				res += ", "
			}
			res += e.GoString()
		}
		return res + "]"
	default:
		res := "{"
		for i, k := range v.keys {
			if i > 0 {
				res += ", "
			}
			res += fmt.Sprintf("%q: %s", k, v.fields[k].GoString())
		}
		return res + "}"
	}
}
