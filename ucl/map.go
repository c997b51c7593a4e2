package ucl

import (
	"fmt"
	"iter"
	"slices"
)

// Map is a view of an object whose values all cast to T. Entries keep
// their insertion order.
type Map[T Typed] struct{ obj Object }

func NewMap[T Typed]() Map[T] {
	return Map[T]{obj: newObject(&value{typ: ObjectType, fields: map[string]Object{}})}
}

// NewObject returns a new empty object accepting values of any type.
func NewObject() Map[Object] { return NewMap[Object]() }

func (m Map[T]) Object() Object { return m.obj }
func (m Map[T]) Key() string    { return m.obj.Key() }
func (m Map[T]) Len() int       { return len(m.obj.val().keys) }

func (m Map[T]) Compare(n Map[T]) int { return Compare(m.obj, n.obj) }

func (Map[T]) castFrom(o Object) (any, error) {
	v := o.val()
	if v.typ != ObjectType {
		return Map[T]{}, mismatch(ObjectType, v.typ)
	}
	for _, k := range v.keys {
		if _, err := Cast[T](v.fields[k]); err != nil {
			return Map[T]{}, err
		}
	}
	return Map[T]{obj: o}, nil
}

// Insert stores a new reference to e under key, replacing any value
// already there. A replaced entry keeps its position.
func (m *Map[T]) Insert(key string, e T) {
	v := m.obj.unshare()
	slot := e.Object().Ref().withKey(key)
	if old, ok := v.fields[key]; ok {
		old.Release()
	} else {
		v.keys = append(v.keys, key)
	}
	v.fields[key] = slot
}

// Find returns the value stored under key.
func (m Map[T]) Find(key string) (T, bool) {
	e, ok := m.obj.val().fields[key]
	if !ok {
		var zero T
		return zero, false
	}
	return MustCast[T](e.Ref()), true
}

// Get is like Find but reports a missing key as ErrKeyNotFound.
func (m Map[T]) Get(key string) (T, error) {
	e, ok := m.Find(key)
	if !ok {
		return e, fmt.Errorf("%w: %q", ErrKeyNotFound, key)
	}
	return e, nil
}

func (m Map[T]) Contains(key string) bool {
	_, ok := m.obj.val().fields[key]
	return ok
}

// Remove deletes key and reports whether it was present.
func (m *Map[T]) Remove(key string) bool {
	e, ok := m.Pop(key)
	if ok {
		o := e.Object()
		o.Release()
	}
	return ok
}

// Pop deletes key and returns the value that was stored under it.
func (m *Map[T]) Pop(key string) (T, bool) {
	var zero T
	if !m.Contains(key) {
		return zero, false
	}
	v := m.obj.unshare()
	e := v.fields[key]
	delete(v.fields, key)
	v.keys = slices.DeleteFunc(v.keys, func(k string) bool { return k == key })
	return MustCast[T](e), true
}

func (m Map[T]) Keys() []string {
	return slices.Clone(m.obj.val().keys)
}

func (m Map[T]) All() iter.Seq2[string, T] {
	v := m.obj.val()
	return func(yield func(string, T) bool) {
		for _, k := range v.keys {
			if !yield(k, MustCast[T](v.fields[k].Ref())) {
				return
			}
		}
	}
}
