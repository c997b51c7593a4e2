package ucl

import (
	"fmt"
	"iter"
)

// Array is a view of an array object whose elements all cast to T.
type Array[T Typed] struct{ obj Object }

// NewArray returns a new array holding new references to elems.
func NewArray[T Typed](elems ...T) Array[T] {
	v := &value{typ: ArrayType, elems: make([]Object, 0, len(elems))}
	for _, e := range elems {
		v.elems = append(v.elems, e.Object().Ref().withoutKey())
	}
	return Array[T]{obj: newObject(v)}
}

func (a Array[T]) Object() Object { return a.obj }
func (a Array[T]) Key() string    { return a.obj.Key() }
func (a Array[T]) Len() int       { return len(a.obj.val().elems) }

func (a Array[T]) Compare(b Array[T]) int { return Compare(a.obj, b.obj) }

func (Array[T]) castFrom(o Object) (any, error) {
	v := o.val()
	if v.typ != ArrayType {
		return Array[T]{}, mismatch(ArrayType, v.typ)
	}
	for _, e := range v.elems {
		if _, err := Cast[T](e); err != nil {
			return Array[T]{}, err
		}
	}
	return Array[T]{obj: o}, nil
}

// At returns element i. An index outside the array yields ErrOutOfRange.
func (a Array[T]) At(i int) (T, error) {
	v := a.obj.val()
	if i < 0 || i >= len(v.elems) {
		var zero T
		return zero, fmt.Errorf("%w: %d (length %d)", ErrOutOfRange, i, len(v.elems))
	}
	return MustCast[T](v.elems[i].Ref()), nil
}

// Front returns the first element.
func (a Array[T]) Front() (T, error) { return a.At(0) }

// Back returns the last element.
func (a Array[T]) Back() (T, error) { return a.At(a.Len() - 1) }

// PushBack appends a new reference to e.
func (a *Array[T]) PushBack(e T) {
	v := a.obj.unshare()
	v.elems = append(v.elems, e.Object().Ref().withoutKey())
}

// PopBack removes and returns the last element.
func (a *Array[T]) PopBack() (T, bool) {
	var zero T
	if a.Len() == 0 {
		return zero, false
	}
	v := a.obj.unshare()
	e := v.elems[len(v.elems)-1]
	v.elems = v.elems[:len(v.elems)-1]
	return MustCast[T](e), true
}

// Set replaces element i with a new reference to e.
func (a *Array[T]) Set(i int, e T) error {
	if i < 0 || i >= a.Len() {
		return fmt.Errorf("%w: %d (length %d)", ErrOutOfRange, i, a.Len())
	}
	v := a.obj.unshare()
	old := v.elems[i]
	old.Release()
	v.elems[i] = e.Object().Ref().withoutKey()
	return nil
}

// Swap exchanges the contents of a and b.
func (a *Array[T]) Swap(b *Array[T]) {
	a.obj, b.obj = b.obj, a.obj
}

func (a Array[T]) All() iter.Seq2[int, T] {
	v := a.obj.val()
	return func(yield func(int, T) bool) {
		for i, e := range v.elems {
			if !yield(i, MustCast[T](e.Ref())) {
				return
			}
		}
	}
}

func (a Array[T]) Values() []T {
	res := make([]T, 0, a.Len())
	for _, e := range a.All() {
		res = append(res, e)
	}
	return res
}
