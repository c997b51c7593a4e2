package ucl

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func intValues(a Array[Integer]) []int64 {
	var res []int64
	for _, e := range a.All() {
		res = append(res, e.Value())
	}
	return res
}

func TestArrayOps(t *testing.T) {
	arr := NewArray[Integer]()
	if arr.Len() != 0 {
		t.Fatal("new array not empty")
	}
	if _, err := arr.Front(); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("front of empty: %v", err)
	}
	if _, err := arr.Back(); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("back of empty: %v", err)
	}
	arr.PushBack(NewInteger(1))
	arr.PushBack(NewInteger(42))
	arr.PushBack(NewInteger(666))

	if diff := cmp.Diff([]int64{1, 42, 666}, intValues(arr)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if f, _ := arr.Front(); f.Value() != 1 {
		t.Errorf("front %d", f.Value())
	}
	if b, _ := arr.Back(); b.Value() != 666 {
		t.Errorf("back %d", b.Value())
	}
	if e, err := arr.At(1); err != nil || e.Value() != 42 {
		t.Errorf("at 1: %v %v", e, err)
	}
	for _, i := range []int{-1, 3, 100} {
		if _, err := arr.At(i); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("at %d: got %v", i, err)
		}
	}
	if err := arr.Set(0, NewInteger(7)); err != nil {
		t.Fatal(err)
	}
	if err := arr.Set(3, NewInteger(7)); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("set out of range: %v", err)
	}
	last, ok := arr.PopBack()
	if !ok || last.Value() != 666 {
		t.Errorf("pop back %v %v", last, ok)
	}
	if diff := cmp.Diff([]int64{7, 42}, intValues(arr)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestArraySwap(t *testing.T) {
	a := NewArray(NewInteger(1))
	b := NewArray(NewInteger(2), NewInteger(3))
	a.Swap(&b)
	if diff := cmp.Diff([]int64{2, 3}, intValues(a)); diff != "" {
		t.Errorf("a (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int64{1}, intValues(b)); diff != "" {
		t.Errorf("b (-want +got):\n%s", diff)
	}
}

func TestArrayCompare(t *testing.T) {
	a := NewArray(NewInteger(1), NewInteger(2))
	b := NewArray(NewInteger(1), NewInteger(2))
	c := NewArray(NewInteger(1), NewInteger(3))
	if a.Compare(b) != 0 {
		t.Error("equal arrays differ")
	}
	if a.Compare(c) >= 0 {
		t.Error("[1,2] should sort before [1,3]")
	}
	vals := a.Values()
	if len(vals) != 2 || vals[1].Value() != 2 {
		t.Errorf("values %v", vals)
	}
}
