package ucl

import (
	"fmt"
	"maps"
	"math"
	"reflect"
	"slices"
)

// FromAny converts a decoded document, as produced by encoding/json or a
// YAML decoder, into an object. Maps with string keys become objects
// with their keys sorted; slices become arrays.
func FromAny(x any) (Object, error) {
	switch v := x.(type) {
	case nil:
		return Null(), nil
	case Typed:
		return v.Object().Ref(), nil
	case bool:
		return NewBoolean(v).Object(), nil
	case string:
		return NewString(v).Object(), nil
	case float32:
		return NewReal(float64(v)).Object(), nil
	case float64:
		return NewReal(v).Object(), nil
	case uint64:
		if v > math.MaxInt64 {
			return Object{}, fmt.Errorf("%w: %d overflows integer", ErrOutOfRange, v)
		}
		return NewInteger(int64(v)).Object(), nil
	case []any:
		arr := NewArray[Object]()
		for i, e := range v {
			o, err := FromAny(e)
			if err != nil {
				return Object{}, fmt.Errorf("[%d]: %w", i, err)
			}
			arr.PushBack(o)
			o.Release()
		}
		return arr.Object(), nil
	case map[string]any:
		m := NewObject()
		for _, k := range slices.Sorted(maps.Keys(v)) {
			o, err := FromAny(v[k])
			if err != nil {
				return Object{}, fmt.Errorf("%s: %w", k, err)
			}
			m.Insert(k, o)
			o.Release()
		}
		return m.Object(), nil
	}
	rv := reflect.ValueOf(x)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return NewInteger(rv.Int()).Object(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uintptr:
		return FromAny(rv.Uint())
	}
	return Object{}, fmt.Errorf("%w: cannot convert %T", ErrTypeMismatch, x)
}

// ToAny converts o into plain Go values: nil, bool, int64, float64,
// string, []any and map[string]any.
func ToAny(o Object) any {
	v := o.val()
	switch v.typ {
	case BooleanType:
		return v.b
	case IntegerType:
		return v.i
	case RealType:
		return v.f
	case StringType:
		return v.s
	case ArrayType:
		res := make([]any, len(v.elems))
		for i, e := range v.elems {
			res[i] = ToAny(e)
		}
		return res
	case ObjectType:
		res := make(map[string]any, len(v.keys))
		for _, k := range v.keys {
			res[k] = ToAny(v.fields[k])
		}
		return res
	}
	return nil
}
