package ucl

import (
	"cmp"
	"slices"
	"strings"
)

// Compare returns an integer comparing two objects.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
//
// Objects of different types are ordered by type:
// null < boolean < integer < real < string < array < object.
// Arrays compare element-wise, then by length. Objects compare by size,
// then by their sorted keys, then by the values under those keys, so
// insertion order does not matter. Keys carried by a or b are ignored.
func Compare(a, b Object) int {
	va, vb := a.val(), b.val()
	if va == vb {
		return 0
	}
	if va.typ != vb.typ {
		return cmp.Compare(va.typ, vb.typ)
	}
	switch va.typ {
	case BooleanType:
		if va.b == vb.b {
			return 0
		}
		if !va.b {
			return -1
		}
		return 1
	case IntegerType:
		return cmp.Compare(va.i, vb.i)
	case RealType:
		return cmp.Compare(va.f, vb.f)
	case StringType:
		return strings.Compare(va.s, vb.s)
	case ArrayType:
		return compareArrays(va, vb)
	case ObjectType:
		return compareObjects(va, vb)
	}
	return 0
}

// Equal reports whether a and b hold the same value.
func Equal(a, b Object) bool { return Compare(a, b) == 0 }

func compareArrays(a, b *value) int {
	n := min(len(a.elems), len(b.elems))
	for i := range n {
		if c := Compare(a.elems[i], b.elems[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a.elems), len(b.elems))
}

func compareObjects(a, b *value) int {
	if c := cmp.Compare(len(a.keys), len(b.keys)); c != 0 {
		return c
	}
	ka, kb := slices.Sorted(slices.Values(a.keys)), slices.Sorted(slices.Values(b.keys))
	if c := slices.Compare(ka, kb); c != 0 {
		return c
	}
	for _, k := range ka {
		if c := Compare(a.fields[k], b.fields[k]); c != 0 {
			return c
		}
	}
	return 0
}
