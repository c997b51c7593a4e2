package ucl

// Cast checks that o has the type of T, and for arrays and maps that
// every element casts to the element type, and returns o viewed as T.
// On mismatch the returned error is a *TypeMismatchError and o is left
// untouched.
func Cast[T Typed](o Object) (T, error) {
	var zero T
	r, err := zero.castFrom(o)
	if err != nil {
		return zero, err
	}
	return r.(T), nil
}

// MustCast is like Cast but panics on error.
func MustCast[T Typed](o Object) T {
	r, err := Cast[T](o)
	if err != nil {
		panic(err)
	}
	return r
}
