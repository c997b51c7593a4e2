package ucl

import (
	"errors"
	"fmt"

	"github.com/nihil-go/nihil/errs"
)

var (
	ErrTypeMismatch = errors.New("type mismatch")
	ErrKeyNotFound  = errors.New("key not found")
	ErrOutOfRange   = errors.New("index out of range")
)

// TypeMismatchError is returned when an object does not have the type
// a caller asked for.
type TypeMismatchError struct {
	Expected Type
	Actual   Type
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("expected type '%s' != actual type '%s'", e.Expected, e.Actual)
}

func (e *TypeMismatchError) Is(target error) bool { return target == ErrTypeMismatch }

func mismatch(expected, actual Type) error {
	return &TypeMismatchError{Expected: expected, Actual: actual}
}

func emptyHandle() {
	panic(errs.Logicf("use of empty or released ucl object"))
}
