package config

import (
	"errors"
	"fmt"

	"github.com/nihil-go/nihil/ucl"
)

var (
	ErrDuplicateOption = errors.New("duplicate configuration option")
	ErrUnknownOption   = errors.New("unknown configuration option")
	ErrInvalidValue    = errors.New("invalid value")
)

// OptionError is a failure to set the option Name.
type OptionError struct {
	Name string
	Err  error
}

func (e *OptionError) Error() string {
	var tm *ucl.TypeMismatchError
	if errors.As(e.Err, &tm) {
		return fmt.Sprintf("'%s': expected %s, not %s", e.Name, tm.Expected, tm.Actual)
	}
	return fmt.Sprintf("'%s': %v", e.Name, e.Err)
}

func (e *OptionError) Unwrap() error { return e.Err }
