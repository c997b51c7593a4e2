// Package errs provides error chains with a root cause and the logic
// error used for API misuse.
package errs

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
)

// ErrLogic marks programming errors: use of a released handle, a
// released temp file and the like. It is panicked rather than returned.
var ErrLogic = errors.New("logic error")

// Logicf returns an error matching ErrLogic.
func Logicf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrLogic, fmt.Sprintf(format, args...))
}

// Error is a message with an optional cause. Its text is the message
// followed by the text of each cause, separated by ": ".
type Error struct {
	What  string
	Cause error
}

func New(what string) *Error {
	return &Error{What: what}
}

func Wrap(cause error, what string) *Error {
	return &Error{What: what, Cause: cause}
}

func Wrapf(cause error, format string, args ...any) *Error {
	return &Error{What: fmt.Sprintf(format, args...), Cause: cause}
}

func (e *Error) Error() string {
	switch {
	case e.Cause == nil:
		return e.What
	case e.What == "":
		return e.Cause.Error()
	default:
		return e.What + ": " + e.Cause.Error()
	}
}

func (e *Error) Unwrap() error { return e.Cause }

// RootCause follows the single-error Unwrap chain of err to its end.
func RootCause(err error) error {
	for err != nil {
		next := errors.Unwrap(err)
		if next == nil {
			return err
		}
		err = next
	}
	return nil
}

// Chain returns err and every error it wraps, outermost first.
func Chain(err error) []error {
	var res []error
	for err != nil {
		res = append(res, err)
		err = errors.Unwrap(err)
	}
	return res
}

// Errno returns the system error number carried by err, if any.
func Errno(err error) (unix.Errno, bool) {
	var no unix.Errno
	if errors.As(err, &no) {
		return no, true
	}
	return 0, false
}

// IsErrno reports whether err carries the system error number no.
func IsErrno(err error, no unix.Errno) bool {
	got, ok := Errno(err)
	return ok && got == no
}

// Format renders err and its causes as "a: b: c". A nil error renders
// as the empty string.
func Format(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
