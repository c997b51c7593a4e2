package parse

import (
	"errors"
	"fmt"

	"github.com/nihil-go/nihil/token"
)

var ErrParse = errors.New("parse error")

// Error is a syntax error at a position in the input.
type Error struct {
	Pos token.Pos
	Msg string
	Err error
}

func (e *Error) Error() string {
	msg := e.Msg
	if e.Err != nil {
		if msg == "" {
			msg = e.Err.Error()
		} else {
			msg += ": " + e.Err.Error()
		}
	}
	return fmt.Sprintf("%s: %s at %s", ErrParse, msg, e.Pos.String())
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrParse}
	}
	return []error{ErrParse, e.Err}
}

func errAt(t *token.Token, format string, args ...any) error {
	return &Error{Pos: *t.Pos, Msg: fmt.Sprintf(format, args...)}
}
