package posix

import (
	"strconv"
	"strings"

	"mvdan.cc/sh/v3/syntax"
)

// Argv is an argument vector, program name first.
type Argv struct {
	args []string
}

func NewArgv(args ...string) *Argv {
	return &Argv{args: append([]string(nil), args...)}
}

func (a *Argv) Add(args ...string) *Argv {
	a.args = append(a.args, args...)
	return a
}

func (a *Argv) Len() int { return len(a.args) }

// Args returns a copy of the arguments.
func (a *Argv) Args() []string {
	return append([]string(nil), a.args...)
}

// String renders the arguments as a bash command line, quoting each
// argument as needed.
func (a *Argv) String() string {
	parts := make([]string, len(a.args))
	for i, arg := range a.args {
		q, err := syntax.Quote(arg, syntax.LangBash)
		if err != nil {
			q = strconv.Quote(arg)
		}
		parts[i] = q
	}
	return strings.Join(parts, " ")
}
