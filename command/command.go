package command

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

const (
	ExitOK      = 0
	ExitFailure = 1
	// ExitUsage is sysexits EX_USAGE.
	ExitUsage = 64
)

var (
	ErrUsage            = errors.New("usage error")
	ErrDuplicateCommand = errors.New("duplicate command")
	ErrEmptyPath        = errors.New("empty command path")
)

// Usagef returns an error matching ErrUsage.
func Usagef(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrUsage, fmt.Sprintf(format, args...))
}

// Context is passed to handlers.
type Context struct {
	context.Context
	Stdin    io.Reader
	Stdout   io.Writer
	Stderr   io.Writer
	Progname string
}

// HandlerFunc runs a command with the arguments following its path and
// returns the exit status.
type HandlerFunc func(cc *Context, args []string) (int, error)

type Command struct {
	Path    []string
	Usage   string
	Handler HandlerFunc
}

func (c *Command) Name() string { return strings.Join(c.Path, " ") }

// Registry is the set of known commands.
type Registry struct {
	commands []*Command
	names    map[string]bool
}

func NewRegistry() *Registry {
	return &Registry{names: map[string]bool{}}
}

// Register adds a command. path is split into words on white space.
func (r *Registry) Register(path, usage string, h HandlerFunc) (*Command, error) {
	words := strings.Fields(path)
	if len(words) == 0 {
		return nil, ErrEmptyPath
	}
	c := &Command{Path: words, Usage: usage, Handler: h}
	if r.names[c.Name()] {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateCommand, c.Name())
	}
	r.names[c.Name()] = true
	r.commands = append(r.commands, c)
	return c, nil
}

// Commands returns the registered commands in registration order.
func (r *Registry) Commands() []*Command {
	return append([]*Command(nil), r.commands...)
}
