package command

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/nihil-go/nihil/debug"
)

// Dispatcher runs commands from a Registry.
type Dispatcher struct {
	Registry *Registry
	// Color highlights diagnostics.
	Color bool
}

func NewDispatcher(r *Registry) *Dispatcher {
	return &Dispatcher{Registry: r}
}

// IsTerminal reports whether w is a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (d *Dispatcher) prefix(cc *Context) string {
	p := cc.Progname + ":"
	if d.Color {
		return color.New(color.Bold).Sprint(p)
	}
	return p
}

func (d *Dispatcher) errText(s string) string {
	if d.Color {
		return color.RedString("%s", s)
	}
	return s
}

// Dispatch runs the command named by the leading words of args and
// returns the exit status. While the handler runs, cc.Progname is
// followed by the command path.
func (d *Dispatcher) Dispatch(cc *Context, args []string) int {
	tree, err := BuildTree(d.Registry.Commands())
	if err != nil {
		fmt.Fprintf(cc.Stderr, "%s %s\n", d.prefix(cc), d.errText(err.Error()))
		return ExitFailure
	}
	n, rest := tree.Find(args)
	c, ok := n.Command()
	if !ok {
		if debug.Dispatch() {
			debug.Logf("dispatch: no command at %q, args %q\n", n, rest)
		}
		if len(rest) > 0 {
			path := strings.TrimSpace(n.String() + " " + rest[0])
			fmt.Fprintf(cc.Stderr, "%s unknown command: %s\n", d.prefix(cc), d.errText(path))
		}
		d.printChildren(cc, n)
		return ExitUsage
	}
	if debug.Dispatch() {
		debug.Logf("dispatch: %q args %q\n", c.Name(), rest)
	}

	code, err := invoke(cc, c, rest)
	switch {
	case err == nil:
		return code
	case errors.Is(err, ErrUsage):
		fmt.Fprintf(cc.Stderr, "%s %s\n", d.prefix(cc), d.errText(err.Error()))
		fmt.Fprintf(cc.Stderr, "usage: %s\n", strings.TrimSpace(cc.Progname+" "+c.Name()+" "+c.Usage))
		return ExitUsage
	default:
		fmt.Fprintf(cc.Stderr, "%s %s\n", d.prefix(cc), d.errText(err.Error()))
		return ExitFailure
	}
}

func invoke(cc *Context, c *Command, args []string) (int, error) {
	progname := cc.Progname
	cc.Progname = progname + " " + c.Name()
	defer func() { cc.Progname = progname }()
	return c.Handler(cc, args)
}

func (d *Dispatcher) printChildren(cc *Context, n Node) {
	fmt.Fprintf(cc.Stderr, "%s usage:\n", d.prefix(cc))
	for _, k := range n.Children() {
		fmt.Fprintf(cc.Stderr, "  %s\n", k)
	}
}
