package posix

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"

	"github.com/nihil-go/nihil/debug"
	"github.com/nihil-go/nihil/errs"
)

// Executor is a program ready to run: the path of the executable, its
// argument vector and, if non-nil, its environment.
type Executor struct {
	Path string
	Argv *Argv
	Env  []string
}

// Execv runs the program at path.
func Execv(path string, argv *Argv) *Executor {
	return &Executor{Path: path, Argv: argv}
}

// Execvp searches $PATH for file.
func Execvp(file string, argv *Argv) (*Executor, error) {
	p, ok := FindInPath(file)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, file)
	}
	return Execv(p, argv), nil
}

func Execl(path string, args ...string) *Executor {
	return Execv(path, NewArgv(args...))
}

func Execlp(file string, args ...string) (*Executor, error) {
	return Execvp(file, NewArgv(args...))
}

// Shell runs cmd with /bin/sh -c.
func Shell(cmd string) *Executor {
	return Execl("/bin/sh", "sh", "-c", cmd)
}

func (e *Executor) environ() []string {
	if e.Env != nil {
		return e.Env
	}
	return os.Environ()
}

func (e *Executor) String() string {
	return e.Argv.String()
}

// Exec replaces the running process. It only returns on failure.
func (e *Executor) Exec() error {
	if debug.Exec() {
		debug.Logf("exec %s: %s\n", e.Path, e.Argv)
	}
	err := unix.Exec(e.Path, e.Argv.Args(), e.environ())
	return errs.Wrapf(err, "cannot execute %s", e.Path)
}
