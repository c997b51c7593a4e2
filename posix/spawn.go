package posix

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"syscall"

	"github.com/nihil-go/nihil/debug"
	"github.com/nihil-go/nihil/errs"
)

const (
	Stdin  = 0
	Stdout = 1
	Stderr = 2
)

var ErrBadFD = errors.New("unsupported file descriptor")

type spawnOpts struct {
	stdin    io.Reader
	captures map[int]*string
	dir      string
}

type SpawnOption func(*spawnOpts)

// Capture collects everything the child writes to fd, Stdout or
// Stderr, into out once the child has been waited for.
func Capture(fd int, out *string) SpawnOption {
	return func(o *spawnOpts) {
		if o.captures == nil {
			o.captures = map[int]*string{}
		}
		o.captures[fd] = out
	}
}

// Input connects r to the child's standard input.
func Input(r io.Reader) SpawnOption {
	return func(o *spawnOpts) { o.stdin = r }
}

// Dir sets the child's working directory.
func Dir(d string) SpawnOption {
	return func(o *spawnOpts) { o.dir = d }
}

// Process is a running child.
type Process struct {
	cmd  *exec.Cmd
	bufs map[int]*bytes.Buffer
	outs map[int]*string
	done bool
}

// Spawn starts ex as a child process. Streams that are not captured are
// shared with the current process.
func Spawn(ex *Executor, opts ...SpawnOption) (*Process, error) {
	o := &spawnOpts{}
	for _, opt := range opts {
		opt(o)
	}
	args := ex.Argv.Args()
	cmd := &exec.Cmd{
		Path:   ex.Path,
		Args:   args,
		Env:    ex.environ(),
		Dir:    o.dir,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
	if o.stdin != nil {
		cmd.Stdin = o.stdin
	}
	p := &Process{cmd: cmd, bufs: map[int]*bytes.Buffer{}, outs: o.captures}
	for fd := range o.captures {
		buf := &bytes.Buffer{}
		switch fd {
		case Stdout:
			cmd.Stdout = buf
		case Stderr:
			cmd.Stderr = buf
		default:
			return nil, fmt.Errorf("%w: %d", ErrBadFD, fd)
		}
		p.bufs[fd] = buf
	}
	if debug.Exec() {
		debug.Logf("spawn %s: %s\n", ex.Path, ex.Argv)
	}
	if err := cmd.Start(); err != nil {
		return nil, errs.Wrapf(err, "cannot spawn %s", ex.Path)
	}
	return p, nil
}

func (p *Process) Pid() int { return p.cmd.Process.Pid }

// Wait blocks until the child exits. A child exiting unsuccessfully is
// reported through the WaitResult, not as an error.
func (p *Process) Wait() (*WaitResult, error) {
	if p.done {
		panic(errs.Logicf("process %d already waited for", p.Pid()))
	}
	p.done = true
	err := p.cmd.Wait()
	for fd, buf := range p.bufs {
		*p.outs[fd] = buf.String()
	}
	var exitErr *exec.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		return nil, errs.Wrapf(err, "wait for %s", p.cmd.Path)
	}
	return &WaitResult{state: p.cmd.ProcessState}, nil
}

// WaitResult is how a child terminated.
type WaitResult struct {
	state *os.ProcessState
}

// Okay reports whether the child exited with status 0.
func (r *WaitResult) Okay() bool { return r.state.Success() }

// ExitCode returns the exit status, or -1 if the child was killed by a
// signal.
func (r *WaitResult) ExitCode() int { return r.state.ExitCode() }

// Signal returns the signal which killed the child, if any.
func (r *WaitResult) Signal() (syscall.Signal, bool) {
	ws, ok := r.state.Sys().(syscall.WaitStatus)
	if !ok || !ws.Signaled() {
		return 0, false
	}
	return ws.Signal(), true
}

func (r *WaitResult) String() string { return r.state.String() }
