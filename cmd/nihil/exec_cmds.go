package main

import (
	"fmt"
	"os"
	"strings"

	"mvdan.cc/sh/v3/shell"

	"github.com/nihil-go/nihil/command"
	"github.com/nihil-go/nihil/posix"
)

func (a *App) execWhich(cc *command.Context, args []string) (int, error) {
	if len(args) == 0 {
		return 0, command.Usagef("expected a program name")
	}
	code := command.ExitOK
	for _, name := range args {
		p, ok := posix.FindInPath(name)
		if !ok {
			fmt.Fprintf(cc.Stderr, "%s: %s: not found\n", cc.Progname, name)
			code = command.ExitFailure
			continue
		}
		fmt.Fprintln(cc.Stdout, p)
	}
	return code, nil
}

// execRun runs a program and exits with its status. A single argument
// holding white space is split into words as the shell would, with
// variables taken from the environment.
func (a *App) execRun(cc *command.Context, args []string) (int, error) {
	if len(args) == 0 {
		return 0, command.Usagef("expected a program")
	}
	if len(args) == 1 && strings.ContainsAny(args[0], " \t\n") {
		words, err := shell.Fields(args[0], os.Getenv)
		if err != nil {
			return 0, fmt.Errorf("cannot split %q: %w", args[0], err)
		}
		if len(words) == 0 {
			return 0, command.Usagef("empty command")
		}
		args = words
	}
	ex, err := posix.Execvp(args[0], posix.NewArgv(args...))
	if err != nil {
		return 0, err
	}
	return a.spawn(cc, ex)
}

func (a *App) execShell(cc *command.Context, args []string) (int, error) {
	if len(args) == 0 {
		return 0, command.Usagef("expected a command")
	}
	ex := posix.Execl(a.shell, "sh", "-c", strings.Join(args, " "))
	return a.spawn(cc, ex)
}

func (a *App) spawn(cc *command.Context, ex *posix.Executor) (int, error) {
	a.log.Debug("spawn", "path", ex.Path, "argv", ex.Argv.String())
	var stdout, stderr string
	proc, err := posix.Spawn(ex, posix.Input(cc.Stdin), posix.Capture(posix.Stdout, &stdout), posix.Capture(posix.Stderr, &stderr))
	if err != nil {
		return 0, err
	}
	res, err := proc.Wait()
	if err != nil {
		return 0, err
	}
	fmt.Fprint(cc.Stdout, stdout)
	fmt.Fprint(cc.Stderr, stderr)
	if sig, ok := res.Signal(); ok {
		return 128 + int(sig), nil
	}
	return res.ExitCode(), nil
}
