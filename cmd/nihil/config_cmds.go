package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/nihil-go/nihil/command"
	"github.com/nihil-go/nihil/encode"
	"github.com/nihil-go/nihil/format"
	"github.com/nihil-go/nihil/parse"
	"github.com/nihil-go/nihil/posix"
	"github.com/nihil-go/nihil/text"
	"github.com/nihil-go/nihil/ucl"
)

func (a *App) configGet(cc *command.Context, args []string) (int, error) {
	if len(args) != 1 {
		return 0, command.Usagef("expected an option name")
	}
	o, err := a.store.Fetch(args[0])
	if err != nil {
		return 0, err
	}
	fmt.Fprintln(cc.Stdout, o.String())
	return command.ExitOK, nil
}

func (a *App) configSet(cc *command.Context, args []string) (int, error) {
	if len(args) != 2 {
		return 0, command.Usagef("expected an option name and a value")
	}
	o, err := a.store.Fetch(args[0])
	if err != nil {
		return 0, err
	}
	if err := o.SetString(args[1]); err != nil {
		return 0, err
	}
	if err := a.store.Write(a.path); err != nil {
		return 0, err
	}
	a.log.Debug("option set", "name", o.Name(), "value", o.String(), "path", a.path)
	return command.ExitOK, nil
}

// configUnset removes an option from the configuration file. The
// running value is left alone: it reverts to its default the next time
// the file is read.
func (a *App) configUnset(cc *command.Context, args []string) (int, error) {
	if len(args) != 1 {
		return 0, command.Usagef("expected an option name")
	}
	if _, err := a.store.Fetch(args[0]); err != nil {
		return 0, err
	}
	obj, err := parse.ParseFile(a.path, parse.ParseConfig())
	if errors.Is(err, os.ErrNotExist) {
		return command.ExitOK, nil
	}
	if err != nil {
		return 0, err
	}
	m, err := ucl.Cast[ucl.Map[ucl.Object]](obj)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", a.path, err)
	}
	if !m.Remove(args[0]) {
		return command.ExitOK, nil
	}
	out := encode.MustString(m.Object(), encode.EncodeFormat(format.ConfigFormat))
	return command.ExitOK, posix.SafeWriteFile(a.path, []byte(out))
}

func (a *App) configList(cc *command.Context, args []string) (int, error) {
	if len(args) != 0 {
		return 0, command.Usagef("unexpected arguments")
	}
	var rows [][]string
	for o := range a.store.All() {
		def := "no"
		if o.IsDefault() {
			def = "yes"
		}
		rows = append(rows, []string{o.Name(), o.Type().String(), def, o.String(), o.Description()})
	}
	return command.ExitOK, text.Tabulate("{:NAME}  {:TYPE}  {:DEFAULT}  {:VALUE}  {:DESCRIPTION}", rows, cc.Stdout)
}

func (a *App) configDump(cc *command.Context, args []string) (int, error) {
	cfg := newOutConfig("dump")
	args, err := a.parseFlags(cfg.Cmd, args)
	if err != nil {
		return 0, err
	}
	if len(args) != 0 {
		return 0, command.Usagef("unexpected arguments")
	}
	f, err := a.outFormat(cfg.Format)
	if err != nil {
		return 0, err
	}
	return command.ExitOK, encode.Encode(a.store.Object(true), cc.Stdout, a.encOpts(cc.Stdout, f)...)
}
