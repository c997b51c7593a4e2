package main

import (
	"io"
	"log/slog"

	"github.com/scott-cotton/cli"

	"github.com/nihil-go/nihil/command"
	"github.com/nihil-go/nihil/config"
	"github.com/nihil-go/nihil/encode"
	"github.com/nihil-go/nihil/format"
)

// App is the state shared by all commands.
type App struct {
	cfg      *MainConfig
	cc       *cli.Context
	path     string
	log      *slog.Logger
	store    *config.Store
	registry *command.Registry
	options  []config.Option

	// configuration
	color  bool
	format string
	indent int64
	shell  string
}

func NewApp(cfg *MainConfig, cc *cli.Context) (*App, error) {
	a := &App{
		cfg:      cfg,
		cc:       cc,
		path:     cfg.configPath(),
		log:      theLog,
		registry: command.NewRegistry(),
		color:    true,
		format:   "config",
		indent:   4,
		shell:    "/bin/sh",
	}
	a.store = config.NewStore(config.WithLogger(a.log))
	if err := a.registerOptions(); err != nil {
		a.Close()
		return nil, err
	}
	if err := a.registerCommands(); err != nil {
		a.Close()
		return nil, err
	}
	return a, nil
}

func (a *App) registerOptions() error {
	add := func(o config.Option, err error) error {
		if err != nil {
			return err
		}
		a.options = append(a.options, o)
		return nil
	}
	if err := add(config.NewBoolean(a.store, &a.color, "color", "color output on terminals")); err != nil {
		return err
	}
	if err := add(config.NewString(a.store, &a.format, "format", "default output format")); err != nil {
		return err
	}
	if err := add(config.NewInteger(a.store, &a.indent, "indent", "spaces per indentation level")); err != nil {
		return err
	}
	return add(config.NewString(a.store, &a.shell, "shell", "shell for exec shell"))
}

func (a *App) registerCommands() error {
	cmds := []struct {
		path, usage string
		h           command.HandlerFunc
	}{
		{"config get", "<name>", a.configGet},
		{"config set", "<name> <value>", a.configSet},
		{"config unset", "<name>", a.configUnset},
		{"config list", "", a.configList},
		{"config dump", "[-f format]", a.configDump},
		{"ucl fmt", "[-f format] [-d] [files]", a.uclFmt},
		{"ucl get", "<path> [files]", a.uclGet},
		{"ucl import", "[-f format] <file>", a.uclImport},
		{"exec which", "<name>", a.execWhich},
		{"exec run", "<program> [args]", a.execRun},
		{"exec shell", "<command>", a.execShell},
		{"util size", "<size>", a.utilSize},
	}
	for _, c := range cmds {
		if _, err := a.registry.Register(c.path, c.usage, c.h); err != nil {
			return err
		}
	}
	return nil
}

// Close unregisters the application's options.
func (a *App) Close() {
	for _, o := range a.options {
		if err := o.Close(); err != nil {
			a.log.Warn("close option", "name", o.Name(), "error", err)
		}
	}
	a.options = nil
}

func (a *App) Dispatch(cc *command.Context, args []string) int {
	d := command.NewDispatcher(a.registry)
	d.Color = a.useColor(cc.Stderr)
	return d.Dispatch(cc, args)
}

func (a *App) useColor(w io.Writer) bool {
	return a.cfg.Color || (a.color && command.IsTerminal(w))
}

// outFormat returns f if set and otherwise the configured default.
func (a *App) outFormat(f *format.Format) (format.Format, error) {
	if f != nil {
		return *f, nil
	}
	res, err := format.ParseFormat(a.format)
	if err != nil {
		return 0, command.Usagef("option 'format': %v", err)
	}
	return res, nil
}

func (a *App) encOpts(w io.Writer, f format.Format) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeFormat(f),
		encode.Indent(int(a.indent)),
		encode.TrailingNewline(true),
	}
	if a.useColor(w) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

// parseFlags parses the options of a command with the cli parser.
func (a *App) parseFlags(cmd *cli.Command, args []string) ([]string, error) {
	rest, err := cmd.Parse(a.cc, args)
	if err != nil {
		return nil, command.Usagef("%v", err)
	}
	return rest, nil
}
