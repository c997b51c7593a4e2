package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/scott-cotton/cli"

	"github.com/nihil-go/nihil/format"
	"github.com/nihil-go/nihil/posix"
)

type MainConfig struct {
	Config string `cli:"name=c aliases=config desc='configuration file'"`
	Color  bool   `cli:"name=color desc='color output even when not on a terminal'"`

	Main *cli.Command
}

func defaultConfigPath() string {
	if p, err := posix.Getenv("NIHIL_CONFIG"); err == nil && p != "" {
		return p
	}
	dir, err := posix.Getenv("XDG_CONFIG_HOME")
	if err != nil || dir == "" {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "nihil", "config.ucl")
}

func (cfg *MainConfig) configPath() string {
	if cfg.Config != "" {
		return cfg.Config
	}
	return defaultConfigPath()
}

func fmtFunc(fp **format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		*fp = &f
		return f, nil
	})
}

func formatOpt(fp **format.Format) *cli.Opt {
	return &cli.Opt{
		Name:        "f",
		Aliases:     []string{"format"},
		Description: "output format: json/j, compact/J, config/c, yaml/y",
		Type:        cli.NamedFuncOpt(fmtFunc(fp), "(format)"),
	}
}

type FmtConfig struct {
	Diff   bool `cli:"name=d aliases=diff desc='print a diff of the input against the formatted output'"`
	Format *format.Format

	Fmt *cli.Command
}

func newFmtConfig() *FmtConfig {
	cfg := &FmtConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cli.NewCommandAt(&cfg.Fmt, "fmt").
		WithSynopsis("fmt [-f format] [-d] [files]").
		WithOpts(append(opts, formatOpt(&cfg.Format))...)
	return cfg
}

// OutConfig holds the options of commands whose only option is the
// output format.
type OutConfig struct {
	Format *format.Format

	Cmd *cli.Command
}

func newOutConfig(name string) *OutConfig {
	cfg := &OutConfig{}
	cli.NewCommandAt(&cfg.Cmd, name).
		WithOpts(formatOpt(&cfg.Format))
	return cfg
}
