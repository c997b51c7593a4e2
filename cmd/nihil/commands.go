package main

import (
	"context"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/nihil-go/nihil/command"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Main, "nihil").
		WithSynopsis("nihil [opts] command [args]").
		WithDescription("nihil manages its configuration, formats UCL and runs programs.\n\n" +
			"commands:\n" +
			"  config get|set|unset|list|dump\n" +
			"  ucl fmt|get|import\n" +
			"  exec which|run|shell\n" +
			"  util size").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return nihilMain(cfg, cc, args)
		})
}

func nihilMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	app, err := NewApp(cfg, cc)
	if err != nil {
		return err
	}
	defer app.Close()
	if err := app.store.Read(app.path); err != nil {
		return err
	}
	code := app.Dispatch(&command.Context{
		Context:  context.Background(),
		Stdin:    cc.In,
		Stdout:   cc.Out,
		Stderr:   os.Stderr,
		Progname: "nihil",
	}, args)
	if code != command.ExitOK {
		return cli.ExitCodeErr(code)
	}
	return nil
}
