package main

import (
	"fmt"

	"github.com/nihil-go/nihil/command"
	"github.com/nihil-go/nihil/text"
)

func (a *App) utilSize(cc *command.Context, args []string) (int, error) {
	if len(args) != 1 {
		return 0, command.Usagef("expected a size")
	}
	n, err := text.ParseSize[uint64](args[0])
	if err != nil {
		return 0, err
	}
	fmt.Fprintln(cc.Stdout, n)
	return command.ExitOK, nil
}
