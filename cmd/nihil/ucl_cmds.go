package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/nihil-go/nihil/command"
	"github.com/nihil-go/nihil/encode"
	"github.com/nihil-go/nihil/parse"
	"github.com/nihil-go/nihil/ucl"
)

// input is a document named on the command line, "-" for stdin.
type input struct {
	name string
	data []byte
}

func (a *App) readInputs(cc *command.Context, args []string) ([]input, error) {
	if len(args) == 0 {
		args = []string{"-"}
	}
	res := make([]input, 0, len(args))
	for _, arg := range args {
		var (
			d   []byte
			err error
		)
		if arg == "-" {
			d, err = io.ReadAll(cc.Stdin)
		} else {
			d, err = os.ReadFile(arg)
		}
		if err != nil {
			return nil, fmt.Errorf("cannot read %s: %w", arg, err)
		}
		res = append(res, input{name: arg, data: d})
	}
	return res, nil
}

func (in input) parse(opts ...parse.ParseOption) (ucl.Object, error) {
	obj, err := parse.Parse(in.data, opts...)
	if err != nil {
		return ucl.Object{}, fmt.Errorf("%s: %w", in.name, err)
	}
	return obj, nil
}

func (a *App) uclFmt(cc *command.Context, args []string) (int, error) {
	cfg := newFmtConfig()
	args, err := a.parseFlags(cfg.Fmt, args)
	if err != nil {
		return 0, err
	}
	f, err := a.outFormat(cfg.Format)
	if err != nil {
		return 0, err
	}
	ins, err := a.readInputs(cc, args)
	if err != nil {
		return 0, err
	}
	code := command.ExitOK
	for _, in := range ins {
		obj, err := in.parse()
		if err != nil {
			return 0, err
		}
		if !cfg.Diff {
			if err := encode.Encode(obj, cc.Stdout, a.encOpts(cc.Stdout, f)...); err != nil {
				return 0, err
			}
			continue
		}
		var b strings.Builder
		if err := encode.Encode(obj, &b, encode.EncodeFormat(f), encode.Indent(int(a.indent)), encode.TrailingNewline(true)); err != nil {
			return 0, err
		}
		if writeDiff(cc.Stdout, in.name, string(in.data), b.String(), a.useColor(cc.Stdout)) {
			code = command.ExitFailure
		}
	}
	return code, nil
}

// writeDiff prints a line diff of a against b and reports whether they
// differ.
func writeDiff(w io.Writer, name, a, b string, colored bool) bool {
	dmp := diffmatchpatch.New()
	ca, cb, lines := dmp.DiffLinesToChars(a, b)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(ca, cb, false), lines)
	changed := false
	for _, d := range diffs {
		if d.Type != diffmatchpatch.DiffEqual {
			changed = true
			break
		}
	}
	if !changed {
		return false
	}
	add, del := fmt.Sprint, fmt.Sprint
	if colored {
		add, del = color.New(color.FgGreen).Sprint, color.New(color.FgRed).Sprint
	}
	fmt.Fprintf(w, "--- %s\n+++ %s (formatted)\n", name, name)
	for _, d := range diffs {
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			if !strings.HasSuffix(line, "\n") {
				line += "\n"
			}
			switch d.Type {
			case diffmatchpatch.DiffInsert:
				fmt.Fprint(w, add("+"+line))
			case diffmatchpatch.DiffDelete:
				fmt.Fprint(w, del("-"+line))
			default:
				fmt.Fprint(w, " "+line)
			}
		}
	}
	return true
}

func (a *App) uclGet(cc *command.Context, args []string) (int, error) {
	if len(args) == 0 {
		return 0, command.Usagef("expected a path")
	}
	path := args[0]
	f, err := a.outFormat(nil)
	if err != nil {
		return 0, err
	}
	ins, err := a.readInputs(cc, args[1:])
	if err != nil {
		return 0, err
	}
	code := command.ExitOK
	code := command.ExitOK
	for _, in := range ins {
		obj, err := in.parse()
		if err != nil {
			return 0, err
		}
		res, err := ucl.GetPath(obj, path)
		if err != nil {
			fmt.Fprintf(cc.Stderr, "%s: %s: %v\n", cc.Progname, in.name, err)
			code = command.ExitFailure
			continue
		}
		if s, err := ucl.Cast[ucl.String](res); err == nil {
			fmt.Fprintln(cc.Stdout, s.Value())
			continue
		}
		if res.Type().IsScalar() {
			fmt.Fprintln(cc.Stdout, encode.ScalarString(res))
			continue
		}
		if err := encode.Encode(res, cc.Stdout, a.encOpts(cc.Stdout, f)...); err != nil {
			return 0, err
		}
	}
	return code, nil
}

// uclImport converts a YAML or JSON document.
func (a *App) uclImport(cc *command.Context, args []string) (int, error) {
	cfg := newOutConfig("import")
	args, err := a.parseFlags(cfg.Cmd, args)
	if err != nil {
		return 0, err
	}
	if len(args) != 1 {
		return 0, command.Usagef("expected one file")
	}
	f, err := a.outFormat(cfg.Format)
	if err != nil {
		return 0, err
	}
	ins, err := a.readInputs(cc, args)
	if err != nil {
		return 0, err
	}
	obj, err := ins[0].parse(parse.ParseYAML())
	if err != nil {
		return 0, err
	}
	return command.ExitOK, encode.Encode(obj, cc.Stdout, a.encOpts(cc.Stdout, f)...)
}
