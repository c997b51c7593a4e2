// Package debug switches diagnostic output on through environment
// variables. NIHIL_DEBUG_PARSE, NIHIL_DEBUG_CONFIG, NIHIL_DEBUG_DISPATCH
// and NIHIL_DEBUG_EXEC take strconv.ParseBool values.
package debug

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
)

type debug struct {
	Parse    bool
	Config   bool
	Dispatch bool
	Exec     bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("NIHIL_DEBUG_PARSE")
	d.Config = boolEnv("NIHIL_DEBUG_CONFIG")
	d.Dispatch = boolEnv("NIHIL_DEBUG_DISPATCH")
	d.Exec = boolEnv("NIHIL_DEBUG_EXEC")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Config() bool {
	return d.Config
}
func Dispatch() bool {
	return d.Dispatch
}
func Exec() bool {
	return d.Exec
}

func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
}

// NewLogger returns a text logger writing to w without timestamps and
// without the level for INFO records.
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			if a.Key == slog.LevelKey {
				if a.Value.String() == "INFO" {
					return slog.Attr{}
				}
			}
			return a
		},
	}))
}

// Logger returns a logger on stderr which includes debug records when
// any NIHIL_DEBUG_ variable is set.
func Logger() *slog.Logger {
	level := slog.LevelInfo
	if d.Parse || d.Config || d.Dispatch || d.Exec {
		level = slog.LevelDebug
	}
	return NewLogger(os.Stderr, level)
}
