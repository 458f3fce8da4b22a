package logger

import (
	"io"
	"os"

	"github.com/fatih/color" // Colored console output
)

// Leveled printf-style loggers backed by fatih/color.
// They all write to the same destination (stderr unless changed by Init),
// keeping standard output free for the command's own report lines.

// Info prints informational messages in green.
var Info func(format string, a ...any)

// Warn prints warnings in bright magenta.
var Warn func(format string, a ...any)

// Error prints errors in red.
var Error func(format string, a ...any)

// Debug prints debug messages in cyan when enabled, otherwise it is a no-op.
var Debug func(format string, a ...any)

func init() {
	Init(false, os.Stderr)
}

// Init (re)binds the loggers to w and turns debug output on or off.
// A nil writer falls back to stderr.
func Init(enableDebug bool, w io.Writer) {
	if w == nil {
		w = os.Stderr
	}

	Info = bind(color.New(color.FgGreen), w)
	Warn = bind(color.New(color.FgHiMagenta), w)
	Error = bind(color.New(color.FgRed), w)

	if enableDebug {
		Debug = bind(color.New(color.FgCyan), w)
	} else {
		Debug = func(format string, a ...any) {}
	}
}

func bind(c *color.Color, w io.Writer) func(format string, a ...any) {
	printf := c.FprintfFunc()
	return func(format string, a ...any) {
		printf(w, format, a...)
	}
}
