// Package logging builds the diagnostic logger shared by uvm commands.
// Diagnostics go to stderr; user-facing progress is printed by the commands
// themselves.
package logging

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/unnarize/uvm/internal/branding"
)

// New returns a logger writing to w. Verbose lowers the level to debug;
// otherwise only warnings and errors are shown.
func New(w io.Writer, verbose bool) *log.Logger {
	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Prefix: branding.CLIName(),
		Level:  level,
	})
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
}
