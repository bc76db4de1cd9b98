// Package logger builds prefixed charmbracelet/log loggers for the packages that
// run next to the IPC stream.
package logger

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// Output is where package loggers write. Stdout carries the msgpack stream,
// so logs always go to stderr.
var Output io.Writer = os.Stderr

// New creates a charm log with prefix that follows the global log level.
func New(prefix string) *log.Logger {
	return log.NewWithOptions(Output, log.Options{
		Prefix:          prefix,
		ReportCaller:    false,
		ReportTimestamp: log.GetLevel() <= log.DebugLevel,
		Formatter:       log.TextFormatter,
		Level:           log.GetLevel(),
	})
}

// Setup configures the global logger. Debug mode adds timestamps and the
// caller; otherwise only warnings and errors are printed.
func Setup(debug bool) {
	log.SetOutput(Output)
	if debug {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
		log.SetReportCaller(true)
		return
	}
	log.SetLevel(log.WarnLevel)
	log.SetReportTimestamp(false)
	log.SetReportCaller(false)
}
