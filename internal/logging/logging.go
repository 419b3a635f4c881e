// Package logging writes leveled logs to a file. The TUI owns stdout
// and stderr while the program runs, so nothing may log to the
// terminal.
package logging

import (
	"fmt"
	"io"
	"os"

	clog "github.com/charmbracelet/log"
)

// L is the package-level logger. It discards output until Setup is
// called, so early code paths and tests can log freely.
var L = clog.New(io.Discard)

// Setup points the logger at the given file, creating or appending as
// needed. The returned closer flushes the file on shutdown.
func Setup(path string, debug bool) (io.Closer, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	level := clog.InfoLevel
	if debug {
		level = clog.DebugLevel
	}
	L = clog.NewWithOptions(f, clog.Options{
		ReportTimestamp: true,
		Level:           level,
	})
	return f, nil
}

// Debugf logs a debug-level formatted message.
func Debugf(format string, v ...interface{}) {
	L.Debug(fmt.Sprintf(format, v...))
}

// Infof logs an info-level formatted message.
func Infof(format string, v ...interface{}) {
	L.Info(fmt.Sprintf(format, v...))
}

// Warnf logs a warning-level formatted message.
func Warnf(format string, v ...interface{}) {
	L.Warn(fmt.Sprintf(format, v...))
}

// Errorf logs an error-level formatted message.
func Errorf(format string, v ...interface{}) {
	L.Error(fmt.Sprintf(format, v...))
}
