// Package logger provides diagnostic logging for lexi.
// Errors are always written; when verbose mode is enabled via the --verbose
// flag, debug, info and warning messages are written as well.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

var (
	mu      sync.RWMutex
	verbose bool
	output  io.Writer = os.Stderr
	base              = newLogger(os.Stderr, false)
)

func newLogger(w io.Writer, v bool) *log.Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: v,
		TimeFormat:      time.TimeOnly,
		Level:           levelFor(v),
	})
	return l
}

func levelFor(v bool) log.Level {
	if v {
		return log.DebugLevel
	}
	return log.ErrorLevel
}

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
	base = newLogger(output, v)
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput sets the output writer for logs.
// Defaults to os.Stderr. Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
	base = newLogger(w, verbose)
}

// OpenFile redirects logs to a dated file in dir and returns a function that
// restores stderr and closes the file.
func OpenFile(dir string) (func(), error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	name := fmt.Sprintf("lexi-%s.log", time.Now().Format("2006-01-02"))
	f, err := os.OpenFile(filepath.Join(dir, name), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	SetOutput(f)
	return func() {
		SetOutput(os.Stderr)
		f.Close() //nolint:errcheck,gosec // best-effort close on shutdown
	}, nil
}

// Debug prints a message if verbose mode is enabled.
func Debug(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	base.Debugf(format, args...)
}

// Section prints a section header if verbose mode is enabled.
func Section(name string) {
	mu.RLock()
	defer mu.RUnlock()
	base.Debugf("=== %s ===", name)
}

// Info prints an informational message if verbose mode is enabled.
func Info(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	base.Infof(format, args...)
}

// Warn prints a warning message if verbose mode is enabled.
func Warn(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	base.Warnf(format, args...)
}

// Error prints an error message. Errors are written regardless of verbose mode.
func Error(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	base.Errorf(format, args...)
}
