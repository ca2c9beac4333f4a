// Package logger provides component-scoped structured logging for docsearch.
// Warnings and errors are always written; when verbose mode is enabled via
// the --verbose flag, debug and info records are written too, which helps
// users follow each call to the retrieval service.
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
)

var (
	mu      sync.RWMutex
	verbose bool
	output  io.Writer = os.Stderr
	base              = newBase(os.Stderr, false)
)

func newBase(w io.Writer, v bool) *slog.Logger {
	level := slog.LevelWarn
	if v {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
	base = newBase(output, verbose)
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput sets the output writer for logs.
// Defaults to os.Stderr. The TUI points this at a log file.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
	base = newBase(output, verbose)
}

// Section prints a section header if verbose mode is enabled.
func Section(name string) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, "\n=== %s ===\n", name)
	}
}

// Logger writes records tagged with a component name.
// It resolves the shared handler on every call, so loggers created at
// package init observe later SetVerbose and SetOutput calls.
type Logger struct {
	component string
	attrs     []any
}

// New returns a logger for the named component.
func New(component string) *Logger {
	return &Logger{component: component}
}

// With returns a logger that adds the given attributes to every record.
func (l *Logger) With(args ...any) *Logger {
	attrs := make([]any, 0, len(l.attrs)+len(args))
	attrs = append(attrs, l.attrs...)
	attrs = append(attrs, args...)
	return &Logger{component: l.component, attrs: attrs}
}

// Debug logs at debug level.
func (l *Logger) Debug(msg string, args ...any) {
	l.log(slog.LevelDebug, msg, args...)
}

// Info logs at info level.
func (l *Logger) Info(msg string, args ...any) {
	l.log(slog.LevelInfo, msg, args...)
}

// Warn logs at warn level.
func (l *Logger) Warn(msg string, args ...any) {
	l.log(slog.LevelWarn, msg, args...)
}

// Error logs at error level.
func (l *Logger) Error(msg string, args ...any) {
	l.log(slog.LevelError, msg, args...)
}

func (l *Logger) log(level slog.Level, msg string, args ...any) {
	mu.RLock()
	inner := base
	mu.RUnlock()

	ctx := context.Background()
	if !inner.Enabled(ctx, level) {
		return
	}
	all := make([]any, 0, 2+len(l.attrs)+len(args))
	all = append(all, "component", l.component)
	all = append(all, l.attrs...)
	all = append(all, args...)
	inner.Log(ctx, level, msg, all...)
}
