// Package logging provides the severity-tagged line logger used across
// the CLI. Output goes to injected writers so tests can capture it.
package logging

import (
	"fmt"
	"io"
)

// Logger writes tagged status lines. Informational output goes to Out,
// warnings and errors to Err.
type Logger struct {
	Out   io.Writer
	Err   io.Writer
	Debug bool
	Quiet bool
}

// New returns a Logger writing to the given writers.
func New(out, err io.Writer) *Logger {
	return &Logger{Out: out, Err: err}
}

// Infof logs a general progress message.
func (l *Logger) Infof(format string, args ...any) {
	if l.Quiet {
		return
	}
	fmt.Fprintf(l.Out, "[INFO] "+format+"\n", args...)
}

// Successf logs a completed step.
func (l *Logger) Successf(format string, args ...any) {
	if l.Quiet {
		return
	}
	fmt.Fprintf(l.Out, "[ OK ] "+format+"\n", args...)
}

// Skipf logs a step that was a no-op (already present, declined, gated).
func (l *Logger) Skipf(format string, args ...any) {
	if l.Quiet {
		return
	}
	fmt.Fprintf(l.Out, "[SKIP] "+format+"\n", args...)
}

// Warnf logs a recoverable problem.
func (l *Logger) Warnf(format string, args ...any) {
	fmt.Fprintf(l.Err, "[WARN] "+format+"\n", args...)
}

// Errorf logs a failure.
func (l *Logger) Errorf(format string, args ...any) {
	fmt.Fprintf(l.Err, "[FAIL] "+format+"\n", args...)
}

// Debugf logs diagnostic detail, only when debug mode is on.
func (l *Logger) Debugf(format string, args ...any) {
	if !l.Debug {
		return
	}
	fmt.Fprintf(l.Err, "[DBUG] "+format+"\n", args...)
}
