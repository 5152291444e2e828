// Package logging provides the small leveled logger used throughout MVCS,
// mirroring the teacher's Notifier interface (Debugf/Infof/Warnf/Errorf).
package logging

import (
	"fmt"
	"io"
	"os"
)

// Logger is the leveled logging interface consumed by the core engine.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// writerLogger writes leveled, prefixed lines to an io.Writer.
type writerLogger struct {
	w     io.Writer
	debug bool
}

// New returns a Logger writing to w. Debug lines are emitted only when
// debug is true.
func New(w io.Writer, debug bool) Logger {
	return &writerLogger{w: w, debug: debug}
}

// Discard returns a Logger that drops everything, for library callers and
// tests that don't care about log output.
func Discard() Logger { return New(io.Discard, false) }

// Stderr returns a Logger writing to os.Stderr, for CLI use.
func Stderr(debug bool) Logger { return New(os.Stderr, debug) }

func (l *writerLogger) Debugf(format string, args ...any) {
	if l.debug {
		fmt.Fprintf(l.w, "debug: "+format+"\n", args...)
	}
}

func (l *writerLogger) Infof(format string, args ...any) {
	fmt.Fprintf(l.w, format+"\n", args...)
}

func (l *writerLogger) Warnf(format string, args ...any) {
	fmt.Fprintf(l.w, "warning: "+format+"\n", args...)
}

func (l *writerLogger) Errorf(format string, args ...any) {
	fmt.Fprintf(l.w, "error: "+format+"\n", args...)
}
