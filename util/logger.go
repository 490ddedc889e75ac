// Package util provides low-level helpers shared by the other packages.
package util

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// LogLevel controls output verbosity.
type LogLevel int

const (
	LogQuiet   LogLevel = 0
	LogVerbose LogLevel = 1
	LogDebug   LogLevel = 2
)

// Logger writes levelled diagnostics to stderr.  Conversion results
// never go through it; they belong on stdout.
type Logger struct {
	level      LogLevel
	output     io.Writer
	mu         sync.Mutex
	timestamps bool
}

// NewLogger returns a Logger for the given -v count (0 = errors only,
// 1 = verbose, 2+ = debug).  Debug mode also stamps each line.
func NewLogger(verbosity int) *Logger {
	if verbosity > int(LogDebug) {
		verbosity = int(LogDebug)
	}
	return &Logger{
		level:      LogLevel(verbosity),
		output:     os.Stderr,
		timestamps: verbosity >= int(LogDebug),
	}
}

// SetOutput overrides the output writer (default: os.Stderr).
func (l *Logger) SetOutput(w io.Writer) { l.output = w }

// Enabled reports whether messages at lvl would be written.
func (l *Logger) Enabled(lvl LogLevel) bool { return l.level >= lvl }

// Info prints when verbosity ≥ 1.  Prefixed with [INF].
func (l *Logger) Info(format string, args ...interface{}) {
	if l.Enabled(LogVerbose) {
		l.write("INF", format, args...)
	}
}

// Debug prints when verbosity ≥ 2.  Prefixed with [DBG].
func (l *Logger) Debug(format string, args ...interface{}) {
	if l.Enabled(LogDebug) {
		l.write("DBG", format, args...)
	}
}

// Error always prints regardless of verbosity.  Prefixed with [ERR].
func (l *Logger) Error(format string, args ...interface{}) {
	l.write("ERR", format, args...)
}

func (l *Logger) write(level, format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	msg := fmt.Sprintf(format, args...)
	if l.timestamps {
		ts := time.Now().Format("15:04:05.000")
		fmt.Fprintf(l.output, "%s [%s] %s\n", ts, level, msg)
	} else {
		fmt.Fprintf(l.output, "[%s] %s\n", level, msg)
	}
}
