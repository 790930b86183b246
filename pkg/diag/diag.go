// Package diag writes salin's diagnostic log. Errors are always written;
// debug lines only when debug output is enabled. A nil *Logger is a no-op.
package diag

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
)

// Logger writes diagnostic lines to a writer. Safe for concurrent use.
type Logger struct {
	mu    sync.Mutex
	w     io.Writer
	debug bool
	c     io.Closer
}

// NewLogger creates a Logger that writes to w. Debug lines are written only
// when debug is true.
func NewLogger(w io.Writer, debug bool) *Logger {
	return &Logger{w: w, debug: debug}
}

// OpenFile appends diagnostics to the file at path, creating it and its
// directory if needed. Close the logger to release the file.
func OpenFile(path string, debug bool) (*Logger, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	return &Logger{w: f, debug: debug, c: f}, nil
}

// Error writes a failure entry exactly as given, one per line. No-op on nil
// receiver.
func (l *Logger) Error(entry string) {
	if l == nil {
		return
	}
	l.write(entry + "\n")
}

// Printf writes a formatted debug line. No-op on nil receiver or when debug
// output is off.
func (l *Logger) Printf(format string, args ...any) {
	if l == nil || !l.debug {
		return
	}
	l.write(fmt.Sprintf("[debug] "+format+"\n", args...))
}

// Section writes a visual separator in debug output.
func (l *Logger) Section(label string) {
	if l == nil || !l.debug {
		return
	}
	l.write(fmt.Sprintf("[debug] ─── %s ───\n", label))
}

// Debug reports whether debug lines are written.
func (l *Logger) Debug() bool {
	return l != nil && l.debug
}

// Close releases the log file opened by OpenFile.
func (l *Logger) Close() error {
	if l == nil || l.c == nil {
		return nil
	}
	return l.c.Close()
}

func (l *Logger) write(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	io.WriteString(l.w, s) //nolint:errcheck
}
