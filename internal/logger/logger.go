package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// DefaultPath is the log file used when the config does not name one, relative to the working directory.
const DefaultPath = "logs/cube.txt"

// timestampLayout prefixes every entry, using local computer time.
const timestampLayout = "2006-01-02 15:04:05"

// Logger keeps lines in memory and appends each one to a file on disk.
// The file is optional: an empty path keeps lines in memory only.
type Logger struct {
	mu    sync.Mutex
	path  string
	lines []string
	now   func() time.Time
}

// New returns a Logger writing to path and makes sure the parent directory exists.
func New(path string) *Logger {
	if path != "" {
		_ = os.MkdirAll(filepath.Dir(path), 0755)
	}
	return &Logger{path: path, now: time.Now}
}

// Log stamps line with the current time, stores it, and appends it to the log file.
// File errors are dropped so logging never interrupts the frame loop.
func (l *Logger) Log(line string) {
	stamped := "[" + l.now().Format(timestampLayout) + "] " + line

	l.mu.Lock()
	l.lines = append(l.lines, stamped)
	l.mu.Unlock()

	if l.path == "" {
		return
	}
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return
	}
	_, _ = f.WriteString(stamped + "\n")
	_ = f.Close()
}

// Logf formats according to a format specifier and logs the result.
func (l *Logger) Logf(format string, args ...any) {
	l.Log(fmt.Sprintf(format, args...))
}

// Lines returns a copy of all stored lines.
func (l *Logger) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}

// Path returns the log file path, or "" for a memory-only logger.
func (l *Logger) Path() string {
	return l.path
}
