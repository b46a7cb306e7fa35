// Package logging builds the leveled logger shared by every component.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// Prefix tags every line written by this program.
const Prefix = "todo"

// New returns a logger writing to w at the named level.
func New(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	return log.NewWithOptions(w, log.Options{
		Level:           lvl,
		Formatter:       log.TextFormatter,
		ReportTimestamp: true,
		Prefix:          Prefix,
	}), nil
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
}

// ParseLevel accepts debug, info, warn and error (case-insensitive). Empty means info.
func ParseLevel(level string) (log.Level, error) {
	level = strings.TrimSpace(level)
	if level == "" {
		return log.InfoLevel, nil
	}
	lvl, err := log.ParseLevel(strings.ToLower(level))
	if err != nil {
		return 0, fmt.Errorf("log level %q: %w", level, err)
	}
	return lvl, nil
}

// OpenFile appends to path, creating parent dirs. The TUI owns stdout,
// so interactive sessions log here instead of stderr.
func OpenFile(path, level string) (*log.Logger, io.Closer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	l, err := New(f, level)
	if err != nil {
		_ = f.Close()
		return nil, nil, err
	}
	return l, f, nil
}
