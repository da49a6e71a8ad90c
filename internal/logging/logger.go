// Package logging builds the application logger.
//
// The UI owns stdout and stderr while it runs, so log output goes to a file
// or nowhere at all.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	clog "github.com/charmbracelet/log"
)

// Options selects where and how much to log.
type Options struct {
	// Path of the log file. Empty discards all output.
	Path  string
	Level string
}

// New returns a logger for opts and a closer for its underlying file.
func New(opts Options) (*clog.Logger, io.Closer, error) {
	level := clog.InfoLevel
	if opts.Level != "" {
		parsed, err := clog.ParseLevel(opts.Level)
		if err != nil {
			return nil, nil, fmt.Errorf("log level: %w", err)
		}
		level = parsed
	}

	if opts.Path == "" {
		return NewWriter(io.Discard, level), nopCloser{}, nil
	}

	if err := os.MkdirAll(filepath.Dir(opts.Path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(opts.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	return NewWriter(f, level), f, nil
}

// NewWriter returns a timestamped logger writing to w.
func NewWriter(w io.Writer, level clog.Level) *clog.Logger {
	return clog.NewWithOptions(w, clog.Options{
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Prefix:          "termwallet",
	})
}

// Discard returns a logger that drops everything.
func Discard() *clog.Logger {
	return NewWriter(io.Discard, clog.FatalLevel)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
