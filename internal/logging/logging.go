// Package logging builds the zerolog logger shared by winstack components.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

type settings struct {
	writers []io.Writer
	level   zerolog.Level
	closers []io.Closer
}

// Option configures New.
type Option func(*settings) error

// WithConsole writes human-readable output to stderr. Stdout is kept free for
// command output and the stdio MCP transport.
func WithConsole() Option {
	return func(s *settings) error {
		s.writers = append(s.writers, zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		})
		return nil
	}
}

// WithWriter writes JSON lines to w.
func WithWriter(w io.Writer) Option {
	return func(s *settings) error {
		s.writers = append(s.writers, w)
		return nil
	}
}

// WithFile appends plain-text output to path, creating parent directories.
func WithFile(path string) Option {
	return func(s *settings) error {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		s.closers = append(s.closers, f)
		s.writers = append(s.writers, zerolog.ConsoleWriter{
			Out:        f,
			TimeFormat: time.RFC3339,
			NoColor:    true,
		})
		return nil
	}
}

// WithLevel sets the minimum level by name ("debug", "info", "warn", ...).
func WithLevel(name string) Option {
	return func(s *settings) error {
		if name == "" {
			return nil
		}
		level, err := zerolog.ParseLevel(name)
		if err != nil {
			return fmt.Errorf("invalid log level %q: %w", name, err)
		}
		s.level = level
		return nil
	}
}

// Logger is a zerolog logger plus any files it must close.
type Logger struct {
	zerolog.Logger
	closers []io.Closer
}

// New builds a logger. Without writer options it discards everything.
func New(opts ...Option) (*Logger, error) {
	s := &settings{level: zerolog.InfoLevel}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, fmt.Errorf("failed to apply logger option: %w", err)
		}
	}

	var out io.Writer
	switch len(s.writers) {
	case 0:
		return &Logger{Logger: zerolog.Nop(), closers: s.closers}, nil
	case 1:
		out = s.writers[0]
	default:
		out = zerolog.MultiLevelWriter(s.writers...)
	}

	zl := zerolog.New(out).Level(s.level).With().Timestamp().Logger()
	return &Logger{Logger: zl, closers: s.closers}, nil
}

// Close closes any files opened by WithFile.
func (l *Logger) Close() error {
	var first error
	for _, c := range l.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
