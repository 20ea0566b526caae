// Package logger provides the leveled logger used by the command-line tools
// and the HTTP service.
package logger

import (
	"io"
	"log"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// Logger is the logging interface passed to services and handlers
type Logger interface {
	Debugf(format string, v ...any)
	Infof(format string, v ...any)
	Errorf(format string, v ...any)
}

// Level selects which messages are written
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelError
)

// ParseLevel parses "debug", "info" or "error" (case-insensitive).
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "", "info":
		return LevelInfo, nil
	case "error":
		return LevelError, nil
	}
	return LevelInfo, errors.Errorf("unknown log level %q", s)
}

type stdLogger struct {
	l     *log.Logger
	level Level
}

// New returns a Logger writing to stderr.
func New(level Level) Logger {
	return NewWithWriter(os.Stderr, level)
}

// NewWithWriter returns a Logger writing to w.
func NewWithWriter(w io.Writer, level Level) Logger {
	return &stdLogger{l: log.New(w, "", log.LstdFlags), level: level}
}

// Discard returns a Logger that drops every message.
func Discard() Logger {
	return NewWithWriter(io.Discard, LevelError+1)
}

func (s *stdLogger) Debugf(format string, v ...any) {
	if s.level <= LevelDebug {
		s.l.Printf("[DEBUG] "+format, v...)
	}
}

func (s *stdLogger) Infof(format string, v ...any) {
	if s.level <= LevelInfo {
		s.l.Printf("[INFO] "+format, v...)
	}
}

func (s *stdLogger) Errorf(format string, v ...any) {
	if s.level <= LevelError {
		s.l.Printf("[ERROR] "+format, v...)
	}
}
