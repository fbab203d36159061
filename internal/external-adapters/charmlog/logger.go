// Package charmlog adapts charmbracelet/log to the domain Logger interface.
package charmlog

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/konasuite/konabuild/internal/domain/interfaces"
)

// Logger writes structured, leveled logs through charmbracelet/log
type Logger struct {
	logger *log.Logger
}

// New creates a logger writing to w at the given level (debug, info, warn, error)
func New(w io.Writer, level string) (*Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	l := log.NewWithOptions(w, log.Options{
		Prefix: "konabuild",
		Level:  lvl,
	})
	return &Logger{logger: l}, nil
}

// ParseLevel converts a level name to a charmbracelet/log level; empty means info
func ParseLevel(level string) (log.Level, error) {
	if strings.TrimSpace(level) == "" {
		return log.InfoLevel, nil
	}
	lvl, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return log.InfoLevel, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return lvl, nil
}

// Debug logs debug-level messages
func (l *Logger) Debug(msg string, fields ...interfaces.Field) {
	l.logger.Debug(msg, keyvals(fields)...)
}

// Info logs informational messages
func (l *Logger) Info(msg string, fields ...interfaces.Field) {
	l.logger.Info(msg, keyvals(fields)...)
}

// Warn logs warning messages
func (l *Logger) Warn(msg string, fields ...interfaces.Field) {
	l.logger.Warn(msg, keyvals(fields)...)
}

// Error logs error messages
func (l *Logger) Error(msg string, fields ...interfaces.Field) {
	l.logger.Error(msg, keyvals(fields)...)
}

func keyvals(fields []interfaces.Field) []interface{} {
	kv := make([]interface{}, 0, len(fields)*2)
	for _, f := range fields {
		kv = append(kv, f.Key, f.Value)
	}
	return kv
}

var _ interfaces.Logger = (*Logger)(nil)
