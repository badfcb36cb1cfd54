// Package logging provides structured diagnostic logging for symposium
// runs. It wraps Go's log/slog package to emit JSON records on stderr,
// keeping stdout free for the simulation event stream.
package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Log levels accepted by New.
const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
)

// Logger is a leveled, structured logger. It is safe for concurrent use.
type Logger struct {
	logger *slog.Logger
	attrs  []slog.Attr // Persistent attributes (scenario, worker)
}

// New creates a Logger writing JSON-formatted records to w. If w is nil,
// records go to stderr.
//
// The level parameter controls which messages are logged, from "debug"
// (everything) through "error" (errors only). Unrecognized levels fall back
// to "info".
func New(w io.Writer, level string) *Logger {
	if w == nil {
		w = os.Stderr
	}

	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: parseLevel(level),
	})

	return &Logger{logger: slog.New(handler)}
}

// Nop returns a Logger that discards all output. Useful for tests and for
// callers that run with diagnostics disabled.
func Nop() *Logger {
	return &Logger{logger: slog.New(slog.NewJSONHandler(io.Discard, nil))}
}

// parseLevel converts a string log level to slog.Level, defaulting to INFO.
func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ValidLevels returns the list of valid log level strings.
func ValidLevels() []string {
	return []string{LevelDebug, LevelInfo, LevelWarn, LevelError}
}

// WithScenario returns a child Logger tagging every record with the
// scenario name ("procs", "dining"). The child inherits existing attributes.
func (l *Logger) WithScenario(name string) *Logger {
	return l.withAttr(slog.String("scenario", name))
}

// WithWorker returns a child Logger tagging every record with a worker id.
// The child inherits existing attributes.
func (l *Logger) WithWorker(id int) *Logger {
	return l.withAttr(slog.Int("worker", id))
}

// With returns a child Logger tagging every record with an arbitrary
// key-value pair.
func (l *Logger) With(key string, value any) *Logger {
	return l.withAttr(slog.Any(key, value))
}

// withAttr creates a new Logger with an additional persistent attribute.
func (l *Logger) withAttr(attr slog.Attr) *Logger {
	attrs := make([]slog.Attr, len(l.attrs)+1)
	copy(attrs, l.attrs)
	attrs[len(l.attrs)] = attr

	return &Logger{
		logger: l.logger,
		attrs:  attrs,
	}
}

// Debug logs a message at DEBUG level with alternating key-value arguments.
func (l *Logger) Debug(msg string, args ...any) {
	l.log(slog.LevelDebug, msg, args...)
}

// Info logs a message at INFO level with alternating key-value arguments.
func (l *Logger) Info(msg string, args ...any) {
	l.log(slog.LevelInfo, msg, args...)
}

// Warn logs a message at WARN level with alternating key-value arguments.
func (l *Logger) Warn(msg string, args ...any) {
	l.log(slog.LevelWarn, msg, args...)
}

// Error logs a message at ERROR level with alternating key-value arguments.
func (l *Logger) Error(msg string, args ...any) {
	l.log(slog.LevelError, msg, args...)
}

// log combines persistent attributes with per-call arguments.
func (l *Logger) log(level slog.Level, msg string, args ...any) {
	all := make([]any, 0, len(l.attrs)*2+len(args))
	for _, attr := range l.attrs {
		all = append(all, attr.Key, attr.Value.Any())
	}
	all = append(all, args...)

	l.logger.Log(context.Background(), level, msg, all...)
}
