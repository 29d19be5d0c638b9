// Package log provides structured logging for the Fitnote application,
// backed by zerolog.
package log

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"fitnote/local-app/pkg/model"
)

// Fields carries structured key-value pairs attached to a log entry.
type Fields map[string]any

// Logger wraps a zerolog.Logger behind the narrow API the rest of the
// application uses.
type Logger struct {
	zl   zerolog.Logger
	file *os.File
}

// NewLogger creates a Logger according to the configuration. When a log
// file is configured entries go there (JSON), keeping stdout free for the
// interactive prompt; otherwise they go to stdout, pretty-printed when
// requested.
func NewLogger(cfg *model.Config) (*Logger, error) {
	var out io.Writer = os.Stdout
	var file *os.File

	if cfg.LogFile != "" {
		logDir := filepath.Dir(cfg.LogFile)
		if err := os.MkdirAll(logDir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create log directory '%s': %w", logDir, err)
		}
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		out = f
		file = f
	} else if cfg.LogPretty {
		out = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}

	zl := zerolog.New(out).
		Level(parseLevel(cfg.LogLevel)).
		With().
		Timestamp().
		Logger()

	return &Logger{zl: zl, file: file}, nil
}

// NewNop returns a logger that discards everything. Intended for tests.
func NewNop() *Logger {
	return &Logger{zl: zerolog.Nop()}
}

// Debug logs a message at debug level.
func (l *Logger) Debug(ctx context.Context, msg string, fields Fields) {
	l.emit(l.zl.Debug(), ctx, msg, fields)
}

// Info logs a message at info level.
func (l *Logger) Info(ctx context.Context, msg string, fields Fields) {
	l.emit(l.zl.Info(), ctx, msg, fields)
}

// Warn logs a message at warn level.
func (l *Logger) Warn(ctx context.Context, msg string, fields Fields) {
	l.emit(l.zl.Warn(), ctx, msg, fields)
}

// Error logs a message at error level.
func (l *Logger) Error(ctx context.Context, msg string, fields Fields) {
	l.emit(l.zl.Error(), ctx, msg, fields)
}

func (l *Logger) emit(e *zerolog.Event, ctx context.Context, msg string, fields Fields) {
	if fields != nil {
		e = e.Fields(map[string]any(fields))
	}
	e.Ctx(ctx).Msg(msg)
}

// Close releases the log file, if any.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	if err := l.file.Close(); err != nil {
		return fmt.Errorf("failed to close log file: %w", err)
	}
	return nil
}

// parseLevel converts a level name to a zerolog.Level, defaulting to info.
func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
