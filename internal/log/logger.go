package log

import (
	"fmt"
	"gopkg.in/natefinch/lumberjack.v2"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Logger wraps slog so the rest of leetmetrics never touches the handler or the rotating file directly.
// A nil *Logger discards everything, which lets lookups log before logging has been configured.
type Logger struct {
	logger       *slog.Logger
	file         *lumberjack.Logger
	traceEnabled bool
}

// Config contains logging information used to set up the logging framework
type Config struct {
	// Log Level.  One of: trace, debug, info, warn, error
	Level string
	// Path to the file to log into
	FilePath string
	// Size in megabytes a log file may reach before it is rotated.  Zero uses the lumberjack default of 100.
	MaxSizeMB int
	// Number of rotated files to keep.  Zero keeps them all.
	MaxBackups int
	// Days to keep rotated files.  Zero disables age based cleanup.
	MaxAgeDays int
}

func New(config Config) (*Logger, error) {
	dir := filepath.Dir(config.FilePath)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, err
	}

	file := &lumberjack.Logger{
		Filename:   config.FilePath,
		MaxSize:    config.MaxSizeMB,
		MaxBackups: config.MaxBackups,
		MaxAge:     config.MaxAgeDays,
	}

	opts := &slog.HandlerOptions{
		Level: parseLogLevel(config.Level),
	}

	handler := slog.NewJSONHandler(file, opts)

	logger := &Logger{
		logger:       slog.New(handler),
		file:         file,
		traceEnabled: strings.EqualFold(config.Level, "trace"),
	}

	return logger, nil
}

// Close the log file
func (l *Logger) Close() {
	err := l.file.Close()
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error closing logger: %v\n", err)
	}
}

// Debug logs a message a debug Level
func (l *Logger) Debug(msg string, args ...any) {
	if l == nil {
		return
	}
	l.logger.Debug(msg, args...)
}

// Info logs a message at info Level
func (l *Logger) Info(msg string, args ...any) {
	if l == nil {
		return
	}
	l.logger.Info(msg, args...)
}

// Warn logs a message at warn Level
func (l *Logger) Warn(msg string, args ...any) {
	if l == nil {
		return
	}
	l.logger.Warn(msg, args...)
}

// Error logs a message at error Level.
func (l *Logger) Error(msg string, args ...any) {
	if l == nil {
		return
	}
	l.logger.Error(msg, args...)
}

// With returns a logger that adds the given attributes to every record.  Used to tag everything belonging to one
// lookup with its correlation id.
func (l *Logger) With(args ...any) *Logger {
	if l == nil {
		return nil
	}
	return &Logger{
		logger:       l.logger.With(args...),
		file:         l.file,
		traceEnabled: l.traceEnabled,
	}
}

// Trace logs at debug Level, but only when the configured level was "trace".
func (l *Logger) Trace(msg string, args ...any) {
	if l == nil || !l.traceEnabled {
		return
	}
	l.logger.Debug("TRACE: "+msg, args...)
}

// parseLogLevel is a helper to convert a string log Level into the slog version.  Defaults to info if a matching log
// Level cannot be found.
func parseLogLevel(lvl string) slog.Level {
	switch strings.ToLower(lvl) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	case "trace":
		return slog.LevelDebug // Trace level is handled by this log package instead of slog
	default:
		return slog.LevelInfo
	}
}
