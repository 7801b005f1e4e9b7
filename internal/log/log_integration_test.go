package log

import (
	"fmt"
	"github.com/stretchr/testify/assert"
	"os"
	"path/filepath"
	"testing"
)

func newTestLogger(t *testing.T, level string) (*Logger, string) {
	t.Helper()

	tempDir, err := os.MkdirTemp("", "leetmetrics-log-test")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { _ = os.RemoveAll(tempDir) })

	logPath := filepath.Join(tempDir, "nested", "test.log")

	logger, err := New(Config{
		Level:      level,
		FilePath:   logPath,
		MaxSizeMB:  1,
		MaxBackups: 1,
	})
	if err != nil {
		t.Fatalf("Failed to create logger: %v", err)
	}

	return logger, logPath
}

func readLog(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	return string(content)
}

func TestLogging(t *testing.T) {
	logger, logPath := newTestLogger(t, "debug")
	SetDefaultLogger(logger)
	t.Cleanup(func() { SetDefaultLogger(nil) })

	// Log test messages at different levels
	Debug("Debug message", "test", true)
	Info("Info message", "test", true)
	Warn("Warning message", "test", true)
	Error("Error message", "error", fmt.Errorf("test error"))
	Trace("Trace message")

	// Close logger to ensure file is written
	logger.Close()

	contentStr := readLog(t, logPath)
	assert.Contains(t, contentStr, "Debug message")
	assert.Contains(t, contentStr, "Info message")
	assert.Contains(t, contentStr, "Warning message")
	assert.Contains(t, contentStr, "Error message")
	assert.Contains(t, contentStr, "test error")
	assert.NotContains(t, contentStr, "Trace message")
}

func TestLoggingLevels(t *testing.T) {
	t.Run("TraceEnabled", func(t *testing.T) {
		logger, logPath := newTestLogger(t, "trace")
		SetDefaultLogger(logger)
		t.Cleanup(func() { SetDefaultLogger(nil) })

		Trace("Frame advanced", "indicator", "progress-easy")
		logger.Close()

		assert.Contains(t, readLog(t, logPath), "TRACE: Frame advanced")
	})

	t.Run("WarnFiltersInfo", func(t *testing.T) {
		logger, logPath := newTestLogger(t, "warn")
		logger.Info("quiet")
		logger.Warn("loud")
		logger.Close()

		content := readLog(t, logPath)
		assert.NotContains(t, content, "quiet")
		assert.Contains(t, content, "loud")
	})

	t.Run("WithAddsAttributes", func(t *testing.T) {
		logger, logPath := newTestLogger(t, "info")
		logger.With("lookup_id", "abc-123").Info("Lookup started")
		logger.Close()

		assert.Contains(t, readLog(t, logPath), `"lookup_id":"abc-123"`)
	})

	t.Run("NoDefaultLoggerIsSafe", func(t *testing.T) {
		SetDefaultLogger(nil)
		assert.NotPanics(t, func() {
			Info("dropped")
			Trace("dropped")
		})
	})
}

func TestNilLogger(t *testing.T) {
	var logger *Logger
	assert.NotPanics(t, func() {
		logger.Info("dropped")
		logger.With("k", "v").Error("dropped")
		logger.Trace("dropped")
	})

	SetDefaultLogger(nil)
	assert.Nil(t, With("lookup_id", "x"))
}
