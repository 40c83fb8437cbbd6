// Package logging provides file-based logging for tasker.
// Log entries go to a single append-only file next to the store
// (<store dir>/logs/tasker.log).
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/tasker-dev/tasker/internal/domain"
)

// Ensure Logger implements domain.Logger interface.
var _ domain.Logger = (*Logger)(nil)

// Logger writes task events to a log file.
// Fields are ordered to minimize memory padding.
type Logger struct {
	file    *os.File
	baseDir string
	mu      sync.Mutex
	level   slog.Level
}

// New creates a new Logger that writes under baseDir/logs.
// If baseDir is empty, logging is disabled (returns a no-op logger).
func New(baseDir string, level slog.Level) *Logger {
	return &Logger{
		baseDir: baseDir,
		level:   level,
	}
}

// ParseLevel parses a log level string into slog.Level.
func ParseLevel(levelStr string) slog.Level {
	switch levelStr {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ensureFile opens or returns the log file.
func (l *Logger) ensureFile() (*os.File, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file != nil {
		return l.file, nil
	}

	logsDir := filepath.Join(l.baseDir, "logs")
	if err := os.MkdirAll(logsDir, 0o750); err != nil {
		return nil, fmt.Errorf("create logs directory: %w", err)
	}

	path := filepath.Join(logsDir, "tasker.log")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	l.file = f
	return f, nil
}

// Close closes the log file if open.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}

// formatLog formats a log entry.
// Format: [2026-08-29 09:32:51] [INFO] [task-1] [event] message
func formatLog(t time.Time, level slog.Level, taskID int, event, msg string) string {
	taskStr := "global"
	if taskID > 0 {
		taskStr = fmt.Sprintf("task-%d", taskID)
	}
	return fmt.Sprintf("[%s] [%s] [%s] [%s] %s\n",
		t.Format("2006-01-02 15:04:05"),
		level.String(),
		taskStr,
		event,
		msg,
	)
}

// log writes a log entry. Write failures are swallowed: logging must
// never break a store operation.
func (l *Logger) log(level slog.Level, taskID int, event, msg string) {
	if l.baseDir == "" {
		return // Logging disabled
	}
	if level < l.level {
		return
	}

	entry := formatLog(time.Now(), level, taskID, event, msg)
	if f, err := l.ensureFile(); err == nil {
		_, _ = io.WriteString(f, entry)
	}
}

// Info logs an informational event for a task.
func (l *Logger) Info(taskID int, event, msg string) {
	l.log(slog.LevelInfo, taskID, event, msg)
}

// Error logs an error event.
func (l *Logger) Error(event, msg string) {
	l.log(slog.LevelError, 0, event, msg)
}
