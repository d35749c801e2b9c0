package logging

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Level represents log severity
type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

// Category represents the subsystem generating the log
type Category string

const (
	CategoryDriver  Category = "driver"
	CategoryPage    Category = "page"
	CategoryFlow    Category = "flow"
	CategoryVerify  Category = "verify"
	CategoryConfig  Category = "config"
	CategorySession Category = "session"
)

// Event represents a structured log event
type Event struct {
	Timestamp time.Time      `json:"timestamp"`
	Level     Level          `json:"level"`
	Category  Category       `json:"category"`
	EventType string         `json:"type"`
	RunID     string         `json:"run_id,omitempty"`
	Test      string         `json:"test,omitempty"`
	Details   map[string]any `json:"details,omitempty"`
	Message   string         `json:"message,omitempty"`
}

// Logger writes structured events for one test run. Errors are duplicated
// into a shared errors.jsonl so failed runs can be triaged without opening
// every run log.
type Logger struct {
	runID     string
	test      string
	baseDir   string
	runFile   *os.File
	errorFile *os.File
	mu        sync.Mutex
	minLevel  Level
}

// NewLogger creates a logger writing under baseDir with a fresh run ID
func NewLogger(baseDir string) (*Logger, error) {
	runID := uuid.NewString()

	runsDir := filepath.Join(baseDir, "runs")
	if err := os.MkdirAll(runsDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create runs directory: %w", err)
	}

	runFile, err := os.OpenFile(
		filepath.Join(runsDir, runID+".jsonl"),
		os.O_CREATE|os.O_WRONLY|os.O_APPEND,
		0644,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to open run log: %w", err)
	}

	errorFile, err := os.OpenFile(
		filepath.Join(baseDir, "errors.jsonl"),
		os.O_CREATE|os.O_WRONLY|os.O_APPEND,
		0644,
	)
	if err != nil {
		runFile.Close()
		return nil, fmt.Errorf("failed to open error log: %w", err)
	}

	return &Logger{
		runID:     runID,
		baseDir:   baseDir,
		runFile:   runFile,
		errorFile: errorFile,
		minLevel:  LevelInfo,
	}, nil
}

// Nop returns a logger that discards everything; used in tests and as a
// default when no log directory is configured.
func Nop() *Logger {
	return &Logger{runID: "nop", minLevel: LevelError}
}

// RunID returns the identifier for this run's log stream
func (l *Logger) RunID() string {
	return l.runID
}

// SetMinLevel sets the minimum log level
func (l *Logger) SetMinLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.minLevel = level
}

// SetTest tags subsequent events with the current test name
func (l *Logger) SetTest(test string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.test = test
}

// Log writes an event to the run log, and to the error log for errors
func (l *Logger) Log(event Event) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	if event.RunID == "" {
		event.RunID = l.runID
	}
	if event.Test == "" && l.test != "" {
		event.Test = l.test
	}

	if !l.shouldLog(event.Level) {
		return nil
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}
	data = append(data, '\n')

	if l.runFile != nil {
		if _, err := l.runFile.Write(data); err != nil {
			return fmt.Errorf("failed to write to run log: %w", err)
		}
	}

	if event.Level == LevelError && l.errorFile != nil {
		if _, err := l.errorFile.Write(data); err != nil {
			return fmt.Errorf("failed to write to error log: %w", err)
		}
	}

	return nil
}

// shouldLog checks if event should be logged based on level
func (l *Logger) shouldLog(level Level) bool {
	levels := map[Level]int{
		LevelDebug: 0,
		LevelInfo:  1,
		LevelWarn:  2,
		LevelError: 3,
	}
	return levels[level] >= levels[l.minLevel]
}

// Debug logs a debug event
func (l *Logger) Debug(category Category, eventType string, message string, details map[string]any) error {
	return l.Log(Event{
		Level:     LevelDebug,
		Category:  category,
		EventType: eventType,
		Message:   message,
		Details:   details,
	})
}

// Info logs an info event
func (l *Logger) Info(category Category, eventType string, message string, details map[string]any) error {
	return l.Log(Event{
		Level:     LevelInfo,
		Category:  category,
		EventType: eventType,
		Message:   message,
		Details:   details,
	})
}

// Warn logs a warning event
func (l *Logger) Warn(category Category, eventType string, message string, details map[string]any) error {
	return l.Log(Event{
		Level:     LevelWarn,
		Category:  category,
		EventType: eventType,
		Message:   message,
		Details:   details,
	})
}

// Error logs an error event
func (l *Logger) Error(category Category, eventType string, message string, details map[string]any) error {
	return l.Log(Event{
		Level:     LevelError,
		Category:  category,
		EventType: eventType,
		Message:   message,
		Details:   details,
	})
}

// Close closes all log files
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	var lastErr error
	if l.runFile != nil {
		if err := l.runFile.Close(); err != nil {
			lastErr = err
		}
		l.runFile = nil
	}
	if l.errorFile != nil {
		if err := l.errorFile.Close(); err != nil {
			lastErr = err
		}
		l.errorFile = nil
	}
	return lastErr
}
