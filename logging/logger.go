// Package logging provides the structured logger used by the
// documentation pipeline. Log output goes through pluggable formatters and
// writers so the CLI can switch between human-readable and JSON output.
package logging

import (
	"fmt"
	"os"
	"time"
)

// LogLevel represents the severity level of a log entry.
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarning
	LevelError
	LevelFatal
)

// String returns the string representation of a log level.
func (l LogLevel) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarning:
		return "WARNING"
	case LevelError:
		return "ERROR"
	case LevelFatal:
		return "FATAL"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel converts a configuration string into a log level.
func ParseLevel(levelStr string) LogLevel {
	switch levelStr {
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "warning", "warn":
		return LevelWarning
	case "error":
		return LevelError
	case "fatal":
		return LevelFatal
	default:
		return LevelInfo
	}
}

// LogField represents a key-value pair for structured logging.
type LogField struct {
	Key   string
	Value interface{}
}

// F is a shorthand constructor for a log field.
func F(key string, value interface{}) LogField {
	return LogField{Key: key, Value: value}
}

// LogEntry represents a single log entry.
type LogEntry struct {
	Timestamp time.Time              `json:"timestamp"`
	Level     LogLevel               `json:"level"`
	Message   string                 `json:"message"`
	Fields    map[string]interface{} `json:"fields,omitempty"`
	Component string                 `json:"component,omitempty"`
	File      string                 `json:"file,omitempty"`
	Line      int                    `json:"line,omitempty"`
	Error     error                  `json:"error,omitempty"`
}

// Logger defines the interface for structured logging.
type Logger interface {
	// Debug logs a debug message
	Debug(msg string, fields ...LogField)

	// Info logs an info message
	Info(msg string, fields ...LogField)

	// Warn logs a warning message
	Warn(msg string, fields ...LogField)

	// Error logs an error message
	Error(msg string, fields ...LogField)

	// WarnWithPosition logs a warning carrying a source position
	WarnWithPosition(msg string, file string, line int, fields ...LogField)

	// Fatal logs a fatal message and exits the program
	Fatal(msg string, fields ...LogField)

	// WithComponent returns a new logger tagged with the component name
	WithComponent(component string) Logger

	// WithError returns a new logger carrying the given error
	WithError(err error) Logger

	// SetLevel sets the minimum log level
	SetLevel(level LogLevel)

	// GetLevel returns the current minimum log level
	GetLevel() LogLevel
}

// Formatter defines the interface for log formatting.
type Formatter interface {
	Format(entry *LogEntry) ([]byte, error)
	GetName() string
}

// Writer defines the interface for log output.
type Writer interface {
	Write(data []byte) error
	Flush() error
	Close() error
}

// DefaultLogger is the default implementation of Logger.
type DefaultLogger struct {
	level     LogLevel
	component string
	err       error
	formatter Formatter
	writer    Writer
}

// NewDefaultLogger creates a logger writing human-readable lines to stderr.
func NewDefaultLogger() *DefaultLogger {
	return &DefaultLogger{
		level:     LevelInfo,
		formatter: NewTextFormatter(),
		writer:    NewConsoleWriter(os.Stderr),
	}
}

// NewLoggerWith creates a logger with an explicit formatter and writer.
func NewLoggerWith(level LogLevel, formatter Formatter, writer Writer) *DefaultLogger {
	return &DefaultLogger{
		level:     level,
		formatter: formatter,
		writer:    writer,
	}
}

// Debug logs a debug message.
func (l *DefaultLogger) Debug(msg string, fields ...LogField) {
	l.log(LevelDebug, msg, "", 0, fields...)
}

// Info logs an info message.
func (l *DefaultLogger) Info(msg string, fields ...LogField) {
	l.log(LevelInfo, msg, "", 0, fields...)
}

// Warn logs a warning message.
func (l *DefaultLogger) Warn(msg string, fields ...LogField) {
	l.log(LevelWarning, msg, "", 0, fields...)
}

// Error logs an error message.
func (l *DefaultLogger) Error(msg string, fields ...LogField) {
	l.log(LevelError, msg, "", 0, fields...)
}

// WarnWithPosition logs a warning with the source position it refers to.
func (l *DefaultLogger) WarnWithPosition(msg string, file string, line int, fields ...LogField) {
	l.log(LevelWarning, msg, file, line, fields...)
}

// Fatal logs a fatal message and exits the program.
func (l *DefaultLogger) Fatal(msg string, fields ...LogField) {
	l.log(LevelFatal, msg, "", 0, fields...)
	os.Exit(1)
}

// WithComponent returns a copy of the logger tagged with a component name.
func (l *DefaultLogger) WithComponent(component string) Logger {
	clone := *l
	clone.component = component
	return &clone
}

// WithError returns a copy of the logger carrying the given error.
func (l *DefaultLogger) WithError(err error) Logger {
	clone := *l
	clone.err = err
	return &clone
}

// SetLevel sets the minimum log level.
func (l *DefaultLogger) SetLevel(level LogLevel) {
	l.level = level
}

// GetLevel returns the current minimum log level.
func (l *DefaultLogger) GetLevel() LogLevel {
	return l.level
}

func (l *DefaultLogger) log(level LogLevel, msg string, file string, line int, fields ...LogField) {
	if level < l.level {
		return
	}

	entry := &LogEntry{
		Timestamp: time.Now(),
		Level:     level,
		Message:   msg,
		Component: l.component,
		File:      file,
		Line:      line,
		Error:     l.err,
	}

	if len(fields) > 0 {
		entry.Fields = make(map[string]interface{}, len(fields))
		for _, field := range fields {
			entry.Fields[field.Key] = field.Value
		}
	}

	data, err := l.formatter.Format(entry)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging: format failed: %v\n", err)
		return
	}

	if err := l.writer.Write(data); err != nil {
		fmt.Fprintf(os.Stderr, "logging: write failed: %v\n", err)
	}
}

// NopLogger discards everything. Used in tests.
type NopLogger struct{}

func (NopLogger) Debug(string, ...LogField)                         {}
func (NopLogger) Info(string, ...LogField)                          {}
func (NopLogger) Warn(string, ...LogField)                          {}
func (NopLogger) Error(string, ...LogField)                         {}
func (NopLogger) WarnWithPosition(string, string, int, ...LogField) {}
func (NopLogger) Fatal(string, ...LogField)                         {}
func (n NopLogger) WithComponent(string) Logger                     { return n }
func (n NopLogger) WithError(error) Logger                          { return n }
func (NopLogger) SetLevel(LogLevel)                                 {}
func (NopLogger) GetLevel() LogLevel                                { return LevelInfo }
