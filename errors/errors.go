// Package errors provides the coded, typed errors used across the
// documentation pipeline.
package errors

import (
	"fmt"
	"strings"
	"time"
)

// ErrorType classifies where an error originates.
type ErrorType string

const (
	ErrorTypeParse    ErrorType = "PARSE"
	ErrorTypeHandler  ErrorType = "HANDLER"
	ErrorTypeResolver ErrorType = "RESOLVER"
	ErrorTypeSystem   ErrorType = "SYSTEM"
	ErrorTypeUser     ErrorType = "USER"
)

// ErrorSeverity represents the severity level of an error.
type ErrorSeverity string

const (
	SeverityDebug   ErrorSeverity = "DEBUG"
	SeverityInfo    ErrorSeverity = "INFO"
	SeverityWarning ErrorSeverity = "WARNING"
	SeverityError   ErrorSeverity = "ERROR"
	SeverityFatal   ErrorSeverity = "FATAL"
)

// ProcessingError is a structured error with a stable code, an origin
// classification and optional source position.
type ProcessingError struct {
	Code      string                 `json:"code"`
	Message   string                 `json:"message"`
	File      string                 `json:"file,omitempty"`
	Line      int                    `json:"line,omitempty"`
	Context   map[string]interface{} `json:"context,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
	Severity  ErrorSeverity          `json:"severity"`
	Type      ErrorType              `json:"type"`
	Cause     error                  `json:"-"`
}

// Error implements the error interface.
func (e *ProcessingError) Error() string {
	var builder strings.Builder

	builder.WriteString(fmt.Sprintf("[%s][%s] %s", e.Type, e.Code, e.Message))

	if e.File != "" {
		builder.WriteString(fmt.Sprintf(" in %s", e.File))
	}
	if e.Line > 0 {
		builder.WriteString(fmt.Sprintf(" line %d", e.Line))
	}

	return builder.String()
}

// Unwrap returns the underlying error.
func (e *ProcessingError) Unwrap() error {
	return e.Cause
}

// Is checks if the error matches the target by code and type.
func (e *ProcessingError) Is(target error) bool {
	if other, ok := target.(*ProcessingError); ok {
		return e.Code == other.Code && e.Type == other.Type
	}
	return false
}

// WithContext adds context information to the error.
func (e *ProcessingError) WithContext(key string, value interface{}) *ProcessingError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// WithPosition sets the file and line the error refers to.
func (e *ProcessingError) WithPosition(file string, line int) *ProcessingError {
	e.File = file
	e.Line = line
	return e
}

// Wrap records the underlying cause.
func (e *ProcessingError) Wrap(err error) *ProcessingError {
	e.Cause = err
	return e
}

func newError(code, message string, typ ErrorType, severity ErrorSeverity) *ProcessingError {
	return &ProcessingError{
		Code:      code,
		Message:   message,
		Timestamp: time.Now(),
		Severity:  severity,
		Type:      typ,
	}
}

// NewParseError creates an error for malformed source input.
func NewParseError(code, message string) *ProcessingError {
	return newError(code, message, ErrorTypeParse, SeverityWarning)
}

// NewHandlerError creates an error for a defect in a statement handler.
// This is the only error class that surfaces out of statement processing,
// and it is scoped to the one statement being handled.
func NewHandlerError(code, message string) *ProcessingError {
	return newError(code, message, ErrorTypeHandler, SeverityError)
}

// NewResolverError creates an error describing a reference that could not
// be resolved. The resolver reports these as diagnostics and never returns
// them to callers.
func NewResolverError(code, message string) *ProcessingError {
	return newError(code, message, ErrorTypeResolver, SeverityWarning)
}

// NewSystemError creates an error for environment or IO failures.
func NewSystemError(code, message string) *ProcessingError {
	return newError(code, message, ErrorTypeSystem, SeverityError)
}

// NewUserError creates an error caused by user input (bad flags, bad
// config, unknown REPL command).
func NewUserError(code, message string) *ProcessingError {
	return newError(code, message, ErrorTypeUser, SeverityInfo)
}

// WrapError wraps an existing error into a ProcessingError.
func WrapError(err error, code, message string) *ProcessingError {
	return NewSystemError(code, message).Wrap(err)
}

// IsProcessingError checks if an error is a ProcessingError.
func IsProcessingError(err error) bool {
	_, ok := err.(*ProcessingError)
	return ok
}

// AsProcessingError converts an error to ProcessingError if possible.
func AsProcessingError(err error) (*ProcessingError, bool) {
	if procErr, ok := err.(*ProcessingError); ok {
		return procErr, true
	}
	return nil, false
}
