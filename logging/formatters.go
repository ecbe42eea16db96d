package logging

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"
)

// TextFormatter formats log entries as human-readable lines.
type TextFormatter struct{}

// NewTextFormatter creates a new text formatter.
func NewTextFormatter() *TextFormatter {
	return &TextFormatter{}
}

// Format formats a log entry as a single text line.
func (f *TextFormatter) Format(entry *LogEntry) ([]byte, error) {
	var b strings.Builder

	b.WriteString(entry.Timestamp.Format("15:04:05"))
	b.WriteString(" [")
	b.WriteString(entry.Level.String())
	b.WriteString("]")

	if entry.Component != "" {
		b.WriteString(" [")
		b.WriteString(entry.Component)
		b.WriteString("]")
	}

	b.WriteString(" ")
	b.WriteString(entry.Message)

	if entry.File != "" {
		b.WriteString(fmt.Sprintf(" (%s:%d)", entry.File, entry.Line))
	}

	if entry.Error != nil {
		b.WriteString(" error=")
		b.WriteString(entry.Error.Error())
	}

	if len(entry.Fields) > 0 {
		keys := make([]string, 0, len(entry.Fields))
		for key := range entry.Fields {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			b.WriteString(fmt.Sprintf(" %s=%v", key, entry.Fields[key]))
		}
	}

	b.WriteString("\n")
	return []byte(b.String()), nil
}

// GetName returns the name of the formatter.
func (f *TextFormatter) GetName() string {
	return "text"
}

// JSONFormatter formats log entries as JSON.
type JSONFormatter struct{}

// NewJSONFormatter creates a new JSON formatter.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// Format formats a log entry as JSON.
func (f *JSONFormatter) Format(entry *LogEntry) ([]byte, error) {
	output := make(map[string]interface{})

	output["timestamp"] = entry.Timestamp.Format(time.RFC3339)
	output["level"] = entry.Level.String()
	output["message"] = entry.Message

	if entry.Component != "" {
		output["component"] = entry.Component
	}

	if entry.File != "" {
		output["file"] = entry.File
		output["line"] = entry.Line
	}

	if entry.Error != nil {
		output["error"] = entry.Error.Error()
	}

	for key, value := range entry.Fields {
		output[key] = value
	}

	data, err := json.Marshal(output)
	if err != nil {
		return nil, err
	}

	return append(data, '\n'), nil
}

// GetName returns the name of the formatter.
func (f *JSONFormatter) GetName() string {
	return "json"
}
