package logging

import (
	"bytes"
	"os"
	"sync"
)

// ConsoleWriter writes log entries to a terminal stream.
type ConsoleWriter struct {
	mu     sync.Mutex
	writer *os.File
}

// NewConsoleWriter creates a console writer for the given stream.
func NewConsoleWriter(file *os.File) *ConsoleWriter {
	return &ConsoleWriter{writer: file}
}

// Write writes data to the stream.
func (w *ConsoleWriter) Write(data []byte) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	_, err := w.writer.Write(data)
	return err
}

// Flush flushes the stream.
func (w *ConsoleWriter) Flush() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.writer.Sync()
}

// Close closes the writer. Shared process streams are left open.
func (w *ConsoleWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.writer == os.Stdout || w.writer == os.Stderr {
		return nil
	}
	return w.writer.Close()
}

// FileWriter appends log entries to a file.
type FileWriter struct {
	mu   sync.Mutex
	file *os.File
}

// NewFileWriter creates a file writer, creating the file if needed.
func NewFileWriter(path string) (*FileWriter, error) {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}
	return &FileWriter{file: file}, nil
}

// Write appends data to the file.
func (w *FileWriter) Write(data []byte) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	_, err := w.file.Write(data)
	return err
}

// Flush syncs the file to disk.
func (w *FileWriter) Flush() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.file.Sync()
}

// Close closes the underlying file.
func (w *FileWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.file.Close()
}

// BufferWriter collects log output in memory. Used in tests to assert on
// emitted diagnostics.
type BufferWriter struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

// NewBufferWriter creates an empty buffer writer.
func NewBufferWriter() *BufferWriter {
	return &BufferWriter{}
}

// Write appends data to the buffer.
func (w *BufferWriter) Write(data []byte) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	_, err := w.buf.Write(data)
	return err
}

// Flush is a no-op for buffers.
func (w *BufferWriter) Flush() error { return nil }

// Close is a no-op for buffers.
func (w *BufferWriter) Close() error { return nil }

// String returns everything written so far.
func (w *BufferWriter) String() string {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.buf.String()
}
