// FILE: lixenwraith/tlog/sink/file.go
package sink

import (
	"fmt"
	"os"
	"path/filepath"
)

const fileBufferSize = 32 * 1024

// FileSink appends lines to a single file
type FileSink struct {
	path string
	file *os.File
	buf  *lineBuffer
}

// NewFile opens path for append, creating it and its parent directories if
// missing. An existing file is never truncated.
func NewFile(path string) (*FileSink, error) {
	if path == "" {
		return nil, fmt.Errorf("sink: file path cannot be empty")
	}
	path = normalizePath(path)

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("sink: failed to create directory '%s': %w", dir, err)
		}
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("sink: failed to open '%s': %w", path, err)
	}

	return &FileSink{
		path: path,
		file: f,
		buf:  newLineBuffer(f, fileBufferSize),
	}, nil
}

// Path returns the normalized file path
func (s *FileSink) Path() string {
	return s.path
}

// WriteLine implements Sink
func (s *FileSink) WriteLine(line string) error {
	return s.buf.writeLine(line)
}

// Flush implements Sink
func (s *FileSink) Flush() error {
	return s.buf.flush()
}

// Close implements Sink
func (s *FileSink) Close() error {
	flushErr := s.buf.flush()
	closeErr := s.file.Close()
	if flushErr != nil {
		return fmt.Errorf("sink: failed to flush '%s' on close: %w", s.path, flushErr)
	}
	return closeErr
}
