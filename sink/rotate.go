// FILE: lixenwraith/tlog/sink/rotate.go
package sink

import (
	"fmt"

	"gopkg.in/natefinch/lumberjack.v2"
)

// RotateOptions controls size-based rotation
type RotateOptions struct {
	MaxSizeMB  int  // Rotate once the file reaches this size
	MaxBackups int  // Old files kept (0 keeps all)
	MaxAgeDays int  // Old files older than this are removed (0 disables)
	Compress   bool // Gzip rotated files
	LocalTime  bool // Backup names use local time instead of UTC
}

var _ Rotator = (*RotatingSink)(nil)

// RotatingSink appends lines to a file rotated by lumberjack
type RotatingSink struct {
	lj  *lumberjack.Logger
	buf *lineBuffer
}

// NewRotating creates a rotating file sink. The file is opened lazily on
// the first write, matching lumberjack semantics.
func NewRotating(path string, opts RotateOptions) (*RotatingSink, error) {
	if path == "" {
		return nil, fmt.Errorf("sink: rotating file path cannot be empty")
	}
	if opts.MaxSizeMB < 0 || opts.MaxBackups < 0 || opts.MaxAgeDays < 0 {
		return nil, fmt.Errorf("sink: rotation limits cannot be negative")
	}

	lj := &lumberjack.Logger{
		Filename:   normalizePath(path),
		MaxSize:    opts.MaxSizeMB,
		MaxBackups: opts.MaxBackups,
		MaxAge:     opts.MaxAgeDays,
		Compress:   opts.Compress,
		LocalTime:  opts.LocalTime,
	}

	return &RotatingSink{
		lj:  lj,
		buf: newLineBuffer(lj, fileBufferSize),
	}, nil
}

// Rotate flushes pending lines and forces a rotation
func (s *RotatingSink) Rotate() error {
	if err := s.buf.flush(); err != nil {
		return err
	}
	return s.lj.Rotate()
}

// WriteLine implements Sink
func (s *RotatingSink) WriteLine(line string) error {
	return s.buf.writeLine(line)
}

// Flush implements Sink
func (s *RotatingSink) Flush() error {
	return s.buf.flush()
}

// Close implements Sink
func (s *RotatingSink) Close() error {
	flushErr := s.buf.flush()
	closeErr := s.lj.Close()
	if flushErr != nil {
		return flushErr
	}
	return closeErr
}
