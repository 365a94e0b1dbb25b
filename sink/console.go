// FILE: lixenwraith/tlog/sink/console.go
package sink

import (
	"io"
	"os"
)

const consoleBufferSize = 4096

// WriterSink writes lines to an arbitrary io.Writer, typically a console
type WriterSink struct {
	buf    *lineBuffer
	closer io.Closer
}

// NewWriter wraps w. If w is also an io.Closer it is closed with the sink,
// except for the process standard streams.
func NewWriter(w io.Writer) *WriterSink {
	s := &WriterSink{
		buf: newLineBuffer(w, consoleBufferSize),
	}
	if c, ok := w.(io.Closer); ok && w != os.Stdout && w != os.Stderr {
		s.closer = c
	}
	return s
}

// NewStdout returns a sink writing to the process stdout
func NewStdout() *WriterSink {
	return NewWriter(os.Stdout)
}

// NewStderr returns a sink writing to the process stderr
func NewStderr() *WriterSink {
	return NewWriter(os.Stderr)
}

// WriteLine implements Sink
func (s *WriterSink) WriteLine(line string) error {
	return s.buf.writeLine(line)
}

// Flush implements Sink
func (s *WriterSink) Flush() error {
	return s.buf.flush()
}

// Close implements Sink
func (s *WriterSink) Close() error {
	err := s.buf.flush()
	if s.closer != nil {
		if cerr := s.closer.Close(); err == nil {
			err = cerr
		}
	}
	return err
}
