// FILE: lixenwraith/tlog/sink/buffer.go
package sink

import (
	"bufio"
	"io"
)

// lineBuffer batches lines in front of w. bufio.Writer keeps its first
// write error forever, so a failed write drops whatever is pending and
// resets the buffer; the next pass writes through to w again.
type lineBuffer struct {
	w   io.Writer
	buf *bufio.Writer
}

func newLineBuffer(w io.Writer, size int) *lineBuffer {
	return &lineBuffer{w: w, buf: bufio.NewWriterSize(w, size)}
}

func (b *lineBuffer) writeLine(line string) error {
	if _, err := b.buf.WriteString(line); err != nil {
		b.buf.Reset(b.w)
		return err
	}
	if err := b.buf.WriteByte('\n'); err != nil {
		b.buf.Reset(b.w)
		return err
	}
	return nil
}

func (b *lineBuffer) flush() error {
	if err := b.buf.Flush(); err != nil {
		b.buf.Reset(b.w)
		return err
	}
	return nil
}
