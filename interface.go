// FILE: lixenwraith/tlog/interface.go
package tlog

import (
	"fmt"
)

// Log enqueues message under an arbitrary tag. Tags are written as given,
// brackets included.
func (l *Logger) Log(tag string, message any) {
	l.enqueue(tag, message)
}

// Logf formats message with fmt.Sprintf and enqueues it under tag
func (l *Logger) Logf(tag string, format string, args ...any) {
	l.enqueue(tag, fmt.Sprintf(format, args...))
}

// Info logs under the configured info tag
func (l *Logger) Info(message any) {
	l.enqueue(l.cfg.InfoTag, message)
}

// Warning logs under the configured warning tag
func (l *Logger) Warning(message any) {
	l.enqueue(l.cfg.WarnTag, message)
}

// Error logs under the configured error tag
func (l *Logger) Error(message any) {
	l.enqueue(l.cfg.ErrorTag, message)
}

// Exception logs err with its concrete type under the configured exception tag
func (l *Logger) Exception(err error) {
	if err == nil {
		l.enqueue(l.cfg.ExceptionTag, nil)
		return
	}
	l.enqueue(l.cfg.ExceptionTag, fmt.Sprintf("%T: %v", err, err))
}

// BlankLine writes an empty line, useful as a visual separator
func (l *Logger) BlankLine() {
	l.enqueueRaw("")
}
