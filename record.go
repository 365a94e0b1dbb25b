// FILE: lixenwraith/tlog/record.go
package tlog

import (
	"time"
)

// enqueue formats the entry on the calling goroutine and pushes the line.
// Timestamps therefore reflect call order, not drain order.
func (l *Logger) enqueue(tag string, message any) {
	if l.state.ShutdownCalled.Load() {
		l.state.DroppedLogs.Add(1)
		return
	}
	l.queue.push(l.formatter.Line(time.Now(), tag, message))
	l.state.TotalEnqueued.Add(1)
}

// enqueueRaw pushes a line that bypasses formatting
func (l *Logger) enqueueRaw(line string) {
	if l.state.ShutdownCalled.Load() {
		l.state.DroppedLogs.Add(1)
		return
	}
	l.queue.push(line)
	l.state.TotalEnqueued.Add(1)
}
