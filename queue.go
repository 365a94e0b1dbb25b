// FILE: lixenwraith/tlog/queue.go
package tlog

import "sync"

// messageQueue is an unbounded FIFO of formatted lines. Producers push under
// a short-held mutex; the worker swaps the whole slice out in one step.
type messageQueue struct {
	mu    sync.Mutex
	lines []string
	spare []string // Drained slice handed back for reuse
}

func newMessageQueue() *messageQueue {
	return &messageQueue{lines: make([]string, 0, 64)}
}

// push appends a line to the tail
func (q *messageQueue) push(line string) {
	q.mu.Lock()
	q.lines = append(q.lines, line)
	q.mu.Unlock()
}

// drainAll removes and returns every queued line in FIFO order
func (q *messageQueue) drainAll() []string {
	q.mu.Lock()
	batch := q.lines
	q.lines = q.spare[:0]
	q.spare = nil
	q.mu.Unlock()
	return batch
}

// release returns a drained batch so its backing array can be reused
func (q *messageQueue) release(batch []string) {
	clear(batch)
	q.mu.Lock()
	if q.spare == nil {
		q.spare = batch[:0]
	}
	q.mu.Unlock()
}

// len returns the current backlog
func (q *messageQueue) len() int {
	q.mu.Lock()
	n := len(q.lines)
	q.mu.Unlock()
	return n
}
