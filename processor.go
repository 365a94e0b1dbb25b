// FILE: lixenwraith/tlog/processor.go
package tlog

import (
	"time"

	"github.com/lixenwraith/tlog/sink"
)

// processLogs is the writer loop running in its own goroutine. It drains the
// queue, parks for the policy wait and repeats until Quit, then performs one
// final drain and closes the sink.
func (l *Logger) processLogs() {
	defer close(l.state.done)

	timers := l.setupProcessingTimers()
	defer l.closeProcessingTimers(timers)

	// --- Main Loop ---
	for {
		drained := l.drain()

		// A quit that arrived during the drain skips the park
		select {
		case <-l.state.quitChan:
			l.exit()
			return
		default:
		}

		wait := l.nextWait(drained)
		l.state.CurrentWaitNs.Store(int64(wait))
		timers.waitTimer.Reset(wait)

		l.state.enterIdle()
		select {
		case <-timers.waitTimer.C:
			l.state.leaveIdle(WorkerDraining)

		case <-l.state.wakeChan:
			l.state.leaveIdle(WorkerDraining)

		case <-timers.heartbeatChan:
			l.state.leaveIdle(WorkerDraining)
			l.logHeartbeat()

		case <-l.state.quitChan:
			l.state.leaveIdle(WorkerExiting)
			l.exit()
			return
		}
		timers.waitTimer.Stop()
	}
}

// exit performs the terminal drain and releases the sink
func (l *Logger) exit() {
	l.state.worker.Store(int32(WorkerExiting))
	l.stopRotateSchedule()
	l.drain()

	if err := l.sinkCall(l.sink.Close); err != nil {
		l.state.closeErr = fmtErrorf("failed to close sink: %w", err)
		l.reportError("error - %v", err)
	}
	l.state.worker.Store(int32(WorkerStopped))
}

// drain moves every queued line to the sink and flushes it. Returns the
// number of lines drained, which is the backlog the policy reacts to.
func (l *Logger) drain() int {
	batch := l.queue.drainAll()
	n := len(batch)

	for _, line := range batch {
		if err := l.sinkCall(func() error { return l.sink.WriteLine(line) }); err != nil {
			l.state.WriteErrors.Add(1)
			l.reportError("error - failed to write line: %v", err)
			continue
		}
		l.state.TotalWritten.Add(1)
	}
	l.queue.release(batch)

	if err := l.sinkCall(l.sink.Flush); err != nil {
		l.state.FlushErrors.Add(1)
		l.reportError("error - failed to flush sink: %v", err)
	}

	if l.state.rotatePending.CompareAndSwap(true, false) {
		l.rotate()
	}

	l.state.LastBacklog.Store(int64(n))
	l.state.Drains.Add(1)
	return n
}

// rotate forces a new file on sinks that support it
func (l *Logger) rotate() {
	r, ok := l.sink.(sink.Rotator)
	if !ok {
		return
	}
	if err := l.sinkCall(r.Rotate); err != nil {
		l.state.RotateErrors.Add(1)
		l.reportError("error - failed to rotate sink: %v", err)
		return
	}
	l.state.Rotations.Add(1)
}

// sinkCall runs a sink operation, converting a panic into an error so the
// worker keeps running
func (l *Logger) sinkCall(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmtErrorf("sink panic: %v", r)
		}
	}()
	return fn()
}

// nextWait evaluates the active policy for the drained backlog
func (l *Logger) nextWait(drained int) time.Duration {
	wait := l.policy.Load().Timeout(drained)
	if wait < MinWaitTime {
		wait = MinWaitTime
	}
	return wait
}
