// FILE: lixenwraith/tlog/state.go
package tlog

import (
	"sync"
	"sync/atomic"
	"time"
)

// WorkerState is the lifecycle position of the background writer
type WorkerState int32

const (
	WorkerDraining WorkerState = iota // Moving lines from the queue to the sink
	WorkerIdle                        // Parked on the wait timer
	WorkerExiting                     // Final drain in progress
	WorkerStopped                     // Sink closed, goroutine gone
)

// String returns the state name
func (s WorkerState) String() string {
	switch s {
	case WorkerDraining:
		return "draining"
	case WorkerIdle:
		return "idle"
	case WorkerExiting:
		return "exiting"
	case WorkerStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// State encapsulates the runtime state of the logger
type State struct {
	ShutdownCalled atomic.Bool
	worker         atomic.Int32 // WorkerState

	// idle and wakeChan move together under idleMu so a flush can only
	// deposit a wake token while the worker is parked
	idleMu   sync.Mutex
	idle     bool
	wakeChan chan struct{} // Capacity 1

	quitChan chan struct{} // Closed once on Quit
	quitOnce sync.Once
	done     chan struct{} // Closed when the worker reaches Stopped
	closeErr error         // Sink close result, readable after done

	rotatePending atomic.Bool // Rotate after the next drain

	// Statistics
	TotalEnqueued     atomic.Uint64
	TotalWritten      atomic.Uint64
	WriteErrors       atomic.Uint64
	FlushErrors       atomic.Uint64
	DroppedLogs       atomic.Uint64 // Logs rejected after Quit
	Drains            atomic.Uint64 // Completed drain passes
	Rotations         atomic.Uint64
	RotateErrors      atomic.Uint64
	SuppressedErrors  atomic.Uint64 // Stderr reports dropped by the limiter
	LastBacklog       atomic.Int64  // Lines drained by the latest pass
	CurrentWaitNs     atomic.Int64
	HeartbeatSequence atomic.Uint64
	LoggerStartTime   atomic.Value // time.Time
}

func newState() *State {
	s := &State{
		wakeChan: make(chan struct{}, 1),
		quitChan: make(chan struct{}),
		done:     make(chan struct{}),
	}
	s.worker.Store(int32(WorkerDraining))
	s.LoggerStartTime.Store(time.Now())
	return s
}

func (s *State) workerState() WorkerState {
	return WorkerState(s.worker.Load())
}

// enterIdle marks the worker parked; from here on a flush may wake it
func (s *State) enterIdle() {
	s.idleMu.Lock()
	s.idle = true
	s.worker.Store(int32(WorkerIdle))
	s.idleMu.Unlock()
}

// leaveIdle marks the worker busy and discards any wake token left behind
func (s *State) leaveIdle(next WorkerState) {
	s.idleMu.Lock()
	s.idle = false
	select {
	case <-s.wakeChan:
	default:
	}
	s.worker.Store(int32(next))
	s.idleMu.Unlock()
}

// wake deposits a token only while the worker is parked. Never blocks.
func (s *State) wake() bool {
	s.idleMu.Lock()
	defer s.idleMu.Unlock()
	if !s.idle {
		return false
	}
	select {
	case s.wakeChan <- struct{}{}:
	default:
	}
	return true
}

// requestQuit closes the quit channel exactly once
func (s *State) requestQuit() {
	s.quitOnce.Do(func() {
		close(s.quitChan)
	})
}
