// FILE: lixenwraith/tlog/type.go
package tlog

import "time"

// Stats is a point-in-time snapshot of logger counters
type Stats struct {
	Enqueued     uint64        // Lines accepted into the queue
	Written      uint64        // Lines accepted by the sink
	WriteErrors  uint64        // Lines the sink rejected
	FlushErrors  uint64        // Failed sink flushes
	Dropped      uint64        // Lines rejected after Quit
	Drains       uint64        // Completed drain passes
	Rotations    uint64        // Successful sink rotations
	RotateErrors uint64        // Failed sink rotations
	Suppressed   uint64        // Internal error reports dropped by the rate limit
	LastBacklog  int           // Lines drained by the latest pass
	CurrentWait  time.Duration // Wait chosen after the latest pass
	QueueLength  int           // Lines currently queued
	State        WorkerState
	Uptime       time.Duration
}
