// FILE: lixenwraith/tlog/heartbeat.go
package tlog

import (
	"fmt"
	"runtime"
	"strings"
	"time"
)

// logHeartbeat enqueues a [BEAT] line with pipeline and runtime statistics.
// Called from the worker, so the line is written by the drain that follows.
func (l *Logger) logHeartbeat() {
	sequence := l.state.HeartbeatSequence.Add(1)
	stats := l.Stats()

	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	args := []any{
		"type", "proc",
		"sequence", sequence,
		"uptime_hours", fmt.Sprintf("%.2f", stats.Uptime.Hours()),
		"enqueued", stats.Enqueued,
		"written", stats.Written,
		"write_errors", stats.WriteErrors,
		"flush_errors", stats.FlushErrors,
		"dropped", stats.Dropped,
		"rotations", stats.Rotations,
		"last_backlog", stats.LastBacklog,
		"wait_ms", stats.CurrentWait.Milliseconds(),
		"alloc_mb", fmt.Sprintf("%.2f", float64(memStats.Alloc)/(1000*1000)),
		"num_goroutine", runtime.NumGoroutine(),
	}

	l.enqueue(TagHeartbeat, joinArgs(args))
}

// joinArgs renders key/value pairs as "k=v k=v"
func joinArgs(args []any) string {
	var sb strings.Builder
	for i := 0; i+1 < len(args); i += 2 {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%v=%v", args[i], args[i+1])
	}
	return sb.String()
}

// heartbeatInterval returns the configured interval, zero when disabled
func (l *Logger) heartbeatInterval() time.Duration {
	if l.cfg.HeartbeatIntervalS <= 0 {
		return 0
	}
	return time.Duration(l.cfg.HeartbeatIntervalS) * time.Second
}
