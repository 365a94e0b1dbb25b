// FILE: lixenwraith/tlog/constant.go
package tlog

import (
	"time"
)

// Default line tags. These are part of the output contract and must stay stable.
const (
	TagInfo      = "[INFO]"
	TagWarning   = "[WARN]"
	TagError     = "[ERRO]"
	TagException = "[EXCP]"
	TagIntercept = "[LOGX]"
	TagHeartbeat = "[BEAT]"
)

// DefaultLogFile is the sink location used when none is configured
const DefaultLogFile = "output.log"

// DefaultTimeout is the busy wait of the default policy; idle wait is five times longer
const DefaultTimeout = time.Second

// MinWaitTime is the shortest wait the worker takes between passes. Policy
// results below it, zero included, are raised to it.
const MinWaitTime = 10 * time.Millisecond

// Timers
const (
	// Join timeout used by Quit when shutdown_timeout_ms is unset
	defaultShutdownTimeout = 2 * time.Second
)

// Internal error reports on stderr are limited to one per interval after the burst
const (
	errorReportInterval = 100 * time.Millisecond
	errorReportBurst    = 10
)
