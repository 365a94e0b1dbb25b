// FILE: lixenwraith/tlog/default.go
package tlog

import (
	"sync"
	"sync/atomic"
	"time"
)

// Process-wide logger used by the package-level functions. Log calls made
// while no default logger is live are silently ignored.
var (
	initMu        sync.Mutex
	defaultLogger atomic.Pointer[Logger]
)

// Init starts the default logger. While one is live it returns the existing
// handle together with ErrAlreadyInitialized and starts nothing.
func Init(cfg *Config) (*Logger, error) {
	initMu.Lock()
	defer initMu.Unlock()

	if l := defaultLogger.Load(); l != nil {
		return l, ErrAlreadyInitialized
	}

	l, err := NewLogger(cfg)
	if err != nil {
		return nil, err
	}
	defaultLogger.Store(l)
	return l, nil
}

// InitWithDefaults starts the default logger from the built-in defaults
// with optional "key=value" overrides
func InitWithDefaults(overrides ...string) (*Logger, error) {
	cfg, err := NewConfigFromOverrides(overrides...)
	if err != nil {
		return nil, err
	}
	return Init(cfg)
}

// Default returns the live default logger or nil
func Default() *Logger {
	return defaultLogger.Load()
}

// Quit shuts the default logger down and clears it so Init may run again
func Quit(timeout ...time.Duration) error {
	initMu.Lock()
	l := defaultLogger.Swap(nil)
	initMu.Unlock()

	if l == nil {
		return ErrNotInitialized
	}
	return l.Quit(timeout...)
}

// Log enqueues message under tag on the default logger
func Log(tag string, message any) {
	if l := defaultLogger.Load(); l != nil {
		l.Log(tag, message)
	}
}

// Logf formats and enqueues a message under tag on the default logger
func Logf(tag string, format string, args ...any) {
	if l := defaultLogger.Load(); l != nil {
		l.Logf(tag, format, args...)
	}
}

// Info logs at info on the default logger
func Info(message any) {
	if l := defaultLogger.Load(); l != nil {
		l.Info(message)
	}
}

// Warning logs a warning on the default logger
func Warning(message any) {
	if l := defaultLogger.Load(); l != nil {
		l.Warning(message)
	}
}

// Error logs an error on the default logger
func Error(message any) {
	if l := defaultLogger.Load(); l != nil {
		l.Error(message)
	}
}

// Exception logs err on the default logger
func Exception(err error) {
	if l := defaultLogger.Load(); l != nil {
		l.Exception(err)
	}
}

// BlankLine writes an empty line on the default logger
func BlankLine() {
	if l := defaultLogger.Load(); l != nil {
		l.BlankLine()
	}
}

// Flush wakes the default logger's worker if it is idle
func Flush() {
	if l := defaultLogger.Load(); l != nil {
		l.Flush()
	}
}

// SetTimeoutPolicy hot-swaps the default logger's policy
func SetTimeoutPolicy(p TimeoutPolicy) error {
	l := defaultLogger.Load()
	if l == nil {
		return ErrNotInitialized
	}
	return l.SetTimeoutPolicy(p)
}

// InterceptStdout routes os.Stdout through the default logger
func InterceptStdout(passthrough bool) (restore func() error, err error) {
	l := defaultLogger.Load()
	if l == nil {
		return nil, ErrNotInitialized
	}
	return l.InterceptStdout(passthrough)
}
