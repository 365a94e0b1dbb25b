// FILE: lixenwraith/tlog/compat/gnet.go
package compat

import (
	"fmt"
	"os"
	"time"

	"github.com/panjf2000/gnet/v2/pkg/logging"

	"github.com/lixenwraith/tlog"
)

// DebugTag is used for debug output from wrapped libraries; the core logger
// has no debug severity of its own
const DebugTag = "[DBUG]"

var _ logging.Logger = (*GnetAdapter)(nil)

// GnetAdapter wraps tlog.Logger to implement gnet logging.Logger interface
type GnetAdapter struct {
	logger       *tlog.Logger
	source       string
	quitTimeout  time.Duration
	fatalHandler func(msg string) // Customizable fatal behavior
}

// NewGnetAdapter creates a new gnet-compatible logger adapter
func NewGnetAdapter(logger *tlog.Logger, opts ...GnetOption) *GnetAdapter {
	adapter := &GnetAdapter{
		logger:      logger,
		source:      "gnet",
		quitTimeout: time.Second,
		fatalHandler: func(msg string) {
			os.Exit(1) // Default behavior matches gnet expectations
		},
	}

	for _, opt := range opts {
		opt(adapter)
	}

	return adapter
}

// GnetOption allows customizing adapter behavior
type GnetOption func(*GnetAdapter)

// WithFatalHandler sets a custom fatal handler
func WithFatalHandler(handler func(string)) GnetOption {
	return func(a *GnetAdapter) {
		a.fatalHandler = handler
	}
}

// WithSource sets the prefix identifying the library in each message
func WithSource(source string) GnetOption {
	return func(a *GnetAdapter) {
		a.source = source
	}
}

// WithQuitTimeout bounds how long Fatalf waits for the logger to drain
func WithQuitTimeout(d time.Duration) GnetOption {
	return func(a *GnetAdapter) {
		a.quitTimeout = d
	}
}

func (a *GnetAdapter) message(format string, args []any) string {
	msg := fmt.Sprintf(format, args...)
	if a.source == "" {
		return msg
	}
	return a.source + ": " + msg
}

// Debugf logs under DebugTag with printf-style formatting
func (a *GnetAdapter) Debugf(format string, args ...any) {
	a.logger.Log(DebugTag, a.message(format, args))
}

// Infof logs at info with printf-style formatting
func (a *GnetAdapter) Infof(format string, args ...any) {
	a.logger.Info(a.message(format, args))
}

// Warnf logs a warning with printf-style formatting
func (a *GnetAdapter) Warnf(format string, args ...any) {
	a.logger.Warning(a.message(format, args))
}

// Errorf logs an error with printf-style formatting
func (a *GnetAdapter) Errorf(format string, args ...any) {
	a.logger.Error(a.message(format, args))
}

// Fatalf logs an error, drains the logger and triggers the fatal handler.
// The logger is shut down afterwards.
func (a *GnetAdapter) Fatalf(format string, args ...any) {
	msg := a.message(format, args)
	a.logger.Error(msg)

	// Ensure log is written before exit
	_ = a.logger.Quit(a.quitTimeout)

	if a.fatalHandler != nil {
		a.fatalHandler(msg)
	}
}
