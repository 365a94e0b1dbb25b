// FILE: lixenwraith/tlog/compat/fasthttp.go
package compat

import (
	"fmt"
	"strings"

	"github.com/valyala/fasthttp"

	"github.com/lixenwraith/tlog"
)

// Severity selects the logger method used for a message
type Severity int

const (
	SeverityUnknown Severity = iota
	SeverityDebug
	SeverityInfo
	SeverityWarning
	SeverityError
)

var _ fasthttp.Logger = (*FastHTTPAdapter)(nil)

// FastHTTPAdapter wraps tlog.Logger to implement fasthttp Logger interface
type FastHTTPAdapter struct {
	logger          *tlog.Logger
	defaultSeverity Severity
	detector        func(string) Severity // Function to detect severity from message
}

// NewFastHTTPAdapter creates a new fasthttp-compatible logger adapter
func NewFastHTTPAdapter(logger *tlog.Logger, opts ...FastHTTPOption) *FastHTTPAdapter {
	adapter := &FastHTTPAdapter{
		logger:          logger,
		defaultSeverity: SeverityInfo,
		detector:        DetectSeverity, // Default severity detection
	}

	for _, opt := range opts {
		opt(adapter)
	}

	return adapter
}

// FastHTTPOption allows customizing adapter behavior
type FastHTTPOption func(*FastHTTPAdapter)

// WithDefaultSeverity sets the severity used when detection finds nothing
func WithDefaultSeverity(s Severity) FastHTTPOption {
	return func(a *FastHTTPAdapter) {
		a.defaultSeverity = s
	}
}

// WithSeverityDetector sets a custom function to detect severity from message content
func WithSeverityDetector(detector func(string) Severity) FastHTTPOption {
	return func(a *FastHTTPAdapter) {
		a.detector = detector
	}
}

// Printf implements fasthttp's Logger interface
func (a *FastHTTPAdapter) Printf(format string, args ...any) {
	msg := "fasthttp: " + fmt.Sprintf(format, args...)

	severity := a.defaultSeverity
	if a.detector != nil {
		if detected := a.detector(msg); detected != SeverityUnknown {
			severity = detected
		}
	}

	switch severity {
	case SeverityDebug:
		a.logger.Log(DebugTag, msg)
	case SeverityWarning:
		a.logger.Warning(msg)
	case SeverityError:
		a.logger.Error(msg)
	default:
		a.logger.Info(msg)
	}
}

// DetectSeverity guesses severity from message keywords
func DetectSeverity(msg string) Severity {
	msgLower := strings.ToLower(msg)

	// Check for error indicators
	if strings.Contains(msgLower, "error") ||
		strings.Contains(msgLower, "failed") ||
		strings.Contains(msgLower, "fatal") ||
		strings.Contains(msgLower, "panic") {
		return SeverityError
	}

	// Check for warning indicators
	if strings.Contains(msgLower, "warn") ||
		strings.Contains(msgLower, "deprecated") {
		return SeverityWarning
	}

	// Check for debug indicators
	if strings.Contains(msgLower, "debug") ||
		strings.Contains(msgLower, "trace") {
		return SeverityDebug
	}

	return SeverityUnknown
}
