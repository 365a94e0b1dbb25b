// FILE: lixenwraith/tlog/utility.go
package tlog

import (
	"fmt"
	"os"
	"strings"
)

// fmtErrorf wrapper
func fmtErrorf(format string, args ...any) error {
	if !strings.HasPrefix(format, "tlog: ") {
		format = "tlog: " + format
	}
	return fmt.Errorf(format, args...)
}

// combineErrors helper
func combineErrors(err1, err2 error) error {
	if err1 == nil {
		return err2
	}
	if err2 == nil {
		return err1
	}
	return fmt.Errorf("%v; %w", err1, err2)
}

// parseKeyValue splits a "key=value" string.
func parseKeyValue(arg string) (string, string, error) {
	parts := strings.SplitN(strings.TrimSpace(arg), "=", 2)
	if len(parts) != 2 {
		return "", "", fmtErrorf("invalid format in override string '%s', expected key=value", arg)
	}
	key := strings.TrimSpace(parts[0])
	value := strings.TrimSpace(parts[1])
	if key == "" {
		return "", "", fmtErrorf("key cannot be empty in override string '%s'", arg)
	}
	return key, value, nil
}

// reportError forwards a diagnostic to internalLog when enabled, subject to
// the error rate limit. Reports over the limit are only counted.
func (l *Logger) reportError(format string, args ...any) {
	if !l.cfg.InternalErrorsToStderr {
		return
	}
	if !l.errLimiter.Allow() {
		l.state.SuppressedErrors.Add(1)
		return
	}
	internalLog(true, format, args...)
}

// internalLog writes a diagnostic to stderr when enabled. The logger never
// routes its own failures through its queue.
func internalLog(enabled bool, format string, args ...any) {
	if !enabled {
		return
	}
	if !strings.HasPrefix(format, "tlog: ") {
		format = "tlog: " + format
	}
	if !strings.HasSuffix(format, "\n") {
		format += "\n"
	}
	fmt.Fprintf(os.Stderr, format, args...)
}
