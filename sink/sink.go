// FILE: lixenwraith/tlog/sink/sink.go
// Package sink provides the destinations a tlog worker writes lines to.
// A Sink is owned by a single goroutine; implementations need no locking
// for that path.
package sink

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Sink is an append-only destination for formatted log lines
type Sink interface {
	// WriteLine appends one line; the newline terminator is added by the sink
	WriteLine(line string) error

	// Flush pushes buffered lines to the underlying medium
	Flush() error

	// Close flushes and releases the destination
	Close() error
}

// Rotator is implemented by sinks that can start a new file on demand.
// Rotate is called from the same goroutine as WriteLine.
type Rotator interface {
	Rotate() error
}

// Kind selects a sink implementation by name
type Kind string

const (
	KindFile   Kind = "file"
	KindRotate Kind = "rotate"
	KindStdout Kind = "stdout"
	KindStderr Kind = "stderr"
	KindHTTP   Kind = "http"
)

// ParseKind validates a sink name
func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case KindFile, KindRotate, KindStdout, KindStderr, KindHTTP:
		return k, nil
	default:
		return "", fmt.Errorf("sink: unknown kind '%s' (use file, rotate, stdout, stderr, or http)", s)
	}
}

// normalizePath converts either separator style to the host one
func normalizePath(path string) string {
	return filepath.Clean(filepath.FromSlash(strings.ReplaceAll(path, "\\", "/")))
}
