// FILE: lixenwraith/tlog/intercept.go
package tlog

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"
	"sync"
)

// Intercept is an io.Writer decorator that turns every Write into one log
// entry and optionally forwards the bytes to the wrapped writer. It does not
// buffer, so entries keep the caller's write granularity.
type Intercept struct {
	logger *Logger
	w      io.Writer

	mu          sync.RWMutex
	tag         string
	passthrough bool
}

// Intercept wraps w using the configured intercept tag
func (l *Logger) Intercept(w io.Writer, passthrough bool) *Intercept {
	return &Intercept{
		logger:      l,
		w:           w,
		tag:         l.cfg.InterceptTag,
		passthrough: passthrough,
	}
}

// Write logs p under the intercept tag, then forwards it if passthrough is on.
// A single trailing newline is trimmed from the logged text only.
func (i *Intercept) Write(p []byte) (int, error) {
	i.mu.RLock()
	tag, passthrough := i.tag, i.passthrough
	i.mu.RUnlock()

	i.logger.Log(tag, strings.TrimSuffix(string(p), "\n"))

	if passthrough && i.w != nil {
		return i.w.Write(p)
	}
	return len(p), nil
}

// SetTag changes the tag used for subsequent writes
func (i *Intercept) SetTag(tag string) {
	i.mu.Lock()
	i.tag = tag
	i.mu.Unlock()
}

// Tag returns the current tag
func (i *Intercept) Tag() string {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.tag
}

// SetPassthrough toggles forwarding to the wrapped writer
func (i *Intercept) SetPassthrough(passthrough bool) {
	i.mu.Lock()
	i.passthrough = passthrough
	i.mu.Unlock()
}

// Passthrough reports whether writes are forwarded
func (i *Intercept) Passthrough() bool {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.passthrough
}

// InterceptStdout replaces os.Stdout with a pipe feeding an Intercept whose
// passthrough target is the original stdout. A pipe cannot preserve write
// boundaries, so each line read from it becomes one entry. restore puts the
// original stdout back and waits until everything written so far is logged.
func (l *Logger) InterceptStdout(passthrough bool) (restore func() error, err error) {
	if l.state.ShutdownCalled.Load() {
		return nil, ErrShutdown
	}

	r, w, err := os.Pipe()
	if err != nil {
		return nil, fmtErrorf("failed to create stdout pipe: %w", err)
	}

	original := os.Stdout
	ic := l.Intercept(original, passthrough)
	os.Stdout = w

	done := make(chan struct{})
	go func() {
		defer close(done)
		reader := bufio.NewReader(r)
		for {
			line, readErr := reader.ReadString('\n')
			if len(line) > 0 {
				_, _ = ic.Write([]byte(line))
			}
			if readErr != nil {
				if !errors.Is(readErr, io.EOF) {
					l.reportError("error - stdout intercept read failed: %v", readErr)
				}
				return
			}
		}
	}()

	var once sync.Once
	restore = func() error {
		var restoreErr error
		once.Do(func() {
			os.Stdout = original
			restoreErr = w.Close()
			<-done
			restoreErr = combineErrors(restoreErr, r.Close())
		})
		return restoreErr
	}
	return restore, nil
}
