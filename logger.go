// FILE: lixenwraith/tlog/logger.go
package tlog

import (
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/robfig/cron/v3"
	"golang.org/x/time/rate"

	"github.com/lixenwraith/tlog/formatter"
	"github.com/lixenwraith/tlog/sink"
)

var (
	// ErrAlreadyInitialized is returned by Init while a default logger is live
	ErrAlreadyInitialized = errors.New("tlog: already initialized")
	// ErrNotInitialized is returned by package-level calls that need a default logger
	ErrNotInitialized = errors.New("tlog: not initialized")
	// ErrShutdown is returned by operations on a logger that has quit
	ErrShutdown = errors.New("tlog: logger is shut down")
)

// Logger owns one queue, one worker goroutine and one sink
type Logger struct {
	cfg       *Config
	state     *State
	queue     *messageQueue
	sink      sink.Sink
	formatter *formatter.Formatter
	policy    atomic.Pointer[TimeoutPolicy]

	errLimiter *rate.Limiter // Throttles stderr diagnostics
	scheduler  *cron.Cron    // Nil without rotate_schedule
}

// NewLogger validates cfg, opens the configured sink and starts the worker.
// A nil cfg uses DefaultConfig.
func NewLogger(cfg *Config) (*Logger, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmtErrorf("invalid configuration: %w", err)
	}

	s, err := openSink(cfg)
	if err != nil {
		return nil, err
	}
	return start(cfg.Clone(), s)
}

// NewLoggerWithSink starts a logger writing to a caller-provided sink. The
// logger takes ownership and closes s on Quit. Sink settings in cfg are ignored.
func NewLoggerWithSink(cfg *Config, s sink.Sink) (*Logger, error) {
	if s == nil {
		return nil, fmtErrorf("sink cannot be nil")
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmtErrorf("invalid configuration: %w", err)
	}
	return start(cfg.Clone(), s)
}

func start(cfg *Config, s sink.Sink) (*Logger, error) {
	policy, err := ParsePolicy(cfg.Policy)
	if err != nil {
		_ = s.Close()
		return nil, err
	}

	l := &Logger{
		cfg:        cfg,
		state:      newState(),
		queue:      newMessageQueue(),
		sink:       s,
		formatter:  newFormatter(cfg),
		errLimiter: rate.NewLimiter(rate.Every(errorReportInterval), errorReportBurst),
	}
	l.policy.Store(&policy)

	if err := l.startRotateSchedule(); err != nil {
		_ = s.Close()
		return nil, err
	}

	go l.processLogs()
	return l, nil
}

// SetTimeoutPolicy replaces the active policy; the worker uses it from its
// next iteration
func (l *Logger) SetTimeoutPolicy(p TimeoutPolicy) error {
	if err := p.Validate(); err != nil {
		return err
	}
	l.policy.Store(&p)
	return nil
}

// TimeoutPolicy returns the active policy
func (l *Logger) TimeoutPolicy() TimeoutPolicy {
	return *l.policy.Load()
}

// Flush wakes the worker if it is parked. While a drain is running it is a
// no-op since the queue is about to be emptied anyway. Never blocks.
func (l *Logger) Flush() {
	if l.state.ShutdownCalled.Load() {
		return
	}
	l.state.wake()
}

// Rotate asks the worker to rotate the sink at the end of its next drain
// pass. Fails if the sink cannot rotate or the logger has quit.
func (l *Logger) Rotate() error {
	if l.state.ShutdownCalled.Load() {
		return ErrShutdown
	}
	if _, ok := l.sink.(sink.Rotator); !ok {
		return fmtErrorf("sink %T does not support rotation", l.sink)
	}
	l.state.rotatePending.Store(true)
	l.state.wake()
	return nil
}

// Quit stops accepting logs, lets the worker drain and close the sink, and
// waits for it to stop. Without a timeout argument it waits twice the
// configured shutdown timeout. Safe to call more than once.
// Lines pushed concurrently with Quit may miss the final drain and be lost.
func (l *Logger) Quit(timeout ...time.Duration) error {
	if !l.state.ShutdownCalled.CompareAndSwap(false, true) {
		return nil
	}
	l.state.requestQuit()

	var effectiveTimeout time.Duration
	if len(timeout) > 0 && timeout[0] > 0 {
		effectiveTimeout = timeout[0]
	} else if l.cfg.ShutdownTimeoutMs > 0 {
		effectiveTimeout = 2 * time.Duration(l.cfg.ShutdownTimeoutMs) * time.Millisecond
	} else {
		effectiveTimeout = defaultShutdownTimeout
	}

	select {
	case <-l.state.done:
		return l.state.closeErr
	case <-time.After(effectiveTimeout):
		return fmtErrorf("worker did not stop within timeout (%v)", effectiveTimeout)
	}
}

// Done is closed once the worker has stopped
func (l *Logger) Done() <-chan struct{} {
	return l.state.done
}

// State returns the current worker state
func (l *Logger) State() WorkerState {
	return l.state.workerState()
}

// Config returns a copy of the configuration the logger was started with
func (l *Logger) Config() *Config {
	return l.cfg.Clone()
}

// Stats returns a snapshot of the logger counters
func (l *Logger) Stats() Stats {
	st := l.state
	var uptime time.Duration
	if startTime, ok := st.LoggerStartTime.Load().(time.Time); ok {
		uptime = time.Since(startTime)
	}
	return Stats{
		Enqueued:     st.TotalEnqueued.Load(),
		Written:      st.TotalWritten.Load(),
		WriteErrors:  st.WriteErrors.Load(),
		FlushErrors:  st.FlushErrors.Load(),
		Dropped:      st.DroppedLogs.Load(),
		Drains:       st.Drains.Load(),
		Rotations:    st.Rotations.Load(),
		RotateErrors: st.RotateErrors.Load(),
		Suppressed:   st.SuppressedErrors.Load(),
		LastBacklog:  int(st.LastBacklog.Load()),
		CurrentWait:  time.Duration(st.CurrentWaitNs.Load()),
		QueueLength:  l.queue.len(),
		State:        st.workerState(),
		Uptime:       uptime,
	}
}

// String implements fmt.Stringer for diagnostics
func (l *Logger) String() string {
	return fmt.Sprintf("tlog.Logger{sink=%s policy=%s state=%s}", l.cfg.Sink, l.TimeoutPolicy(), l.State())
}
