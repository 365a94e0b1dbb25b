// FILE: lixenwraith/tlog/schedule.go
package tlog

import (
	"errors"

	"github.com/robfig/cron/v3"

	"github.com/lixenwraith/tlog/sink"
)

// startRotateSchedule registers rotate_schedule with a cron scheduler. Each
// firing only requests a rotation; the worker performs it after its next drain.
func (l *Logger) startRotateSchedule() error {
	spec := l.cfg.RotateSchedule
	if spec == "" {
		return nil
	}
	if _, ok := l.sink.(sink.Rotator); !ok {
		return fmtErrorf("rotate_schedule requires a rotating sink, got %T", l.sink)
	}

	c := cron.New()
	if _, err := c.AddFunc(spec, func() {
		if err := l.Rotate(); err != nil && !errors.Is(err, ErrShutdown) {
			l.reportError("error - scheduled rotation failed: %v", err)
		}
	}); err != nil {
		return fmtErrorf("invalid rotate_schedule '%s': %w", spec, err)
	}

	c.Start()
	l.scheduler = c
	return nil
}

// stopRotateSchedule stops the scheduler and waits for a running job
func (l *Logger) stopRotateSchedule() {
	if l.scheduler == nil {
		return
	}
	<-l.scheduler.Stop().Done()
}
