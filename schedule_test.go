// FILE: lixenwraith/tlog/schedule_test.go
package tlog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rotatingMemorySink is a memorySink that also implements sink.Rotator
type rotatingMemorySink struct {
	*memorySink
	rotateErr error
	rotations int
}

func (s *rotatingMemorySink) Rotate() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.rotateErr != nil {
		return s.rotateErr
	}
	s.rotations++
	return nil
}

func createRotatingLogger(t *testing.T, overrides ...string) (*Logger, string) {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "rot.log")
	base := []string{"sink=rotate", "path=" + path, "policy=constant:20"}
	cfg, err := NewConfigFromOverrides(append(base, overrides...)...)
	require.NoError(t, err)
	logger, err := NewLogger(cfg)
	require.NoError(t, err)
	return logger, path
}

func TestLoggerRotate(t *testing.T) {
	logger, path := createRotatingLogger(t)

	logger.Info("before rotation")
	require.NoError(t, logger.Rotate())
	require.Eventually(t, func() bool { return logger.Stats().Rotations == 1 },
		2*time.Second, 5*time.Millisecond)

	logger.Info("after rotation")
	require.NoError(t, logger.Quit())

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 2, "current file plus one backup")

	lines := readLines(t, path)
	require.Len(t, lines, 1)
	_, _, msg := splitLine(t, lines[0])
	assert.Equal(t, "after rotation", msg)

	assert.ErrorIs(t, logger.Rotate(), ErrShutdown)
}

func TestLoggerRotateUnsupported(t *testing.T) {
	logger := newSinkLogger(t, newMemorySink(), "constant:20")
	defer logger.Quit()

	err := logger.Rotate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not support rotation")
}

func TestLoggerRotateFailureCounted(t *testing.T) {
	s := &rotatingMemorySink{memorySink: newMemorySink(), rotateErr: errors.New("disk gone")}
	cfg := DefaultConfig()
	cfg.Policy = "constant:20"
	logger, err := NewLoggerWithSink(cfg, s)
	require.NoError(t, err)

	require.NoError(t, logger.Rotate())
	require.Eventually(t, func() bool { return logger.Stats().RotateErrors == 1 },
		2*time.Second, 5*time.Millisecond)

	// Worker keeps going
	logger.Info("still logging")
	require.NoError(t, logger.Quit())
	assert.Len(t, s.snapshot(), 1)
	assert.Zero(t, logger.Stats().Rotations)
}

func TestRotateSchedule(t *testing.T) {
	s := &rotatingMemorySink{memorySink: newMemorySink()}
	cfg := DefaultConfig()
	cfg.Policy = "constant:20"
	cfg.RotateSchedule = "@every 1s"
	logger, err := NewLoggerWithSink(cfg, s)
	require.NoError(t, err)

	require.Eventually(t, func() bool { return logger.Stats().Rotations >= 1 },
		4*time.Second, 20*time.Millisecond)
	require.NoError(t, logger.Quit())

	s.mu.Lock()
	defer s.mu.Unlock()
	assert.GreaterOrEqual(t, s.rotations, 1)
}

func TestRotateScheduleValidation(t *testing.T) {
	t.Run("bad spec", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.RotateSchedule = "every tuesday"
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "rotate_schedule")
	})

	t.Run("descriptor accepted", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.RotateSchedule = "@daily"
		assert.NoError(t, cfg.Validate())
	})

	t.Run("sink without rotation", func(t *testing.T) {
		s := newMemorySink()
		cfg := DefaultConfig()
		cfg.RotateSchedule = "@daily"
		_, err := NewLoggerWithSink(cfg, s)
		require.Error(t, err)
		assert.True(t, s.isClosed(), "sink is released on failed start")
	})
}

func TestReportErrorRateLimited(t *testing.T) {
	s := newMemorySink()
	s.failSuffix = "!"
	cfg := DefaultConfig()
	cfg.Policy = "constant:20"
	cfg.InternalErrorsToStderr = true
	logger, err := NewLoggerWithSink(cfg, s)
	require.NoError(t, err)

	const failures = 200
	for i := 0; i < failures; i++ {
		logger.Info(fmt.Sprintf("bad %d!", i))
	}
	require.NoError(t, logger.Quit())

	stats := logger.Stats()
	assert.Equal(t, uint64(failures), stats.WriteErrors)
	assert.Greater(t, stats.Suppressed, uint64(failures/2), "most reports are throttled")
}

func TestReportErrorDisabledCountsNothing(t *testing.T) {
	s := newMemorySink()
	s.failSuffix = "!"
	logger := newSinkLogger(t, s, "constant:20")

	for i := 0; i < 50; i++ {
		logger.Info(strings.Repeat("x", i) + "!")
	}
	require.NoError(t, logger.Quit())
	assert.Equal(t, uint64(50), logger.Stats().WriteErrors)
	assert.Zero(t, logger.Stats().Suppressed)
}
