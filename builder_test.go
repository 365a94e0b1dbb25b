// FILE: lixenwraith/tlog/builder_test.go
package tlog

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_Build(t *testing.T) {
	t.Run("successful build returns configured logger", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "built.log")

		logger, err := NewBuilder().
			File(path).
			PolicyString("linear:100,1000,50").
			Sanitize("txt").
			InterceptTag("[STDOUT]").
			TimestampFormat(time.RFC3339).
			HeartbeatIntervalS(60).
			Build()
		require.NoError(t, err, "Builder.Build() should not return an error on valid config")
		require.NotNil(t, logger)

		cfg := logger.Config()
		assert.Equal(t, "file", cfg.Sink)
		assert.Equal(t, path, cfg.Path)
		assert.Equal(t, Linear(100*time.Millisecond, time.Second, 50), logger.TimeoutPolicy())
		assert.Equal(t, "txt", cfg.Sanitize)
		assert.Equal(t, "[STDOUT]", cfg.InterceptTag)
		assert.Equal(t, int64(60), cfg.HeartbeatIntervalS)

		logger.Info("built")
		require.NoError(t, logger.Quit())

		lines := readLines(t, path)
		require.Len(t, lines, 1)
		ts, _, _ := splitLine(t, lines[0])
		_, err = time.Parse(time.RFC3339, ts)
		assert.NoError(t, err)
	})

	t.Run("custom sink", func(t *testing.T) {
		s := newMemorySink()
		logger, err := NewBuilder().Sink(s).Policy(Constant(time.Hour)).Build()
		require.NoError(t, err)

		logger.Warning("to memory")
		require.NoError(t, logger.Quit())
		require.Len(t, s.snapshot(), 1)
		assert.True(t, strings.Contains(s.snapshot()[0], "[WARN]"))
	})

	t.Run("first error is kept", func(t *testing.T) {
		_, err := NewBuilder().
			PolicyString("bogus").
			Console("printer").
			Build()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid policy")
	})

	t.Run("console rejects non console kinds", func(t *testing.T) {
		_, err := NewBuilder().Console("file").Config()
		assert.Error(t, err)
	})

	t.Run("invalid policy value", func(t *testing.T) {
		_, err := NewBuilder().Policy(Constant(-time.Second)).Build()
		assert.Error(t, err)
	})
}

func TestBuilder_Config(t *testing.T) {
	cfg, err := NewBuilder().
		Rotate("/var/log/app.log", 5, 3).
		Config()
	require.NoError(t, err)
	assert.Equal(t, "rotate", cfg.Sink)
	assert.Equal(t, int64(5), cfg.MaxSizeMB)
	assert.Equal(t, int64(3), cfg.MaxBackups)

	cfg, err = NewBuilder().HTTP("http://collector:8080/logs", 2*time.Second).Config()
	require.NoError(t, err)
	assert.Equal(t, "http", cfg.Sink)
	assert.Equal(t, int64(2000), cfg.HTTPTimeoutMs)

	cfg, err = NewBuilder().Console("stderr").InternalErrorsToStderr(true).Config()
	require.NoError(t, err)
	assert.Equal(t, "stderr", cfg.Sink)
	assert.True(t, cfg.InternalErrorsToStderr)

	_, err = NewBuilder().File("").Config()
	assert.Error(t, err)
}
