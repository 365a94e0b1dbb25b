// FILE: lixenwraith/tlog/lifecycle_test.go
package tlog

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetDefault makes sure no default logger leaks between tests
func resetDefault(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		_ = Quit()
	})
}

func TestPackageFunctionsBeforeInit(t *testing.T) {
	resetDefault(t)
	require.Nil(t, Default())

	// None of these may panic or block
	Log("[X]", "ignored")
	Logf("[X]", "%s", "ignored")
	Info("ignored")
	Warning("ignored")
	Error("ignored")
	Exception(errors.New("ignored"))
	BlankLine()
	Flush()

	assert.ErrorIs(t, Quit(), ErrNotInitialized)
	assert.ErrorIs(t, SetTimeoutPolicy(DefaultPolicy()), ErrNotInitialized)
	_, err := InterceptStdout(false)
	assert.ErrorIs(t, err, ErrNotInitialized)
}

func TestInitTwiceKeepsOneLogger(t *testing.T) {
	resetDefault(t)
	path := filepath.Join(t.TempDir(), "output.log")

	cfg := DefaultConfig()
	cfg.Path = path

	first, err := Init(cfg)
	require.NoError(t, err)
	require.NotNil(t, first)

	otherCfg := DefaultConfig()
	otherCfg.Path = filepath.Join(t.TempDir(), "other.log")
	second, err := Init(otherCfg)
	assert.ErrorIs(t, err, ErrAlreadyInitialized)
	assert.Same(t, first, second, "existing handle is returned")
	assert.Same(t, first, Default())

	Info("through default")
	Warning("through default")
	require.NoError(t, Quit())
	assert.Nil(t, Default())

	assert.Len(t, readLines(t, path), 2)
	assert.NoFileExists(t, otherCfg.Path, "second init must not open a sink")
}

func TestInitAfterQuit(t *testing.T) {
	resetDefault(t)

	first, err := InitWithDefaults("path=" + filepath.Join(t.TempDir(), "a.log"))
	require.NoError(t, err)
	require.NoError(t, Quit())

	second, err := InitWithDefaults("path=" + filepath.Join(t.TempDir(), "b.log"))
	require.NoError(t, err)
	assert.NotSame(t, first, second)
	require.NoError(t, SetTimeoutPolicy(Constant(DefaultTimeout)))
	assert.Equal(t, Constant(DefaultTimeout), second.TimeoutPolicy())
}

func TestInitWithDefaultsInvalidOverride(t *testing.T) {
	resetDefault(t)

	_, err := InitWithDefaults("policy=never")
	assert.Error(t, err)
	assert.Nil(t, Default())
}

func TestInitSinkFailure(t *testing.T) {
	resetDefault(t)

	cfg := DefaultConfig()
	cfg.Path = t.TempDir()
	_, err := Init(cfg)
	assert.Error(t, err)
	assert.Nil(t, Default(), "failed init leaves no default logger")
}
