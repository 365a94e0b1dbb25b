// FILE: lixenwraith/tlog/storage_test.go
package tlog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/tlog/sink"
)

func TestOpenSink(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name     string
		cfg      func() *Config
		wantType any
	}{
		{
			name: "file",
			cfg: func() *Config {
				c := DefaultConfig()
				c.Path = filepath.Join(dir, "nested", "file.log")
				return c
			},
			wantType: &sink.FileSink{},
		},
		{
			name: "rotate",
			cfg: func() *Config {
				c := DefaultConfig()
				c.Sink = "rotate"
				c.Path = filepath.Join(dir, "rotate.log")
				return c
			},
			wantType: &sink.RotatingSink{},
		},
		{
			name: "stdout",
			cfg: func() *Config {
				c := DefaultConfig()
				c.Sink = "stdout"
				return c
			},
			wantType: &sink.WriterSink{},
		},
		{
			name: "stderr",
			cfg: func() *Config {
				c := DefaultConfig()
				c.Sink = "stderr"
				return c
			},
			wantType: &sink.WriterSink{},
		},
		{
			name: "http",
			cfg: func() *Config {
				c := DefaultConfig()
				c.Sink = "http"
				c.HTTPURL = "http://127.0.0.1:1/ingest"
				return c
			},
			wantType: &sink.HTTPSink{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := openSink(tt.cfg())
			require.NoError(t, err)
			assert.IsType(t, tt.wantType, s)
			assert.NoError(t, s.Close())
		})
	}

	t.Run("file created with parents", func(t *testing.T) {
		_, err := os.Stat(filepath.Join(dir, "nested", "file.log"))
		assert.NoError(t, err)
	})

	t.Run("unknown kind", func(t *testing.T) {
		c := DefaultConfig()
		c.Sink = "tape"
		_, err := openSink(c)
		assert.Error(t, err)
	})

	t.Run("unopenable file", func(t *testing.T) {
		c := DefaultConfig()
		c.Path = dir
		_, err := openSink(c)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to open log file")
	})
}
