// FILE: lixenwraith/tlog/format_test.go
package tlog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewFormatterFromConfig(t *testing.T) {
	ts := time.Date(2024, 3, 5, 8, 9, 10, 0, time.UTC)

	t.Run("defaults", func(t *testing.T) {
		f := newFormatter(DefaultConfig())
		assert.Equal(t, "Tue Mar 05 08:09:10 UTC 2024 | [INFO] | a\\tb", f.Line(ts, TagInfo, "a\tb"))
	})

	t.Run("raw sanitizer", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Sanitize = "raw"
		f := newFormatter(cfg)
		assert.Equal(t, "Tue Mar 05 08:09:10 UTC 2024 | [INFO] | a\tb", f.Line(ts, TagInfo, "a\tb"))
	})

	t.Run("txt sanitizer and layout", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Sanitize = "txt"
		cfg.TimestampFormat = time.DateTime
		f := newFormatter(cfg)
		assert.Equal(t, "2024-03-05 08:09:10 | [INFO] | a<09>b", f.Line(ts, TagInfo, "a\tb"))
	})

	t.Run("escape sanitizer", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Sanitize = "escape"
		f := newFormatter(cfg)
		assert.Equal(t, "Tue Mar 05 08:09:10 UTC 2024 | [WARN] | l1\\nl2", f.Line(ts, TagWarning, "l1\nl2"))
	})
}
