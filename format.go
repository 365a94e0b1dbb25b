// FILE: lixenwraith/tlog/format.go
package tlog

import (
	"github.com/lixenwraith/tlog/formatter"
	"github.com/lixenwraith/tlog/sanitizer"
)

// newFormatter builds the line formatter described by cfg
func newFormatter(cfg *Config) *formatter.Formatter {
	san := sanitizer.New().Policy(sanitizer.PolicyPreset(cfg.Sanitize))
	return formatter.New(san).TimestampFormat(cfg.TimestampFormat)
}
