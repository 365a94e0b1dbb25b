// FILE: lixenwraith/tlog/compat/slog.go
package compat

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/lixenwraith/tlog"
)

var _ slog.Handler = (*SlogHandler)(nil)

// SlogHandler routes log/slog records through a tlog.Logger. Levels map to
// tags; attributes are appended to the message as "key=value".
type SlogHandler struct {
	logger   *tlog.Logger
	minLevel slog.Leveler
	attrs    string // Preformatted handler attributes
	group    string // Dotted key prefix
}

// NewSlogHandler creates a handler passing records at or above minLevel
// (nil means slog.LevelInfo)
func NewSlogHandler(logger *tlog.Logger, minLevel slog.Leveler) *SlogHandler {
	if minLevel == nil {
		minLevel = slog.LevelInfo
	}
	return &SlogHandler{logger: logger, minLevel: minLevel}
}

// Enabled implements slog.Handler
func (h *SlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.minLevel.Level()
}

// Handle implements slog.Handler. The record time is ignored; the line is
// stamped when enqueued.
func (h *SlogHandler) Handle(_ context.Context, r slog.Record) error {
	var sb strings.Builder
	sb.WriteString(r.Message)
	sb.WriteString(h.attrs)
	r.Attrs(func(a slog.Attr) bool {
		appendAttr(&sb, h.group, a)
		return true
	})

	msg := sb.String()
	switch {
	case r.Level >= slog.LevelError:
		h.logger.Error(msg)
	case r.Level >= slog.LevelWarn:
		h.logger.Warning(msg)
	case r.Level >= slog.LevelInfo:
		h.logger.Info(msg)
	default:
		h.logger.Log(DebugTag, msg)
	}
	return nil
}

// WithAttrs implements slog.Handler
func (h *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	var sb strings.Builder
	sb.WriteString(h.attrs)
	for _, a := range attrs {
		appendAttr(&sb, h.group, a)
	}
	nh := *h
	nh.attrs = sb.String()
	return &nh
}

// WithGroup implements slog.Handler
func (h *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	nh := *h
	nh.group = h.group + name + "."
	return &nh
}

// appendAttr writes " prefix.key=value", flattening nested groups
func appendAttr(sb *strings.Builder, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	if a.Value.Kind() == slog.KindGroup {
		if a.Key != "" {
			prefix += a.Key + "."
		}
		for _, ga := range a.Value.Group() {
			appendAttr(sb, prefix, ga)
		}
		return
	}
	fmt.Fprintf(sb, " %s%s=%v", prefix, a.Key, a.Value.Any())
}
