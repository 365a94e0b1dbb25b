// FILE: lixenwraith/tlog/storage.go
package tlog

import (
	"time"

	"github.com/lixenwraith/tlog/sink"
)

// openSink creates the sink selected by cfg. An open failure is an
// initialization failure and the logger does not start.
func openSink(cfg *Config) (sink.Sink, error) {
	kind, err := sink.ParseKind(cfg.Sink)
	if err != nil {
		return nil, fmtErrorf("%w", err)
	}

	switch kind {
	case sink.KindFile:
		s, err := sink.NewFile(cfg.Path)
		if err != nil {
			return nil, fmtErrorf("failed to open log file: %w", err)
		}
		return s, nil

	case sink.KindRotate:
		s, err := sink.NewRotating(cfg.Path, sink.RotateOptions{
			MaxSizeMB:  int(cfg.MaxSizeMB),
			MaxBackups: int(cfg.MaxBackups),
			MaxAgeDays: int(cfg.MaxAgeDays),
			Compress:   cfg.Compress,
		})
		if err != nil {
			return nil, fmtErrorf("failed to open rotating log: %w", err)
		}
		return s, nil

	case sink.KindStdout:
		return sink.NewStdout(), nil

	case sink.KindStderr:
		return sink.NewStderr(), nil

	case sink.KindHTTP:
		s, err := sink.NewHTTP(sink.HTTPOptions{
			URL:       cfg.HTTPURL,
			Timeout:   time.Duration(cfg.HTTPTimeoutMs) * time.Millisecond,
			AuthToken: cfg.HTTPAuthToken,
			JWTSecret: []byte(cfg.HTTPJWTSecret),
			JWTIssuer: cfg.HTTPJWTIssuer,
		})
		if err != nil {
			return nil, fmtErrorf("failed to create http sink: %w", err)
		}
		return s, nil
	}

	return nil, fmtErrorf("unsupported sink '%s'", cfg.Sink)
}
