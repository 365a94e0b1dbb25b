// FILE: lixenwraith/tlog/builder.go
package tlog

import (
	"time"

	"github.com/lixenwraith/tlog/sink"
)

// Builder provides a fluent API for building logger configurations.
// It wraps a Config instance and provides chainable methods for setting values.
type Builder struct {
	cfg  *Config
	sink sink.Sink
	err  error // Accumulate errors for deferred handling
}

// NewBuilder creates a new configuration builder with default values.
func NewBuilder() *Builder {
	return &Builder{
		cfg: DefaultConfig(),
	}
}

// Build creates and starts a Logger with the specified configuration.
func (b *Builder) Build() (*Logger, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.sink != nil {
		return NewLoggerWithSink(b.cfg, b.sink)
	}
	return NewLogger(b.cfg)
}

// Config returns the validated configuration without starting a logger.
func (b *Builder) Config() (*Config, error) {
	if b.err != nil {
		return nil, b.err
	}
	if err := b.cfg.Validate(); err != nil {
		return nil, err
	}
	return b.cfg.Clone(), nil
}

// File selects an appending file sink at path.
func (b *Builder) File(path string) *Builder {
	b.cfg.Sink = string(sink.KindFile)
	b.cfg.Path = path
	return b
}

// Rotate selects a size-rotated file sink at path.
func (b *Builder) Rotate(path string, maxSizeMB, maxBackups int64) *Builder {
	b.cfg.Sink = string(sink.KindRotate)
	b.cfg.Path = path
	b.cfg.MaxSizeMB = maxSizeMB
	b.cfg.MaxBackups = maxBackups
	return b
}

// Console selects stdout or stderr.
func (b *Builder) Console(target string) *Builder {
	if b.err != nil {
		return b
	}
	kind, err := sink.ParseKind(target)
	if err != nil {
		b.err = fmtErrorf("%w", err)
		return b
	}
	if kind != sink.KindStdout && kind != sink.KindStderr {
		b.err = fmtErrorf("console target must be stdout or stderr, got '%s'", target)
		return b
	}
	b.cfg.Sink = string(kind)
	return b
}

// HTTP selects the batching HTTP sink.
func (b *Builder) HTTP(url string, timeout time.Duration) *Builder {
	b.cfg.Sink = string(sink.KindHTTP)
	b.cfg.HTTPURL = url
	b.cfg.HTTPTimeoutMs = timeout.Milliseconds()
	return b
}

// Sink uses a caller-provided sink instead of a configured one.
func (b *Builder) Sink(s sink.Sink) *Builder {
	b.sink = s
	return b
}

// Policy sets the initial timeout policy.
func (b *Builder) Policy(p TimeoutPolicy) *Builder {
	if b.err != nil {
		return b
	}
	if err := p.Validate(); err != nil {
		b.err = err
		return b
	}
	b.cfg.Policy = p.String()
	return b
}

// PolicyString sets the initial timeout policy from its text form.
func (b *Builder) PolicyString(policy string) *Builder {
	if b.err != nil {
		return b
	}
	if _, err := ParsePolicy(policy); err != nil {
		b.err = err
		return b
	}
	b.cfg.Policy = policy
	return b
}

// TimestampFormat sets the time layout of each line.
func (b *Builder) TimestampFormat(format string) *Builder {
	b.cfg.TimestampFormat = format
	return b
}

// InterceptTag sets the tag used by stream intercepts.
func (b *Builder) InterceptTag(tag string) *Builder {
	b.cfg.InterceptTag = tag
	return b
}

// Sanitize sets the message sanitizing policy.
func (b *Builder) Sanitize(policy string) *Builder {
	b.cfg.Sanitize = policy
	return b
}

// HeartbeatIntervalS enables the heartbeat line every interval seconds.
func (b *Builder) HeartbeatIntervalS(interval int64) *Builder {
	b.cfg.HeartbeatIntervalS = interval
	return b
}

// RotateSchedule rotates the sink on a cron schedule, e.g. "@daily" or "0 3 * * *".
// The sink must support rotation.
func (b *Builder) RotateSchedule(spec string) *Builder {
	b.cfg.RotateSchedule = spec
	return b
}

// HTTPAuthToken sends a static bearer token with every http batch.
func (b *Builder) HTTPAuthToken(token string) *Builder {
	b.cfg.HTTPAuthToken = token
	return b
}

// HTTPJWT signs a short-lived HS256 bearer token for every http batch.
func (b *Builder) HTTPJWT(secret, issuer string) *Builder {
	b.cfg.HTTPJWTSecret = secret
	if issuer != "" {
		b.cfg.HTTPJWTIssuer = issuer
	}
	return b
}

// InternalErrorsToStderr reports sink failures on stderr.
func (b *Builder) InternalErrorsToStderr(enable bool) *Builder {
	b.cfg.InternalErrorsToStderr = enable
	return b
}

// Example usage:
// logger, err := tlog.NewBuilder().
//
//	File("/var/log/app/output.log").
//	PolicyString("linear:100,1000,50").
//	Sanitize("txt").
//	Build()
//
// if err == nil {
//
//	 defer logger.Quit()
//	 logger.Info("Logger initialized successfully")
//
// }
