// FILE: lixenwraith/tlog/config.go
package tlog

import (
	"errors"
	"strings"

	lconfig "github.com/lixenwraith/config"
	"github.com/robfig/cron/v3"

	"github.com/lixenwraith/tlog/formatter"
	"github.com/lixenwraith/tlog/sanitizer"
	"github.com/lixenwraith/tlog/sink"
)

// EnvPrefix is prepended to configuration keys when reading the environment
const EnvPrefix = "TLOG_"

// Config holds all logger configuration values
type Config struct {
	// Sink selection
	Sink string `toml:"sink"` // "file", "rotate", "stdout", "stderr", or "http"
	Path string `toml:"path"` // File location for file and rotate sinks

	// Worker
	Policy            string `toml:"policy"`              // Timeout policy, see ParsePolicy
	ShutdownTimeoutMs int64  `toml:"shutdown_timeout_ms"` // Quit waits twice this long by default

	// Formatting
	TimestampFormat string `toml:"timestamp_format"`
	InfoTag         string `toml:"info_tag"`
	WarnTag         string `toml:"warn_tag"`
	ErrorTag        string `toml:"error_tag"`
	ExceptionTag    string `toml:"exception_tag"`
	Sanitize        string `toml:"sanitize"` // "raw", "txt", or "escape"

	// Interception
	InterceptTag string `toml:"intercept_tag"`
	Passthrough  bool   `toml:"passthrough"` // Forward intercepted writes to the original stream

	// Rotation (sink=rotate)
	MaxSizeMB  int64 `toml:"max_size_mb"`
	MaxBackups int64 `toml:"max_backups"`
	MaxAgeDays int64 `toml:"max_age_days"`
	Compress   bool  `toml:"compress"`

	// Scheduled rotation, standard cron syntax or descriptors like "@daily"
	RotateSchedule string `toml:"rotate_schedule"`

	// HTTP (sink=http)
	HTTPURL       string `toml:"http_url"`
	HTTPTimeoutMs int64  `toml:"http_timeout_ms"`
	HTTPAuthToken string `toml:"http_auth_token"` // Static bearer token
	HTTPJWTSecret string `toml:"http_jwt_secret"` // HS256 key; takes precedence over http_auth_token
	HTTPJWTIssuer string `toml:"http_jwt_issuer"`

	// Heartbeat
	HeartbeatIntervalS int64 `toml:"heartbeat_interval_s"` // 0 disables

	// Internal error handling
	InternalErrorsToStderr bool `toml:"internal_errors_to_stderr"`
}

// defaultConfig is the single source for all configurable default values
var defaultConfig = Config{
	Sink: string(sink.KindFile),
	Path: DefaultLogFile,

	Policy:            DefaultPolicy().String(),
	ShutdownTimeoutMs: 1000,

	TimestampFormat: formatter.DefaultTimestampFormat,
	InfoTag:         TagInfo,
	WarnTag:         TagWarning,
	ErrorTag:        TagError,
	ExceptionTag:    TagException,
	Sanitize:        string(sanitizer.PolicyEscape),

	InterceptTag: TagIntercept,
	Passthrough:  true,

	MaxSizeMB:  10,
	MaxBackups: 5,
	MaxAgeDays: 0,
	Compress:   false,

	RotateSchedule: "",

	HTTPURL:       "",
	HTTPTimeoutMs: 5000,
	HTTPAuthToken: "",
	HTTPJWTSecret: "",
	HTTPJWTIssuer: "tlog",

	HeartbeatIntervalS: 0,

	InternalErrorsToStderr: false,
}

// DefaultConfig returns a copy of the default configuration
func DefaultConfig() *Config {
	copiedConfig := defaultConfig
	return &copiedConfig
}

// Clone creates a copy of the configuration
func (c *Config) Clone() *Config {
	copiedConfig := *c
	return &copiedConfig
}

// Validate performs validation on the configuration
func (c *Config) Validate() error {
	kind, err := sink.ParseKind(c.Sink)
	if err != nil {
		return fmtErrorf("%w", err)
	}

	switch kind {
	case sink.KindFile, sink.KindRotate:
		if strings.TrimSpace(c.Path) == "" {
			return fmtErrorf("path is required for sink '%s'", c.Sink)
		}
	case sink.KindHTTP:
		if !strings.HasPrefix(c.HTTPURL, "http://") && !strings.HasPrefix(c.HTTPURL, "https://") {
			return fmtErrorf("http_url must be an http(s) url for sink 'http': '%s'", c.HTTPURL)
		}
	}

	if _, err := ParsePolicy(c.Policy); err != nil {
		return err
	}

	if strings.TrimSpace(c.TimestampFormat) == "" {
		return fmtErrorf("timestamp_format cannot be empty")
	}

	for name, tag := range map[string]string{
		"info_tag":      c.InfoTag,
		"warn_tag":      c.WarnTag,
		"error_tag":     c.ErrorTag,
		"exception_tag": c.ExceptionTag,
		"intercept_tag": c.InterceptTag,
	} {
		if strings.ContainsAny(tag, "\r\n") {
			return fmtErrorf("%s cannot contain line breaks: %q", name, tag)
		}
	}

	if !sanitizer.ValidPolicy(c.Sanitize) {
		return fmtErrorf("invalid sanitize policy: '%s' (use raw, txt, or escape)", c.Sanitize)
	}

	if c.MaxSizeMB < 0 || c.MaxBackups < 0 || c.MaxAgeDays < 0 {
		return fmtErrorf("rotation limits cannot be negative")
	}

	if c.RotateSchedule != "" {
		if _, err := cron.ParseStandard(c.RotateSchedule); err != nil {
			return fmtErrorf("invalid rotate_schedule '%s': %w", c.RotateSchedule, err)
		}
	}

	if c.HTTPTimeoutMs < 0 || c.ShutdownTimeoutMs < 0 {
		return fmtErrorf("timeouts cannot be negative")
	}

	if c.HeartbeatIntervalS < 0 {
		return fmtErrorf("heartbeat_interval_s cannot be negative: %d", c.HeartbeatIntervalS)
	}

	return nil
}

// LoadConfig builds a Config from defaults, an optional TOML file, TLOG_
// environment variables and CLI arguments, in increasing precedence.
// A missing file is not an error.
func LoadConfig(path string, args []string) (*Config, error) {
	b := lconfig.NewBuilder().
		WithDefaults(DefaultConfig()).
		WithEnvPrefix(EnvPrefix).
		WithArgs(args).
		WithSources(
			lconfig.SourceCLI,
			lconfig.SourceEnv,
			lconfig.SourceFile,
			lconfig.SourceDefault,
		)
	if path != "" {
		b = b.WithFile(path)
	}

	loader, err := b.Build()
	if err != nil && !errors.Is(err, lconfig.ErrConfigNotFound) {
		return nil, fmtErrorf("failed to load config: %w", err)
	}

	cfg := &Config{}
	if err := loader.Scan(cfg); err != nil {
		return nil, fmtErrorf("failed to scan config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SaveConfig writes c to path as TOML
func (c *Config) SaveConfig(path string) error {
	if path == "" {
		return fmtErrorf("cannot save config: path is empty")
	}

	lcfg, err := lconfig.NewBuilder().
		WithFile(path).
		WithTarget(c).
		WithFileFormat("toml").
		Build()
	if err != nil && !errors.Is(err, lconfig.ErrConfigNotFound) {
		return fmtErrorf("failed to create config builder: %w", err)
	}

	if err := lcfg.Save(path); err != nil {
		return fmtErrorf("failed to save config: %w", err)
	}
	return nil
}
