// FILE: lixenwraith/tlog/override.go
package tlog

import (
	"fmt"
	"strconv"
	"strings"
)

// ApplyOverrides applies "key=value" strings to cfg in place and validates
// the result. All malformed overrides are reported together.
//
// Example:
//
//	cfg := tlog.DefaultConfig()
//	err := tlog.ApplyOverrides(cfg,
//	    "path=/var/log/app/output.log",
//	    "policy=linear:100,1000,50",
//	    "sanitize=txt",
//	)
func ApplyOverrides(cfg *Config, overrides ...string) error {
	if cfg == nil {
		return fmtErrorf("configuration cannot be nil")
	}

	var errors []error

	for _, override := range overrides {
		key, value, err := parseKeyValue(override)
		if err != nil {
			errors = append(errors, err)
			continue
		}

		if err := applyConfigField(cfg, key, value); err != nil {
			errors = append(errors, err)
		}
	}

	if len(errors) > 0 {
		return combineConfigErrors(errors)
	}

	return cfg.Validate()
}

// NewConfigFromOverrides returns the default configuration with overrides applied
func NewConfigFromOverrides(overrides ...string) (*Config, error) {
	cfg := DefaultConfig()
	if err := ApplyOverrides(cfg, overrides...); err != nil {
		return nil, err
	}
	return cfg, nil
}

// combineConfigErrors combines multiple configuration errors into a single error.
func combineConfigErrors(errors []error) error {
	if len(errors) == 0 {
		return nil
	}
	if len(errors) == 1 {
		return errors[0]
	}

	var sb strings.Builder
	sb.WriteString("tlog: multiple configuration errors:")
	for i, err := range errors {
		errMsg := strings.TrimPrefix(err.Error(), "tlog: ")
		sb.WriteString(fmt.Sprintf("\n  %d. %s", i+1, errMsg))
	}
	return fmt.Errorf("%s", sb.String())
}

// applyConfigField applies a single key-value override to a Config.
func applyConfigField(cfg *Config, key, value string) error {
	switch key {
	// Sink selection
	case "sink":
		cfg.Sink = value
	case "path":
		cfg.Path = value

	// Worker
	case "policy":
		if _, err := ParsePolicy(value); err != nil {
			return err
		}
		cfg.Policy = value
	case "shutdown_timeout_ms":
		intVal, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmtErrorf("invalid integer value for shutdown_timeout_ms '%s': %w", value, err)
		}
		cfg.ShutdownTimeoutMs = intVal

	// Formatting
	case "timestamp_format":
		cfg.TimestampFormat = value
	case "info_tag":
		cfg.InfoTag = value
	case "warn_tag":
		cfg.WarnTag = value
	case "error_tag":
		cfg.ErrorTag = value
	case "exception_tag":
		cfg.ExceptionTag = value
	case "sanitize":
		cfg.Sanitize = value

	// Interception
	case "intercept_tag":
		cfg.InterceptTag = value
	case "passthrough":
		boolVal, err := strconv.ParseBool(value)
		if err != nil {
			return fmtErrorf("invalid boolean value for passthrough '%s': %w", value, err)
		}
		cfg.Passthrough = boolVal

	// Rotation
	case "max_size_mb":
		intVal, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmtErrorf("invalid integer value for max_size_mb '%s': %w", value, err)
		}
		cfg.MaxSizeMB = intVal
	case "max_backups":
		intVal, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmtErrorf("invalid integer value for max_backups '%s': %w", value, err)
		}
		cfg.MaxBackups = intVal
	case "max_age_days":
		intVal, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmtErrorf("invalid integer value for max_age_days '%s': %w", value, err)
		}
		cfg.MaxAgeDays = intVal
	case "compress":
		boolVal, err := strconv.ParseBool(value)
		if err != nil {
			return fmtErrorf("invalid boolean value for compress '%s': %w", value, err)
		}
		cfg.Compress = boolVal
	case "rotate_schedule":
		cfg.RotateSchedule = value

	// HTTP
	case "http_url":
		cfg.HTTPURL = value
	case "http_timeout_ms":
		intVal, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmtErrorf("invalid integer value for http_timeout_ms '%s': %w", value, err)
		}
		cfg.HTTPTimeoutMs = intVal
	case "http_auth_token":
		cfg.HTTPAuthToken = value
	case "http_jwt_secret":
		cfg.HTTPJWTSecret = value
	case "http_jwt_issuer":
		cfg.HTTPJWTIssuer = value

	// Heartbeat
	case "heartbeat_interval_s":
		intVal, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmtErrorf("invalid integer value for heartbeat_interval_s '%s': %w", value, err)
		}
		cfg.HeartbeatIntervalS = intVal

	// Internal error handling
	case "internal_errors_to_stderr":
		boolVal, err := strconv.ParseBool(value)
		if err != nil {
			return fmtErrorf("invalid boolean value for internal_errors_to_stderr '%s': %w", value, err)
		}
		cfg.InternalErrorsToStderr = boolVal

	default:
		return fmtErrorf("unknown configuration key '%s'", key)
	}

	return nil
}
