// Package config loads keytrail settings from defaults, an optional YAML
// file and KEYTRAIL_* environment variables, in that order of precedence.
package config

import (
	"errors"
	"fmt"

	"codeberg.org/miketth/keytrail/pkg/keytrail"
	"codeberg.org/miketth/keytrail/pkg/transcript"
)

var (
	ErrInvalidConfig = errors.New("invalid config")
	ErrLoadConfig    = errors.New("load config failed")
)

type Config struct {
	// Mode selects the transcript format: readable or diagnostic.
	Mode string `koanf:"mode"`

	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Locale is applied to LC_CTYPE before opening the input method.
	// Empty means the process environment decides.
	Locale string `koanf:"locale"`

	TimeFormat  string `koanf:"time_format"`
	FocusMarker string `koanf:"focus_marker"`

	// DevicePolicy is "all" or "physical".
	DevicePolicy  string   `koanf:"device_policy"`
	DeviceExclude []string `koanf:"device_exclude"`

	// XkbRulesPath points at the XKB rules registry used to name layouts.
	XkbRulesPath string `koanf:"xkb_rules_path"`
}

func New() *Config {
	return &Config{
		Mode:          string(transcript.ModeReadable),
		LogLevel:      "info",
		TimeFormat:    transcript.DefaultTimeFormat,
		FocusMarker:   transcript.DefaultFocusMarker,
		DevicePolicy:  string(keytrail.BindAll),
		DeviceExclude: append([]string(nil), keytrail.DefaultExclude...),
		XkbRulesPath:  "/usr/share/X11/xkb/rules/evdev.xml",
	}
}

func (c *Config) Validate() error {
	switch transcript.Mode(c.Mode) {
	case transcript.ModeReadable, transcript.ModeDiagnostic:
	default:
		return fmt.Errorf("%w: mode %q", ErrInvalidConfig, c.Mode)
	}

	switch keytrail.BindPolicy(c.DevicePolicy) {
	case keytrail.BindAll, keytrail.BindPhysical:
	default:
		return fmt.Errorf("%w: device_policy %q", ErrInvalidConfig, c.DevicePolicy)
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log_level %q", ErrInvalidConfig, c.LogLevel)
	}

	if c.TimeFormat == "" {
		return fmt.Errorf("%w: time_format must not be empty", ErrInvalidConfig)
	}

	return nil
}

func (c *Config) BindOptions() keytrail.BindOptions {
	return keytrail.BindOptions{
		Policy:  keytrail.BindPolicy(c.DevicePolicy),
		Exclude: c.DeviceExclude,
	}
}

func (c *Config) TranscriptOptions() transcript.Options {
	return transcript.Options{
		TimeFormat:  c.TimeFormat,
		FocusMarker: c.FocusMarker,
	}
}
