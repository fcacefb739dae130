package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/adrg/xdg"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix  = "KEYTRAIL_"
	envConfig  = "KEYTRAIL_CONFIG"
	configFile = "keytrail/config.yaml"
)

// Load builds a Config by layering, low to high:
//  1. defaults (New)
//  2. YAML file: path, else $KEYTRAIL_CONFIG, else keytrail/config.yaml
//     under the XDG config directories if present
//  3. env (prefix KEYTRAIL_)
//
// The result is not validated; callers apply their own overrides (flags)
// and then call Validate.
func Load(_ context.Context, path string) (*Config, error) {
	base := New()
	k := koanf.New(".")

	if path == "" {
		path = DefaultPath()
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrLoadConfig, path, err)
		}
	}

	// KEYTRAIL_DEVICE_POLICY -> device_policy
	envProvider := env.Provider(envPrefix, ".", func(s string) string {
		return strings.TrimPrefix(strings.ToLower(s), strings.ToLower(envPrefix))
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: env: %w", ErrLoadConfig, err)
	}
	// The file selector is not a setting.
	k.Delete("config")

	cfg := *base
	conf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			// Lets KEYTRAIL_DEVICE_EXCLUDE carry a comma-separated list.
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
				mapstructure.StringToTimeDurationHookFunc(),
			),
			Result:           &cfg,
			WeaklyTypedInput: true,
			ZeroFields:       true,
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, conf); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	return &cfg, nil
}

// DefaultPath returns $KEYTRAIL_CONFIG or the first existing XDG config
// file, or "" when neither is present.
func DefaultPath() string {
	if path := os.Getenv(envConfig); path != "" {
		return path
	}

	path, err := xdg.SearchConfigFile(configFile)
	if err != nil {
		return ""
	}
	return path
}
