// Package config loads redactgen settings from defaults, a YAML file and the
// environment, in that order of precedence from lowest to highest.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// DefaultFile is read from the working directory when no path is given.
const DefaultFile = ".redactgen.yaml"

// EnvPrefix prefixes environment overrides: REDACTGEN_NAMING_PREFIX -> naming.prefix.
const EnvPrefix = "REDACTGEN_"

// ErrInvalid indicates a setting has an unusable value.
var ErrInvalid = errors.New("invalid config")

type Config struct {
	Naming   NamingConfig   `koanf:"naming"`
	Generate GenerateConfig `koanf:"generate"`
	Log      LogConfig      `koanf:"log"`
	Watch    WatchConfig    `koanf:"watch"`
}

type NamingConfig struct {
	Prefix string `koanf:"prefix"` // Generated type name prefix
	Suffix string `koanf:"suffix"` // Generated file suffix
}

type GenerateConfig struct {
	Final    bool   `koanf:"final"`
	Fold     bool   `koanf:"fold"`
	Receiver string `koanf:"receiver"`
}

type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"` // json, console
}

type WatchConfig struct {
	Debounce  time.Duration `koanf:"debounce"`
	CacheSize int           `koanf:"cache_size"`
}

// Load reads the configuration. An empty path falls back to DefaultFile when
// it exists.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	defaults := map[string]any{
		"naming.prefix":     "Redacted",
		"naming.suffix":     "_redacted.go",
		"generate.final":    true,
		"generate.fold":     true,
		"generate.receiver": "v",
		"log.level":         "info",
		"log.format":        "json",
		"watch.debounce":    "300ms",
		"watch.cache_size":  256,
	}
	for key, val := range defaults {
		if err := k.Set(key, val); err != nil {
			return nil, err
		}
	}

	if path == "" {
		if _, err := os.Stat(DefaultFile); err == nil {
			path = DefaultFile
		}
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.Replace(strings.ToLower(
			strings.TrimPrefix(s, EnvPrefix)), "_", ".", 1)
	}), nil); err != nil {
		return nil, err
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings the generator cannot work with.
func (c *Config) Validate() error {
	switch {
	case c.Naming.Prefix == "":
		return fmt.Errorf("%w: naming.prefix must not be empty", ErrInvalid)
	case !strings.HasSuffix(c.Naming.Suffix, ".go"):
		return fmt.Errorf("%w: naming.suffix %q must end in .go", ErrInvalid, c.Naming.Suffix)
	case c.Naming.Suffix == ".go":
		return fmt.Errorf("%w: naming.suffix must not be bare .go", ErrInvalid)
	case c.Log.Format != "json" && c.Log.Format != "console":
		return fmt.Errorf("%w: log.format %q", ErrInvalid, c.Log.Format)
	case c.Watch.CacheSize <= 0:
		return fmt.Errorf("%w: watch.cache_size must be positive", ErrInvalid)
	case c.Watch.Debounce < 0:
		return fmt.Errorf("%w: watch.debounce must not be negative", ErrInvalid)
	}
	return nil
}
