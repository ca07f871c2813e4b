// Package config provides Viper-based configuration loading for the roller.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// RollerConfig holds evaluator and REPL settings.
type RollerConfig struct {
	// Prompt is printed before each interactive read.
	Prompt string `mapstructure:"prompt"`
	// Seed selects a deterministic random source when non-zero; zero keeps
	// the crypto-backed default.
	Seed int64 `mapstructure:"seed"`
	// PresetsFile is an optional YAML file of named roll presets.
	PresetsFile string `mapstructure:"presets_file"`
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
}

// Config is the top-level application configuration.
type Config struct {
	Roller  RollerConfig  `mapstructure:"roller"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error
// describing all violations.
func (c Config) Validate() error {
	var errs []string

	if c.Roller.Prompt == "" {
		errs = append(errs, "roller.prompt must not be empty")
	}
	if c.Roller.Seed < 0 {
		errs = append(errs, fmt.Sprintf("roller.seed must be >= 0, got %d", c.Roller.Seed))
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		errs = append(errs, fmt.Sprintf("logging.level must be one of [debug, info, warn, error], got %q", c.Logging.Level))
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[c.Logging.Format] {
		errs = append(errs, fmt.Sprintf("logging.format must be one of [json, console], got %q", c.Logging.Format))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

// Load reads configuration from an optional file, with environment
// overrides and defaults applied.
//
// Precondition: path must point to a readable config file, or be empty to
// run on defaults and environment alone.
// Postcondition: Returns a validated Config or a non-nil error.
func Load(path string) (Config, error) {
	v := viper.New()

	// Environment variable overrides with ROLLER_ prefix
	v.SetEnvPrefix("ROLLER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	return LoadFromViper(v)
}

// LoadFromViper builds a Config from an already-configured Viper instance.
//
// Precondition: v must be non-nil.
// Postcondition: Returns a valid Config or a non-nil error.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("roller.prompt", "What would you like to roll?")
	v.SetDefault("roller.seed", 0)
	v.SetDefault("roller.presets_file", "")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
}
