// Package config loads ccpmcli's runtime configuration: the input/output
// paths and the diagnostics toggle, with environment-variable overrides
// layered on top of an optional config file.
package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// Config holds all configuration for the ccpmcli binary.
type Config struct {
	Input       string `mapstructure:"input"`
	Output      string `mapstructure:"output"`
	Format      string `mapstructure:"format"` // json (only supported value today)
	Diagnostics bool   `mapstructure:"diagnostics"`
}

// Load reads configuration from configPath (if non-empty) and from
// CCPM_-prefixed environment variables, falling back to defaults for
// anything left unset. A missing config file is not an error: ccpmcli is
// usable from flags and environment alone.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			_, notFound := err.(viper.ConfigFileNotFoundError)
			if !notFound && !os.IsNotExist(err) {
				return nil, fmt.Errorf("config: read %s: %w", configPath, err)
			}
		}
	}

	v.SetEnvPrefix("CCPM")
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("input", "")
	v.SetDefault("output", "")
	v.SetDefault("format", "json")
	v.SetDefault("diagnostics", false)
}

// Validate rejects configurations ccpmcli cannot act on.
func (c *Config) Validate() error {
	if c.Format != "json" {
		return fmt.Errorf("unsupported output format %q (only \"json\" is supported)", c.Format)
	}
	return nil
}

// DiagnosticsWriter returns the writer diagnostics trace records should go
// to: stderr, so stdout stays reserved for the converted network's JSON.
func (c *Config) DiagnosticsWriter() *os.File {
	return os.Stderr
}
