package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds all configuration for gix.
type Config struct {
	// GitBinary is the git executable to invoke.
	GitBinary string `mapstructure:"git_binary"`
	// DefaultRemote is used when pushing a branch that has no upstream yet.
	DefaultRemote string `mapstructure:"default_remote"`
	// SquashCount is the number of commits squashed when --number is omitted.
	SquashCount int `mapstructure:"squash_count"`
	// LogFile enables rotating file logging when non-empty.
	LogFile string `mapstructure:"log_file"`
	// Debug shows debug output, including every git invocation.
	Debug bool `mapstructure:"debug"`
	// NonInteractive disables all prompts.
	NonInteractive bool `mapstructure:"non_interactive"`
}

// Load loads configuration from the user config file and environment variables.
func Load() (*Config, error) {
	v := newViper()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(UserConfigDir())

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading user config: %w", err)
		}
	}

	return unmarshal(v)
}

// LoadFromPath loads configuration from a specific file (for testing).
func LoadFromPath(path string) (*Config, error) {
	v := newViper()

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config from %s: %w", path, err)
	}

	return unmarshal(v)
}

// Default returns the built-in configuration without consulting files or the environment.
func Default() *Config {
	return &Config{
		GitBinary:     "git",
		DefaultRemote: "origin",
		SquashCount:   2,
	}
}

// Validate reports configuration values gix cannot work with.
func (c *Config) Validate() error {
	if c.GitBinary == "" {
		return fmt.Errorf("git_binary must not be empty")
	}
	if c.DefaultRemote == "" {
		return fmt.Errorf("default_remote must not be empty")
	}
	if c.SquashCount < 1 {
		return fmt.Errorf("squash_count must be at least 1, got %d", c.SquashCount)
	}
	return nil
}

// UserConfigDir returns the XDG config directory for gix.
func UserConfigDir() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "gix")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".config", "gix")
	}
	return filepath.Join(home, ".config", "gix")
}

func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("GIX")
	v.AutomaticEnv()

	// DEBUG is honored for parity with other tools.
	_ = v.BindEnv("debug", "GIX_DEBUG", "DEBUG")

	return v
}

// setDefaults configures default values.
func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("git_binary", d.GitBinary)
	v.SetDefault("default_remote", d.DefaultRemote)
	v.SetDefault("squash_count", d.SquashCount)
	v.SetDefault("log_file", "")
	v.SetDefault("debug", false)
	v.SetDefault("non_interactive", false)
}

func unmarshal(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
