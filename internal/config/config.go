// Package config loads Nexus configuration from a YAML file and NEXUS_*
// environment variables. Configuration is read-only; nothing is saved.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. NEXUS_TUI_THEME.
const EnvPrefix = "NEXUS"

// Config holds all application configuration.
type Config struct {
	TUI     TUIConfig     `mapstructure:"tui"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// TUIConfig configures the terminal UI.
type TUIConfig struct {
	Theme       string `mapstructure:"theme"`
	DarkMode    string `mapstructure:"dark_mode"` // on, off or auto
	Device      string `mapstructure:"device"`    // auto, desktop or mobile
	MaxMessages int    `mapstructure:"max_messages"`
}

// LoggingConfig configures the log file.
type LoggingConfig struct {
	Level   string `mapstructure:"level"`
	File    string `mapstructure:"file"`
	Console bool   `mapstructure:"console"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		TUI: TUIConfig{
			Theme:       "",
			DarkMode:    "auto",
			Device:      "auto",
			MaxMessages: 500,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// DefaultDir returns the directory searched for config.yaml.
func DefaultDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "nexus"), nil
}

// Load reads configuration. An explicit path must exist; without one the
// default directory and the working directory are searched and a missing
// file falls back to defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	v := newViper(cfg)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		if dir, err := DefaultDir(); err == nil {
			v.AddConfigPath(dir)
		}
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the enumerated settings.
func (c *Config) Validate() error {
	switch strings.ToLower(c.TUI.DarkMode) {
	case "", "auto", "on", "off":
	default:
		return fmt.Errorf("tui.dark_mode: invalid value %q (want on, off or auto)", c.TUI.DarkMode)
	}
	switch strings.ToLower(c.TUI.Device) {
	case "", "auto", "desktop", "mobile":
	default:
		return fmt.Errorf("tui.device: invalid value %q (want auto, desktop or mobile)", c.TUI.Device)
	}
	if c.TUI.MaxMessages < 0 {
		return fmt.Errorf("tui.max_messages: must not be negative")
	}
	return nil
}

// newViper registers every key with its default so environment overrides
// reach Unmarshal even when no file sets the key.
func newViper(defaults *Config) *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("tui.theme", defaults.TUI.Theme)
	v.SetDefault("tui.dark_mode", defaults.TUI.DarkMode)
	v.SetDefault("tui.device", defaults.TUI.Device)
	v.SetDefault("tui.max_messages", defaults.TUI.MaxMessages)
	v.SetDefault("logging.level", defaults.Logging.Level)
	v.SetDefault("logging.file", defaults.Logging.File)
	v.SetDefault("logging.console", defaults.Logging.Console)
	return v
}
