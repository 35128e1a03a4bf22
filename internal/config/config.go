// Package config loads runtime settings for the help-center server.
// Values come from defaults, an optional config.yaml and HELPCENTER_ env vars.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all runtime configuration.
type Config struct {
	Port     string `mapstructure:"port"`
	LogLevel string `mapstructure:"log_level"` // debug | info | warn | error

	// Timeouts in seconds for the HTTP server
	ReadTimeout     int `mapstructure:"read_timeout_seconds"`
	WriteTimeout    int `mapstructure:"write_timeout_seconds"`
	IdleTimeout     int `mapstructure:"idle_timeout_seconds"`
	ShutdownTimeout int `mapstructure:"shutdown_timeout_seconds"`

	EnableMCP     bool `mapstructure:"enable_mcp"`
	EnableMetrics bool `mapstructure:"enable_metrics"`
}

// Load reads configuration. configFile may be empty, in which case
// ./config.yaml and $HOME/.helpcenter/config.yaml are tried and a missing
// file is not an error.
func Load(configFile string) (*Config, error) {
	v := viper.New()
	SetDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.helpcenter")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	v.SetEnvPrefix("HELPCENTER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	return decode(v)
}

// SetDefaults registers the built-in values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("port", "7521")
	v.SetDefault("log_level", "info")
	v.SetDefault("read_timeout_seconds", 15)
	v.SetDefault("write_timeout_seconds", 30)
	v.SetDefault("idle_timeout_seconds", 60)
	v.SetDefault("shutdown_timeout_seconds", 10)
	v.SetDefault("enable_mcp", true)
	v.SetDefault("enable_metrics", true)
}

func decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	if _, err := cfg.SlogLevel(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// SlogLevel parses LogLevel.
func (c *Config) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}
	return lvl, nil
}
