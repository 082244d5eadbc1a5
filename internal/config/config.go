// Package config loads docker-tui settings from a YAML file and DOCKER_TUI_* environment
// variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config holds the application configuration
type Config struct {
	Engine  EngineConfig  `mapstructure:"engine" yaml:"engine"`
	Shell   ShellConfig   `mapstructure:"shell" yaml:"shell"`
	Spinner SpinnerConfig `mapstructure:"spinner" yaml:"spinner"`
	Log     LogConfig     `mapstructure:"log" yaml:"log"`
}

// EngineConfig selects the container engine
type EngineConfig struct {
	Binary      string `mapstructure:"binary" yaml:"binary"`
	Backend     string `mapstructure:"backend" yaml:"backend"`
	StopTimeout int    `mapstructure:"stop_timeout" yaml:"stop_timeout"`
}

// ShellConfig lists the shells tried, in order, when opening a shell
type ShellConfig struct {
	Candidates []string `mapstructure:"candidates" yaml:"candidates"`
}

// SpinnerConfig tunes the progress indicator
type SpinnerConfig struct {
	Interval time.Duration `mapstructure:"interval" yaml:"interval"`
}

// LogConfig controls where log records go
type LogConfig struct {
	Level string `mapstructure:"level" yaml:"level"`
	File  string `mapstructure:"file" yaml:"file"`
}

// SetDefaults registers default values on v
func SetDefaults(v *viper.Viper) {
	v.SetDefault("engine.binary", "docker")
	v.SetDefault("engine.backend", "cli")
	v.SetDefault("engine.stop_timeout", 10)
	v.SetDefault("shell.candidates", []string{"bash", "sh"})
	v.SetDefault("spinner.interval", 100*time.Millisecond)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", defaultLogFile())
}

// Load reads the configuration. An explicit path must exist; otherwise the standard
// locations are searched and defaults are used when no file is found.
func Load(v *viper.Viper, path string) (*Config, error) {
	SetDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		if configDir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(configDir, "docker-tui"))
		}
		if homeDir, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(homeDir, ".docker-tui"))
		}
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("DOCKER_TUI")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the engine cannot work with
func (c *Config) Validate() error {
	if c.Engine.Binary == "" {
		return errors.New("engine.binary must not be empty")
	}
	switch c.Engine.Backend {
	case "cli", "api":
	default:
		return fmt.Errorf("engine.backend must be cli or api, got %q", c.Engine.Backend)
	}
	if len(c.Shell.Candidates) == 0 {
		return errors.New("shell.candidates must list at least one shell")
	}
	if c.Spinner.Interval <= 0 {
		return fmt.Errorf("spinner.interval must be positive, got %s", c.Spinner.Interval)
	}
	return nil
}

// StopTimeout returns the stop grace period as a duration
func (c *Config) StopTimeout() time.Duration {
	return time.Duration(c.Engine.StopTimeout) * time.Second
}

// Dump renders the configuration as YAML
func (c *Config) Dump() (string, error) {
	out, err := yaml.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("failed to encode config: %w", err)
	}
	return string(out), nil
}

// defaultLogFile returns the log location under the user cache directory
func defaultLogFile() string {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "docker-tui.log")
	}
	return filepath.Join(cacheDir, "docker-tui", "docker-tui.log")
}
