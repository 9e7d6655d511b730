// SPDX-License-Identifier: MPL-2.0

// Package config loads the optional user-level runner settings. These are
// preferences of the person running zbuild (default task file name, default
// execution policy, verbosity), not part of any project's task file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/viper"

	"zbuild-cli/pkg/platform"
)

const (
	// AppName is the application name, used for the config directory.
	AppName = "zbuild"
	// ConfigFileName is the name of the config file (without extension).
	ConfigFileName = "config"
	// ConfigFileExt is the config file extension.
	ConfigFileExt = "yaml"
	// EnvPrefix is the prefix for ZBUILD_* environment overrides.
	EnvPrefix = "ZBUILD"
)

// Config holds the user-level runner settings.
type Config struct {
	// TaskFile is the default task file name used when none is given.
	TaskFile string `mapstructure:"task_file"`
	// ExecutionPolicy is the default policy when neither the task file nor
	// the command line sets one.
	ExecutionPolicy string `mapstructure:"execution_policy"`
	// Verbose enables debug-level logging by default.
	Verbose bool `mapstructure:"verbose"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		TaskFile:        "zbuild.yml",
		ExecutionPolicy: "",
		Verbose:         false,
	}
}

// ConfigDir returns the zbuild configuration directory using
// platform-specific conventions: Windows uses %APPDATA%, macOS uses
// ~/Library/Application Support, and Linux/others use $XDG_CONFIG_HOME
// (defaulting to ~/.config).
func ConfigDir() (string, error) {
	var configDir string

	switch runtime.GOOS {
	case platform.Windows.String():
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configDir = filepath.Join(home, "Library", "Application Support")
	default:
		configDir = os.Getenv("XDG_CONFIG_HOME")
		if configDir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("failed to get home directory: %w", err)
			}
			configDir = filepath.Join(home, ".config")
		}
	}

	return filepath.Join(configDir, AppName), nil
}

// Load reads the user settings from the config directory, applying defaults
// and ZBUILD_* environment overrides. A missing config file is not an error.
func Load() (*Config, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("task_file", defaults.TaskFile)
	v.SetDefault("execution_policy", defaults.ExecutionPolicy)
	v.SetDefault("verbose", defaults.Verbose)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	cfgDir, err := ConfigDir()
	if err != nil {
		return nil, err
	}
	v.SetConfigName(ConfigFileName)
	v.SetConfigType(ConfigFileExt)
	v.AddConfigPath(cfgDir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	return &cfg, nil
}
