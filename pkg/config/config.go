// Package config provides configuration management for qapps.
// It handles loading, merging, and accessing configuration from the embedded
// defaults plus an optional user or system config file.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

//go:embed default.toml
var defaultConfigData string

// Config is the fully resolved runtime configuration. All paths are
// expanded and Home is always set.
type Config struct {
	DefaultLauncher string             `toml:"default_launcher"`
	Terminal        string             `toml:"terminal"`
	Apps            AppsConfig         `toml:"apps"`
	Launchers       LaunchersConfig    `toml:"launchers"`
	Notifications   NotificationConfig `toml:"notifications"`

	// Home is the user's home directory, resolved once at load time. It is
	// the working-directory fallback for entries without a Path field.
	Home string `toml:"-"`
}

// AppsConfig describes where .desktop files are found and cached.
type AppsConfig struct {
	Directories []string `toml:"directories"`
	CacheFile   string   `toml:"cache_file"`
}

// NotificationConfig controls desktop notifications for launch errors.
type NotificationConfig struct {
	Enabled bool   `toml:"enabled"`
	Tool    string `toml:"tool"`
	Timeout int    `toml:"timeout"`
}

// ConfigFile mirrors Config with pointer fields so a user file can override
// only the values it actually sets.
type ConfigFile struct {
	DefaultLauncher *string                `toml:"default_launcher"`
	Terminal        *string                `toml:"terminal"`
	Apps            AppsConfigFile         `toml:"apps"`
	Launchers       LaunchersConfig        `toml:"launchers"`
	Notifications   NotificationConfigFile `toml:"notifications"`
}

// AppsConfigFile is the file-facing form of AppsConfig.
type AppsConfigFile struct {
	Directories []string `toml:"directories"`
	CacheFile   *string  `toml:"cache_file"`
}

// NotificationConfigFile is the file-facing form of NotificationConfig.
type NotificationConfigFile struct {
	Enabled *bool   `toml:"enabled"`
	Tool    *string `toml:"tool"`
	Timeout *int    `toml:"timeout"`
}

// UserConfigPath returns the path to the user config.
func UserConfigPath() string {
	return filepath.Join(os.Getenv("HOME"), ".config", "qapps", "config.toml")
}

// SystemConfigPath returns the path to the system config.
func SystemConfigPath() string {
	return "/etc/qapps/config.toml"
}

// Load builds the runtime configuration: embedded defaults, overridden by the
// user config if present, else the system config if present.
func Load() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("cannot resolve home directory: %w", err)
	}
	return loadWithHome(home)
}

func loadWithHome(home string) (*Config, error) {
	cfg, err := loadDefault()
	if err != nil {
		return nil, fmt.Errorf("failed to load default config: %w", err)
	}

	for _, path := range []string{UserConfigPath(), SystemConfigPath()} {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		file, err := loadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to load %s: %v\n", path, err)
			fmt.Fprintf(os.Stderr, "Using default configuration\n")
			break
		}
		cfg = merge(cfg, file)
		break
	}

	cfg.finalize(home)
	return cfg, nil
}

func loadDefault() (*Config, error) {
	var cfg Config
	if _, err := toml.Decode(defaultConfigData, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func loadFile(path string) (*ConfigFile, error) {
	var cfg ConfigFile
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// merge applies a config file over the defaults. Only fields the file sets
// override; launcher args replace wholesale per launcher.
func merge(def *Config, file *ConfigFile) *Config {
	merged := *def

	if file.DefaultLauncher != nil && *file.DefaultLauncher != "" {
		merged.DefaultLauncher = *file.DefaultLauncher
	}
	if file.Terminal != nil && *file.Terminal != "" {
		merged.Terminal = *file.Terminal
	}

	if len(file.Apps.Directories) > 0 {
		merged.Apps.Directories = file.Apps.Directories
	}
	if file.Apps.CacheFile != nil && *file.Apps.CacheFile != "" {
		merged.Apps.CacheFile = *file.Apps.CacheFile
	}

	mergeLauncherConfigs(&merged.Launchers, &file.Launchers)

	if file.Notifications.Enabled != nil {
		merged.Notifications.Enabled = *file.Notifications.Enabled
	}
	if file.Notifications.Tool != nil && *file.Notifications.Tool != "" {
		merged.Notifications.Tool = *file.Notifications.Tool
	}
	if file.Notifications.Timeout != nil {
		merged.Notifications.Timeout = *file.Notifications.Timeout
	}

	return &merged
}

// finalize expands paths and pins the home directory.
func (c *Config) finalize(home string) {
	c.Home = home
	for i, dir := range c.Apps.Directories {
		c.Apps.Directories[i] = expandPath(dir, home)
	}
	c.Apps.CacheFile = expandPath(c.Apps.CacheFile, home)
}

// expandPath expands a leading ~ and any environment variables.
func expandPath(path, home string) string {
	if path == "~" {
		return home
	}
	if strings.HasPrefix(path, "~/") {
		path = filepath.Join(home, path[2:])
	}
	return os.ExpandEnv(path)
}

// InitUserConfig writes the embedded defaults to the user config path.
func InitUserConfig() error {
	path := UserConfigPath()
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config already exists at %s", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(defaultConfigData), 0644)
}
