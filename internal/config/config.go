// Package config loads orchtop configuration from TOML with sensible
// defaults and environment overrides.
package config

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// APIConfig holds backend connection settings.
type APIConfig struct {
	BaseURL        string `toml:"base_url"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

// RefreshConfig holds polling settings.
type RefreshConfig struct {
	IntervalSeconds int `toml:"interval_seconds"`
	TaskLimit       int `toml:"task_limit"`
}

// ChartConfig holds load-history chart settings.
type ChartConfig struct {
	WindowSize int `toml:"window_size"`
}

// NotificationsConfig holds toast settings.
type NotificationsConfig struct {
	DurationSeconds int `toml:"duration_seconds"`
	MaxVisible      int `toml:"max_visible"`
}

// LogConfig holds debug logging settings. Logging is off unless a path
// is set: the TUI owns the terminal, so diagnostics can only go to a
// file.
type LogConfig struct {
	Path string `toml:"path"`
}

// Config is the main orchtop configuration.
type Config struct {
	API           APIConfig           `toml:"api"`
	Refresh       RefreshConfig       `toml:"refresh"`
	Chart         ChartConfig         `toml:"chart"`
	Notifications NotificationsConfig `toml:"notifications"`
	Log           LogConfig           `toml:"log"`
	Theme         string              `toml:"theme"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:        "http://127.0.0.1:8000/api/v1/",
			TimeoutSeconds: 5,
		},
		Refresh: RefreshConfig{
			IntervalSeconds: 5,
			TaskLimit:       10,
		},
		Chart: ChartConfig{
			WindowSize: 10,
		},
		Notifications: NotificationsConfig{
			DurationSeconds: 5,
			MaxVisible:      4,
		},
		Theme: "mocha",
	}
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "orchtop", "config.toml")
}

// Load reads configuration from path, falling back to DefaultPath when
// path is empty. A missing file is not an error: defaults apply.
// Environment variables override file values: ORCHTOP_API_URL for the
// backend address, ORCHTOP_REFRESH for the poll interval in seconds.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = DefaultPath()
	}
	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// No file; defaults plus env overrides.
	case err != nil:
		return nil, err
	default:
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config: %w", err)
		}
	}

	// Re-apply defaults for anything the file zeroed or omitted.
	d := Default()
	if cfg.API.BaseURL == "" {
		cfg.API.BaseURL = d.API.BaseURL
	}
	if cfg.API.TimeoutSeconds <= 0 {
		cfg.API.TimeoutSeconds = d.API.TimeoutSeconds
	}
	if cfg.Refresh.IntervalSeconds <= 0 {
		cfg.Refresh.IntervalSeconds = d.Refresh.IntervalSeconds
	}
	if cfg.Refresh.TaskLimit <= 0 {
		cfg.Refresh.TaskLimit = d.Refresh.TaskLimit
	}
	if cfg.Chart.WindowSize <= 0 {
		cfg.Chart.WindowSize = d.Chart.WindowSize
	}
	if cfg.Notifications.DurationSeconds <= 0 {
		cfg.Notifications.DurationSeconds = d.Notifications.DurationSeconds
	}
	if cfg.Notifications.MaxVisible <= 0 {
		cfg.Notifications.MaxVisible = d.Notifications.MaxVisible
	}
	if cfg.Theme == "" {
		cfg.Theme = d.Theme
	}

	if url := os.Getenv("ORCHTOP_API_URL"); url != "" {
		cfg.API.BaseURL = url
	}
	if refresh := os.Getenv("ORCHTOP_REFRESH"); refresh != "" {
		if secs, err := strconv.Atoi(refresh); err == nil && secs > 0 {
			cfg.Refresh.IntervalSeconds = secs
		}
	}

	return cfg, nil
}

// RefreshInterval returns the poll period as a duration.
func (c *Config) RefreshInterval() time.Duration {
	return time.Duration(c.Refresh.IntervalSeconds) * time.Second
}

// APITimeout returns the per-request timeout as a duration.
func (c *Config) APITimeout() time.Duration {
	return time.Duration(c.API.TimeoutSeconds) * time.Second
}

// NotificationDuration returns how long a toast stays visible.
func (c *Config) NotificationDuration() time.Duration {
	return time.Duration(c.Notifications.DurationSeconds) * time.Second
}

// DebugLogger returns a logger for background diagnostics plus a close
// function. Without a configured log.path, or when the file cannot be
// opened, everything is discarded.
func (c *Config) DebugLogger() (*log.Logger, func()) {
	discard := func() (*log.Logger, func()) {
		return log.New(io.Discard, "", 0), func() {}
	}

	path := c.Log.Path
	if path == "" {
		return discard()
	}
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return discard()
		}
		path = filepath.Join(home, path[2:])
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return discard()
	}
	return log.New(f, "", log.LstdFlags), func() { f.Close() }
}
