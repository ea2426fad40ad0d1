package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.API.BaseURL == "" {
		t.Error("expected a default base URL")
	}
	if cfg.Refresh.IntervalSeconds != 5 {
		t.Errorf("expected 5s refresh, got %d", cfg.Refresh.IntervalSeconds)
	}
	if cfg.Chart.WindowSize != 10 {
		t.Errorf("expected window size 10, got %d", cfg.Chart.WindowSize)
	}
	if cfg.Notifications.DurationSeconds != 5 {
		t.Errorf("expected 5s notifications, got %d", cfg.Notifications.DurationSeconds)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("missing config file should not error: %v", err)
	}
	if cfg.API.BaseURL != Default().API.BaseURL {
		t.Errorf("expected defaults, got %+v", cfg.API)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
theme = "latte"

[api]
base_url = "http://orch:9000/api/v1/"

[refresh]
interval_seconds = 2
task_limit = 25

[chart]
window_size = 30
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.API.BaseURL != "http://orch:9000/api/v1/" {
		t.Errorf("unexpected base URL %q", cfg.API.BaseURL)
	}
	if cfg.Refresh.IntervalSeconds != 2 || cfg.Refresh.TaskLimit != 25 {
		t.Errorf("unexpected refresh config %+v", cfg.Refresh)
	}
	if cfg.Chart.WindowSize != 30 {
		t.Errorf("unexpected window size %d", cfg.Chart.WindowSize)
	}
	// Omitted sections keep defaults.
	if cfg.Notifications.DurationSeconds != 5 {
		t.Errorf("omitted section should default, got %+v", cfg.Notifications)
	}
	if cfg.Theme != "latte" {
		t.Errorf("unexpected theme %q", cfg.Theme)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("ORCHTOP_API_URL", "http://override:8000/api/v1/")
	t.Setenv("ORCHTOP_REFRESH", "30")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.API.BaseURL != "http://override:8000/api/v1/" {
		t.Errorf("env should override base URL, got %q", cfg.API.BaseURL)
	}
	if cfg.Refresh.IntervalSeconds != 30 {
		t.Errorf("env should override refresh, got %d", cfg.Refresh.IntervalSeconds)
	}
}

func TestDebugLoggerWritesToConfiguredFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orchtop.log")
	cfg := Default()
	cfg.Log.Path = path

	logger, closeLog := cfg.DebugLogger()
	logger.Printf("reloading config: %v", "boom")
	closeLog()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("log file should exist: %v", err)
	}
	if !strings.Contains(string(data), "reloading config: boom") {
		t.Errorf("log line missing, got %q", data)
	}
}

func TestDebugLoggerDisabledWithoutPath(t *testing.T) {
	cfg := Default()
	logger, closeLog := cfg.DebugLogger()
	defer closeLog()

	if logger == nil {
		t.Fatal("a logger must always be returned")
	}
	// Must not panic or touch the filesystem.
	logger.Println("dropped")
}

func TestLogPathFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[log]
path = "/tmp/orchtop-debug.log"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Log.Path != "/tmp/orchtop-debug.log" {
		t.Errorf("unexpected log path %q", cfg.Log.Path)
	}
}

func TestInvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[api\nbroken"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}
