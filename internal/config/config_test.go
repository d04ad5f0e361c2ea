package config

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func TestNew_EnvironmentOverrides(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(EnvDataDir, dir)
	t.Setenv(EnvLanguage, "de")
	t.Setenv(EnvLogLevel, "debug")

	cfg := New()

	if cfg.AppDataDir != dir {
		t.Errorf("Expected app data dir %s, got %s", dir, cfg.AppDataDir)
	}

	if cfg.DatabasePath != filepath.Join(dir, "database.sqlite3") {
		t.Errorf("Unexpected database path %s", cfg.DatabasePath)
	}

	if cfg.PolicyPath != filepath.Join(dir, "managed_policy.yaml") {
		t.Errorf("Unexpected policy path %s", cfg.PolicyPath)
	}

	if cfg.Language != "de" {
		t.Errorf("Expected language de, got %s", cfg.Language)
	}

	if !cfg.Logger.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("Expected debug logging to be enabled")
	}
}

func TestNew_CreatesDataDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	t.Setenv(EnvDataDir, dir)

	New()

	if stat, err := os.Stat(dir); err != nil || !stat.IsDir() {
		t.Errorf("Expected data directory to be created, got %v", err)
	}
}

func TestNewLogger_Levels(t *testing.T) {
	ctx := context.Background()

	if newLogger("info").Enabled(ctx, slog.LevelDebug) {
		t.Error("Expected debug to be disabled at info level")
	}

	if newLogger("error").Enabled(ctx, slog.LevelWarn) {
		t.Error("Expected warn to be disabled at error level")
	}

	if !newLogger("bogus").Enabled(ctx, slog.LevelInfo) {
		t.Error("Expected unknown level to fall back to info")
	}
}

func TestLoadEnvFile(t *testing.T) {
	if loadEnvFile(filepath.Join(t.TempDir(), "missing.env")) {
		t.Error("Expected missing env file to report false")
	}

	path := filepath.Join(t.TempDir(), "test.env")
	if err := os.WriteFile(path, []byte("PRIVACYPREFS_TEST_VALUE=from_file\n"), 0644); err != nil {
		t.Fatalf("Failed to write env file: %v", err)
	}
	t.Setenv("PRIVACYPREFS_TEST_VALUE", "")
	os.Unsetenv("PRIVACYPREFS_TEST_VALUE")

	if !loadEnvFile(path) {
		t.Fatal("Expected env file to load")
	}

	if got := os.Getenv("PRIVACYPREFS_TEST_VALUE"); got != "from_file" {
		t.Errorf("Expected value from file, got %q", got)
	}
}
