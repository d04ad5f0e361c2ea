package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"privacyprefs/internal/common"

	"github.com/joho/godotenv"
)

// Environment variables read by New
const (
	EnvDataDir  = "PRIVACYPREFS_DATA_DIR"
	EnvLanguage = "PRIVACYPREFS_LANG"
	EnvLogLevel = "LOG_LEVEL"
)

// Config holds application configuration
type Config struct {
	AppDataDir   string
	DatabasePath string
	PolicyPath   string
	Language     string
	Logger       *slog.Logger
}

// New creates a new configuration instance. Values from a local .env
// file are loaded first; the process environment wins over them.
func New() *Config {
	envLoaded := loadEnvFile(".env")

	cfg := &Config{
		Language: getEnv(EnvLanguage, "en"),
		Logger:   newLogger(getEnv(EnvLogLevel, "info")),
	}

	cfg.setupDirectories()

	if envLoaded {
		cfg.Logger.Debug("Loaded environment file", "path", ".env")
	}
	return cfg
}

func (c *Config) setupDirectories() {
	// Set up app data directory (database, managed policy)
	c.AppDataDir = getEnv(EnvDataDir, getAppDataDir())
	if err := os.MkdirAll(c.AppDataDir, common.DefaultDirPermissions); err != nil {
		c.Logger.Error("Failed to create app data directory", "path", c.AppDataDir, "error", err)
	}

	c.DatabasePath = filepath.Join(c.AppDataDir, "database.sqlite3")
	c.PolicyPath = filepath.Join(c.AppDataDir, "managed_policy.yaml")
}

func loadEnvFile(path string) bool {
	if _, err := os.Stat(path); err != nil {
		return false
	}
	// godotenv.Load never overrides variables that are already set
	return godotenv.Load(path) == nil
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn", "warning":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getAppDataDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "PrivacyPrefs")
	}
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".privacyprefs")
}
