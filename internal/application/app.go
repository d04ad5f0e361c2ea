package application

import (
	"context"

	"privacyprefs/internal/config"
	"privacyprefs/internal/container"
	"privacyprefs/internal/database"
	"privacyprefs/internal/domain/preferences"
	"privacyprefs/internal/transport"

	"gorm.io/gorm"
)

type App struct {
	ctx       context.Context
	container *container.Container
	wailsApp  *transport.WailsApp
	config    *config.Config
	db        *gorm.DB
}

func NewApp() *App {
	return &App{}
}

func (a *App) OnStartup(ctx context.Context) {
	a.ctx = ctx

	// Initialize configuration
	cfg := config.New()
	a.config = cfg

	// Initialize database
	db, err := database.Initialize(cfg.DatabasePath)
	if err != nil {
		cfg.Logger.Error("Failed to initialize database", "error", err)
		return
	}
	a.db = db

	a.init(ctx, cfg, db)

	locked, _ := a.container.GetRestriction().Restricted()
	cfg.Logger.Info("Wails app initialized successfully", "do_not_track_locked", locked)
	cfg.Logger.Info("Application configuration",
		"app_data_directory", cfg.AppDataDir,
		"database_path", cfg.DatabasePath,
		"policy_path", cfg.PolicyPath,
		"language", cfg.Language)
}

// init wires the container and transport layer around an open database
func (a *App) init(ctx context.Context, cfg *config.Config, db *gorm.DB) {
	a.container = container.New(cfg, db)

	a.wailsApp = transport.NewWailsApp(ctx,
		func(nav preferences.Navigator, results preferences.ResultReporter) transport.PreferenceScreen {
			return a.container.NewPrivacySynchronizer(nav, results)
		},
		a.container.ReloadPolicy,
		cfg.Logger)
}

func (a *App) OnShutdown(ctx context.Context) {
	if a.wailsApp != nil {
		a.wailsApp.ClosePrivacySettings()
	}
	if a.db != nil {
		if err := database.Close(a.db); err != nil {
			a.config.Logger.Error("Failed to close database", "error", err)
		}
	}
}

func (a *App) OpenPrivacySettings() (*transport.ScreenState, error) {
	if a.wailsApp == nil {
		return nil, ErrNotInitialized
	}
	return a.wailsApp.OpenPrivacySettings()
}

func (a *App) ChangePreference(key string, value bool) bool {
	if a.wailsApp == nil {
		return false
	}
	return a.wailsApp.ChangePreference(key, value)
}

func (a *App) ClickPreference(key string) bool {
	if a.wailsApp == nil {
		return false
	}
	return a.wailsApp.ClickPreference(key)
}

func (a *App) NavigateBack() bool {
	if a.wailsApp == nil {
		return false
	}
	return a.wailsApp.NavigateBack()
}

func (a *App) ClosePrivacySettings() {
	if a.wailsApp == nil {
		return
	}
	a.wailsApp.ClosePrivacySettings()
}

func (a *App) GetScreenState() *transport.ScreenState {
	if a.wailsApp == nil {
		return nil
	}
	return a.wailsApp.GetScreenState()
}

// ReloadPolicy re-reads the managed policy file and refreshes the open screen
func (a *App) ReloadPolicy() error {
	if a.wailsApp == nil {
		return ErrNotInitialized
	}
	return a.wailsApp.ReloadPolicy()
}
