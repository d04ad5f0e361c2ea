package container

import (
	"log/slog"

	"privacyprefs/internal/config"
	"privacyprefs/internal/domain/permissions"
	"privacyprefs/internal/domain/preferences"
	"privacyprefs/internal/i18n"
	"privacyprefs/internal/mdm"
	"privacyprefs/internal/services"

	"golang.org/x/text/message"
	"gorm.io/gorm"
)

// Container holds all dependencies for the application
type Container struct {
	config *config.Config
	db     *gorm.DB
	logger *slog.Logger

	// Services
	permissionStore permissions.Store
	sharedPrefs     preferences.SharedPreferences
	restriction     *mdm.DoNotTrackRestriction
	printer         *message.Printer
}

// New creates a new dependency injection container
func New(cfg *config.Config, db *gorm.DB) *Container {
	c := &Container{
		config: cfg,
		db:     db,
		logger: cfg.Logger,
	}

	c.initServices()
	return c
}

// initServices initializes all services with their dependencies
func (c *Container) initServices() {
	c.permissionStore = &PermissionStoreAdapter{
		service: services.NewPermissionService(c.db, permissionDefaults()),
	}
	c.sharedPrefs = &SharedPreferencesAdapter{service: services.NewPreferencesService(c.db)}
	c.restriction = mdm.NewDoNotTrackRestriction(c.logger)
	printer, err := i18n.Printer(c.config.Language)
	if err != nil {
		c.logger.Error("Failed to build message catalog, screen text is untranslated", "error", err)
	}
	c.printer = printer

	if err := c.ReloadPolicy(); err != nil {
		c.logger.Warn("Failed to load managed policy, continuing without restrictions", "error", err)
	}
}

// ReloadPolicy re-reads the managed policy file and enforces it
func (c *Container) ReloadPolicy() error {
	policy, err := mdm.LoadPolicy(c.config.PolicyPath)
	if err != nil {
		return err
	}
	c.restriction.Enforce(policy)
	return nil
}

// NewPrivacySynchronizer creates a synchronizer for one opening of the
// privacy screen. Navigation and results go to the given host.
func (c *Container) NewPrivacySynchronizer(nav preferences.Navigator, results preferences.ResultReporter) *services.PrivacySynchronizer {
	return services.NewPrivacySynchronizer(services.PrivacyDependencies{
		Store:       c.permissionStore,
		Preferences: c.sharedPrefs,
		Restriction: c.restriction,
		Navigator:   nav,
		Results:     results,
		Printer:     c.printer,
		Logger:      c.logger,
	})
}

// GetRestriction returns the do not track restriction handler
func (c *Container) GetRestriction() *mdm.DoNotTrackRestriction {
	return c.restriction
}
