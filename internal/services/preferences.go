package services

import (
	"privacyprefs/internal/models"

	"gorm.io/gorm"
)

// PreferencesService handles application-wide boolean preferences
type PreferencesService struct {
	db *gorm.DB
}

// NewPreferencesService creates a new preferences service
func NewPreferencesService(db *gorm.DB) *PreferencesService {
	return &PreferencesService{db: db}
}

// GetBool returns the stored value for key, falling back to def
func (s *PreferencesService) GetBool(key string, def bool) (bool, error) {
	return models.GetPreference(s.db, key, def)
}

// SetBool stores value for key
func (s *PreferencesService) SetBool(key string, value bool) error {
	return models.SetPreference(s.db, key, value)
}
