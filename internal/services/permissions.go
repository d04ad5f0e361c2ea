package services

import (
	"privacyprefs/internal/models"

	"gorm.io/gorm"
)

// PermissionService persists default permission values
type PermissionService struct {
	db       *gorm.DB
	defaults map[string]bool
}

// NewPermissionService creates a permission service. defaults supplies the
// value of any permission that has never been written.
func NewPermissionService(db *gorm.DB, defaults map[string]bool) *PermissionService {
	return &PermissionService{db: db, defaults: defaults}
}

// GetPermission returns the stored value for permType or its default
func (s *PermissionService) GetPermission(permType string) (bool, error) {
	setting, found, err := models.FindPermission(s.db, permType)
	if err != nil {
		return false, err
	}
	if !found {
		return s.defaults[permType], nil
	}
	return setting.Allowed, nil
}

// SetPermission stores the value for permType
func (s *PermissionService) SetPermission(permType string, allowed bool) error {
	return models.SavePermission(s.db, permType, allowed)
}
