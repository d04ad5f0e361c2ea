package models

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PermissionSetting stores the default value of one browser permission
type PermissionSetting struct {
	Permission string    `gorm:"primaryKey;size:32" json:"permission"`
	Allowed    bool      `json:"allowed"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// FindPermission loads a permission row. found is false when the
// permission has never been written.
func FindPermission(db *gorm.DB, permType string) (setting PermissionSetting, found bool, err error) {
	result := db.First(&setting, "permission = ?", permType)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return setting, false, nil
		}
		return setting, false, result.Error
	}
	return setting, true, nil
}

// SavePermission inserts or updates a permission row
func SavePermission(db *gorm.DB, permType string, allowed bool) error {
	setting := PermissionSetting{Permission: permType, Allowed: allowed}
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "permission"}},
		DoUpdates: clause.AssignmentColumns([]string{"allowed", "updated_at"}),
	}).Create(&setting).Error
}
