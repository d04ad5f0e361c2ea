package models

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BrowserPreference is an application-wide boolean preference
type BrowserPreference struct {
	Name      string    `gorm:"primaryKey;size:64" json:"name"`
	Value     bool      `json:"value"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// GetPreference returns the stored value for key, or def when unset
func GetPreference(db *gorm.DB, key string, def bool) (bool, error) {
	var pref BrowserPreference

	result := db.First(&pref, "name = ?", key)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return def, nil
		}
		return def, result.Error
	}

	return pref.Value, nil
}

// SetPreference inserts or updates a preference row
func SetPreference(db *gorm.DB, key string, value bool) error {
	pref := BrowserPreference{Name: key, Value: value}
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&pref).Error
}
