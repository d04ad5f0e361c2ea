package container

import (
	"privacyprefs/internal/common"
	"privacyprefs/internal/domain/permissions"
	"privacyprefs/internal/domain/preferences"
	"privacyprefs/internal/services"
)

// PermissionStoreAdapter adapts services.PermissionService to permissions.Store
type PermissionStoreAdapter struct {
	service *services.PermissionService
}

func (a *PermissionStoreAdapter) Get(t permissions.Type) (bool, error) {
	if !t.Valid() {
		return false, common.NewPreferenceError("read", t.String(), common.ErrUnknownPermission)
	}
	return a.service.GetPermission(t.String())
}

func (a *PermissionStoreAdapter) Set(t permissions.Type, allowed bool) error {
	if !t.Valid() {
		return common.NewPreferenceError("write", t.String(), common.ErrUnknownPermission)
	}
	return a.service.SetPermission(t.String(), allowed)
}

// SharedPreferencesAdapter adapts services.PreferencesService to preferences.SharedPreferences
type SharedPreferencesAdapter struct {
	service *services.PreferencesService
}

func (a *SharedPreferencesAdapter) Bool(key preferences.Key, def bool) (bool, error) {
	if key == preferences.KeyUnknown {
		return def, common.NewPreferenceError("read", "", common.ErrUnknownPreference)
	}
	return a.service.GetBool(key.String(), def)
}

func (a *SharedPreferencesAdapter) SetBool(key preferences.Key, value bool) error {
	if key == preferences.KeyUnknown {
		return common.NewPreferenceError("write", "", common.ErrUnknownPreference)
	}
	return a.service.SetBool(key.String(), value)
}

func permissionDefaults() map[string]bool {
	defaults := make(map[string]bool)
	for t, v := range permissions.Defaults() {
		defaults[t.String()] = v
	}
	return defaults
}
