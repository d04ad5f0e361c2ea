package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPermissionService_Defaults(t *testing.T) {
	service := NewPermissionService(setupTestDB(t), map[string]bool{
		"COOKIE":            true,
		"THIRDPARTYCOOKIES": false,
	})

	cookie, err := service.GetPermission("COOKIE")
	require.NoError(t, err)
	assert.True(t, cookie)

	third, err := service.GetPermission("THIRDPARTYCOOKIES")
	require.NoError(t, err)
	assert.False(t, third)
}

func TestPermissionService_SetOverridesDefault(t *testing.T) {
	service := NewPermissionService(setupTestDB(t), map[string]bool{
		"COOKIE": true,
		"POPUP":  false,
	})

	require.NoError(t, service.SetPermission("COOKIE", false))
	require.NoError(t, service.SetPermission("POPUP", true))
	require.NoError(t, service.SetPermission("POPUP", true), "repeated write is an upsert")

	cookie, err := service.GetPermission("COOKIE")
	require.NoError(t, err)
	assert.False(t, cookie)

	popup, err := service.GetPermission("POPUP")
	require.NoError(t, err)
	assert.True(t, popup)
}
