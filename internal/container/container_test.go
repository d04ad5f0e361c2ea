package container

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"privacyprefs/internal/config"
	"privacyprefs/internal/database"
	"privacyprefs/internal/domain/permissions"
	"privacyprefs/internal/domain/preferences"
	"privacyprefs/internal/mdm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopNavigator struct{}

func (nopNavigator) OpenSubscreen(string) {}

type nopResults struct{}

func (nopResults) ReportResult(preferences.ResultCode, string) {}

func newTestContainer(t *testing.T, policy string) *Container {
	dir := t.TempDir()
	cfg := &config.Config{
		AppDataDir:   dir,
		DatabasePath: ":memory:",
		PolicyPath:   filepath.Join(dir, "policy.yaml"),
		Language:     "en",
		Logger:       slog.Default(),
	}
	if policy != "" {
		require.NoError(t, os.WriteFile(cfg.PolicyPath, []byte(policy), 0644))
	}

	db, err := database.Initialize(cfg.DatabasePath)
	require.NoError(t, err)
	t.Cleanup(func() { database.Close(db) })

	return New(cfg, db)
}

func TestPermissionStoreAdapter(t *testing.T) {
	c := newTestContainer(t, "")
	store := c.permissionStore

	cookie, err := store.Get(permissions.Cookie)
	require.NoError(t, err)
	assert.True(t, cookie, "COOKIE defaults to allowed")

	require.NoError(t, store.Set(permissions.Cookie, false))
	cookie, err = store.Get(permissions.Cookie)
	require.NoError(t, err)
	assert.False(t, cookie)

	_, err = store.Get(permissions.Type(99))
	assert.Error(t, err)
	assert.Error(t, store.Set(permissions.Type(-1), true))
}

func TestSharedPreferencesAdapter(t *testing.T) {
	prefs := newTestContainer(t, "").sharedPrefs

	value, err := prefs.Bool(preferences.KeyPrivacyClearHistory, false)
	require.NoError(t, err)
	assert.False(t, value)

	require.NoError(t, prefs.SetBool(preferences.KeyPrivacyClearHistory, true))
	value, err = prefs.Bool(preferences.KeyPrivacyClearHistory, false)
	require.NoError(t, err)
	assert.True(t, value)

	assert.Error(t, prefs.SetBool(preferences.KeyUnknown, true))
}

func TestPolicyLoadedOnStartup(t *testing.T) {
	c := newTestContainer(t, "do_not_track:\n  enabled: true\n  value: true\n")

	locked, value := c.GetRestriction().Restricted()
	assert.True(t, locked)
	assert.True(t, value)
}

func TestNewPrivacySynchronizer_EndToEnd(t *testing.T) {
	c := newTestContainer(t, "")
	sync := c.NewPrivacySynchronizer(nopNavigator{}, nopResults{})
	require.NoError(t, sync.Open())
	defer sync.Close()

	require.True(t, sync.OnPreferenceChange(preferences.KeyDistractingContents, true))

	refiner, err := c.permissionStore.Get(permissions.WebRefiner)
	require.NoError(t, err)
	assert.False(t, refiner)

	c.restriction.Enforce(mdm.Policy{DoNotTrack: mdm.Restriction{Enabled: true, Value: true}})
	dnt := sync.Screen().Find(preferences.KeyDoNotTrack)
	assert.False(t, dnt.Enabled(), "open screen follows policy changes")
	assert.True(t, dnt.Checked())
}
