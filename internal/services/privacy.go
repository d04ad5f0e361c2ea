package services

import (
	"log/slog"

	"privacyprefs/internal/common"
	"privacyprefs/internal/domain/permissions"
	"privacyprefs/internal/domain/preferences"
	"privacyprefs/internal/i18n"

	"golang.org/x/text/message"
)

// PrivacyDependencies are the collaborators of a PrivacySynchronizer
type PrivacyDependencies struct {
	Store       permissions.Store
	Preferences preferences.SharedPreferences
	Restriction preferences.RestrictionHandler
	Navigator   preferences.Navigator
	Results     preferences.ResultReporter
	Printer     *message.Printer
	Logger      *slog.Logger
}

// PrivacySynchronizer keeps the privacy & security screen and the
// permission store in step. It is not safe for concurrent use; the host
// delivers one event at a time.
type PrivacySynchronizer struct {
	deps PrivacyDependencies

	sessionID string
	screen    *preferences.Screen
	onChange  map[preferences.Key]changeHandler
	closed    bool
}

// changeHandler applies an edit and reports whether it was accepted
type changeHandler func(value bool) (bool, error)

type permissionBinding struct {
	key  preferences.Key
	perm permissions.Type
}

var permissionBindings = []permissionBinding{
	{preferences.KeyEnableGeolocation, permissions.Geolocation},
	{preferences.KeyMicrophone, permissions.Voice},
	{preferences.KeyCamera, permissions.Video},
	{preferences.KeyPopupWindows, permissions.Popup},
	{preferences.KeyAcceptCookies, permissions.Cookie},
	{preferences.KeyAcceptThirdCookies, permissions.ThirdPartyCookies},
}

// NewPrivacySynchronizer creates a synchronizer for one opening of the screen
func NewPrivacySynchronizer(deps PrivacyDependencies) *PrivacySynchronizer {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	if deps.Printer == nil {
		printer, err := i18n.Printer("en")
		if err != nil {
			deps.Logger.Error("Failed to build message catalog", "error", err)
		}
		deps.Printer = printer
	}
	return &PrivacySynchronizer{deps: deps}
}

// Open builds the screen and shows the stored values
func (s *PrivacySynchronizer) Open() error {
	if s.screen != nil {
		return nil
	}

	screen := s.buildScreen()

	for _, b := range permissionBindings {
		allowed, err := s.deps.Store.Get(b.perm)
		if err != nil {
			return common.NewPreferenceError("read", b.key.String(), err)
		}
		screen.Find(b.key).ApplyState(allowed)
	}

	// "distracting contents allowed" means the web refiner is off
	refiner, err := s.deps.Store.Get(permissions.WebRefiner)
	if err != nil {
		return common.NewPreferenceError("read", preferences.KeyDistractingContents.String(), err)
	}
	screen.Find(preferences.KeyDistractingContents).ApplyState(!refiner)

	doNotTrack, err := s.deps.Preferences.Bool(preferences.KeyDoNotTrack, false)
	if err != nil {
		return common.NewPreferenceError("read", preferences.KeyDoNotTrack.String(), err)
	}
	screen.Find(preferences.KeyDoNotTrack).ApplyState(doNotTrack)

	s.sessionID = common.GenerateUUID()
	s.screen = screen
	s.onChange = s.changeHandlers()
	s.closed = false

	s.deps.Restriction.RegisterControl(screen.Find(preferences.KeyDoNotTrack))

	s.deps.Logger.Info("Privacy screen opened", "session_id", s.sessionID)
	return nil
}

// Close releases the restriction handler's reference to this screen
func (s *PrivacySynchronizer) Close() {
	if s.closed {
		return
	}
	s.closed = true

	s.deps.Restriction.RegisterControl(nil)

	s.deps.Logger.Info("Privacy screen closed", "session_id", s.sessionID)
	s.screen = nil
	s.onChange = nil
}

// Screen returns the open screen, or nil once closed
func (s *PrivacySynchronizer) Screen() *preferences.Screen {
	return s.screen
}

// SessionID identifies the current opening of the screen
func (s *PrivacySynchronizer) SessionID() string {
	return s.sessionID
}

// OnPreferenceChange handles a user edit. It returns false when the edit
// is rejected, in which case the control keeps its previous value.
func (s *PrivacySynchronizer) OnPreferenceChange(key preferences.Key, value bool) bool {
	if s.screen == nil {
		s.deps.Logger.Warn("Preference change on closed screen", "key", key.String())
		return false
	}

	handler, ok := s.onChange[key]
	if !ok {
		s.deps.Logger.Debug("Unhandled preference key", "key", key.String(), "session_id", s.sessionID)
		return false
	}

	handled, err := handler(value)
	if err != nil {
		s.deps.Logger.Error("Failed to apply preference change",
			"key", key.String(),
			"value", value,
			"session_id", s.sessionID,
			"error", err)
		return false
	}
	if !handled {
		return false
	}

	if c := s.screen.Find(key); c != nil {
		c.ApplyState(value)
	}
	return true
}

// OnPreferenceClick handles a click on a navigation entry
func (s *PrivacySynchronizer) OnPreferenceClick(key preferences.Key) bool {
	if s.screen == nil {
		return false
	}

	if key == preferences.KeyWebsiteSettings {
		s.deps.Navigator.OpenSubscreen(common.WebsiteSettingsScreenID)
		return true
	}
	return false
}

func (s *PrivacySynchronizer) buildScreen() *preferences.Screen {
	p := s.deps.Printer
	notAllowed := p.Sprintf(i18n.MsgNotAllowed)
	askBefore := p.Sprintf(i18n.MsgAskBeforeUsing)

	screen := preferences.NewScreen(common.PrivacyScreenID, p.Sprintf(i18n.MsgPrivacySecurityTitle))
	screen.Add(preferences.NewLabel(preferences.KeyWebsiteSettings, p.Sprintf(i18n.MsgWebsiteSettings), "", ""))
	screen.Add(preferences.NewToggle(preferences.KeyClearSelectedData, p.Sprintf(i18n.MsgClearSelectedData)))
	screen.Add(preferences.NewLabel(preferences.KeyEnableGeolocation, p.Sprintf(i18n.MsgLocation), notAllowed, askBefore))
	screen.Add(preferences.NewLabel(preferences.KeyMicrophone, p.Sprintf(i18n.MsgMicrophone), notAllowed, askBefore))
	screen.Add(preferences.NewLabel(preferences.KeyCamera, p.Sprintf(i18n.MsgCamera), notAllowed, askBefore))
	screen.Add(preferences.NewToggle(preferences.KeyDistractingContents, p.Sprintf(i18n.MsgDistractingContents)))
	screen.Add(preferences.NewToggle(preferences.KeyPopupWindows, p.Sprintf(i18n.MsgPopupWindows)))
	screen.Add(preferences.NewToggle(preferences.KeyAcceptCookies, p.Sprintf(i18n.MsgAcceptCookies)))
	screen.Add(preferences.NewToggle(preferences.KeyAcceptThirdCookies, p.Sprintf(i18n.MsgAcceptThirdCookies)))
	screen.Add(preferences.NewToggle(preferences.KeyDoNotTrack, p.Sprintf(i18n.MsgDoNotTrack)))

	return screen
}

func (s *PrivacySynchronizer) changeHandlers() map[preferences.Key]changeHandler {
	return map[preferences.Key]changeHandler{
		preferences.KeyClearSelectedData:   s.clearSelectedData,
		preferences.KeyEnableGeolocation:   s.writePermission(permissions.Geolocation),
		preferences.KeyMicrophone:          s.writePermission(permissions.Voice),
		preferences.KeyCamera:              s.writePermission(permissions.Video),
		preferences.KeyDistractingContents: s.writeInverted(permissions.WebRefiner),
		preferences.KeyPopupWindows:        s.writePermission(permissions.Popup),
		preferences.KeyAcceptCookies:       s.acceptCookies,
		preferences.KeyAcceptThirdCookies:  s.writePermission(permissions.ThirdPartyCookies),
		preferences.KeyDoNotTrack:          s.doNotTrack,
	}
}

func (s *PrivacySynchronizer) writePermission(perm permissions.Type) changeHandler {
	return func(value bool) (bool, error) {
		if err := s.deps.Store.Set(perm, value); err != nil {
			return false, err
		}
		return true, nil
	}
}

func (s *PrivacySynchronizer) writeInverted(perm permissions.Type) changeHandler {
	return func(value bool) (bool, error) {
		if err := s.deps.Store.Set(perm, !value); err != nil {
			return false, err
		}
		return true, nil
	}
}

// acceptCookies also turns third-party cookies off when cookies are refused
func (s *PrivacySynchronizer) acceptCookies(value bool) (bool, error) {
	if err := s.deps.Store.Set(permissions.Cookie, value); err != nil {
		return false, err
	}
	if value {
		return true, nil
	}

	if err := s.deps.Store.Set(permissions.ThirdPartyCookies, false); err != nil {
		// COOKIE is already written; the control must show it
		if c := s.screen.Find(preferences.KeyAcceptCookies); c != nil {
			c.ApplyState(value)
		}
		return false, err
	}
	if c := s.screen.Find(preferences.KeyAcceptThirdCookies); c != nil {
		c.ApplyState(false)
	}
	return true, nil
}

// clearSelectedData asks the host to drop tab parent/child links when
// history is part of the data being cleared. It does not clear anything.
func (s *PrivacySynchronizer) clearSelectedData(value bool) (bool, error) {
	clearHistory, err := s.deps.Preferences.Bool(preferences.KeyPrivacyClearHistory, false)
	if err != nil {
		return false, err
	}
	if !clearHistory {
		return false, nil
	}

	s.deps.Results.ReportResult(preferences.ResultOK, preferences.KeyClearSelectedData.String())
	return true, nil
}

func (s *PrivacySynchronizer) doNotTrack(value bool) (bool, error) {
	if c := s.screen.Find(preferences.KeyDoNotTrack); c != nil && !c.Enabled() {
		s.deps.Logger.Warn("Rejected do not track edit",
			"session_id", s.sessionID,
			"error", common.NewPreferenceError("write", preferences.KeyDoNotTrack.String(), common.ErrRestrictedByPolicy))
		return false, nil
	}
	if err := s.deps.Preferences.SetBool(preferences.KeyDoNotTrack, value); err != nil {
		return false, err
	}
	return true, nil
}
