package transport

import (
	"context"
	"log/slog"
	"sync"

	"privacyprefs/internal/common"
	"privacyprefs/internal/domain/preferences"
	"privacyprefs/internal/navigation"
)

// WailsApp exposes the privacy screen to the frontend. Calls are
// serialized so the screen sees one event at a time.
type WailsApp struct {
	ctx     context.Context
	mu      sync.Mutex
	factory ScreenFactory
	reload  PolicyReloader
	host    *WailsHost
	logger  *slog.Logger
	screen  PreferenceScreen
}

// NewWailsApp creates the frontend adapter. reload is called by
// ReloadPolicy under the same lock as screen events.
func NewWailsApp(ctx context.Context, factory ScreenFactory, reload PolicyReloader, logger *slog.Logger) *WailsApp {
	return &WailsApp{
		ctx:     ctx,
		factory: factory,
		reload:  reload,
		host:    NewWailsHost(ctx, navigation.NewBackStack(), logger),
		logger:  logger,
	}
}

// OpenPrivacySettings opens the screen, or returns it if already open
func (a *WailsApp) OpenPrivacySettings() (*ScreenState, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.screen != nil {
		return a.state(), nil
	}

	screen := a.factory(a.host, a.host)
	if err := screen.Open(); err != nil {
		a.logger.Error("Failed to open privacy settings", "error", err)
		return nil, err
	}
	a.screen = screen

	return a.state(), nil
}

// ChangePreference forwards an edit and pushes the new screen state when
// it is accepted
func (a *WailsApp) ChangePreference(key string, value bool) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.screen == nil {
		a.logger.Warn("Preference change without open screen", "key", key)
		return false
	}

	k := preferences.ParseKey(key)
	if k == preferences.KeyUnknown {
		a.logger.Debug("Unknown preference key from frontend", "key", key)
	}

	if !a.screen.OnPreferenceChange(k, value) {
		return false
	}

	// Other controls may have changed along with this one
	a.host.emit(a.ctx, common.EventScreenUpdate, a.state())
	return true
}

// ClickPreference forwards a click on a navigation entry
func (a *WailsApp) ClickPreference(key string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.screen == nil {
		return false
	}
	return a.screen.OnPreferenceClick(preferences.ParseKey(key))
}

// NavigateBack closes the top subscreen opened from settings
func (a *WailsApp) NavigateBack() bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.host.Back()
}

// ClosePrivacySettings closes the screen if one is open
func (a *WailsApp) ClosePrivacySettings() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.screen == nil {
		return
	}
	a.screen.Close()
	a.screen = nil
}

// ReloadPolicy applies device policy again. Controls of an open screen
// may change, so the frontend gets a fresh snapshot.
func (a *WailsApp) ReloadPolicy() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.reload(); err != nil {
		a.logger.Error("Failed to reload managed policy", "error", err)
		return err
	}

	if a.screen != nil {
		a.host.emit(a.ctx, common.EventScreenUpdate, a.state())
	}
	return nil
}

// GetScreenState returns the open screen, or nil
func (a *WailsApp) GetScreenState() *ScreenState {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.state()
}

func (a *WailsApp) state() *ScreenState {
	if a.screen == nil {
		return nil
	}
	return toScreenState(a.screen.Screen(), a.screen.SessionID())
}
