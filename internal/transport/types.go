package transport

import (
	"privacyprefs/internal/domain/preferences"
)

// Transport layer types for Wails API

type ControlState struct {
	Key     string `json:"key"`
	Kind    string `json:"kind"`
	Title   string `json:"title"`
	Checked bool   `json:"checked"`
	Summary string `json:"summary,omitempty"`
	Enabled bool   `json:"enabled"`
}

type ScreenState struct {
	ID        string         `json:"id"`
	Title     string         `json:"title"`
	SessionID string         `json:"session_id"`
	Controls  []ControlState `json:"controls"`
}

type ResultMessage struct {
	Code    int    `json:"code"`
	Payload string `json:"payload"`
}

// PreferenceScreen is a settings screen driven by frontend events
type PreferenceScreen interface {
	Open() error
	Close()
	OnPreferenceChange(key preferences.Key, value bool) bool
	OnPreferenceClick(key preferences.Key) bool
	Screen() *preferences.Screen
	SessionID() string
}

// ScreenFactory creates a screen whose navigation and results go to the
// given host
type ScreenFactory func(nav preferences.Navigator, results preferences.ResultReporter) PreferenceScreen

// PolicyReloader re-reads device policy and applies it to registered controls
type PolicyReloader func() error

func toScreenState(screen *preferences.Screen, sessionID string) *ScreenState {
	if screen == nil {
		return nil
	}

	controls := screen.Controls()
	state := &ScreenState{
		ID:        screen.ID(),
		Title:     screen.Title(),
		SessionID: sessionID,
		Controls:  make([]ControlState, len(controls)),
	}
	for i, c := range controls {
		cs := c.State()
		state.Controls[i] = ControlState{
			Key:     cs.Key.String(),
			Kind:    cs.Kind.String(),
			Title:   cs.Title,
			Checked: cs.Checked,
			Summary: cs.Summary,
			Enabled: cs.Enabled,
		}
	}
	return state
}
