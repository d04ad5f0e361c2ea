// Package mdm applies device-management restrictions to settings controls.
package mdm

import (
	"log/slog"
	"sync"

	"privacyprefs/internal/domain/preferences"
)

// DoNotTrackRestriction locks the "do not track" control while the
// managed policy enforces a value.
type DoNotTrackRestriction struct {
	mu          sync.Mutex
	logger      *slog.Logger
	restriction Restriction
	control     *preferences.Control
}

// NewDoNotTrackRestriction creates a handler with no restriction in force
func NewDoNotTrackRestriction(logger *slog.Logger) *DoNotTrackRestriction {
	if logger == nil {
		logger = slog.Default()
	}
	return &DoNotTrackRestriction{logger: logger}
}

// RegisterControl binds c to the restriction and applies the current
// policy to it. nil releases the previous control.
func (r *DoNotTrackRestriction) RegisterControl(c *preferences.Control) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.control = c
	if c == nil {
		r.logger.Debug("Released do not track control")
		return
	}
	r.apply()
}

// Enforce replaces the policy and re-applies it to the registered control
func (r *DoNotTrackRestriction) Enforce(policy Policy) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.restriction = policy.DoNotTrack
	r.logger.Info("Do not track restriction updated",
		"enabled", r.restriction.Enabled,
		"value", r.restriction.Value)
	r.apply()
}

// Restricted reports whether the value is locked and, if so, to what
func (r *DoNotTrackRestriction) Restricted() (locked bool, value bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.restriction.Enabled, r.restriction.Value
}

func (r *DoNotTrackRestriction) apply() {
	if r.control == nil {
		return
	}
	if r.restriction.Enabled {
		r.control.SetEnabled(false)
		r.control.ApplyState(r.restriction.Value)
		return
	}
	r.control.SetEnabled(true)
}
