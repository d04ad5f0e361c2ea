package common

import (
	"errors"
	"fmt"
)

// Preference error types
var (
	ErrUnknownPreference  = errors.New("unhandled preference key")
	ErrUnknownPermission  = errors.New("unknown permission type")
	ErrRestrictedByPolicy = errors.New("preference is locked by device policy")
)

// PreferenceError represents a failed read or write of a single preference
type PreferenceError struct {
	Operation string
	Key       string
	Err       error
}

func (e *PreferenceError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("preference %s failed for %s: %v", e.Operation, e.Key, e.Err)
	}
	return fmt.Sprintf("preference %s failed: %v", e.Operation, e.Err)
}

func (e *PreferenceError) Unwrap() error {
	return e.Err
}

// NewPreferenceError creates a new preference error
func NewPreferenceError(operation, key string, err error) *PreferenceError {
	return &PreferenceError{
		Operation: operation,
		Key:       key,
		Err:       err,
	}
}
