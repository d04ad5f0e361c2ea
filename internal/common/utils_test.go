package common

import (
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestGenerateUUID(t *testing.T) {
	uuid1 := GenerateUUID()
	uuid2 := GenerateUUID()

	if uuid1 == "" || uuid2 == "" {
		t.Fatal("Expected non-empty UUID")
	}

	if uuid1 == uuid2 {
		t.Error("Expected different UUIDs")
	}

	if _, err := uuid.Parse(uuid1); err != nil {
		t.Errorf("Generated UUID is not valid: %v", err)
	}
}

func TestPreferenceError(t *testing.T) {
	err := NewPreferenceError("write", "camera", ErrUnknownPermission)

	if !errors.Is(err, ErrUnknownPermission) {
		t.Error("Expected PreferenceError to unwrap to the cause")
	}

	expected := "preference write failed for camera: unknown permission type"
	if err.Error() != expected {
		t.Errorf("Expected %q, got %q", expected, err.Error())
	}

	noKey := NewPreferenceError("read", "", ErrUnknownPreference)
	if noKey.Error() != "preference read failed: unhandled preference key" {
		t.Errorf("Unexpected message %q", noKey.Error())
	}
}
