package mirror

import (
	"errors"
	"os"
	"testing"
)

func TestSyncErrorFormatting(t *testing.T) {
	err := NewSyncError(ErrorTypeSourceMissing, "template directory not found: /tmp/.github", nil)
	expected := "source_missing error: template directory not found: /tmp/.github"
	if err.Error() != expected {
		t.Errorf("Expected %q, got %q", expected, err.Error())
	}

	withPath := WrapIOError(os.ErrPermission, "CODEOWNERS")
	expected = "io error for CODEOWNERS: permission denied"
	if withPath.Error() != expected {
		t.Errorf("Expected %q, got %q", expected, withPath.Error())
	}
}

func TestSyncErrorUnwrap(t *testing.T) {
	cause := os.ErrNotExist
	err := WrapIOError(cause, "templates")

	if !errors.Is(err, os.ErrNotExist) {
		t.Error("Expected wrapped error to match os.ErrNotExist")
	}
}

func TestWrapIOErrorNil(t *testing.T) {
	if WrapIOError(nil, "anything") != nil {
		t.Error("Expected nil for nil cause")
	}
}

func TestWrapIOErrorKeepsExistingSyncError(t *testing.T) {
	inner := NewSyncError(ErrorTypeIO, "disk full", nil)
	wrapped := WrapIOError(inner, "PULL_REQUEST_TEMPLATE.md")

	if wrapped != inner {
		t.Error("Expected existing SyncError to pass through")
	}
	if wrapped.Path != "PULL_REQUEST_TEMPLATE.md" {
		t.Errorf("Expected path to be filled in, got %q", wrapped.Path)
	}
}

func TestSyncErrorFatal(t *testing.T) {
	tests := []struct {
		errorType ErrorType
		fatal     bool
	}{
		{ErrorTypeConfig, true},
		{ErrorTypeSourceMissing, true},
		{ErrorTypeTargetMissing, false},
		{ErrorTypeIO, false},
	}

	for _, tt := range tests {
		err := NewSyncError(tt.errorType, "test", nil)
		if err.Fatal() != tt.fatal {
			t.Errorf("Expected Fatal() = %v for %s", tt.fatal, tt.errorType)
		}
	}
}
