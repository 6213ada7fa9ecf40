package mirror

import "fmt"

// ErrorType represents different categories of sync errors
type ErrorType string

const (
	ErrorTypeConfig        ErrorType = "config"
	ErrorTypeSourceMissing ErrorType = "source_missing"
	ErrorTypeTargetMissing ErrorType = "target_missing"
	ErrorTypeIO            ErrorType = "io"
)

// SyncError represents a structured error from sync operations
type SyncError struct {
	Type    ErrorType `json:"type"`
	Message string    `json:"message"`
	Cause   error     `json:"-"`
	Path    string    `json:"path,omitempty"`
}

// Error implements the error interface
func (e *SyncError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s error for %s: %s", e.Type, e.Path, e.Message)
	}
	return fmt.Sprintf("%s error: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *SyncError) Unwrap() error {
	return e.Cause
}

// Fatal reports whether the error aborts a run before any target is
// processed. A missing target is an expected operational condition and
// never fatal on its own.
func (e *SyncError) Fatal() bool {
	switch e.Type {
	case ErrorTypeConfig, ErrorTypeSourceMissing:
		return true
	default:
		return false
	}
}

// NewSyncError creates a new SyncError with the specified type and message
func NewSyncError(errorType ErrorType, message string, cause error) *SyncError {
	return &SyncError{
		Type:    errorType,
		Message: message,
		Cause:   cause,
	}
}

// WrapIOError wraps a filesystem error for the given path. The
// underlying cause is surfaced verbatim so permission and disk-space
// failures stay diagnosable.
func WrapIOError(err error, path string) *SyncError {
	if err == nil {
		return nil
	}
	if syncErr, ok := err.(*SyncError); ok {
		if syncErr.Path == "" {
			syncErr.Path = path
		}
		return syncErr
	}
	return &SyncError{
		Type:    ErrorTypeIO,
		Message: err.Error(),
		Cause:   err,
		Path:    path,
	}
}
