package errors

import "errors"

// StopBrowsingError represents a user-driven stop signal (e.g., from TUI).
type StopBrowsingError struct {
	Reason string
}

func (e *StopBrowsingError) Error() string {
	return e.Reason
}

// NewStopBrowsingError creates a StopBrowsingError with the provided reason.
func NewStopBrowsingError(reason string) *StopBrowsingError {
	return &StopBrowsingError{Reason: reason}
}

// IsStopBrowsingError reports whether err is a StopBrowsingError (even when wrapped).
func IsStopBrowsingError(err error) bool {
	var stopErr *StopBrowsingError
	return errors.As(err, &stopErr)
}
