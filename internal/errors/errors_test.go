package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"
)

func TestStopBrowsingError(t *testing.T) {
	err := NewStopBrowsingError("user stopped")

	if err.Error() != "user stopped" {
		t.Fatalf("Error message = %q, want %q", err.Error(), "user stopped")
	}

	if !IsStopBrowsingError(err) {
		t.Fatalf("IsStopBrowsingError returned false for StopBrowsingError")
	}

	wrapped := stdErrors.Join(err)
	if !IsStopBrowsingError(wrapped) {
		t.Fatalf("IsStopBrowsingError returned false for wrapped StopBrowsingError")
	}
}

func TestStopBrowsingError_FmtWrapped(t *testing.T) {
	err := fmt.Errorf("selection aborted: %w", NewStopBrowsingError("quit"))

	if !IsStopBrowsingError(err) {
		t.Fatalf("IsStopBrowsingError returned false for fmt-wrapped StopBrowsingError")
	}
}

func TestIsStopBrowsingError_OtherError(t *testing.T) {
	if IsStopBrowsingError(stdErrors.New("plain error")) {
		t.Fatalf("IsStopBrowsingError returned true for unrelated error")
	}

	if IsStopBrowsingError(nil) {
		t.Fatalf("IsStopBrowsingError returned true for nil")
	}
}
