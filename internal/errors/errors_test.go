package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"
)

func TestWrapKeepsSentinelIdentity(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	err := Wrap(ErrInternalServer, cause)

	if !stderrors.Is(err, ErrInternalServer) {
		t.Error("wrapped error should match its sentinel")
	}
	if !stderrors.Is(err, cause) {
		t.Error("wrapped error should unwrap to the internal cause")
	}
	if err.Error() != ErrInternalServer.Message {
		t.Errorf("expected generic message, got %q", err.Error())
	}
}

func TestWithMessage(t *testing.T) {
	err := WithMessage(ErrInvalidInput, "invalid date")

	if err.Message != "invalid date" {
		t.Errorf("expected custom message, got %q", err.Message)
	}
	if err.StatusCode != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", err.StatusCode)
	}
	if !stderrors.Is(err, ErrInvalidInput) {
		t.Error("error should still match ErrInvalidInput")
	}
	if stderrors.Is(err, ErrNotFound) {
		t.Error("error should not match ErrNotFound")
	}
}

func TestIsNotFound(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"expense", ErrExpenseNotFound, true},
		{"income_wrapped", fmt.Errorf("update income: %w", ErrIncomeNotFound), true},
		{"category", ErrCategoryNotFound, true},
		{"generic", ErrNotFound, true},
		{"invalid_input", ErrInvalidInput, false},
		// message text alone never makes an error a NotFound
		{"plain_error_with_text", fmt.Errorf("record not found"), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsNotFound(tt.err); got != tt.want {
				t.Errorf("IsNotFound(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}
