package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appError *AppError
		want     string
	}{
		{
			name: "basic error",
			appError: &AppError{
				Type:    ErrTypeConfig,
				Message: "configuration is invalid",
			},
			want: "config: configuration is invalid",
		},
		{
			name: "error with code",
			appError: &AppError{
				Type:    ErrTypeValidation,
				Message: "capacity must be positive",
				Code:    "CACHE001",
			},
			want: "validation: capacity must be positive: code=CACHE001",
		},
		{
			name: "error with cause",
			appError: &AppError{
				Type:    ErrTypeConnection,
				Message: "database connection failed",
				Cause:   errors.New("network timeout"),
			},
			want: "connection: database connection failed: cause=network timeout",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.appError.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := ConnectionError("connect failed", cause)

	if !errors.Is(err, cause) {
		t.Error("errors.Is should find the wrapped cause")
	}
}

func TestIsNotFound(t *testing.T) {
	if !IsNotFound(NotFoundError("memory")) {
		t.Error("IsNotFound should be true for NotFoundError")
	}
	if IsNotFound(ValidationError("bad input")) {
		t.Error("IsNotFound should be false for ValidationError")
	}
	if IsNotFound(errors.New("plain error")) {
		t.Error("IsNotFound should be false for a plain error")
	}

	// Wrapped AppErrors are still recognized.
	wrapped := fmt.Errorf("loading memory: %w", NotFoundError("memory"))
	if !IsNotFound(wrapped) {
		t.Error("IsNotFound should unwrap fmt.Errorf chains")
	}
}

func TestWithContext(t *testing.T) {
	err := ValidationError("bad capacity").WithContext("capacity", -1)

	if err.Context["capacity"] != -1 {
		t.Errorf("Context[capacity] = %v, want -1", err.Context["capacity"])
	}
}
