package apperror

import (
	"errors"
	"fmt"
	"testing"
)

func TestConstructorsWrapSentinels(t *testing.T) {
	tests := []struct {
		name     string
		err      *AppError
		sentinel error
		message  string
	}{
		{"not found", NotFound("user", "u1"), ErrNotFound, "user not found with id u1"},
		{"validation", ValidationFailed("level", "level must be >= 0"), ErrValidation, "level must be >= 0"},
		{"unauthenticated", Unauthenticated("updateBestLevel"), ErrUnauthenticated, "updateBestLevel requires a signed-in user"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false", tt.err, tt.sentinel)
			}
			if tt.err.Error() != tt.message {
				t.Errorf("Error() = %q, want %q", tt.err.Error(), tt.message)
			}
		})
	}
}

func TestWrappedAppErrorKeepsField(t *testing.T) {
	wrapped := fmt.Errorf("claim: %w", ValidationFailed("nickname", "too long"))

	var appErr *AppError
	if !errors.As(wrapped, &appErr) {
		t.Fatal("errors.As did not find *AppError")
	}
	if appErr.Field != "nickname" {
		t.Errorf("Field = %q, want %q", appErr.Field, "nickname")
	}
	if !errors.Is(wrapped, ErrValidation) {
		t.Error("wrapped error lost ErrValidation")
	}
}
