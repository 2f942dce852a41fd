package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppErrorIs(t *testing.T) {
	err := fmt.Errorf("loading: %w", NewValidationError("full name is required"))

	assert.True(t, errors.Is(err, New(ErrorTypeValidation, "VALIDATION", "")))
	assert.False(t, errors.Is(err, NewNotFoundError("profile")))
	assert.Equal(t, ErrorTypeValidation, TypeOf(err))
}

func TestWrapKeepsInternal(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewDatabaseError(cause, "Error saving profile")

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "connection refused")
	assert.Equal(t, ErrorTypeDatabase, TypeOf(err))
	assert.NotEmpty(t, err.Source)
}

func TestTypeOfForeignError(t *testing.T) {
	assert.Equal(t, ErrorTypeInternal, TypeOf(errors.New("boom")))
}

func TestRedirectTarget(t *testing.T) {
	location, ok := RedirectTarget(NewRedirectError("/dashboard", "Onboarding already completed"))
	assert.True(t, ok)
	assert.Equal(t, "/dashboard", location)

	_, ok = RedirectTarget(NewValidationError("nope"))
	assert.False(t, ok)
}

func TestNewInternalError(t *testing.T) {
	cause := errors.New("boom")
	err := NewInternalError(cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, ErrorTypeInternal, TypeOf(err))
	assert.Equal(t, "Internal server error", err.Message)
	assert.Equal(t, ErrorTypePermission, TypeOf(ErrUnauthorized))
}
