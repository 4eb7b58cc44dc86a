package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/go-user-auth/internal/store"
	"github.com/MKhiriev/go-user-auth/internal/validators"
	"github.com/MKhiriev/go-user-auth/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewResponse_Success(t *testing.T) {
	user := models.UserAccount{ID: "id-1", Email: "a@b.com", PasswordHash: "hash"}

	resp := NewResponse(MessageSignupSucceeded, user, nil)

	assert.Equal(t, models.StatusSuccess, resp.Status)
	assert.Equal(t, "User created successfully", resp.Message)
	assert.Empty(t, resp.Error)
	require.NotNil(t, resp.Data)
	assert.Equal(t, user, *resp.Data)
}

func TestNewResponse_Failures(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantError  string
		wantReason string
	}{
		{"required", validators.ErrCredentialsRequired, "Email and password required", ReasonCredentialsRequired},
		{"invalid email", validators.ErrInvalidEmail, "Invalid email", ReasonInvalidEmail},
		{
			"weak password", validators.ErrWeakPassword,
			"Password must contain at least 8 characters, including at least one uppercase letter, one lowercase letter, one digit, and one special character",
			ReasonWeakPassword,
		},
		{"wrapped weak password", fmt.Errorf("validation: %w", validators.ErrWeakPassword), "Password must contain at least 8 characters, including at least one uppercase letter, one lowercase letter, one digit, and one special character", ReasonWeakPassword},
		{"already exists", store.ErrUserAlreadyExists, "User already exists", ReasonUserExists},
		{"not found", store.ErrUserNotFound, "User does not exist", ReasonUserNotFound},
		{"wrong password", ErrWrongPassword, "Invalid password", ReasonWrongPassword},
		{"signup failure", newOperationError(ErrSignupFailed, errors.New("boom")), "Error while creating user: boom", ReasonInternal},
		{"signin failure", newOperationError(ErrSigninFailed, errors.New("boom")), "Error while logging in: boom", ReasonInternal},
		{"unknown", errors.New("boom"), "Error while processing request: boom", ReasonInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := NewResponse(MessageSigninSucceeded, models.UserAccount{Email: "a@b.com"}, tt.err)

			assert.Equal(t, models.StatusFailed, resp.Status)
			assert.Equal(t, tt.wantError, resp.Error)
			assert.Empty(t, resp.Message)
			assert.Nil(t, resp.Data)
			assert.Equal(t, tt.wantReason, FailureReason(tt.err))
		})
	}
}

func TestOperationError_UnwrapsBoth(t *testing.T) {
	cause := errors.New("boom")
	err := newOperationError(ErrSigninFailed, cause)

	assert.ErrorIs(t, err, ErrSigninFailed)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "error while logging in: boom", err.Error())
}

func TestFailureReason_Nil(t *testing.T) {
	assert.Equal(t, ReasonNone, FailureReason(nil))
}
