// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-user-auth/internal/crypto"
	"github.com/MKhiriev/go-user-auth/internal/logger"
	"github.com/MKhiriev/go-user-auth/internal/mock"
	"github.com/MKhiriev/go-user-auth/internal/store"
	"github.com/MKhiriev/go-user-auth/internal/validators"
	"github.com/MKhiriev/go-user-auth/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestAuthService(t *testing.T) (AuthService, *mock.MockUserRepository, *mock.MockPasswordHasher) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	hasher := mock.NewMockPasswordHasher(ctrl)

	return NewAuthService(repo, hasher, logger.Nop()), repo, hasher
}

var validCreds = models.Credentials{Email: "a@b.com", Password: "Valid1Pass!"}

// ─────────────────────────────────────────────
// Signup
// ─────────────────────────────────────────────

func TestSignup_Success(t *testing.T) {
	svc, repo, hasher := newTestAuthService(t)
	ctx := context.Background()
	now := time.Now().UTC()

	gomock.InOrder(
		repo.EXPECT().FindUsersByEmail(ctx, "a@b.com").Return(nil, nil),
		hasher.EXPECT().Hash("Valid1Pass!").Return("$2a$10$hash", nil),
		repo.EXPECT().
			CreateUser(ctx, models.UserAccount{Email: "a@b.com", PasswordHash: "$2a$10$hash"}).
			Return(models.UserAccount{ID: "id-1", Email: "a@b.com", PasswordHash: "$2a$10$hash", CreatedAt: now}, nil),
	)

	user, err := svc.Signup(ctx, validCreds)

	require.NoError(t, err)
	assert.Equal(t, "id-1", user.ID)
	assert.Equal(t, "a@b.com", user.Email)
	assert.NotEqual(t, validCreds.Password, user.PasswordHash)
}

func TestSignup_MissingFields_NoStoreCalls(t *testing.T) {
	tests := []models.Credentials{
		{},
		{Email: "a@b.com"},
		{Password: "Valid1Pass!"},
	}

	for _, creds := range tests {
		svc, _, _ := newTestAuthService(t)

		_, err := svc.Signup(context.Background(), creds)

		assert.ErrorIs(t, err, validators.ErrCredentialsRequired)
	}
}

func TestSignup_UserAlreadyExists(t *testing.T) {
	svc, repo, _ := newTestAuthService(t)
	ctx := context.Background()

	repo.EXPECT().FindUsersByEmail(ctx, "a@b.com").
		Return([]models.UserAccount{{ID: "id-1", Email: "a@b.com"}}, nil)

	_, err := svc.Signup(ctx, validCreds)

	assert.ErrorIs(t, err, store.ErrUserAlreadyExists)
}

func TestSignup_LookupFails(t *testing.T) {
	svc, repo, _ := newTestAuthService(t)
	ctx := context.Background()
	boom := errors.New("connection refused")

	repo.EXPECT().FindUsersByEmail(ctx, "a@b.com").Return(nil, boom)

	_, err := svc.Signup(ctx, validCreds)

	require.ErrorIs(t, err, ErrSignupFailed)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, "Error while creating user: connection refused", ErrorMessage(err))
}

func TestSignup_HashFails(t *testing.T) {
	svc, repo, hasher := newTestAuthService(t)
	ctx := context.Background()

	repo.EXPECT().FindUsersByEmail(ctx, "a@b.com").Return(nil, nil)
	hasher.EXPECT().Hash("Valid1Pass!").Return("", errors.New("password too long"))

	_, err := svc.Signup(ctx, validCreds)

	require.ErrorIs(t, err, ErrSignupFailed)
	assert.Equal(t, "Error while creating user: password too long", ErrorMessage(err))
}

func TestSignup_InsertConflict_ReportsAlreadyExists(t *testing.T) {
	svc, repo, hasher := newTestAuthService(t)
	ctx := context.Background()

	repo.EXPECT().FindUsersByEmail(ctx, "a@b.com").Return(nil, nil)
	hasher.EXPECT().Hash(gomock.Any()).Return("hash", nil)
	repo.EXPECT().CreateUser(ctx, gomock.Any()).Return(models.UserAccount{}, store.ErrUserAlreadyExists)

	_, err := svc.Signup(ctx, validCreds)

	require.ErrorIs(t, err, store.ErrUserAlreadyExists)
	assert.NotErrorIs(t, err, ErrSignupFailed)
}

func TestSignup_InsertFails(t *testing.T) {
	svc, repo, hasher := newTestAuthService(t)
	ctx := context.Background()

	repo.EXPECT().FindUsersByEmail(ctx, "a@b.com").Return(nil, nil)
	hasher.EXPECT().Hash(gomock.Any()).Return("hash", nil)
	repo.EXPECT().CreateUser(ctx, gomock.Any()).Return(models.UserAccount{}, errors.New("disk full"))

	_, err := svc.Signup(ctx, validCreds)

	require.ErrorIs(t, err, ErrSignupFailed)
	assert.Equal(t, "Error while creating user: disk full", ErrorMessage(err))
}

// ─────────────────────────────────────────────
// Signin
// ─────────────────────────────────────────────

func TestSignin_Success(t *testing.T) {
	svc, repo, hasher := newTestAuthService(t)
	ctx := context.Background()
	stored := models.UserAccount{ID: "id-1", Email: "a@b.com", PasswordHash: "hash"}

	repo.EXPECT().FindUsersByEmail(ctx, "a@b.com").Return([]models.UserAccount{stored}, nil)
	hasher.EXPECT().Verify("Valid1Pass!", "hash").Return(true, nil)

	user, err := svc.Signin(ctx, validCreds)

	require.NoError(t, err)
	assert.Equal(t, stored, user)
}

func TestSignin_MissingFields_StopsImmediately(t *testing.T) {
	svc, _, _ := newTestAuthService(t)

	_, err := svc.Signin(context.Background(), models.Credentials{Email: "a@b.com"})

	assert.ErrorIs(t, err, validators.ErrCredentialsRequired)
}

func TestSignin_UserNotFound_SkipsVerification(t *testing.T) {
	svc, repo, _ := newTestAuthService(t)
	ctx := context.Background()

	repo.EXPECT().FindUsersByEmail(ctx, "a@b.com").Return([]models.UserAccount{}, nil)

	_, err := svc.Signin(ctx, validCreds)

	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

func TestSignin_WrongPassword(t *testing.T) {
	svc, repo, hasher := newTestAuthService(t)
	ctx := context.Background()

	repo.EXPECT().FindUsersByEmail(ctx, "a@b.com").
		Return([]models.UserAccount{{ID: "id-1", Email: "a@b.com", PasswordHash: "hash"}}, nil)
	hasher.EXPECT().Verify("Valid1Pass!", "hash").Return(false, nil)

	_, err := svc.Signin(ctx, validCreds)

	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestSignin_LookupFails(t *testing.T) {
	svc, repo, _ := newTestAuthService(t)
	ctx := context.Background()

	repo.EXPECT().FindUsersByEmail(ctx, "a@b.com").Return(nil, errors.New("timeout"))

	_, err := svc.Signin(ctx, validCreds)

	require.ErrorIs(t, err, ErrSigninFailed)
	assert.Equal(t, "Error while logging in: timeout", ErrorMessage(err))
}

func TestSignin_VerifyFails(t *testing.T) {
	svc, repo, hasher := newTestAuthService(t)
	ctx := context.Background()

	repo.EXPECT().FindUsersByEmail(ctx, "a@b.com").
		Return([]models.UserAccount{{Email: "a@b.com", PasswordHash: "garbage"}}, nil)
	hasher.EXPECT().Verify(gomock.Any(), "garbage").Return(false, errors.New("malformed hash"))

	_, err := svc.Signin(ctx, validCreds)

	require.ErrorIs(t, err, ErrSigninFailed)
	assert.Equal(t, "Error while logging in: malformed hash", ErrorMessage(err))
}

// ─────────────────────────────────────────────
// End to end over the in-memory store and bcrypt
// ─────────────────────────────────────────────

func newRealAuthService(t *testing.T) AuthService {
	hasher, err := crypto.NewBcryptHasher(crypto.DefaultCost)
	require.NoError(t, err)

	core := NewAuthService(store.NewUserMemoryRepository(logger.Nop()), hasher, logger.Nop())
	return NewAuthValidationService().Wrap(core)
}

func TestAuthFlow_SignupTwiceThenSignin(t *testing.T) {
	svc := newRealAuthService(t)
	ctx := context.Background()

	created, err := svc.Signup(ctx, validCreds)
	require.NoError(t, err)
	assert.NotEqual(t, validCreds.Password, created.PasswordHash)

	_, err = svc.Signup(ctx, validCreds)
	require.ErrorIs(t, err, store.ErrUserAlreadyExists)
	assert.Equal(t, "User already exists", ErrorMessage(err))

	loggedIn, err := svc.Signin(ctx, validCreds)
	require.NoError(t, err)
	assert.Equal(t, created.ID, loggedIn.ID)
	assert.Equal(t, validCreds.Email, loggedIn.Email)
	assert.NotEqual(t, validCreds.Password, loggedIn.PasswordHash)

	_, err = svc.Signin(ctx, models.Credentials{Email: validCreds.Email, Password: "Wrong1Pass!"})
	assert.Equal(t, "Invalid password", ErrorMessage(err))

	_, err = svc.Signin(ctx, models.Credentials{Email: "ghost@b.com", Password: "Valid1Pass!"})
	assert.Equal(t, "User does not exist", ErrorMessage(err))
}
