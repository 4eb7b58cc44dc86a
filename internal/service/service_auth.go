// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-user-auth/internal/crypto"
	"github.com/MKhiriev/go-user-auth/internal/logger"
	"github.com/MKhiriev/go-user-auth/internal/store"
	"github.com/MKhiriev/go-user-auth/internal/validators"
	"github.com/MKhiriev/go-user-auth/models"
)

// authService is the concrete implementation of AuthService.
// It looks accounts up through a UserRepository and hashes passwords with
// an adaptive PasswordHasher. Plaintext passwords are never stored or logged.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// hasher produces and checks the stored password hashes.
	hasher crypto.PasswordHasher

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given repository
// and hasher. The returned service is safe for concurrent use.
func NewAuthService(userRepository store.UserRepository, hasher crypto.PasswordHasher, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		logger:         logger,
	}
}

// Signup creates a new account.
//
// The steps run in order and the first failure is returned:
//   - empty email or password → validators.ErrCredentialsRequired;
//   - an account with the email exists → store.ErrUserAlreadyExists;
//   - hashing or storage failure → ErrSignupFailed wrapping the cause.
//
// Concurrent signups for one email are settled by the store's uniqueness
// check.
func (a *authService) Signup(ctx context.Context, creds models.Credentials) (models.UserAccount, error) {
	log := logger.FromContext(ctx)

	if creds.Email == "" || creds.Password == "" {
		log.Debug().Msg("signup without email or password")
		return models.UserAccount{}, validators.ErrCredentialsRequired
	}

	existing, err := a.userRepository.FindUsersByEmail(ctx, creds.Email)
	if err != nil {
		log.Err(err).Str("email", creds.Email).Msg("user lookup failed")
		return models.UserAccount{}, newOperationError(ErrSignupFailed, err)
	}
	if len(existing) > 0 {
		log.Info().Str("email", creds.Email).Msg("signup for existing user")
		return models.UserAccount{}, store.ErrUserAlreadyExists
	}

	hash, err := a.hasher.Hash(creds.Password)
	if err != nil {
		log.Err(err).Str("email", creds.Email).Msg("password hashing failed")
		return models.UserAccount{}, newOperationError(ErrSignupFailed, err)
	}

	user, err := a.userRepository.CreateUser(ctx, models.UserAccount{
		Email:        creds.Email,
		PasswordHash: hash,
	})
	if errors.Is(err, store.ErrUserAlreadyExists) {
		log.Info().Str("email", creds.Email).Msg("concurrent signup lost the insert")
		return models.UserAccount{}, store.ErrUserAlreadyExists
	}
	if err != nil {
		log.Err(err).Str("email", creds.Email).Msg("user creation ended with error")
		return models.UserAccount{}, newOperationError(ErrSignupFailed, err)
	}

	log.Info().Str("email", user.Email).Str("user_id", user.ID).Msg("user created")
	return user, nil
}

// Signin authenticates an existing account. Every failing check returns
// immediately:
//   - empty email or password → validators.ErrCredentialsRequired;
//   - no account with the email → store.ErrUserNotFound;
//   - password does not match → ErrWrongPassword;
//   - lookup or hash failure → ErrSigninFailed wrapping the cause.
func (a *authService) Signin(ctx context.Context, creds models.Credentials) (models.UserAccount, error) {
	log := logger.FromContext(ctx)

	if creds.Email == "" || creds.Password == "" {
		log.Debug().Msg("signin without email or password")
		return models.UserAccount{}, validators.ErrCredentialsRequired
	}

	users, err := a.userRepository.FindUsersByEmail(ctx, creds.Email)
	if err != nil {
		log.Err(err).Str("email", creds.Email).Msg("user search by email failed")
		return models.UserAccount{}, newOperationError(ErrSigninFailed, err)
	}
	if len(users) == 0 {
		log.Info().Str("email", creds.Email).Msg("signin for unknown user")
		return models.UserAccount{}, store.ErrUserNotFound
	}

	user := users[0]
	ok, err := a.hasher.Verify(creds.Password, user.PasswordHash)
	if err != nil {
		log.Err(err).Str("email", creds.Email).Msg("password verification failed")
		return models.UserAccount{}, newOperationError(ErrSigninFailed, err)
	}
	if !ok {
		log.Info().Str("email", creds.Email).Msg("wrong password")
		return models.UserAccount{}, ErrWrongPassword
	}

	log.Info().Str("email", user.Email).Str("user_id", user.ID).Msg("user logged in")
	return user, nil
}
