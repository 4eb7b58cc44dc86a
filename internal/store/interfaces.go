// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-user-auth/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/user_repository_mock.go -package=mock

// UserRepository keeps user accounts keyed by email.
//
// Every implementation enforces email uniqueness on insert and reports a
// conflicting insert as [ErrUserAlreadyExists].
type UserRepository interface {
	// FindUsersByEmail returns every account whose email matches exactly.
	// An unknown email yields an empty result and a nil error.
	FindUsersByEmail(ctx context.Context, email string) ([]models.UserAccount, error)

	// CreateUser inserts user and returns it with ID and CreatedAt assigned.
	CreateUser(ctx context.Context, user models.UserAccount) (models.UserAccount, error)
}
