// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// UserAccount is a registered user as kept by the user record store.
// Email is the natural key and is stored exactly as submitted.
type UserAccount struct {
	// ID is assigned by the store at insert time.
	ID string `json:"id" bson:"_id"`

	// Email is the unique account identifier.
	Email string `json:"email" bson:"email"`

	// PasswordHash is the adaptive hash of the password submitted at signup.
	// It is never serialized to API clients.
	PasswordHash string `json:"-" bson:"password"`

	// CreatedAt is the UTC time the account was inserted.
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// TableName returns the name of the table (or collection) holding users.
func (u UserAccount) TableName() string {
	return "users"
}

// Credentials is the request body shared by signup and signin.
type Credentials struct {
	Email    string `json:"email" validate:"required,email_address"`
	Password string `json:"password" validate:"required,password_policy"`
}
