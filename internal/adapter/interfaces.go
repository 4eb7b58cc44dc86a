// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter talks to the user auth server on behalf of the command
// line client.
//
// [ServerAdapter] hides the transport. The HTTP implementation
// ([NewHTTPServerAdapter]) returns the server's envelope as-is, including
// FAILED envelopes; transport failures and non-envelope error bodies are
// mapped to the sentinel errors in errors.go so callers can use [errors.Is].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-user-auth/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter sends credentials to the server's user endpoints.
type ServerAdapter interface {
	// Signup asks the server to create an account for creds.
	Signup(ctx context.Context, creds models.Credentials) (models.Response, error)

	// Signin asks the server to authenticate creds.
	Signin(ctx context.Context, creds models.Credentials) (models.Response, error)
}
