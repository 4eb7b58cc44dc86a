package service

import (
	"context"

	"github.com/MKhiriev/go-user-auth/models"
)

// AuthService registers and authenticates users by email and password.
// Failures are reported as sentinel errors that [NewResponse] turns into
// envelope messages.
type AuthService interface {
	Signup(ctx context.Context, creds models.Credentials) (models.UserAccount, error)
	Signin(ctx context.Context, creds models.Credentials) (models.UserAccount, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// AuthServiceWrapper defines middleware composition for AuthService.
// Implementations wrap an existing AuthService to add behavior such as
// validating or metrics.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService // returns a decorated AuthService applying additional behavior
}
