package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-user-auth/internal/validators"
	"github.com/MKhiriev/go-user-auth/models"
)

// AuthValidationService checks credentials before delegating. Signup gets
// the full rule set; signin only requires both fields.
type AuthValidationService struct {
	inner     AuthService
	validator validators.Validator
}

func NewAuthValidationService() AuthServiceWrapper {
	return &AuthValidationService{
		validator: validators.NewCredentialsValidator(),
	}
}

func (v *AuthValidationService) Signup(ctx context.Context, creds models.Credentials) (models.UserAccount, error) {
	if err := v.validator.Validate(ctx, creds); err != nil {
		return models.UserAccount{}, fmt.Errorf("error during credentials validation before signup: %w", err)
	}

	return v.inner.Signup(ctx, creds)
}

func (v *AuthValidationService) Signin(ctx context.Context, creds models.Credentials) (models.UserAccount, error) {
	if creds.Email == "" || creds.Password == "" {
		return models.UserAccount{}, validators.ErrCredentialsRequired
	}

	return v.inner.Signin(ctx, creds)
}

func (v *AuthValidationService) Wrap(wrapper AuthService) AuthService {
	v.inner = wrapper
	return v
}
