package validators

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-user-auth/models"
	"github.com/go-playground/validator/v10"
)

const (
	FieldEmail    = "email"
	FieldPassword = "password"
)

const (
	tagEmailAddress   = "email_address"
	tagPasswordPolicy = "password_policy"
)

// structFields maps validation field names to models.Credentials fields.
var structFields = map[string]string{
	FieldEmail:    "Email",
	FieldPassword: "Password",
}

// CredentialsValidator validates models.Credentials against the
// `validate` struct tags using go-playground/validator.
type CredentialsValidator struct {
	validate *validator.Validate
}

// NewCredentialsValidator builds a Validator with the credential rules
// registered as custom tags.
func NewCredentialsValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// registration only fails on an empty tag or a nil function
	_ = v.RegisterValidation(tagEmailAddress, func(fl validator.FieldLevel) bool {
		return ValidEmail(fl.Field().String())
	})
	_ = v.RegisterValidation(tagPasswordPolicy, func(fl validator.FieldLevel) bool {
		return ValidPassword(fl.Field().String())
	})

	return &CredentialsValidator{validate: v}
}

// Validate checks credentials. When fields are given only those fields are
// validated. Failures are reported in a fixed order: missing field first,
// then a malformed email, then a weak password.
func (v *CredentialsValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(ctx, value, fields...)
	case *models.Credentials:
		if value == nil {
			return ErrCredentialsRequired
		}
		return v.validateCredentials(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *CredentialsValidator) validateCredentials(ctx context.Context, creds models.Credentials, fields ...string) error {
	var err error
	if len(fields) == 0 {
		err = v.validate.StructCtx(ctx, creds)
	} else {
		names := make([]string, 0, len(fields))
		for _, field := range fields {
			name, ok := structFields[field]
			if !ok {
				return fmt.Errorf("%w: %s", ErrUnknownField, field)
			}
			names = append(names, name)
		}
		err = v.validate.StructPartialCtx(ctx, creds, names...)
	}

	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("credentials validation failed: %w", err)
	}

	return firstFailure(validationErrors)
}

func firstFailure(validationErrors validator.ValidationErrors) error {
	var emailInvalid, passwordWeak bool
	for _, fe := range validationErrors {
		switch fe.Tag() {
		case "required":
			return ErrCredentialsRequired
		case tagEmailAddress:
			emailInvalid = true
		case tagPasswordPolicy:
			passwordWeak = true
		}
	}

	switch {
	case emailInvalid:
		return ErrInvalidEmail
	case passwordWeak:
		return ErrWeakPassword
	default:
		return fmt.Errorf("credentials validation failed: %w", validationErrors)
	}
}
