package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrCredentialsRequired = errors.New("email and password required")
	ErrInvalidEmail        = errors.New("invalid email")
	ErrWeakPassword        = errors.New("password does not satisfy the password policy")
)
