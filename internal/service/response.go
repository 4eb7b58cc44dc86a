package service

import (
	"errors"

	"github.com/MKhiriev/go-user-auth/internal/store"
	"github.com/MKhiriev/go-user-auth/internal/validators"
	"github.com/MKhiriev/go-user-auth/models"
)

const (
	MessageSignupSucceeded = "User created successfully"
	MessageSigninSucceeded = "User logged in successfully"
	MessageInvalidJSON     = "Invalid JSON was passed"
)

// Reasons label failed operations in metrics.
const (
	ReasonNone                = "none"
	ReasonCredentialsRequired = "credentials_required"
	ReasonInvalidEmail        = "invalid_email"
	ReasonWeakPassword        = "weak_password"
	ReasonUserExists          = "user_exists"
	ReasonUserNotFound        = "user_not_found"
	ReasonWrongPassword       = "wrong_password"
	ReasonInternal            = "internal"
)

type failureDescription struct {
	err     error
	message string
	reason  string
}

// failures is matched in order with errors.Is.
var failures = []failureDescription{
	{validators.ErrCredentialsRequired, "Email and password required", ReasonCredentialsRequired},
	{validators.ErrInvalidEmail, "Invalid email", ReasonInvalidEmail},
	{validators.ErrWeakPassword, "Password must contain at least 8 characters, including at least one uppercase letter, one lowercase letter, one digit, and one special character", ReasonWeakPassword},
	{store.ErrUserAlreadyExists, "User already exists", ReasonUserExists},
	{store.ErrUserNotFound, "User does not exist", ReasonUserNotFound},
	{ErrWrongPassword, "Invalid password", ReasonWrongPassword},
}

// operationPrefixes prefix the cause of an infrastructure failure.
var operationPrefixes = map[error]string{
	ErrSignupFailed: "Error while creating user: ",
	ErrSigninFailed: "Error while logging in: ",
}

// NewResponse builds the envelope for an operation result. A nil err yields
// SUCCESS with successMessage and the account; anything else yields FAILED
// with the message from [ErrorMessage].
func NewResponse(successMessage string, user models.UserAccount, err error) models.Response {
	if err != nil {
		return NewFailedResponse(ErrorMessage(err))
	}

	return models.Response{
		Status:  models.StatusSuccess,
		Message: successMessage,
		Data:    &user,
	}
}

func NewFailedResponse(message string) models.Response {
	return models.Response{
		Status: models.StatusFailed,
		Error:  message,
	}
}

// ErrorMessage returns the user-facing text for err. Infrastructure failures
// embed the underlying error.
func ErrorMessage(err error) string {
	var opErr *operationError
	if errors.As(err, &opErr) {
		if prefix, ok := operationPrefixes[opErr.op]; ok {
			return prefix + opErr.cause.Error()
		}
	}

	for _, f := range failures {
		if errors.Is(err, f.err) {
			return f.message
		}
	}

	return "Error while processing request: " + err.Error()
}

// FailureReason returns the metrics label for err.
func FailureReason(err error) string {
	if err == nil {
		return ReasonNone
	}

	var opErr *operationError
	if errors.As(err, &opErr) {
		return ReasonInternal
	}

	for _, f := range failures {
		if errors.Is(err, f.err) {
			return f.reason
		}
	}

	return ReasonInternal
}
