package service

import "errors"

var (
	ErrWrongPassword = errors.New("wrong password")

	ErrSignupFailed = errors.New("error while creating user")
	ErrSigninFailed = errors.New("error while logging in")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// operationError ties an infrastructure failure to the operation it broke.
// Both the operation sentinel and the cause stay reachable via errors.Is.
type operationError struct {
	op    error
	cause error
}

func newOperationError(op, cause error) error {
	return &operationError{op: op, cause: cause}
}

func (e *operationError) Error() string {
	return e.op.Error() + ": " + e.cause.Error()
}

func (e *operationError) Unwrap() []error {
	return []error{e.op, e.cause}
}
