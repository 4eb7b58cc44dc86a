package store

import "errors"

// Sentinel errors returned by repository methods. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrUserAlreadyExists is returned when an insert collides with an account
	// that has the same email.
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrUserNotFound is returned when no account matches the email.
	// Lookups themselves return an empty result; the service reports this.
	ErrUserNotFound = errors.New("user does not exist")

	// ErrUnsupportedDSN is returned when the configured DSN scheme does not
	// match any known backend.
	ErrUnsupportedDSN = errors.New("unsupported database DSN")
)

// Low-level database operation errors.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a SELECT against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails.
	ErrScanningRows = errors.New("failed to scan user rows")
)
