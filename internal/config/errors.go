package config

import "errors"

// Validation errors returned when the merged configuration is unusable.
var (
	// ErrInvalidServerConfigs indicates a missing listen address or a
	// non-positive timeout.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAppConfigs indicates a bcrypt cost outside the range the
	// hashing library accepts.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, missing HTTP address or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidCommand indicates an unknown client operation or missing
	// credentials flags.
	ErrInvalidCommand = errors.New("invalid client command")
)
