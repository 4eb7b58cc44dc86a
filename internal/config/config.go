// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// user auth server. It is populated by merging values from defaults, an
// optional JSON file, environment variables, and command-line flags.
//
// Nested sections use envPrefix, so Server.HTTPAddress is read from
// SERVER_ADDRESS.
type StructuredConfig struct {
	// App holds application-level settings such as the log level and the
	// password hashing cost.
	App App `envPrefix:"APP_"`

	// Storage holds the user record store connection settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`

	// Port is the bare listen port, kept for deployments that only set PORT.
	// It is used when Server.HTTPAddress is empty.
	Port string `env:"PORT"`

	// MongoDBURL is a database connection string fallback used when
	// Storage.DB.DSN is empty.
	MongoDBURL string `env:"MONGODB_URL"`
}

// App groups application-wide settings.
type App struct {
	// LogLevel is a zerolog level name (debug, info, warn, error).
	LogLevel string `env:"LOG_LEVEL"`

	// BcryptCost is the adaptive hashing work factor used for passwords.
	BcryptCost int `env:"BCRYPT_COST"`

	// Version is reported by the version endpoint when no build version was
	// injected at link time.
	Version string `env:"VERSION"`
}

// Storage groups the configuration for the user record store.
type Storage struct {
	// DB holds the database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB describes where user records live. The DSN scheme selects the backend:
// mongodb://, postgres://, sqlite:// (or file:), and memory.
type DB struct {
	DSN string `env:"DATABASE_URI"`

	// Name is the MongoDB database name. SQL backends ignore it.
	Name string `env:"NAME"`
}

// Server holds HTTP server settings.
type Server struct {
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds reading a request and writing its response.
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds the graceful shutdown.
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`

	// AllowedOrigins lists CORS origins. Defaults to any origin.
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`
}

// Default values applied to fields left empty by every source.
const (
	DefaultPort            = "3000"
	DefaultBcryptCost      = 10
	DefaultDBName          = "auth"
	DefaultRequestTimeout  = 10 * time.Second
	DefaultShutdownTimeout = 5 * time.Second
)

// GetStructuredConfig builds the server configuration from all sources and
// validates the result.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}

// applyFallbacks resolves the legacy PORT / MONGODB_URL variables and fills
// defaults for everything still empty.
func (cfg *StructuredConfig) applyFallbacks() {
	if cfg.Server.HTTPAddress == "" && cfg.Port != "" {
		cfg.Server.HTTPAddress = ":" + cfg.Port
	}
	if cfg.Storage.DB.DSN == "" && cfg.MongoDBURL != "" {
		cfg.Storage.DB.DSN = cfg.MongoDBURL
	}

	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = ":" + DefaultPort
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = DefaultShutdownTimeout
	}
	if len(cfg.Server.AllowedOrigins) == 0 {
		cfg.Server.AllowedOrigins = []string{"*"}
	}
	if cfg.App.BcryptCost == 0 {
		cfg.App.BcryptCost = DefaultBcryptCost
	}
	if cfg.Storage.DB.Name == "" {
		cfg.Storage.DB.Name = DefaultDBName
	}
}
