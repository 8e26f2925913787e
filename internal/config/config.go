package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// diary-server application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line
// flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings, most importantly the
	// process-wide encryption key.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the persistence backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP
	// server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds configuration for the upstream AI completion API used
	// by the chat proxy.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// EncryptionKey is the process-wide application key used to encrypt
	// and decrypt email and name fields uniformly across all accounts.
	// Must be a 64-character hex string (256 bits) and kept confidential.
	// Env: APP_ENCRYPTION_KEY
	EncryptionKey string `env:"ENCRYPTION_KEY"`

	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration for the persistence backend.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds the relational database connection settings.
type DB struct {
	// DSN is the PostgreSQL Data Source Name (connection string) used to
	// open the shared connection pool.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds settings of the upstream AI completion API the chat proxy
// forwards to.
type Adapter struct {
	// ChatAPIURL is the base URL of the completion API.
	// Env: ADAPTER_CHAT_API_URL
	ChatAPIURL string `env:"CHAT_API_URL"`

	// ChatAPIKey is the bearer token presented to the completion API.
	// Env: ADAPTER_CHAT_API_KEY
	ChatAPIKey string `env:"CHAT_API_KEY"`

	// ChatModel is the model identifier sent with every completion
	// request.
	// Env: ADAPTER_CHAT_MODEL
	ChatModel string `env:"CHAT_MODEL"`

	// Timeout bounds a single upstream round trip.
	// Env: ADAPTER_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// KeepAliveURL is the URL the keep-alive worker pings periodically.
	// Empty disables the worker.
	// Env: WORKERS_KEEPALIVE_URL
	KeepAliveURL string `env:"KEEPALIVE_URL"`

	// KeepAliveInterval is the delay between keep-alive pings.
	// Env: WORKERS_KEEPALIVE_INTERVAL
	KeepAliveInterval time.Duration `env:"KEEPALIVE_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
