// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// model-hub client. It is populated by merging values from a .env file,
// environment variables, an optional JSON file and command-line overrides.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// API selects the server API root.
	API API `envPrefix:"API_"`

	// Adapter holds network settings of the outbound HTTP client.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds the durable client-side storage settings (session token).
	Storage Storage `envPrefix:"STORAGE_"`

	// Log holds logger settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// loaded from the environment.
	// Populated via the CONFIG environment variable or the --config flag.
	JSONFilePath string `env:"CONFIG"`
}

// API selects where the server API lives.
type API struct {
	// URL is either an absolute API root ("https://hub.example.com/api") or a
	// path ("/api") resolved against [Adapter.HTTPAddress].
	// Env: API_URL
	URL string `env:"URL"`
}

// Adapter holds network settings of the outbound HTTP client.
type Adapter struct {
	// HTTPAddress is the server address in "host:port" or "scheme://host:port"
	// form. It is only used when API.URL is a path.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every outgoing request (e.g. "30s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the configuration of client-side persistence.
type Storage struct {
	// DB holds the local key/value database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds the local database settings.
type DB struct {
	// DSN is the SQLite file path; ":memory:" keeps the session in memory only.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Log holds logger settings.
type Log struct {
	// Level is a zerolog level name ("debug", "info", "warn", ...).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`

	// File is the log file path; empty means a "logs" file next to the binary.
	// Env: LOG_FILE
	File string `env:"FILE"`
}

// Default values applied to fields left empty by every source.
const (
	DefaultAPIURL         = "/api"
	DefaultHTTPAddress    = "localhost:8000"
	DefaultRequestTimeout = 30 * time.Second
	DefaultDSN            = "modelhub.db"
	DefaultLogLevel       = "info"
)

func defaults() *StructuredConfig {
	return &StructuredConfig{
		API:     API{URL: DefaultAPIURL},
		Adapter: Adapter{HTTPAddress: DefaultHTTPAddress, RequestTimeout: DefaultRequestTimeout},
		Storage: Storage{DB: DB{DSN: DefaultDSN}},
		Log:     Log{Level: DefaultLogLevel},
	}
}

// GetStructuredConfig loads, merges, and validates the configuration from all
// available sources in the following priority order (later sources win for
// non-zero fields):
//  1. .env file in the working directory (never overrides real env vars)
//  2. Environment variables
//  3. JSON file (path resolved from sources 1, 2 and overrides)
//  4. overrides, typically built from command-line flags
//
// Fields still empty afterwards receive the package defaults.
func GetStructuredConfig(overrides *StructuredConfig) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv().
		withEnv().
		withJSON(overrides).
		withOverrides(overrides).
		build()
}
