// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// pizza-specials service. It aggregates all sub-configurations and is
// populated by merging defaults, environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds token verification parameters, scope names and the
	// application version.
	App App `envPrefix:"APP_"`

	// Server holds network address, timeout and middleware settings for the
	// HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Log holds level and optional rotating file settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values that control token
// verification, authorization scopes, and versioning.
type App struct {
	// TokenSignKey is the HMAC secret used to verify (and, for development
	// tokens, sign) bearer tokens. Required.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the expected "iss" claim of accepted tokens.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenAudience is the expected "aud" claim. Empty disables the check.
	// Env: APP_TOKEN_AUDIENCE
	TokenAudience string `env:"TOKEN_AUDIENCE"`

	// TokenDuration specifies how long an issued development token stays
	// valid (e.g. "1h", "30m").
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// ReadScope is the scope name required for list and get.
	// Env: APP_READ_SCOPE
	ReadScope string `env:"READ_SCOPE"`

	// WriteScope is the scope name required for create, update and delete.
	// Env: APP_WRITE_SCOPE
	WriteScope string `env:"WRITE_SCOPE"`

	// Version is the semantic version string of the running application
	// (e.g. "1.2.3"). Exposed via the /version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
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

	// ReadTimeout and WriteTimeout bound connection I/O of the http.Server.
	// Env: SERVER_READ_TIMEOUT, SERVER_WRITE_TIMEOUT
	ReadTimeout  time.Duration `env:"READ_TIMEOUT"`
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown after a stop signal.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`

	// AllowedOrigins lists CORS origins, comma separated in the environment.
	// Env: SERVER_ALLOWED_ORIGINS
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`

	// HTTPSRedirect redirects plain HTTP requests to https.
	// Env: SERVER_HTTPS_REDIRECT
	HTTPSRedirect bool `env:"HTTPS_REDIRECT"`

	// DisableMetrics turns off the /metrics endpoint and HTTP collectors.
	// Env: SERVER_DISABLE_METRICS
	DisableMetrics bool `env:"DISABLE_METRICS"`
}

// Log holds logger settings.
type Log struct {
	// Level is one of trace, debug, info, warn, error.
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`

	// File is an optional path of a rotating log file written in addition
	// to stdout.
	// Env: LOG_FILE
	File string `env:"FILE"`

	// MaxSizeMB, MaxBackups and MaxAgeDays control rotation of File.
	// Env: LOG_MAX_SIZE_MB, LOG_MAX_BACKUPS, LOG_MAX_AGE_DAYS
	MaxSizeMB  int `env:"MAX_SIZE_MB"`
	MaxBackups int `env:"MAX_BACKUPS"`
	MaxAgeDays int `env:"MAX_AGE_DAYS"`
}

// Defaults returns the configuration used when no source sets a value.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   "pizza-specials",
			TokenDuration: time.Hour,
			ReadScope:     "read",
			WriteScope:    "write",
			Version:       "dev",
		},
		Server: Server{
			HTTPAddress:     "localhost:8080",
			RequestTimeout:  30 * time.Second,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			AllowedOrigins:  []string{"*"},
		},
		Log: Log{
			Level:      "info",
			MaxSizeMB:  100,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  0. Defaults
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}
