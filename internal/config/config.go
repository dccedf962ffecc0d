// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"github.com/MKhiriev/hhconfig/models"
)

// StructuredConfig is the top-level configuration container for hhconfig.
// It aggregates all sub-configurations and is populated by merging values
// from defaults, a .env file, environment variables, command-line flags, and
// an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Credentials holds the values that unlock the remote networks. Their
	// variable names are fixed and carry no prefix.
	Credentials Credentials

	// App holds output, key handling and token settings.
	App App `envPrefix:"APP_"`

	// Storage holds the snapshot database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the config server listen address and timeouts.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the address of a remote config server the CLI fetches
	// from instead of assembling locally.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`

	// DotEnvPath is the .env file loaded into the process environment before
	// environment variables are parsed. Already-set variables win.
	// Populated via the DOTENV environment variable or the -env-file flag.
	DotEnvPath string `env:"DOTENV"`
}

// Credentials mirrors [models.Credentials] with the environment bindings of
// the build tool.
type Credentials struct {
	// ProjectID is the RPC provider project identifier.
	// Env: INFURA_PROJECT_ID
	ProjectID string `env:"INFURA_PROJECT_ID"`

	// PrivateKey is the hex-encoded deployer key without the 0x prefix.
	// Env: PRIVATE_KEY
	PrivateKey string `env:"PRIVATE_KEY"`

	// GasReport enables the gas reporter when set to any non-empty value.
	// Env: GAS_REPORT
	GasReport Truthy `env:"GAS_REPORT"`
}

// Model converts the bound credentials into the domain value.
func (c Credentials) Model() models.Credentials {
	return models.Credentials{
		ProjectID:  c.ProjectID,
		PrivateKey: c.PrivateKey,
		GasReport:  bool(c.GasReport),
	}
}

// App holds application-level settings.
type App struct {
	// OutputFormat is one of json, yaml, js.
	// Env: APP_OUTPUT_FORMAT
	OutputFormat string `env:"OUTPUT_FORMAT"`

	// OutputPath is the file the CLI writes to. Empty means stdout.
	// Env: APP_OUTPUT_PATH
	OutputPath string `env:"OUTPUT_PATH"`

	// StrictKeys rejects malformed private keys at assembly time instead of
	// passing them through.
	// Env: APP_STRICT_KEYS
	StrictKeys bool `env:"STRICT_KEYS"`

	// RedactAccounts replaces signing keys with address placeholders in the
	// CLI output.
	// Env: APP_REDACT_ACCOUNTS
	RedactAccounts bool `env:"REDACT_ACCOUNTS"`

	// Version is the version string reported by /api/version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// TokenSignKey is the secret key used to sign and verify JWT tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim of issued tokens.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is how long an issued token remains valid.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// SealPassphrase derives the key that seals stored snapshots.
	// Env: APP_SEAL_PASSPHRASE
	SealPassphrase string `env:"SEAL_PASSPHRASE"`

	// Copy places the rendered configuration on the system clipboard.
	Copy bool `env:"COPY"`

	// Summary prints a network summary to stderr.
	Summary bool `env:"SUMMARY"`

	// Publish stores the assembled configuration as a snapshot.
	Publish bool `env:"PUBLISH"`

	// Verbose enables debug logging in the CLI.
	Verbose bool `env:"VERBOSE"`

	// IssueToken names an operator; the CLI prints a signed token for it
	// and exits.
	// Env: APP_ISSUE_TOKEN
	IssueToken string `env:"ISSUE_TOKEN"`
}

// Storage groups the configuration for the snapshot store.
type Storage struct {
	// DB holds the database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the snapshot database.
type DB struct {
	// Driver is the database/sql driver name, pgx or sqlite3. When empty it
	// is inferred from DSN.
	// Env: STORAGE_DB_DRIVER
	Driver string `env:"DRIVER"`

	// DSN is the connection string or sqlite file path.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds network and timeout settings for the config server.
type Server struct {
	// HTTPAddress is the TCP address in "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds settings of the remote config server client.
type Adapter struct {
	// HTTPAddress is the base URL of the remote server
	// (e.g. "http://127.0.0.1:8080").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// Token is the bearer token sent to the remote server to receive
	// unredacted accounts.
	// Env: ADAPTER_TOKEN
	Token string `env:"TOKEN"`
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all available sources in the following priority order (later sources win
// for non-zero fields):
//  1. Built-in defaults
//  2. Environment variables (after loading the .env file)
//  3. Command-line flags from args
//  4. JSON file (path resolved from sources 2 and 3)
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withDotEnv(args).
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
