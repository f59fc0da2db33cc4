// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// dapp client and the local replica. It is populated by merging defaults, a
// dotenv file, environment variables, command-line flags and an optional
// JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds interface revision, wire codec and delegation token settings.
	App App `envPrefix:"APP_"`

	// Canisters names the target canisters and the network mode, using the
	// variable names emitted by dfx into .env.
	Canisters Canisters

	// Network holds the replica endpoints for each network mode.
	Network Network `envPrefix:"NETWORK_"`

	// Storage holds the replica database and the client identity file.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds listen addresses, timeouts and rate limits of the replica.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds outbound transport settings of the client.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds background worker settings of the replica.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`

	// DotEnvPath is the dotenv file loaded before reading the environment.
	DotEnvPath string `env:"DOTENV"`

	// Args holds the positional command-line arguments left after flag
	// parsing (the client subcommand and its arguments).
	Args []string
}

// App holds application-level settings.
type App struct {
	// Revision selects the backend interface revision: "v1" (status
	// envelope) or "v2" (variant results).
	// Env: APP_REVISION
	Revision string `env:"REVISION"`

	// Codec selects the wire codec: "cbor" or "json".
	// Env: APP_CODEC
	Codec string `env:"CODEC"`

	// TokenSignKey is the secret used to sign delegation tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim of every delegation.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is the lifetime of a delegation.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// LogFile is where the client appends its log.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Canisters names the canisters the client talks to and the replica hosts.
type Canisters struct {
	// Backend is the group/event backend canister id.
	Backend string `env:"CANISTER_ID_ICRC7_BACKEND"`

	// Factory is the collection factory canister id.
	Factory string `env:"CANISTER_ID_FACTORY"`

	// InternetIdentity is the identity provider canister id.
	InternetIdentity string `env:"CANISTER_ID_INTERNET_IDENTITY"`

	// Network is the network mode: "local" or "ic".
	Network string `env:"DFX_NETWORK"`
}

// Network holds the replica base URLs of both network modes.
type Network struct {
	// LocalURL is the local development replica.
	// Env: NETWORK_LOCAL_URL
	LocalURL string `env:"LOCAL_URL"`

	// ICURL is the production boundary node.
	// Env: NETWORK_IC_URL
	ICURL string `env:"IC_URL"`
}

// Storage groups persistence settings.
type Storage struct {
	// DB holds the replica database settings.
	DB DB `envPrefix:"DB_"`

	// Identity holds the client identity file settings.
	Identity Identity `envPrefix:"IDENTITY_"`
}

// DB holds connection settings for the replica database.
type DB struct {
	// Driver is "sqlite3" or "pgx".
	// Env: STORAGE_DB_DRIVER
	Driver string `env:"DRIVER"`

	// DSN is the data source name.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Identity locates the sealed client key pair.
type Identity struct {
	// Path of the sealed identity file.
	// Env: STORAGE_IDENTITY_PATH
	Path string `env:"PATH"`

	// Passphrase unlocks the identity file.
	// Env: STORAGE_IDENTITY_PASSPHRASE
	Passphrase string `env:"PASSPHRASE"`
}

// Server holds inbound transport settings of the replica.
type Server struct {
	// HTTPAddress is the "host:port" the HTTP interface listens on.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the "host:port" the gRPC health service listens on.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout bounds a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// RateLimit is the sustained number of calls per second per caller.
	// Env: SERVER_RATE_LIMIT
	RateLimit float64 `env:"RATE_LIMIT"`

	// RateBurst is the burst size per caller.
	// Env: SERVER_RATE_BURST
	RateBurst int `env:"RATE_BURST"`
}

// Adapter holds outbound transport settings of the client.
type Adapter struct {
	// HTTPAddress overrides the replica URL derived from the network mode.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the replica gRPC health endpoint.
	// Env: ADAPTER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout bounds a single outbound call.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds background worker settings.
type Workers struct {
	// ArchiveInterval is how often ledger transactions older than the
	// collection tx window plus permitted drift are archived.
	// Env: WORKERS_ARCHIVE_INTERVAL
	ArchiveInterval time.Duration `env:"ARCHIVE_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the replica configuration
// from all available sources in the following priority order (later sources
// override non-zero fields):
//  1. Built-in defaults
//  2. Dotenv file
//  3. Environment variables
//  4. Command-line flags
//  5. JSON file (path resolved from sources 1-4)
func GetStructuredConfig() (*StructuredConfig, error) {
	cfg, err := newConfigBuilder().
		withDefaults().
		withDotEnv().
		withEnv().
		withFlags().
		withJSON().
		build()
	if err != nil {
		return nil, err
	}

	return cfg, cfg.validateReplica()
}
