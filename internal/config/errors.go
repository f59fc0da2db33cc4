package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, an unparsable replica URL or zero request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an unsupported driver or an empty DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, unknown revision or codec, missing token sign key).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
	// ErrInvalidServerConfigs indicates invalid replica listener settings.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidCanisterConfigs indicates a malformed canister id or an
	// unknown network mode.
	ErrInvalidCanisterConfigs = errors.New("invalid canister configuration")
	// ErrInvalidNetAddress is returned by NetAddress.Set for values that are
	// not host:port with a port in 1-65535.
	ErrInvalidNetAddress = errors.New("invalid net address")
)
