// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"

	"github.com/MKhiriev/icrc7-dapp/internal/codec"
)

// validateReplica checks that the final merged [StructuredConfig] satisfies
// the replica's startup invariants.
func (cfg *StructuredConfig) validateReplica() error {
	if err := validateApp(cfg.App.Revision, cfg.App.Codec); err != nil {
		return err
	}

	if cfg.App.TokenSignKey == "" || cfg.App.TokenDuration <= 0 {
		return fmt.Errorf("%w: token sign key and duration are required", ErrInvalidAppConfigs)
	}

	if _, _, _, err := cfg.Canisters.CanisterIDs(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidCanisterConfigs, err)
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}
	switch cfg.Storage.DB.Driver {
	case DriverSQLite, DriverPostgres:
	default:
		return fmt.Errorf("%w: unsupported driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}
	if cfg.Server.RateLimit <= 0 || cfg.Server.RateBurst <= 0 {
		return fmt.Errorf("%w: rate limit and burst must be positive", ErrInvalidServerConfigs)
	}

	if cfg.Workers.ArchiveInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if err := validateApp(cfg.App.Revision, cfg.App.Codec); err != nil {
		return err
	}

	switch cfg.Canisters.Network {
	case NetworkLocal, NetworkIC:
	default:
		return fmt.Errorf("%w: unknown network %q", ErrInvalidCanisterConfigs, cfg.Canisters.Network)
	}

	u, err := url.Parse(cfg.Adapter.ReplicaURL)
	if err != nil || u.Host == "" {
		return fmt.Errorf("%w: bad replica url %q", ErrInvalidAdapterConfigs, cfg.Adapter.ReplicaURL)
	}
	if cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Identity.Path == "" {
		return ErrInvalidStorageConfigs
	}

	return nil
}

func validateApp(revision, codecName string) error {
	switch revision {
	case RevisionV1, RevisionV2:
	default:
		return fmt.Errorf("%w: unknown revision %q", ErrInvalidAppConfigs, revision)
	}

	if _, err := codec.ByName(codecName); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAppConfigs, err)
	}

	return nil
}
