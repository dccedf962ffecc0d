// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/hhconfig/internal/render"
)

// Database driver names accepted in [DB.Driver].
const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite3"
)

// DriverName returns the configured driver, inferring it from the DSN when
// unset: postgres URLs select pgx, anything else sqlite3.
func (db DB) DriverName() string {
	if db.Driver != "" {
		return db.Driver
	}
	if strings.HasPrefix(db.DSN, "postgres://") || strings.HasPrefix(db.DSN, "postgresql://") {
		return DriverPostgres
	}
	return DriverSQLite
}

// validate checks that the final merged [StructuredConfig] satisfies the
// invariants shared by every binary.
func (cfg *StructuredConfig) validate() error {
	if _, err := render.ParseFormat(cfg.App.OutputFormat); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAppConfigs, err)
	}

	if cfg.Storage.DB.DSN != "" {
		switch cfg.Storage.DB.DriverName() {
		case DriverPostgres, DriverSQLite:
		default:
			return fmt.Errorf("%w: unknown driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
		}
	}

	if cfg.Adapter.HTTPAddress != "" {
		u, err := url.Parse(cfg.Adapter.HTTPAddress)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("%w: remote address must be an absolute URL", ErrInvalidAdapterConfigs)
		}
	}

	// remote publishing uses the server's store
	if cfg.App.Publish && cfg.Adapter.HTTPAddress == "" {
		if err := cfg.validateSnapshotStore(); err != nil {
			return err
		}
	}

	if cfg.App.IssueToken != "" {
		if err := cfg.validateTokenSettings(); err != nil {
			return err
		}
	}

	return nil
}

// ValidateServer checks the settings the config server cannot start
// without.
func (cfg *StructuredConfig) ValidateServer() error {
	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if err := cfg.validateTokenSettings(); err != nil {
		return err
	}

	return cfg.validateSnapshotStore()
}

func (cfg *StructuredConfig) validateTokenSettings() error {
	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" || cfg.App.TokenDuration <= 0 {
		return fmt.Errorf("%w: token settings are required", ErrInvalidAppConfigs)
	}
	return nil
}

func (cfg *StructuredConfig) validateSnapshotStore() error {
	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database DSN is required", ErrInvalidStorageConfigs)
	}
	if cfg.App.SealPassphrase == "" {
		return fmt.Errorf("%w: seal passphrase is required", ErrInvalidAppConfigs)
	}
	return nil
}
