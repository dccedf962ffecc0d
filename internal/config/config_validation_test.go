// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDB_DriverName(t *testing.T) {
	tests := []struct {
		name     string
		db       DB
		expected string
	}{
		{name: "explicit", db: DB{Driver: "pgx", DSN: "file.db"}, expected: DriverPostgres},
		{name: "postgres url", db: DB{DSN: "postgres://localhost/db"}, expected: DriverPostgres},
		{name: "postgresql url", db: DB{DSN: "postgresql://localhost/db"}, expected: DriverPostgres},
		{name: "file path", db: DB{DSN: "/var/lib/hhconfig/snapshots.db"}, expected: DriverSQLite},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.db.DriverName())
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     StructuredConfig
		wantErr error
	}{
		{
			name: "zero config",
			cfg:  StructuredConfig{},
		},
		{
			name:    "unknown format",
			cfg:     StructuredConfig{App: App{OutputFormat: "xml"}},
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "unknown driver",
			cfg:     StructuredConfig{Storage: Storage{DB: DB{Driver: "mysql", DSN: "root@/db"}}},
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "relative remote",
			cfg:     StructuredConfig{Adapter: Adapter{HTTPAddress: "localhost:8080"}},
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name:    "publish without passphrase",
			cfg:     StructuredConfig{App: App{Publish: true}, Storage: Storage{DB: DB{DSN: "s.db"}}},
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name: "publish with store",
			cfg: StructuredConfig{
				App:     App{Publish: true, SealPassphrase: "seal"},
				Storage: Storage{DB: DB{DSN: "s.db"}},
			},
		},
		{
			name: "remote publish needs no store",
			cfg:  StructuredConfig{App: App{Publish: true}, Adapter: Adapter{HTTPAddress: "http://cfg:8080"}},
		},
		{
			name:    "issue token without sign key",
			cfg:     StructuredConfig{App: App{IssueToken: "deployer", TokenIssuer: "hhconfig", TokenDuration: time.Hour}},
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name: "issue token",
			cfg: StructuredConfig{App: App{
				IssueToken:    "deployer",
				TokenSignKey:  "key",
				TokenIssuer:   "hhconfig",
				TokenDuration: time.Hour,
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidateServer(t *testing.T) {
	valid := func() StructuredConfig {
		return StructuredConfig{
			App: App{
				TokenSignKey:   "secret",
				TokenIssuer:    "hhconfig",
				TokenDuration:  time.Hour,
				SealPassphrase: "seal",
			},
			Storage: Storage{DB: DB{DSN: "postgres://localhost/db"}},
			Server:  Server{HTTPAddress: "localhost:8080", RequestTimeout: time.Second},
		}
	}

	cfg := valid()
	assert.NoError(t, cfg.ValidateServer())

	cfg = valid()
	cfg.Server.HTTPAddress = ""
	assert.ErrorIs(t, cfg.ValidateServer(), ErrInvalidServerConfigs)

	cfg = valid()
	cfg.App.TokenSignKey = ""
	assert.ErrorIs(t, cfg.ValidateServer(), ErrInvalidAppConfigs)

	cfg = valid()
	cfg.Storage.DB.DSN = ""
	assert.ErrorIs(t, cfg.ValidateServer(), ErrInvalidStorageConfigs)
}

func TestTruthy_Set(t *testing.T) {
	var v Truthy
	assert.NoError(t, v.Set("true"))
	assert.True(t, bool(v))
	assert.NoError(t, v.Set("0"))
	assert.False(t, bool(v))
	assert.NoError(t, v.Set("on"))
	assert.True(t, bool(v))
	assert.Equal(t, "true", v.String())
}
