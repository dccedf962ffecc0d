// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/hhconfig/internal/config"
	"github.com/MKhiriev/hhconfig/internal/logger"
)

// Storages bundles the repositories together with the connection they share.
type Storages struct {
	SnapshotRepository SnapshotRepository

	db *DB
}

// NewStorages connects to the configured database, migrates it and builds
// the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnect(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	return &Storages{
		SnapshotRepository: NewSnapshotRepository(db, log),
		db:                 db,
	}, nil
}

// Close releases the underlying connection pool.
func (s *Storages) Close() error {
	return s.db.Close()
}
