// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/hhconfig/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// SnapshotRepository persists sealed configuration snapshots.
//
// Repositories never see plaintext configurations: callers seal the payload
// before Save and unseal it after Get/Latest.
type SnapshotRepository interface {
	// Save stores a new snapshot. A duplicate ID yields [ErrSnapshotExists].
	Save(ctx context.Context, snapshot models.Snapshot) error
	// Get returns the snapshot with the given ID or [ErrSnapshotNotFound].
	Get(ctx context.Context, id string) (models.Snapshot, error)
	// Latest returns the most recently created snapshot or
	// [ErrSnapshotNotFound] when the store is empty.
	Latest(ctx context.Context) (models.Snapshot, error)
	// List returns up to limit snapshots, newest first. Sealed payloads are
	// not loaded.
	List(ctx context.Context, limit uint64) ([]models.Snapshot, error)
}

// ErrorClassificator decides whether a failed database operation may be
// retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
