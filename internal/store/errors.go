// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrSnapshotNotFound is returned when no snapshot matches the lookup,
	// including Latest on an empty store.
	ErrSnapshotNotFound = errors.New("snapshot was not found")

	// ErrSnapshotExists is returned when a snapshot with the same ID has
	// already been stored.
	ErrSnapshotExists = errors.New("snapshot already exists")

	// ErrSnapshotNotSaved is returned when an INSERT completes without error
	// but affects no rows.
	ErrSnapshotNotSaved = errors.New("snapshot was not saved")

	// ErrUnknownDriver is returned when the configured database driver is
	// neither pgx nor sqlite3.
	ErrUnknownDriver = errors.New("unknown database driver")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan snapshot row")

	// ErrScanningRows is returned when iterating a multi-row result fails.
	ErrScanningRows = errors.New("failed to scan snapshot rows")
)
