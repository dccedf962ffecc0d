// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgerrcode"

	"github.com/MKhiriev/hhconfig/internal/logger"
	"github.com/MKhiriev/hhconfig/models"
)

const (
	saveAttempts   = 3
	saveRetryDelay = 100 * time.Millisecond
)

// snapshotRepository is the database/sql implementation of
// [SnapshotRepository]. It works against both PostgreSQL and SQLite; the
// dialect only affects placeholders and error classification.
type snapshotRepository struct {
	db         *DB
	logger     *logger.Logger
	retryDelay time.Duration
}

// NewSnapshotRepository constructs a [SnapshotRepository] backed by db.
func NewSnapshotRepository(db *DB, logger *logger.Logger) SnapshotRepository {
	logger.Debug().Msg("creating snapshot repository")
	return &snapshotRepository{
		db:         db,
		logger:     logger,
		retryDelay: saveRetryDelay,
	}
}

// Save inserts snapshot. Transient failures (as judged by the dialect's
// [ErrorClassificator]) are retried a bounded number of times.
//
// Error handling:
//   - unique violation → [ErrSnapshotExists].
//   - zero rows affected → [ErrSnapshotNotSaved].
//   - anything else → wrapped [ErrExecutingStatement].
func (r *snapshotRepository) Save(ctx context.Context, snapshot models.Snapshot) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertSnapshotQuery(r.db.builder, snapshot)
	if err != nil {
		log.Err(err).Str("func", "*snapshotRepository.Save").Msg("error building query")
		return err
	}

	var result sql.Result
	for attempt := 1; attempt <= saveAttempts; attempt++ {
		result, err = r.db.ExecContext(ctx, query, args...)
		if err == nil || !r.retryable(err) || attempt == saveAttempts {
			break
		}

		log.Warn().Err(err).Int("attempt", attempt).Str("id", snapshot.ID).Msg("retrying snapshot insert")
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(r.retryDelay):
		}
	}

	if err != nil {
		log.Err(err).Str("func", "*snapshotRepository.Save").Str("id", snapshot.ID).Msg("error inserting snapshot")
		if postgresError(err) == pgerrcode.UniqueViolation || isSQLiteConstraintViolation(err) {
			return ErrSnapshotExists
		}
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrSnapshotNotSaved
	}

	return nil
}

func (r *snapshotRepository) Get(ctx context.Context, id string) (models.Snapshot, error) {
	query, args, err := buildSelectSnapshotQuery(r.db.builder, id)
	if err != nil {
		return models.Snapshot{}, err
	}

	return r.getOne(ctx, "*snapshotRepository.Get", query, args)
}

func (r *snapshotRepository) Latest(ctx context.Context) (models.Snapshot, error) {
	query, args, err := buildLatestSnapshotQuery(r.db.builder)
	if err != nil {
		return models.Snapshot{}, err
	}

	return r.getOne(ctx, "*snapshotRepository.Latest", query, args)
}

func (r *snapshotRepository) getOne(ctx context.Context, funcName, query string, args []any) (models.Snapshot, error) {
	log := logger.FromContext(ctx)

	var (
		snapshot models.Snapshot
		networks string
	)
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&snapshot.ID, &networks, &snapshot.Sealed, &snapshot.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Snapshot{}, ErrSnapshotNotFound
		}
		log.Err(err).Str("func", funcName).Msg("error scanning snapshot")
		return models.Snapshot{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	snapshot.Networks = splitNetworks(networks)

	return snapshot, nil
}

func (r *snapshotRepository) List(ctx context.Context, limit uint64) ([]models.Snapshot, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListSnapshotsQuery(r.db.builder, limit)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*snapshotRepository.List").Msg("error querying snapshots")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	snapshots := make([]models.Snapshot, 0)
	for rows.Next() {
		var (
			snapshot models.Snapshot
			networks string
		)
		if err = rows.Scan(&snapshot.ID, &networks, &snapshot.CreatedAt); err != nil {
			log.Err(err).Str("func", "*snapshotRepository.List").Msg("error scanning snapshot row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		snapshot.Networks = splitNetworks(networks)
		snapshots = append(snapshots, snapshot)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return snapshots, nil
}

func (r *snapshotRepository) retryable(err error) bool {
	if r.db.errorClassificator == nil {
		return false
	}
	return r.db.errorClassificator.Classify(err) == Retryable
}
