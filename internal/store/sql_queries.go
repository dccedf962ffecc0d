// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/hhconfig/models"
)

const (
	snapshotsTable = "snapshots"

	colID        = "id"
	colNetworks  = "networks"
	colSealed    = "sealed"
	colCreatedAt = "created_at"

	// networks are stored as a single delimited column so the schema stays
	// identical across dialects
	networksSeparator = ","
)

func buildInsertSnapshotQuery(b sq.StatementBuilderType, snapshot models.Snapshot) (string, []any, error) {
	query, args, err := b.
		Insert(snapshotsTable).
		Columns(colID, colNetworks, colSealed, colCreatedAt).
		Values(snapshot.ID, joinNetworks(snapshot.Networks), snapshot.Sealed, snapshot.CreatedAt.UTC()).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildSelectSnapshotQuery(b sq.StatementBuilderType, id string) (string, []any, error) {
	query, args, err := b.
		Select(colID, colNetworks, colSealed, colCreatedAt).
		From(snapshotsTable).
		Where(sq.Eq{colID: id}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildLatestSnapshotQuery(b sq.StatementBuilderType) (string, []any, error) {
	query, args, err := b.
		Select(colID, colNetworks, colSealed, colCreatedAt).
		From(snapshotsTable).
		OrderBy(colCreatedAt+" DESC", colID+" DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildListSnapshotsQuery(b sq.StatementBuilderType, limit uint64) (string, []any, error) {
	q := b.
		Select(colID, colNetworks, colCreatedAt).
		From(snapshotsTable).
		OrderBy(colCreatedAt+" DESC", colID+" DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}

	query, args, err := q.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func joinNetworks(networks []string) string {
	return strings.Join(networks, networksSeparator)
}

func splitNetworks(s string) []string {
	if s == "" {
		return []string{}
	}
	return strings.Split(s, networksSeparator)
}
