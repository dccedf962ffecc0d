// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the client side of the config server API. The CLI uses
// it to fetch artifacts rendered by a running server instead of assembling
// them locally.
//
// HTTP status codes are mapped to the sentinel errors in errors.go so that
// callers can use [errors.Is] (e.g. [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/hhconfig/internal/render"
	"github.com/MKhiriev/hhconfig/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// LatestSnapshot selects the most recent snapshot in FetchSnapshot.
const LatestSnapshot = "latest"

// ServerAdapter talks to a config server. Artifacts are returned exactly as
// rendered by the server; accounts are redacted unless a valid token is set.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to subsequent requests.
	SetToken(token string)

	// Token returns the stored bearer token, or "" if none was set.
	Token() string

	// Version returns the server version string.
	Version(ctx context.Context) (string, error)

	// FetchConfig returns the current configuration rendered in format.
	// The body is checked against the server's content digest.
	FetchConfig(ctx context.Context, format render.Format) ([]byte, error)

	// FetchSnapshot returns a stored snapshot rendered in format. id is a
	// snapshot id or [LatestSnapshot].
	FetchSnapshot(ctx context.Context, id string, format render.Format) ([]byte, error)

	// PublishSnapshot asks the server to store its current configuration.
	// Requires a token.
	PublishSnapshot(ctx context.Context) (models.Snapshot, error)

	// ListSnapshots returns snapshot metadata, newest first. A zero limit
	// leaves the page size to the server.
	ListSnapshots(ctx context.Context, limit uint64) ([]models.Snapshot, error)
}
