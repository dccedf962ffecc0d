// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/hhconfig/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=ConfigServiceWrapper

// ConfigService exposes the assembled configuration and its published
// snapshots.
type ConfigService interface {
	// Assemble returns a copy of the configuration assembled at startup.
	Assemble(ctx context.Context) (models.ToolConfig, error)
	// Publish seals the current configuration and stores it as a new
	// snapshot.
	Publish(ctx context.Context) (models.Snapshot, error)
	// Get returns the unsealed snapshot with the given ID.
	Get(ctx context.Context, id string) (models.Snapshot, error)
	// Latest returns the most recently published, unsealed snapshot.
	Latest(ctx context.Context) (models.Snapshot, error)
	// List returns snapshot metadata, newest first.
	List(ctx context.Context, limit uint64) ([]models.Snapshot, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

type AuthService interface {
	IssueToken(ctx context.Context, operator string) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// IDGenerator produces snapshot identifiers.
type IDGenerator interface {
	Generate() string
}

// ConfigServiceWrapper defines middleware composition for ConfigService.
// Implementations wrap an existing ConfigService to add behavior such as
// validating.
type ConfigServiceWrapper interface {
	Wrap(ConfigService) ConfigService // returns a decorated ConfigService applying additional behavior
}
