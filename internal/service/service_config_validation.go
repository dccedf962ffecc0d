// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/hhconfig/internal/validators"
	"github.com/MKhiriev/hhconfig/models"
)

// DefaultListLimit is applied when a listing asks for no limit.
const DefaultListLimit = 20

// ConfigValidationService validates inputs and outputs of the wrapped
// [ConfigService]: snapshot IDs and list limits on the way in, the
// structural invariants of the assembled configuration on the way out.
type ConfigValidationService struct {
	inner               ConfigService
	snapshotValidator   validators.Validator
	toolConfigValidator validators.Validator
}

func NewConfigValidationService() ConfigServiceWrapper {
	return &ConfigValidationService{
		snapshotValidator:   validators.NewSnapshotValidator(),
		toolConfigValidator: validators.NewToolConfigValidator(),
	}
}

func (v *ConfigValidationService) Assemble(ctx context.Context) (models.ToolConfig, error) {
	cfg, err := v.inner.Assemble(ctx)
	if err != nil {
		return models.ToolConfig{}, err
	}

	if err = v.toolConfigValidator.Validate(ctx, cfg); err != nil {
		return models.ToolConfig{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return cfg, nil
}

func (v *ConfigValidationService) Publish(ctx context.Context) (models.Snapshot, error) {
	if _, err := v.Assemble(ctx); err != nil {
		return models.Snapshot{}, err
	}

	return v.inner.Publish(ctx)
}

func (v *ConfigValidationService) Get(ctx context.Context, id string) (models.Snapshot, error) {
	if err := v.snapshotValidator.Validate(ctx, models.Snapshot{ID: id}, validators.FieldID); err != nil {
		return models.Snapshot{}, fmt.Errorf("%w: %w", ErrInvalidSnapshotID, err)
	}

	return v.inner.Get(ctx, id)
}

func (v *ConfigValidationService) Latest(ctx context.Context) (models.Snapshot, error) {
	return v.inner.Latest(ctx)
}

func (v *ConfigValidationService) List(ctx context.Context, limit uint64) ([]models.Snapshot, error) {
	if limit == 0 {
		limit = DefaultListLimit
	}

	if err := v.snapshotValidator.Validate(ctx, validators.ListRequest{Limit: limit}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.List(ctx, limit)
}

func (v *ConfigValidationService) Wrap(wrapped ConfigService) ConfigService {
	v.inner = wrapped
	return v
}
