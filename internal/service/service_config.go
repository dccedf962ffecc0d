// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/MKhiriev/hhconfig/internal/assembler"
	"github.com/MKhiriev/hhconfig/internal/crypto"
	"github.com/MKhiriev/hhconfig/internal/logger"
	"github.com/MKhiriev/hhconfig/internal/store"
	"github.com/MKhiriev/hhconfig/internal/validators"
	"github.com/MKhiriev/hhconfig/models"
)

// configService is the concrete implementation of [ConfigService].
//
// The configuration is assembled once at construction and never mutated;
// every read hands out a deep copy. Snapshot operations need both a
// repository and a sealer; without them they fail with
// [ErrSnapshotsDisabled].
type configService struct {
	config models.ToolConfig

	repository store.SnapshotRepository
	sealer     crypto.Sealer
	validator  validators.Validator
	ids        IDGenerator
	now        func() time.Time

	logger *logger.Logger
}

// NewConfigService assembles the configuration for creds. repository and
// sealer may both be nil when snapshots are not used.
func NewConfigService(
	creds models.Credentials,
	asm *assembler.Assembler,
	repository store.SnapshotRepository,
	sealer crypto.Sealer,
	ids IDGenerator,
	logger *logger.Logger,
) (ConfigService, error) {
	cfg, err := asm.Assemble(creds)
	if err != nil {
		logger.Err(err).Str("func", "NewConfigService").Msg("error assembling configuration")
		return nil, fmt.Errorf("error assembling configuration: %w", err)
	}

	logger.Debug().
		Strs("networks", cfg.Networks.Names()).
		Bool("gas_report", cfg.GasReporter.Enabled).
		Msg("configuration assembled")

	return &configService{
		config:     cfg,
		repository: repository,
		sealer:     sealer,
		validator:  validators.NewSnapshotValidator(),
		ids:        ids,
		now:        time.Now,
		logger:     logger,
	}, nil
}

func (s *configService) Assemble(ctx context.Context) (models.ToolConfig, error) {
	return s.config.Clone(), nil
}

// Publish seals the JSON encoding of the configuration and stores it under a
// fresh UUIDv7. The returned snapshot carries the plaintext config.
func (s *configService) Publish(ctx context.Context) (models.Snapshot, error) {
	log := logger.FromContext(ctx)

	if !s.snapshotsEnabled() {
		return models.Snapshot{}, ErrSnapshotsDisabled
	}

	cfg := s.config.Clone()
	payload, err := json.Marshal(cfg)
	if err != nil {
		return models.Snapshot{}, fmt.Errorf("%w: %w", ErrSealingSnapshot, err)
	}

	sealed, err := s.sealer.Seal(payload)
	if err != nil {
		log.Err(err).Str("func", "*configService.Publish").Msg("error sealing snapshot")
		return models.Snapshot{}, fmt.Errorf("%w: %w", ErrSealingSnapshot, err)
	}

	snapshot := models.Snapshot{
		ID:        s.ids.Generate(),
		Networks:  cfg.Networks.Names(),
		Sealed:    sealed,
		CreatedAt: s.now().UTC(),
	}
	if err = s.validator.Validate(ctx, snapshot); err != nil {
		return models.Snapshot{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if err = s.repository.Save(ctx, snapshot); err != nil {
		log.Err(err).Str("func", "*configService.Publish").Str("id", snapshot.ID).Msg("error saving snapshot")
		return models.Snapshot{}, fmt.Errorf("%w: %w", ErrSavingSnapshot, err)
	}

	log.Info().Str("id", snapshot.ID).Strs("networks", snapshot.Networks).Msg("snapshot published")

	snapshot.Config = &cfg
	return snapshot, nil
}

func (s *configService) Get(ctx context.Context, id string) (models.Snapshot, error) {
	if !s.snapshotsEnabled() {
		return models.Snapshot{}, ErrSnapshotsDisabled
	}

	snapshot, err := s.repository.Get(ctx, id)
	if err != nil {
		return models.Snapshot{}, s.loadError(ctx, err)
	}

	return s.unseal(ctx, snapshot)
}

func (s *configService) Latest(ctx context.Context) (models.Snapshot, error) {
	if !s.snapshotsEnabled() {
		return models.Snapshot{}, ErrSnapshotsDisabled
	}

	snapshot, err := s.repository.Latest(ctx)
	if err != nil {
		return models.Snapshot{}, s.loadError(ctx, err)
	}

	return s.unseal(ctx, snapshot)
}

func (s *configService) List(ctx context.Context, limit uint64) ([]models.Snapshot, error) {
	if !s.snapshotsEnabled() {
		return nil, ErrSnapshotsDisabled
	}

	snapshots, err := s.repository.List(ctx, limit)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*configService.List").Msg("error listing snapshots")
		return nil, fmt.Errorf("%w: %w", ErrListingSnapshots, err)
	}

	return snapshots, nil
}

func (s *configService) unseal(ctx context.Context, snapshot models.Snapshot) (models.Snapshot, error) {
	payload, err := s.sealer.Open(snapshot.Sealed)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("id", snapshot.ID).Msg("error opening sealed snapshot")
		return models.Snapshot{}, fmt.Errorf("%w: %w", ErrUnsealingSnapshot, err)
	}

	var cfg models.ToolConfig
	if err = json.Unmarshal(payload, &cfg); err != nil {
		return models.Snapshot{}, fmt.Errorf("%w: %w", ErrUnsealingSnapshot, err)
	}
	// plugins are not part of the serialized object
	cfg.Plugins = slices.Clone(s.config.Plugins)

	snapshot.Config = &cfg
	return snapshot, nil
}

func (s *configService) loadError(ctx context.Context, err error) error {
	if errors.Is(err, store.ErrSnapshotNotFound) {
		return ErrSnapshotNotFound
	}

	logger.FromContext(ctx).Err(err).Msg("error loading snapshot")
	return fmt.Errorf("%w: %w", ErrLoadingSnapshot, err)
}

func (s *configService) snapshotsEnabled() bool {
	return s.repository != nil && s.sealer != nil
}
