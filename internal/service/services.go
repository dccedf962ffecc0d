// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/hhconfig/internal/assembler"
	"github.com/MKhiriev/hhconfig/internal/config"
	"github.com/MKhiriev/hhconfig/internal/crypto"
	"github.com/MKhiriev/hhconfig/internal/logger"
	"github.com/MKhiriev/hhconfig/internal/store"
	"github.com/MKhiriev/hhconfig/internal/utils"
)

type Services struct {
	ConfigService  ConfigService
	AuthService    AuthService
	AppInfoService AppInfoService
}

// NewServices wires the services from cfg. storages may be nil, in which
// case snapshot operations report [ErrSnapshotsDisabled]. The app info
// service is only created when a version is configured.
func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	var (
		repository store.SnapshotRepository
		sealer     crypto.Sealer
		err        error
	)
	if storages != nil {
		repository = storages.SnapshotRepository
		if sealer, err = crypto.NewSealer(cfg.App.SealPassphrase); err != nil {
			return nil, fmt.Errorf("error creating snapshot sealer: %w", err)
		}
	}

	asm := assembler.New(assembler.WithStrictKeys(cfg.App.StrictKeys))
	configService, err := NewConfigService(cfg.Credentials.Model(), asm, repository, sealer, utils.NewUUIDGenerator(), logger)
	if err != nil {
		return nil, err
	}

	services := &Services{
		ConfigService: NewConfigValidationService().Wrap(configService),
		AuthService:   NewAuthService(cfg.App, logger),
	}

	if cfg.App.Version != "" {
		if services.AppInfoService, err = NewAppInfoService(cfg.App, logger); err != nil {
			return nil, err
		}
	}

	return services, nil
}
