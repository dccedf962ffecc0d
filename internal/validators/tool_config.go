// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/MKhiriev/hhconfig/internal/assembler"
	"github.com/MKhiriev/hhconfig/models"
)

// ToolConfigValidator checks the structural invariants of an assembled
// configuration: compiler settings are present, both local networks exist,
// and the remote networks are either absent or all present with exactly one
// 0x-prefixed account each.
type ToolConfigValidator struct {
}

func NewToolConfigValidator() Validator {
	return &ToolConfigValidator{}
}

func (v *ToolConfigValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.ToolConfig:
		return v.validateToolConfig(value)
	case *models.ToolConfig:
		return v.validateToolConfig(*value)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *ToolConfigValidator) validateToolConfig(cfg models.ToolConfig) error {
	if cfg.Solidity.Version == "" {
		return ErrMissingCompiler
	}

	for _, local := range []string{assembler.CoverageNetwork, assembler.DevNetwork} {
		if _, ok := cfg.Networks[local]; !ok {
			return fmt.Errorf("%w: %s", ErrMissingLocalNetwork, local)
		}
	}

	supported := assembler.SupportedNetworks()
	remote := 0
	for name, d := range cfg.Networks {
		if name == assembler.CoverageNetwork || name == assembler.DevNetwork {
			continue
		}
		if !slices.Contains(supported, name) {
			return fmt.Errorf("%w: %s", ErrUnknownNetwork, name)
		}
		if d.URL == "" || len(d.Accounts) != 1 || !strings.HasPrefix(d.Accounts[0], "0x") {
			return fmt.Errorf("%w: %s", ErrInvalidDescriptor, name)
		}
		remote++
	}

	if remote != 0 && remote != len(supported) {
		return fmt.Errorf("%w: got %d of %d", ErrIncompleteNetworks, remote, len(supported))
	}

	return nil
}
