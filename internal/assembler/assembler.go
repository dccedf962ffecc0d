// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package assembler builds the build-tool configuration object from the
// deployer credentials: a static block of compiler, local network and
// reporter settings, merged with the remote network table the credentials
// unlock.
package assembler

import (
	"fmt"

	"dario.cat/mergo"

	"github.com/MKhiriev/hhconfig/internal/keys"
	"github.com/MKhiriev/hhconfig/models"
)

// Assembler produces [models.ToolConfig] values. It holds no state besides
// its options and is safe for concurrent use.
type Assembler struct {
	strictKeys bool
}

// Option configures an [Assembler].
type Option func(*Assembler)

// WithStrictKeys makes [Assembler.Assemble] reject a private key that is
// not a valid hex-encoded secp256k1 key instead of passing it through.
func WithStrictKeys(strict bool) Option {
	return func(a *Assembler) {
		a.strictKeys = strict
	}
}

// New constructs an [Assembler].
func New(opts ...Option) *Assembler {
	a := &Assembler{}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Assemble returns the complete configuration for creds. Remote network
// entries take precedence over static entries with the same name.
//
// The only error path is strict key checking: by default malformed keys are
// passed through verbatim.
func (a *Assembler) Assemble(creds models.Credentials) (models.ToolConfig, error) {
	if a.strictKeys && creds.HasRemoteAccess() {
		if err := keys.ValidatePrivateKey(creds.PrivateKey); err != nil {
			return models.ToolConfig{}, fmt.Errorf("%w: %w", ErrInvalidPrivateKey, err)
		}
	}

	cfg := StaticConfig(creds.GasReport)
	remote := BuildNetworkTable(creds.ProjectID, creds.PrivateKey)

	if err := mergeNetworks(cfg.Networks, remote); err != nil {
		return models.ToolConfig{}, err
	}

	return cfg, nil
}

func mergeNetworks(dst, src models.NetworkTable) error {
	if err := mergo.Merge(&dst, src, mergo.WithOverride); err != nil {
		return fmt.Errorf("%w: %w", ErrMergingNetworks, err)
	}
	return nil
}
