// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Snapshot is a published, persisted copy of an assembled [ToolConfig].
//
// The configuration itself is stored sealed because the remote network
// entries embed the deployer private key. Config is only populated after a
// successful unseal.
type Snapshot struct {
	// ID is a UUIDv7 assigned at publish time.
	ID string `json:"id"`

	// Networks lists the network names present in the configuration.
	Networks []string `json:"networks"`

	// Sealed is the encrypted JSON encoding of the configuration.
	Sealed string `json:"-"`

	// CreatedAt is the publish timestamp.
	CreatedAt time.Time `json:"created_at"`

	// Config is the unsealed configuration.
	Config *ToolConfig `json:"config,omitempty"`
}
