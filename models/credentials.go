// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Credentials carries the values that unlock the remote networks of the
// produced configuration. Both fields are optional: an empty string means
// the value was not provided.
//
// Credentials are read once at startup and never modified afterwards.
type Credentials struct {
	// ProjectID is the RPC provider project identifier substituted into every
	// remote network URL.
	ProjectID string

	// PrivateKey is the hex-encoded deployer key, expected without the 0x
	// prefix. It is not validated unless strict key checking is enabled.
	PrivateKey string

	// GasReport enables the gas reporter when set to any truthy value.
	GasReport bool
}

// HasRemoteAccess reports whether both values required for the remote
// networks are present.
func (c Credentials) HasRemoteAccess() bool {
	return c.ProjectID != "" && c.PrivateKey != ""
}
