// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidSnapshotID   = errors.New("invalid snapshot ID")
	ErrEmptySealedPayload  = errors.New("sealed payload is required")
	ErrMissingCreatedAt    = errors.New("creation time is required")
	ErrUnknownNetwork      = errors.New("unknown network")
	ErrIncompleteNetworks  = errors.New("remote networks must be all or none")
	ErrInvalidDescriptor   = errors.New("invalid network descriptor")
	ErrMissingCompiler     = errors.New("compiler version is required")
	ErrMissingLocalNetwork = errors.New("local network is required")
	ErrInvalidLimit        = errors.New("invalid list limit")
)
