// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package assembler

import "errors"

var (
	// ErrInvalidPrivateKey is returned by [Assembler.Assemble] in strict mode
	// when the private key would unlock the remote networks but is not a
	// usable key.
	ErrInvalidPrivateKey = errors.New("invalid private key")

	// ErrMergingNetworks is returned when the remote network table cannot be
	// merged into the static configuration.
	ErrMergingNetworks = errors.New("error merging network tables")
)
