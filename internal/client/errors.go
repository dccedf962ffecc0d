// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "errors"

var (
	// ErrNoConfigSource is returned by NewApp when neither local services
	// nor a server adapter are available.
	ErrNoConfigSource = errors.New("no configuration source")

	// ErrTokensUnavailable is returned when a token is requested but no
	// auth service is configured.
	ErrTokensUnavailable = errors.New("token issuing is not configured")
)
