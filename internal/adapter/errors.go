// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrNotImplemented      = errors.New("not supported by server")

	// ErrDigestMismatch is returned when an artifact body does not match the
	// digest header sent with it.
	ErrDigestMismatch = errors.New("artifact digest mismatch")
)
