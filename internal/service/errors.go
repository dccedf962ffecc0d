// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidDataProvided   = errors.New("invalid data provided")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrInvalidConfig     = errors.New("assembled configuration is invalid")
	ErrSnapshotsDisabled = errors.New("snapshot storage is not configured")
	ErrSnapshotNotFound  = errors.New("snapshot not found")
	ErrInvalidSnapshotID = errors.New("invalid snapshot id")
	ErrSealingSnapshot   = errors.New("error sealing snapshot")
	ErrUnsealingSnapshot = errors.New("error unsealing snapshot")
	ErrSavingSnapshot    = errors.New("error saving snapshot")
	ErrLoadingSnapshot   = errors.New("error loading snapshot")
	ErrListingSnapshots  = errors.New("error listing snapshots")
)
