// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/MKhiriev/hhconfig/models"
)

// Field name constants used to restrict snapshot validation to a subset of
// fields.
const (
	FieldID        = "id"
	FieldSealed    = "sealed"
	FieldCreatedAt = "created_at"
	FieldLimit     = "limit"
)

// MaxListLimit bounds a single snapshot listing.
const MaxListLimit = 100

// ListRequest is the validated input of a snapshot listing.
type ListRequest struct {
	Limit uint64
}

type SnapshotValidator struct {
}

func NewSnapshotValidator() Validator {
	return &SnapshotValidator{}
}

// Validate accepts [models.Snapshot] and [ListRequest] values. With no
// fields every rule for the type is applied.
func (v *SnapshotValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Snapshot:
		return v.validateSnapshot(value, fields...)
	case *models.Snapshot:
		return v.validateSnapshot(*value, fields...)
	case ListRequest:
		return v.validateListRequest(value)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *SnapshotValidator) validateSnapshot(s models.Snapshot, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldSealed, FieldCreatedAt}
	}

	for _, field := range fields {
		switch field {
		case FieldID:
			if err := validateSnapshotID(s.ID); err != nil {
				return err
			}
		case FieldSealed:
			if s.Sealed == "" {
				return ErrEmptySealedPayload
			}
		case FieldCreatedAt:
			if s.CreatedAt.IsZero() {
				return ErrMissingCreatedAt
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}

func (v *SnapshotValidator) validateListRequest(r ListRequest) error {
	if r.Limit > MaxListLimit {
		return fmt.Errorf("%w: %d exceeds %d", ErrInvalidLimit, r.Limit, MaxListLimit)
	}
	return nil
}

func validateSnapshotID(id string) error {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSnapshotID, err)
	}
	if parsed.Version() != 7 {
		return fmt.Errorf("%w: version %d", ErrInvalidSnapshotID, parsed.Version())
	}
	return nil
}
