// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/hhconfig/internal/logger"
	"github.com/MKhiriev/hhconfig/internal/render"
	"github.com/MKhiriev/hhconfig/internal/service"
	"github.com/MKhiriev/hhconfig/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrInvalidSnapshotID:       http.StatusBadRequest,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrSnapshotNotFound:        http.StatusNotFound,
	service.ErrSnapshotsDisabled:       http.StatusNotImplemented,
	service.ErrVersionIsNotSpecified:   http.StatusNotImplemented,
	service.ErrInvalidConfig:           http.StatusInternalServerError,
	render.ErrUnknownFormat:            http.StatusBadRequest,
	ErrAppInfoUnavailable:              http.StatusNotImplemented,
	ErrEmptyAuthorizationHeader:        http.StatusUnauthorized,
	ErrInvalidAuthorizationHeader:      http.StatusUnauthorized,

	store.ErrSnapshotExists:     http.StatusConflict,
	store.ErrSnapshotNotFound:   http.StatusNotFound,
	store.ErrSnapshotNotSaved:   http.StatusInternalServerError,
	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError logs err and answers with the mapped status. Server-side
// failures hide the error text from the caller.
func writeError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	status := statusFromError(err)

	logger.FromRequest(r).Err(err).Int("status", status).Msg(msg)

	if status >= http.StatusInternalServerError && status != http.StatusNotImplemented {
		http.Error(w, http.StatusText(status), status)
		return
	}
	http.Error(w, err.Error(), status)
}
