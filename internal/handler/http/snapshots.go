// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/hhconfig/internal/logger"
	"github.com/MKhiriev/hhconfig/internal/render"
	"github.com/MKhiriev/hhconfig/internal/service"
	"github.com/MKhiriev/hhconfig/internal/utils"
	"github.com/MKhiriev/hhconfig/models"
)

// snapshotIDHeader names the snapshot an artifact response was read from.
const snapshotIDHeader = "X-Snapshot-ID"

func (h *Handler) publishSnapshot(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	snapshot, err := h.services.ConfigService.Publish(r.Context())
	if err != nil {
		writeError(w, r, err, "error publishing snapshot")
		return
	}

	operator, _ := utils.GetOperatorFromContext(r.Context())
	log.Info().Str("id", snapshot.ID).Str("operator", operator).Msg("snapshot published")

	// metadata only; the artifact is fetched through GET /api/snapshots/{id}
	snapshot.Config = nil
	w.Header().Set("Location", "/api/snapshots/"+snapshot.ID)
	if _, err = utils.WriteJSON(w, snapshot, http.StatusCreated); err != nil {
		log.Err(err).Str("func", "*Handler.publishSnapshot").Send()
	}
}

func (h *Handler) listSnapshots(w http.ResponseWriter, r *http.Request) {
	var limit uint64
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			writeError(w, r, service.ErrInvalidDataProvided, "bad limit")
			return
		}
		limit = parsed
	}

	snapshots, err := h.services.ConfigService.List(r.Context(), limit)
	if err != nil {
		writeError(w, r, err, "error listing snapshots")
		return
	}
	if snapshots == nil {
		snapshots = []models.Snapshot{}
	}

	if _, err = utils.WriteJSON(w, snapshots, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.listSnapshots").Send()
	}
}

func (h *Handler) getLatestSnapshot(w http.ResponseWriter, r *http.Request) {
	h.serveSnapshot(w, r, func() (models.Snapshot, error) {
		return h.services.ConfigService.Latest(r.Context())
	})
}

func (h *Handler) getSnapshot(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	h.serveSnapshot(w, r, func() (models.Snapshot, error) {
		return h.services.ConfigService.Get(r.Context(), id)
	})
}

func (h *Handler) serveSnapshot(w http.ResponseWriter, r *http.Request, load func() (models.Snapshot, error)) {
	format, err := render.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		writeError(w, r, err, "bad format requested")
		return
	}

	snapshot, err := load()
	if err != nil {
		writeError(w, r, err, "error loading snapshot")
		return
	}
	if snapshot.Config == nil {
		writeError(w, r, service.ErrUnsealingSnapshot, "snapshot has no configuration")
		return
	}

	w.Header().Set(snapshotIDHeader, snapshot.ID)
	w.Header().Set("Last-Modified", snapshot.CreatedAt.UTC().Format(http.TimeFormat))
	writeConfig(w, r, *snapshot.Config, format)
}
