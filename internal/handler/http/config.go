// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/hhconfig/internal/assembler"
	"github.com/MKhiriev/hhconfig/internal/logger"
	"github.com/MKhiriev/hhconfig/internal/render"
	"github.com/MKhiriev/hhconfig/internal/utils"
	"github.com/MKhiriev/hhconfig/models"
)

func (h *Handler) getNetworks(w http.ResponseWriter, r *http.Request) {
	if _, err := utils.WriteJSON(w, assembler.SupportedNetworks(), http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.getNetworks").Send()
	}
}

func (h *Handler) getConfig(w http.ResponseWriter, r *http.Request) {
	format, err := render.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		writeError(w, r, err, "bad format requested")
		return
	}

	cfg, err := h.services.ConfigService.Assemble(r.Context())
	if err != nil {
		writeError(w, r, err, "error assembling configuration")
		return
	}

	writeConfig(w, r, cfg, format)
}

// writeConfig renders cfg as the response body. Accounts are redacted
// unless an operator was authorized for this request.
func writeConfig(w http.ResponseWriter, r *http.Request, cfg models.ToolConfig, format render.Format) {
	log := logger.FromRequest(r)

	operator, authorized := utils.GetOperatorFromContext(r.Context())
	if !authorized {
		cfg = render.Redact(cfg)
	}

	body, err := render.Render(cfg, format)
	if err != nil {
		writeError(w, r, err, "error rendering configuration")
		return
	}

	log.Debug().
		Str("format", string(format)).
		Bool("redacted", !authorized).
		Str("operator", operator).
		Msg("serving configuration")

	if _, err = utils.WriteArtifact(w, body, format.ContentType()); err != nil {
		log.Err(err).Msg("error writing configuration")
	}
}
