// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router.
//
//	GET  /api/version
//	GET  /api/networks
//	GET  /api/config?format=json|yaml|js
//	GET  /api/snapshots
//	POST /api/snapshots            (token required)
//	GET  /api/snapshots/latest
//	GET  /api/snapshots/{id}
//
// Artifact routes redact signing accounts unless the caller presents a
// valid bearer token.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, middleware.Recoverer)

	router.Route("/api", func(r chi.Router) {
		r.Get("/version", h.getServerVersion)
		r.Get("/networks", h.getNetworks)

		r.Group(func(r chi.Router) {
			r.Use(h.optionalAuth, withGZip)
			r.Get("/config", h.getConfig)
			r.Get("/snapshots", h.listSnapshots)
			r.Get("/snapshots/latest", h.getLatestSnapshot)
			r.Get("/snapshots/{id}", h.getSnapshot)
		})

		r.With(h.auth).Post("/snapshots", h.publishSnapshot)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
