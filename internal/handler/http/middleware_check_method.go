// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
)

var errRouteFound = errors.New("route found")

// CheckHTTPMethod returns an [http.HandlerFunc] that is intended to be
// registered as the router's MethodNotAllowed handler via
// [chi.Mux.MethodNotAllowed].
//
// Chi answers 405 when a path matches but the method does not. This handler
// answers 404 instead, so callers using an unsupported method learn nothing
// about which routes exist. If the method turns out to be registered for the
// exact path (mounted sub-routers included) the request is served normally.
//
// Only literal patterns are compared; parameterised segments such as
// /api/snapshots/{id} are never expanded.
func CheckHTTPMethod(router chi.Router) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		requestedURL := r.URL.Path
		requestedHTTPMethod := r.Method

		err := chi.Walk(router, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
			if method == requestedHTTPMethod && route == requestedURL {
				return errRouteFound
			}
			return nil
		})

		if !errors.Is(err, errRouteFound) {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		router.ServeHTTP(w, r)
	}
}
