// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/hhconfig/internal/logger"
	"github.com/MKhiriev/hhconfig/internal/utils"
)

// auth rejects requests without a valid bearer token with 401. On success
// the operator named in the token is stored under [utils.OperatorCtxKey].
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") == "" {
			writeError(w, r, ErrEmptyAuthorizationHeader, "authorization required")
			return
		}

		ctx, err := h.authorize(r)
		if err != nil {
			writeError(w, r, err, "authorization failed")
			return
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// optionalAuth lets anonymous requests through; their artifacts are
// redacted downstream. A token that is present but invalid is still an
// error, so a misconfigured client does not silently get redacted output.
func (h *Handler) optionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") == "" {
			next.ServeHTTP(w, r)
			return
		}

		ctx, err := h.authorize(r)
		if err != nil {
			writeError(w, r, err, "authorization failed")
			return
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (h *Handler) authorize(r *http.Request) (context.Context, error) {
	tokenString, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
	if err != nil {
		return nil, ErrInvalidAuthorizationHeader
	}

	ctx := r.Context()
	token, err := h.services.AuthService.ParseToken(ctx, tokenString)
	if err != nil {
		return nil, err
	}

	logger.FromRequest(r).Debug().Str("operator", token.Operator).Msg("request authorized")

	return context.WithValue(ctx, utils.OperatorCtxKey, token.Operator), nil
}
