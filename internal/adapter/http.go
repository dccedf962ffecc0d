// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/MKhiriev/hhconfig/internal/config"
	"github.com/MKhiriev/hhconfig/internal/logger"
	"github.com/MKhiriev/hhconfig/internal/render"
	"github.com/MKhiriev/hhconfig/internal/utils"
	"github.com/MKhiriev/hhconfig/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the HTTP implementation of
// [ServerAdapter] from cfg. The token in cfg, if any, is attached to every
// request.
//
// Returns an error if cfg.HTTPAddress is empty or not a valid URL.
func NewHTTPServerAdapter(cfg config.Adapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	a := &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}
	a.SetToken(cfg.Token)

	return a, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

func (h *httpServerAdapter) FetchConfig(ctx context.Context, format render.Format) ([]byte, error) {
	return h.fetchArtifact(ctx, "/api/config", format)
}

func (h *httpServerAdapter) FetchSnapshot(ctx context.Context, id string, format render.Format) ([]byte, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		id = LatestSnapshot
	}
	return h.fetchArtifact(ctx, "/api/snapshots/"+url.PathEscape(id), format)
}

func (h *httpServerAdapter) fetchArtifact(ctx context.Context, path string, format render.Format) ([]byte, error) {
	log := logger.FromContext(ctx)

	resp, err := h.authorized(ctx).
		SetQueryParam("format", string(format)).
		Get(path)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	body := resp.Body()
	if want := resp.Header().Get(utils.DigestHeader); want != "" {
		if got := utils.Digest(body); got != want {
			log.Error().Str("path", path).Str("want", want).Str("got", got).Msg("artifact digest mismatch")
			return nil, ErrDigestMismatch
		}
	}

	log.Debug().
		Str("path", path).
		Str("snapshot", resp.Header().Get("X-Snapshot-ID")).
		Int("size", len(body)).
		Msg("artifact fetched")

	return body, nil
}

func (h *httpServerAdapter) PublishSnapshot(ctx context.Context) (models.Snapshot, error) {
	var snapshot models.Snapshot

	resp, err := h.authorized(ctx).
		SetResult(&snapshot).
		Post("/api/snapshots")
	if err != nil {
		return models.Snapshot{}, fmt.Errorf("publish request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Snapshot{}, err
	}

	return snapshot, nil
}

func (h *httpServerAdapter) ListSnapshots(ctx context.Context, limit uint64) ([]models.Snapshot, error) {
	var snapshots []models.Snapshot

	req := h.authorized(ctx).SetResult(&snapshots)
	if limit > 0 {
		req.SetQueryParam("limit", strconv.FormatUint(limit, 10))
	}

	resp, err := req.Get("/api/snapshots")
	if err != nil {
		return nil, fmt.Errorf("list snapshots request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return snapshots, nil
}

// authorized starts a request carrying the bearer token, if one is set.
func (h *httpServerAdapter) authorized(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}
