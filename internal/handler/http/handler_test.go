// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/hhconfig/internal/assembler"
	"github.com/MKhiriev/hhconfig/internal/logger"
	"github.com/MKhiriev/hhconfig/internal/mock"
	"github.com/MKhiriev/hhconfig/internal/render"
	"github.com/MKhiriev/hhconfig/internal/service"
	"github.com/MKhiriev/hhconfig/internal/utils"
	"github.com/MKhiriev/hhconfig/models"
)

const (
	testToken    = "valid-token"
	testOperator = "deployer"
)

type testEnv struct {
	router   *chi.Mux
	services *service.Services

	config  *mock.MockConfigService
	auth    *mock.MockAuthService
	appInfo *mock.MockAppInfoService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctrl := gomock.NewController(t)

	env := &testEnv{
		config:  mock.NewMockConfigService(ctrl),
		auth:    mock.NewMockAuthService(ctrl),
		appInfo: mock.NewMockAppInfoService(ctrl),
	}
	env.services = &service.Services{
		ConfigService:  env.config,
		AuthService:    env.auth,
		AppInfoService: env.appInfo,
	}
	env.router = NewHandler(env.services, logger.Nop()).Init()

	return env
}

// expectValidToken makes testToken resolve to testOperator.
func (e *testEnv) expectValidToken() {
	e.auth.EXPECT().ParseToken(gomock.Any(), testToken).
		Return(models.Token{Operator: testOperator}, nil)
}

func (e *testEnv) do(method, target, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	e.router.ServeHTTP(rr, req)
	return rr
}

func testConfig(t *testing.T) models.ToolConfig {
	t.Helper()
	cfg, err := assembler.New().Assemble(models.Credentials{ProjectID: "abc123", PrivateKey: "deadbeef"})
	require.NoError(t, err)
	return cfg
}

func decodeConfig(t *testing.T, body []byte) models.ToolConfig {
	t.Helper()
	var cfg models.ToolConfig
	require.NoError(t, json.Unmarshal(body, &cfg))
	return cfg
}

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler(t *testing.T) {
	svc := &service.Services{}
	log := logger.Nop()
	h := NewHandler(svc, log)

	require.NotNil(t, h)
	assert.Same(t, svc, h.services)
	assert.Same(t, log, h.logger)
}

// ─────────────────────────────────────────────
// GET /api/version, /api/networks
// ─────────────────────────────────────────────

func TestGetServerVersion(t *testing.T) {
	env := newTestEnv(t)
	env.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.4.0")

	rr := env.do(http.MethodGet, "/api/version", "")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "text/plain", rr.Header().Get("Content-Type"))
	assert.Equal(t, "1.4.0", rr.Body.String())
	assert.NotEmpty(t, rr.Header().Get(traceIDHeader))
}

func TestGetServerVersion_NotConfigured(t *testing.T) {
	h := NewHandler(&service.Services{}, logger.Nop())

	rr := httptest.NewRecorder()
	h.Init().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/version", nil))

	assert.Equal(t, http.StatusNotImplemented, rr.Code)
}

func TestGetNetworks(t *testing.T) {
	env := newTestEnv(t)

	rr := env.do(http.MethodGet, "/api/networks", "")

	require.Equal(t, http.StatusOK, rr.Code)
	var names []string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &names))
	assert.Equal(t, assembler.SupportedNetworks(), names)
}

// ─────────────────────────────────────────────
// GET /api/config
// ─────────────────────────────────────────────

func TestGetConfig_AnonymousIsRedacted(t *testing.T) {
	env := newTestEnv(t)
	env.config.EXPECT().Assemble(gomock.Any()).Return(testConfig(t), nil)

	rr := env.do(http.MethodGet, "/api/config", "")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.Equal(t, utils.Digest(rr.Body.Bytes()), rr.Header().Get(utils.DigestHeader))
	assert.NotContains(t, rr.Body.String(), "0xdeadbeef")

	cfg := decodeConfig(t, rr.Body.Bytes())
	assert.Equal(t, []string{"<redacted>"}, cfg.Networks[assembler.Mainnet].Accounts)
	assert.Equal(t, "https://mainnet.infura.io/v3/abc123", cfg.Networks[assembler.Mainnet].URL)
}

func TestGetConfig_AuthorizedSeesAccounts(t *testing.T) {
	env := newTestEnv(t)
	env.expectValidToken()
	env.config.EXPECT().Assemble(gomock.Any()).Return(testConfig(t), nil)

	rr := env.do(http.MethodGet, "/api/config", testToken)

	require.Equal(t, http.StatusOK, rr.Code)
	cfg := decodeConfig(t, rr.Body.Bytes())
	assert.Equal(t, []string{"0xdeadbeef"}, cfg.Networks[assembler.Kovan].Accounts)
}

func TestGetConfig_Formats(t *testing.T) {
	tests := []struct {
		name        string
		query       string
		wantStatus  int
		wantType    string
		wantPrefix  string
		wantAssembl bool
	}{
		{name: "default json", query: "", wantStatus: http.StatusOK, wantType: "application/json", wantPrefix: "{", wantAssembl: true},
		{name: "yaml", query: "?format=yaml", wantStatus: http.StatusOK, wantType: "application/yaml", wantPrefix: "solidity:", wantAssembl: true},
		{name: "js", query: "?format=js", wantStatus: http.StatusOK, wantType: "text/javascript", wantPrefix: "module.exports = ", wantAssembl: true},
		{name: "unknown", query: "?format=toml", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			if tt.wantAssembl {
				env.config.EXPECT().Assemble(gomock.Any()).Return(testConfig(t), nil)
			}

			rr := env.do(http.MethodGet, "/api/config"+tt.query, "")

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, tt.wantType, rr.Header().Get("Content-Type"))
				assert.Contains(t, rr.Body.String(), tt.wantPrefix)
			}
		})
	}
}

func TestGetConfig_InvalidToken(t *testing.T) {
	env := newTestEnv(t)
	env.auth.EXPECT().ParseToken(gomock.Any(), "stale").Return(models.Token{}, service.ErrTokenIsExpiredOrInvalid)

	rr := env.do(http.MethodGet, "/api/config", "stale")

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestGetConfig_MalformedAuthorizationHeader(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/api/config", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	rr := httptest.NewRecorder()
	env.router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestGetConfig_AssembleFails(t *testing.T) {
	env := newTestEnv(t)
	env.config.EXPECT().Assemble(gomock.Any()).Return(models.ToolConfig{}, service.ErrInvalidConfig)

	rr := env.do(http.MethodGet, "/api/config", "")

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.NotContains(t, rr.Body.String(), service.ErrInvalidConfig.Error())
}

// ─────────────────────────────────────────────
// routing
// ─────────────────────────────────────────────

func TestRoutes_UnsupportedMethodIsNotFound(t *testing.T) {
	env := newTestEnv(t)

	for _, tc := range []struct{ method, target string }{
		{http.MethodDelete, "/api/config"},
		{http.MethodPut, "/api/snapshots"},
		{http.MethodPost, "/api/version"},
	} {
		rr := env.do(tc.method, tc.target, "")
		assert.Equal(t, http.StatusNotFound, rr.Code, "%s %s", tc.method, tc.target)
	}
}

func TestRoutes_UnknownPath(t *testing.T) {
	env := newTestEnv(t)

	rr := env.do(http.MethodGet, "/api/user/login", "")

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestRoutes_PanicIsRecovered(t *testing.T) {
	env := newTestEnv(t)
	env.config.EXPECT().Assemble(gomock.Any()).DoAndReturn(func(context.Context) (models.ToolConfig, error) {
		panic("boom")
	})

	rr := env.do(http.MethodGet, "/api/config", "")

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestStatusFromError(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, statusFromError(service.ErrSnapshotNotFound))
	assert.Equal(t, http.StatusBadRequest, statusFromError(render.ErrUnknownFormat))
	assert.Equal(t, http.StatusUnauthorized, statusFromError(ErrEmptyAuthorizationHeader))
	assert.Equal(t, http.StatusInternalServerError, statusFromError(assert.AnError))
}
