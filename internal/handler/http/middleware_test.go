// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/hhconfig/internal/logger"
	"github.com/MKhiriev/hhconfig/internal/utils"
)

func newBareHandler() *Handler {
	return &Handler{logger: logger.Nop()}
}

// ---- withTraceID ----

func TestWithTraceID(t *testing.T) {
	tests := []struct {
		name           string
		requestTraceID string
	}{
		{name: "incoming trace id is reused", requestTraceID: "my-custom-trace-id"},
		{name: "trace id is generated", requestTraceID: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var nextCalled bool
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				assert.NotNil(t, zerolog.Ctx(r.Context()))
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.requestTraceID != "" {
				req.Header.Set(traceIDHeader, tt.requestTraceID)
			}
			rr := httptest.NewRecorder()
			newBareHandler().withTraceID(next).ServeHTTP(rr, req)

			require.True(t, nextCalled)
			got := rr.Header().Get(traceIDHeader)
			if tt.requestTraceID != "" {
				assert.Equal(t, tt.requestTraceID, got)
				return
			}
			_, err := uuid.Parse(got)
			assert.NoError(t, err)
		})
	}
}

// ---- withLogging ----

func TestWithLogging_RecordsStatusAndSize(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: &logger.Logger{Logger: zerolog.New(&buf)}}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		w.Write([]byte("short and stout"))
	})

	rr := httptest.NewRecorder()
	h.withTraceID(h.withLogging(next)).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/config", nil))

	assert.Equal(t, http.StatusTeapot, rr.Code)
	out := buf.String()
	assert.Contains(t, out, `"status":418`)
	assert.Contains(t, out, `"size":15`)
	assert.Contains(t, out, `"uri":"/api/config"`)
	assert.Contains(t, out, `"trace_id"`)
}

// ---- responseWriter ----

func TestResponseWriter(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := &responseWriter{ResponseWriter: rec}

	n, err := rw.Write([]byte("abc"))
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	rw.WriteHeader(http.StatusNotFound)
	rw.Write([]byte("de"))

	assert.Equal(t, http.StatusOK, rw.status, "implicit 200 wins over later WriteHeader")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 5, rw.size)
}

// ---- withGZip ----

func TestWithGZip(t *testing.T) {
	payload := []byte(strings.Repeat(`{"networks":{}}`, 50))
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteArtifact(w, payload, "application/json")
	})
	fail := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadRequest)
	})

	tests := []struct {
		name           string
		handler        http.Handler
		acceptEncoding string
		wantEncoded    bool
		wantBody       string
	}{
		{name: "compressed", handler: ok, acceptEncoding: "gzip, deflate", wantEncoded: true, wantBody: string(payload)},
		{name: "client without gzip", handler: ok, acceptEncoding: "", wantBody: string(payload)},
		{name: "errors stay plain", handler: fail, acceptEncoding: "gzip", wantBody: "nope\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.acceptEncoding != "" {
				req.Header.Set("Accept-Encoding", tt.acceptEncoding)
			}
			rr := httptest.NewRecorder()
			withGZip(tt.handler).ServeHTTP(rr, req)

			body := rr.Body.Bytes()
			if tt.wantEncoded {
				assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))
				assert.Empty(t, rr.Header().Get("Content-Length"))
				zr, err := gzip.NewReader(bytes.NewReader(body))
				require.NoError(t, err)
				body, err = io.ReadAll(zr)
				require.NoError(t, err)
				assert.Less(t, rr.Body.Len(), len(payload))
			} else {
				assert.Empty(t, rr.Header().Get("Content-Encoding"))
			}
			assert.Equal(t, tt.wantBody, string(body))
		})
	}
}

func TestWithGZip_ConcurrentRequests(t *testing.T) {
	handler := withGZip(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(r.URL.Query().Get("v")))
	}))

	var wg sync.WaitGroup
	for i := range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			want := strings.Repeat("x", i+1)

			req := httptest.NewRequest(http.MethodGet, "/?v="+want, nil)
			req.Header.Set("Accept-Encoding", "gzip")
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			zr, err := gzip.NewReader(rr.Body)
			if !assert.NoError(t, err) {
				return
			}
			got, err := io.ReadAll(zr)
			assert.NoError(t, err)
			assert.Equal(t, want, string(got))
		}()
	}
	wg.Wait()
}

// ---- CheckHTTPMethod ----

func TestCheckHTTPMethod(t *testing.T) {
	router := chi.NewRouter()
	router.Route("/api", func(r chi.Router) {
		r.Get("/config", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
		r.Get("/items/{id}", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	})
	router.MethodNotAllowed(CheckHTTPMethod(router))

	tests := []struct {
		method     string
		target     string
		wantStatus int
	}{
		{http.MethodGet, "/api/config", http.StatusOK},
		{http.MethodPost, "/api/config", http.StatusNotFound},
		{http.MethodDelete, "/api/items/1", http.StatusNotFound},
		{http.MethodGet, "/api/items/1", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.target, func(t *testing.T) {
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(tt.method, tt.target, nil))
			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

// ---- auth ----

func TestAuth_SetsOperator(t *testing.T) {
	env := newTestEnv(t)
	env.expectValidToken()
	h := NewHandler(env.services, logger.Nop())

	var operator string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		operator, _ = utils.GetOperatorFromContext(r.Context())
	})

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set("Authorization", "bearer "+testToken)
	rr := httptest.NewRecorder()
	h.auth(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, testOperator, operator)
}

func TestOptionalAuth_Anonymous(t *testing.T) {
	env := newTestEnv(t)
	h := NewHandler(env.services, logger.Nop())

	var authorized bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, authorized = utils.GetOperatorFromContext(r.Context())
	})

	rr := httptest.NewRecorder()
	h.optionalAuth(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.False(t, authorized)
}
