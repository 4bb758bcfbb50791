// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/hbnb-api/internal/app"
	"github.com/MKhiriev/hbnb-api/internal/config"
	handlerhttp "github.com/MKhiriev/hbnb-api/internal/handler/http"
	"github.com/MKhiriev/hbnb-api/internal/logger"
	"github.com/MKhiriev/hbnb-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdapter(t *testing.T, serverURL string) ServerAdapter {
	t.Helper()
	a, err := NewHTTPServerAdapter(serverURL, time.Second, logger.Nop())
	require.NoError(t, err)
	return a
}

// newHBnBServer serves a fully assembled application.
func newHBnBServer(t *testing.T) *httptest.Server {
	t.Helper()
	resolver := config.NewResolver(config.WithEnvironment(map[string]string{}))
	application, err := app.NewAssembler(resolver, logger.Nop()).
		Assemble("testing", app.DefaultMounts(handlerhttp.Namespaces()...))
	require.NoError(t, err)

	buildInfo := models.NewAppBuildInfo("v1.2.3", "2026-10-17", "abc123")
	h := handlerhttp.NewHandler(application.Table(), application.Profile().Name, config.Server{}, buildInfo, logger.Nop())
	srv := httptest.NewServer(h.Init())
	t.Cleanup(srv.Close)
	return srv
}

// ── NewHTTPServerAdapter ────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{raw: "localhost:5000", want: "http://localhost:5000"},
		{raw: "  http://localhost:5000/  ", want: "http://localhost:5000"},
		{raw: "https://api.example.com", want: "https://api.example.com"},
		{raw: "", wantErr: true},
		{raw: "   ", wantErr: true},
		{raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHTTPServerAdapter_InvalidAddress(t *testing.T) {
	a, err := NewHTTPServerAdapter("", 0, logger.Nop())

	assert.Nil(t, a)
	assert.ErrorContains(t, err, "invalid server address")
}

// ── against a real server ───────────────────────────────────────────────────

func TestVersion(t *testing.T) {
	a := newTestAdapter(t, newHBnBServer(t).URL)

	version, err := a.Version(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "testing", version.Profile)
	assert.Equal(t, "1.0", version.APIVersion)
	assert.Equal(t, "v1.2.3", version.BuildVersion)
}

func TestDocument(t *testing.T) {
	a := newTestAdapter(t, newHBnBServer(t).URL)

	doc, err := a.Document(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "2.0", doc.Swagger)
	assert.Equal(t, "HBnB API", doc.Info.Title)
	assert.Contains(t, doc.Paths, "/api/v1/users/")
}

func TestProbe(t *testing.T) {
	a := newTestAdapter(t, newHBnBServer(t).URL)

	tests := []struct {
		method     string
		path       string
		wantStatus int
		wantErr    error
	}{
		{http.MethodGet, "/api/v1/users/", http.StatusNotImplemented, ErrNotImplemented},
		{http.MethodDelete, "/api/v1/reviews/r-1", http.StatusNotImplemented, ErrNotImplemented},
		{http.MethodDelete, "/api/v1/users/u-1", http.StatusMethodNotAllowed, ErrMethodNotAllowed},
		{http.MethodGet, "/api/v2/users/", http.StatusNotFound, ErrNotFound},
		{http.MethodGet, "/api/version", http.StatusOK, nil},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			status, err := a.Probe(context.Background(), tt.method, tt.path)

			assert.Equal(t, tt.wantStatus, status)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorContains(t, err, "trace_id=")
		})
	}
}

// ── error mapping ───────────────────────────────────────────────────────────

func TestMapHTTPError_NonJSONBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("short and stout\n"))
	}))
	defer srv.Close()

	status, err := newTestAdapter(t, srv.URL).Probe(context.Background(), http.MethodGet, "/")

	assert.Equal(t, http.StatusTeapot, status)
	assert.EqualError(t, err, "http 418: short and stout")
}

func TestMapHTTPError_EmptyBodyUsesStatusText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).Version(context.Background())

	assert.ErrorIs(t, err, ErrTooManyRequests)
	assert.EqualError(t, err, "too many requests: Too Many Requests")
}

func TestVersion_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestAdapter(t, srv.URL).Version(ctx)

	assert.ErrorIs(t, err, context.Canceled)
}
