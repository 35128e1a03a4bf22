package main

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"helpcenter/internal/config"
	"helpcenter/internal/faq"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T, enableMetrics bool) http.Handler {
	t.Helper()
	svc, err := faq.NewDefaultService()
	require.NoError(t, err)

	cfg := &config.Config{Port: "0", LogLevel: "info", EnableMCP: true, EnableMetrics: enableMetrics}
	h, err := newRouter(cfg, svc, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	return h
}

func TestRouter_Endpoints(t *testing.T) {
	h := newTestRouter(t, true)

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
		wantBody   string
	}{
		{name: "page", method: http.MethodGet, path: "/", wantStatus: http.StatusOK, wantBody: "Frequently Asked Questions"},
		{name: "fragment", method: http.MethodGet, path: "/fragments/faqs?q=zzz", wantStatus: http.StatusOK, wantBody: faq.NoResultsMessage},
		{name: "api faqs", method: http.MethodGet, path: "/api/faqs?category=Payments", wantStatus: http.StatusOK, wantBody: `"count":1`},
		{name: "api categories", method: http.MethodGet, path: "/api/categories", wantStatus: http.StatusOK, wantBody: `"name":"Booking"`},
		{name: "stylesheet", method: http.MethodGet, path: "/static/app.css", wantStatus: http.StatusOK, wantBody: "--brand: #950B47"},
		{name: "logo", method: http.MethodGet, path: "/static/logo.svg", wantStatus: http.StatusOK, wantBody: "<svg"},
		{name: "health", method: http.MethodGet, path: "/health", wantStatus: http.StatusOK, wantBody: "ok"},
		{name: "unknown page", method: http.MethodGet, path: "/missing", wantStatus: http.StatusNotFound},
		{name: "wrong method", method: http.MethodPost, path: "/api/faqs", wantStatus: http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, http.NoBody))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.Contains(t, rec.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestRouter_MetricsRecordsRequests(t *testing.T) {
	h := newTestRouter(t, true)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", http.NoBody))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", http.NoBody))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `helpcenter_http_requests_total{code="200",route="GET /health"} 1`)
}

func TestRouter_MetricsDisabled(t *testing.T) {
	h := newTestRouter(t, false)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", http.NoBody))
	// Falls through to the help page, which only serves "/"
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
