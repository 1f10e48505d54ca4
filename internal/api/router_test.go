package api

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHealthCheck(t *testing.T) {
	for _, path := range []string{"/health", "/api/health"} {
		rr := doRequest(t, http.MethodGet, path, "", nil)
		require.Equal(t, http.StatusOK, rr.Code)
		require.JSONEq(t, `{"status":"ok"}`, rr.Body.String())
	}
}

func TestReadiness(t *testing.T) {
	for _, path := range []string{"/ready", "/api/ready"} {
		rr := doRequest(t, http.MethodGet, path, "", nil)
		require.Equal(t, http.StatusOK, rr.Code)
		require.Equal(t, ReadinessResponse{Status: "ready", Database: "ok"}, decode[ReadinessResponse](t, rr))
	}
}

func TestAccessLogOmitsTokens(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	handler := NewServer(testConfig, testStore, testServices, testHub, logger).Routes()

	jwt, _ := newUser(t)
	requests := []*http.Request{
		httptest.NewRequest(http.MethodGet, "/ws?token="+jwt, nil),
		httptest.NewRequest(http.MethodPost, "/api/auth/reset-password/SECRETRESETTOKEN123",
			strings.NewReader(`{"password":"another-horse"}`)),
		httptest.NewRequest(http.MethodGet, "/api/shared/SECRETSHARETOKEN456", nil),
	}
	for _, req := range requests {
		handler.ServeHTTP(httptest.NewRecorder(), req)
	}

	out := buf.String()
	require.Contains(t, out, "route=/ws")
	require.Contains(t, out, "route=/api/auth/reset-password/{token}")
	require.Contains(t, out, "route=/api/shared/{token}")
	require.NotContains(t, out, jwt)
	require.NotContains(t, out, "SECRETRESETTOKEN123")
	require.NotContains(t, out, "SECRETSHARETOKEN456")
}

func TestSecurityHeaders(t *testing.T) {
	rr := doRequest(t, http.MethodGet, "/health", "", nil)

	require.Equal(t, "nosniff", rr.Header().Get("X-Content-Type-Options"))
	require.Equal(t, "DENY", rr.Header().Get("X-Frame-Options"))
	require.Equal(t, "1; mode=block", rr.Header().Get("X-XSS-Protection"))
	require.Equal(t, developmentCSP, rr.Header().Get("Content-Security-Policy"))
}

func TestCORSPreflight(t *testing.T) {
	req := httptest.NewRequest(http.MethodOptions, "/api/files", nil)
	req.Header.Set("Origin", testFrontendURL)
	req.Header.Set("Access-Control-Request-Method", http.MethodPatch)
	rr := httptest.NewRecorder()

	testHandler.ServeHTTP(rr, req)

	require.Equal(t, testFrontendURL, rr.Header().Get("Access-Control-Allow-Origin"))
}

func TestMetricsEndpoint(t *testing.T) {
	doRequest(t, http.MethodGet, "/health", "", nil)

	rr := doRequest(t, http.MethodGet, "/metrics", "", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	require.Contains(t, rr.Body.String(), "docuvault_http_requests_total")
}

func TestUnknownRouteIsNotFound(t *testing.T) {
	rr := doRequest(t, http.MethodGet, "/api/nope", "", nil)
	require.Equal(t, http.StatusNotFound, rr.Code)
}
