package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"moto-catalog-backend/internal/api/handlers"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPinger struct {
	err error
}

func (p stubPinger) Ping(context.Context) error {
	return p.err
}

func serveHealth(h *handlers.HealthHandler, path string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/health", h.Health)
	router.GET("/health/ready", h.Ready)
	router.GET("/health/live", h.Live)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestHealth_WithoutDatabase(t *testing.T) {
	w := serveHealth(handlers.NewHealthHandler(nil, stubPinger{}), "/health")

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	var got handlers.HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "unhealthy", got.Status)
	assert.Equal(t, "healthy", got.Services["cache"])
	assert.Contains(t, got.Services["database"], "error")
}

func TestHealth_CacheStates(t *testing.T) {
	testCases := []struct {
		name     string
		cache    handlers.Pinger
		expected string
	}{
		{"disabled", nil, "disabled"},
		{"degraded", stubPinger{err: errors.New("connection refused")}, "degraded: connection refused"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := serveHealth(handlers.NewHealthHandler(nil, tc.cache), "/health/ready")

			var got map[string]interface{}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
			services := got["services"].(map[string]interface{})
			assert.Equal(t, tc.expected, services["cache"])
			assert.Equal(t, false, got["ready"])
		})
	}
}

func TestLive(t *testing.T) {
	w := serveHealth(handlers.NewHealthHandler(nil, nil), "/health/live")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"alive":true`)
}
