package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/workboard-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealth(t *testing.T) {
	tests := []struct {
		name           string
		ping           Pinger
		expectedStatus int
		expectedBody   HealthResponse
	}{
		{
			name:           "store reachable",
			ping:           func(context.Context) error { return nil },
			expectedStatus: http.StatusOK,
			expectedBody:   HealthResponse{Status: "ok", Database: "ok"},
		},
		{
			name:           "store unreachable",
			ping:           func(context.Context) error { return errors.New("dial tcp: connection refused") },
			expectedStatus: http.StatusServiceUnavailable,
			expectedBody:   HealthResponse{Status: "unavailable", Database: "unreachable"},
		},
		{
			name:           "no pinger",
			expectedStatus: http.StatusOK,
			expectedBody:   HealthResponse{Status: "ok", Database: "ok"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, log := logger.NewTestLogger(t)
			rec := httptest.NewRecorder()
			NewHealthHandler(tt.ping, log).Health(rec, newRequest(t, http.MethodGet, "/health", nil, nil))

			require.Equal(t, tt.expectedStatus, rec.Code)
			var got HealthResponse
			decodeBody(t, rec, &got)
			assert.Equal(t, tt.expectedBody, got)
		})
	}
}
