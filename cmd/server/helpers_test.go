package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/phrazzld/workboard-api/internal/config"
	"github.com/phrazzld/workboard-api/internal/testdb"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Port:            8080,
			LogLevel:        "debug",
			ShutdownTimeout: 5 * time.Second,
		},
		Database: config.DatabaseConfig{
			URL:          testdb.URL,
			MaxOpenConns: 1,
		},
		CORS: config.CORSConfig{AllowedOrigins: []string{"https://board.example"}},
	}
}

// newTestApp wires the application against a fresh in-memory database.
func newTestApp(t *testing.T) *application {
	t.Helper()
	app, err := newApplication(testConfig(), testdb.Logger(), testdb.Open(t))
	require.NoError(t, err)
	return app
}

// do sends a JSON request through h and returns the recorded response.
func do(t *testing.T, h http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

// decode unmarshals a response body, failing the test on malformed JSON.
func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}
