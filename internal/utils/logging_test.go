package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomHandler(t *testing.T) {
	var console, file bytes.Buffer
	logger := slog.New(NewCustomHandler(&console, &file, slog.LevelInfo))

	logger.With(slog.String("component", "list")).Warn("slow query", slog.Int("rows", 12))
	logger.Debug("hidden")

	var record map[string]any
	require.NoError(t, json.Unmarshal(file.Bytes(), &record))
	assert.Equal(t, JobName, record["job"])
	assert.Equal(t, "slow query", record["msg"])
	assert.Equal(t, "list", record["component"])
	assert.Contains(t, record, "timestamp")

	assert.Contains(t, console.String(), "slow query component=list rows=12")
	assert.NotContains(t, console.String(), "hidden")
}

func TestMiddleware(t *testing.T) {
	var console, file bytes.Buffer
	logger := slog.New(NewCustomHandler(&console, &file, slog.LevelInfo))

	h := middleware.RequestID(Middleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/employee/employee-list", nil))

	var record map[string]any
	require.NoError(t, json.Unmarshal(file.Bytes(), &record))
	assert.Equal(t, "/api/employee/employee-list", record["path"])
	assert.Equal(t, float64(http.StatusTeapot), record["status"])
	assert.NotEqual(t, "unknown", record["request_id"])
}
