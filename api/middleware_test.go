package api_test

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

	"github.com/warp/salary-engine/api"
)

func TestRequestLogger_LogsCompletedRequest(t *testing.T) {
	// GIVEN: A JSON logger and a handler that writes 201
	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, nil))

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte("hello"))
	})
	h := middleware.RequestID(api.RequestLogger(log)(next))

	// WHEN: Serving one request
	req := httptest.NewRequest(http.MethodPost, "/api/uk-tax/calculate", nil)
	h.ServeHTTP(httptest.NewRecorder(), req)

	// THEN: The last line records status, size and request id
	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.NotEmpty(t, lines)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[len(lines)-1], &entry))
	assert.Equal(t, "request completed", entry["msg"])
	assert.Equal(t, float64(http.StatusCreated), entry["status"])
	assert.Equal(t, float64(5), entry["bytes"])
	assert.Equal(t, "/api/uk-tax/calculate", entry["path"])
	assert.NotEmpty(t, entry["request_id"])
}
