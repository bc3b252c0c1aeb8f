package shared

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureDefaultLogger swaps the default logger for one writing into a builder.
func captureDefaultLogger(t *testing.T) *strings.Builder {
	t.Helper()

	var logBuf strings.Builder
	oldLogger := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&logBuf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(oldLogger) })
	return &logBuf
}

func requestWithTrace(traceID string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/generate/video", nil)
	if traceID == "" {
		return req
	}
	return req.WithContext(context.WithValue(req.Context(), TraceIDKey, traceID))
}

func TestRespondWithJSON(t *testing.T) {
	w := httptest.NewRecorder()

	RespondWithJSON(w, requestWithTrace(""), http.StatusOK, map[string]interface{}{
		"type":    "text",
		"content": "Try our new blend!",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "Try our new blend!", response["content"])
}

// Test for json encoding errors - this requires a data type that can't be JSON encoded
type UnencodableType struct {
	Circular *UnencodableType
}

func TestRespondWithJSONEncodingError(t *testing.T) {
	logBuf := captureDefaultLogger(t)
	w := httptest.NewRecorder()

	data := &UnencodableType{}
	data.Circular = data // Circular reference that will fail to encode

	RespondWithJSON(w, requestWithTrace(""), http.StatusOK, data)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, logBuf.String(), "failed to encode JSON response")
}

func TestRespondWithError(t *testing.T) {
	w := httptest.NewRecorder()

	RespondWithError(w, requestWithTrace("test-trace-id"), http.StatusBadRequest, "Invalid request")

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "Invalid request", response.Error)
	assert.Equal(t, "test-trace-id", response.TraceID)
	assert.Empty(t, response.Reason)
}

func TestRespondWithErrorAndLog(t *testing.T) {
	tests := []struct {
		name             string
		statusCode       int
		message          string
		err              error
		opts             []ResponseOption
		expectedLogLevel string
	}{
		{
			name:             "server error",
			statusCode:       http.StatusBadGateway,
			message:          "Failed to generate video.",
			err:              errors.New("upstream reset"),
			expectedLogLevel: "ERROR",
		},
		{
			name:             "client error with default log level",
			statusCode:       http.StatusBadRequest,
			message:          "Bad request",
			err:              errors.New("invalid input"),
			expectedLogLevel: "DEBUG",
		},
		{
			name:             "client error with elevated log level",
			statusCode:       http.StatusPaymentRequired,
			message:          "A paid API key is required",
			err:              errors.New("no credential"),
			opts:             []ResponseOption{WithElevatedLogLevel()},
			expectedLogLevel: "WARN",
		},
		{
			name:             "rate limiting error",
			statusCode:       http.StatusTooManyRequests,
			message:          "Too many requests",
			err:              errors.New("rate limit exceeded"),
			expectedLogLevel: "WARN", // 429 is always logged at WARN level
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			logBuf := captureDefaultLogger(t)
			w := httptest.NewRecorder()

			RespondWithErrorAndLog(w, requestWithTrace("test-trace-id"), tc.statusCode, tc.message, tc.err, tc.opts...)

			assert.Equal(t, tc.statusCode, w.Code)

			var response ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			assert.Equal(t, tc.message, response.Error)
			assert.Equal(t, "test-trace-id", response.TraceID)

			logOutput := logBuf.String()
			assert.Contains(t, logOutput, "level="+tc.expectedLogLevel)
			assert.Contains(t, logOutput, "trace_id=test-trace-id")
			assert.Contains(t, logOutput, "error_type=")
		})
	}
}

func TestRespondWithErrorAndLog_ReasonAndRedaction(t *testing.T) {
	logBuf := captureDefaultLogger(t)
	w := httptest.NewRecorder()
	err := errors.New("GET https://host/v1?alt=media&key=super-secret-key-123 returned 403")

	RespondWithErrorAndLog(w, requestWithTrace("t1"), http.StatusPaymentRequired,
		"A paid API key is required", err, WithReason("credential_required"))

	var response ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "credential_required", response.Reason)
	assert.NotContains(t, w.Body.String(), "super-secret-key-123")

	assert.NotContains(t, logBuf.String(), "super-secret-key-123")
	assert.Contains(t, logBuf.String(), "reason=credential_required")
}

func TestResponseOptions(t *testing.T) {
	opts := responseOptions{}
	WithElevatedLogLevel()(&opts)
	WithReason("credential_required")(&opts)

	assert.True(t, opts.elevateLogLevel)
	assert.Equal(t, "credential_required", opts.reason)
}
