package rest

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

//go:generate moq -out user_service_mock_test.go -pkg rest . userService
//go:generate moq -out goal_service_mock_test.go -pkg rest . goalService
//go:generate moq -out check_in_service_mock_test.go -pkg rest . checkInService
//go:generate moq -out reminder_service_mock_test.go -pkg rest . reminderService
//go:generate moq -out template_service_mock_test.go -pkg rest . templateService
//go:generate moq -out chat_service_mock_test.go -pkg rest . chatService

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

func ptr[T any](v T) *T { return &v }

// serve routes a single request through a mux holding one pattern, so that
// path values are populated the way the real router does it.
func serve(t *testing.T, pattern string, h http.HandlerFunc, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	mux := http.NewServeMux()
	mux.HandleFunc(pattern, h)

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v), "body: %s", rec.Body.String())
	return v
}
