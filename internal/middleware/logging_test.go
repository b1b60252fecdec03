package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"photocapture/internal/logger"
)

func TestRequestLogger(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		status   int
		expected string
	}{
		{"api request", "/api/state", http.StatusOK, "INFO    GET /api/state -> 200"},
		{"server error", "/api/upload", http.StatusBadGateway, "ERROR   GET /api/upload -> 502"},
		{"static skipped", "/static/app.js", http.StatusOK, ""},
		{"blob skipped", "/blob/abc", http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			handler := RequestLogger(logger.NewWriterLogger(&buf))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			if rec.Code != tt.status {
				t.Errorf("Expected status %d, got %d", tt.status, rec.Code)
			}
			if tt.expected == "" {
				if buf.Len() != 0 {
					t.Errorf("Expected no log output, got %q", buf.String())
				}
				return
			}
			if !strings.Contains(buf.String(), tt.expected) {
				t.Errorf("Expected log containing %q, got %q", tt.expected, buf.String())
			}
		})
	}
}

func TestRequestLogger_HijackUnsupported(t *testing.T) {
	rec := &statusRecorder{ResponseWriter: httptest.NewRecorder()}
	if _, _, err := rec.Hijack(); err == nil {
		t.Error("Expected error when the underlying writer cannot hijack")
	}
}
