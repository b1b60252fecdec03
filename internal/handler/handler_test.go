package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"

	"photocapture/internal/blob"
	"photocapture/internal/camera"
)

// ========================================
// Helper Function Tests
// ========================================

func TestAtoiDefault(t *testing.T) {
	tests := []struct {
		input    string
		def      int
		expected int
	}{
		{"10", 5, 10},
		{"1", 0, 1},
		{"999", 0, 999},
		{"", 5, 5},
		{"abc", 10, 10},
		{"-1", 5, 5},
		{"0", 5, 5},
		{"12.5", 5, 5},
	}

	for _, tt := range tests {
		result := atoiDefault(tt.input, tt.def)
		if result != tt.expected {
			t.Errorf("atoiDefault(%q, %d) = %d, expected %d", tt.input, tt.def, result, tt.expected)
		}
	}
}

func TestCameraErrorStatus(t *testing.T) {
	tests := []struct {
		err      error
		expected int
	}{
		{camera.ErrUnavailable, http.StatusServiceUnavailable},
		{camera.ErrPermissionDenied, http.StatusForbidden},
		{fmt.Errorf("/dev/video0: %w", camera.ErrDeviceNotFound), http.StatusNotFound},
		{&camera.AcquisitionError{Err: errors.New("busy")}, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		if got := cameraErrorStatus(tt.err); got != tt.expected {
			t.Errorf("cameraErrorStatus(%v) = %d, expected %d", tt.err, got, tt.expected)
		}
	}
}

// ========================================
// Blob Handler Tests
// ========================================

func TestBlobHandler(t *testing.T) {
	blobs := blob.NewRegistry()
	png := blobs.Create([]byte{1, 2, 3}, "image/png")
	untyped := blobs.Create([]byte("\xFF\xD8\xFF\xE0rest"), "")

	r := mux.NewRouter()
	r.HandleFunc(blob.URLPrefix+"{handle}", BlobHandler(blobs))

	tests := []struct {
		name        string
		path        string
		status      int
		contentType string
	}{
		{"typed", blob.URL(png), http.StatusOK, "image/png"},
		{"sniffed", blob.URL(untyped), http.StatusOK, "image/jpeg"},
		{"unknown", blob.URLPrefix + "missing", http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			if rec.Code != tt.status {
				t.Errorf("Expected status %d, got %d", tt.status, rec.Code)
			}
			if tt.contentType != "" && rec.Header().Get("Content-Type") != tt.contentType {
				t.Errorf("Expected content type %s, got %s", tt.contentType, rec.Header().Get("Content-Type"))
			}
		})
	}

	blobs.Revoke(png)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, blob.URL(png), nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected revoked handle to return 404, got %d", rec.Code)
	}
}
