package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "PHOTO_API_URL", "CAMERA_MODE", "PREVIEW_INTERVAL_MS", "LOG_DIR"} {
		t.Setenv(key, "")
	}
	for _, key := range []string{"FRONT_CAMERA_DEVICE", "REAR_CAMERA_DEVICE", "JOURNAL_PATH"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg := Load(filepath.Join(t.TempDir(), "missing.env"))

	if cfg.Port != 8080 {
		t.Errorf("Port = %d, want 8080", cfg.Port)
	}
	if cfg.PhotoAPIBaseURL != "http://localhost:5000" {
		t.Errorf("PhotoAPIBaseURL = %q", cfg.PhotoAPIBaseURL)
	}
	if cfg.CameraMode != "environment" {
		t.Errorf("CameraMode = %q, want environment", cfg.CameraMode)
	}
	if cfg.FrontCameraDevice != "1" || cfg.RearCameraDevice != "0" {
		t.Errorf("camera devices = %q/%q, want 1/0", cfg.FrontCameraDevice, cfg.RearCameraDevice)
	}
	if cfg.PreviewInterval != 100 {
		t.Errorf("PreviewInterval = %d, want 100", cfg.PreviewInterval)
	}
	if cfg.JournalPath == "" {
		t.Error("JournalPath should default to a file path")
	}
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("PHOTO_API_URL", "https://photos.example.com")
	t.Setenv("CAMERA_MODE", "user")
	t.Setenv("PREVIEW_INTERVAL_MS", "250")
	t.Setenv("JOURNAL_PATH", "")
	t.Setenv("FRONT_CAMERA_DEVICE", "")
	t.Setenv("REAR_CAMERA_DEVICE", "")

	cfg := Load(filepath.Join(t.TempDir(), "missing.env"))

	if cfg.Port != 9090 {
		t.Errorf("Port = %d, want 9090", cfg.Port)
	}
	if cfg.PhotoAPIBaseURL != "https://photos.example.com" {
		t.Errorf("PhotoAPIBaseURL = %q", cfg.PhotoAPIBaseURL)
	}
	if cfg.CameraMode != "user" {
		t.Errorf("CameraMode = %q, want user", cfg.CameraMode)
	}
	if cfg.PreviewInterval != 250 {
		t.Errorf("PreviewInterval = %d, want 250", cfg.PreviewInterval)
	}
	if cfg.JournalPath != "" {
		t.Errorf("JournalPath = %q, want empty (disabled)", cfg.JournalPath)
	}
	if cfg.FrontCameraDevice != "" || cfg.RearCameraDevice != "" {
		t.Errorf("camera devices = %q/%q, want both empty (absent)", cfg.FrontCameraDevice, cfg.RearCameraDevice)
	}
}

func TestLoad_InvalidIntFallsBack(t *testing.T) {
	t.Setenv("PORT", "not-a-port")
	t.Setenv("PREVIEW_INTERVAL_MS", "-5")

	cfg := Load(filepath.Join(t.TempDir(), "missing.env"))

	if cfg.Port != 8080 {
		t.Errorf("Port = %d, want default 8080", cfg.Port)
	}
	if cfg.PreviewInterval != 100 {
		t.Errorf("PreviewInterval = %d, want default 100", cfg.PreviewInterval)
	}
}

func TestLoad_EnvFile(t *testing.T) {
	// godotenv never overrides variables that are already set.
	t.Setenv("PHOTO_API_URL", "")
	t.Setenv("REAR_CAMERA_DEVICE", "")
	os.Unsetenv("PHOTO_API_URL")
	os.Unsetenv("REAR_CAMERA_DEVICE")

	path := filepath.Join(t.TempDir(), "test.env")
	content := "PHOTO_API_URL=https://from-file.example.com\nREAR_CAMERA_DEVICE=/dev/video4\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write env file: %v", err)
	}

	cfg := Load(path)

	if cfg.PhotoAPIBaseURL != "https://from-file.example.com" {
		t.Errorf("PhotoAPIBaseURL = %q, want value from env file", cfg.PhotoAPIBaseURL)
	}
	if cfg.RearCameraDevice != "/dev/video4" {
		t.Errorf("RearCameraDevice = %q, want /dev/video4", cfg.RearCameraDevice)
	}
}
