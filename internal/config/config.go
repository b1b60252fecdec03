package config

import (
	"errors"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port              int
	PhotoAPIBaseURL   string // Remote photo store, without the /api/Photos suffix
	FrontCameraDevice string // OpenCV device id for the front-facing camera ("" = none)
	RearCameraDevice  string // OpenCV device id for the rear-facing camera ("" = none)
	CameraMode        string // Initial facing mode: "user" or "environment"
	PreviewInterval   int    // Preview frame interval in milliseconds
	LogDirectory      string
	JournalPath       string // SQLite file for the sync journal ("" = disabled)
}

// Load reads configuration from the environment. Any files given are
// loaded into the environment first with godotenv; with no arguments the
// default ".env" is tried. Missing env files are not an error.
func Load(envFiles ...string) *Config {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("Failed to load env file: %v", err)
	}

	return &Config{
		Port:              getEnvAsInt("PORT", 8080),
		PhotoAPIBaseURL:   getEnv("PHOTO_API_URL", "http://localhost:5000"),
		FrontCameraDevice: getEnvAllowEmpty("FRONT_CAMERA_DEVICE", "1"),
		RearCameraDevice:  getEnvAllowEmpty("REAR_CAMERA_DEVICE", "0"),
		CameraMode:        getEnv("CAMERA_MODE", "environment"),
		PreviewInterval:   getEnvAsInt("PREVIEW_INTERVAL_MS", 100),
		LogDirectory:      getEnv("LOG_DIR", filepath.Join(".", "logs")),
		JournalPath:       getEnvAllowEmpty("JOURNAL_PATH", filepath.Join(".", "data", "journal.db")),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAllowEmpty treats a variable that is set but empty as an explicit
// empty value instead of falling back to the default.
func getEnvAllowEmpty(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil && intValue > 0 {
			return intValue
		}
	}
	return defaultValue
}
