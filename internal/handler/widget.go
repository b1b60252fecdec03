package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"photocapture/internal/camera"
	"photocapture/internal/dto"
	"photocapture/internal/encoder"
	"photocapture/internal/logger"
	"photocapture/internal/model"
	"photocapture/internal/widget"
)

// StateHandler returns the full widget state.
func StateHandler(wdg *widget.Widget) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, wdg.State())
	}
}

// SetCameraModeHandler stores the facing mode used by the next camera start.
func SetCameraModeHandler(wdg *widget.Widget, logger *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dto.CameraModeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		mode, err := model.ParseCameraMode(req.Mode)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		wdg.SetCameraMode(mode)
		logger.Info("Camera mode set to %s", mode)
		writeJSON(w, http.StatusOK, wdg.State())
	}
}

// StartCameraHandler starts the camera in the selected mode.
func StartCameraHandler(wdg *widget.Widget) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := wdg.StartCamera(r.Context()); err != nil {
			writeError(w, cameraErrorStatus(err), camera.UserMessage(err))
			return
		}
		writeJSON(w, http.StatusOK, wdg.State())
	}
}

// cameraErrorStatus maps a camera start failure to an HTTP status.
func cameraErrorStatus(err error) int {
	switch {
	case errors.Is(err, camera.ErrUnavailable):
		return http.StatusServiceUnavailable
	case errors.Is(err, camera.ErrPermissionDenied):
		return http.StatusForbidden
	case errors.Is(err, camera.ErrDeviceNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// CaptureHandler takes a photo from the live preview.
func CaptureHandler(wdg *widget.Widget) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, err := wdg.CapturePhoto(); err != nil {
			if errors.Is(err, encoder.ErrNoFrame) {
				writeError(w, http.StatusConflict, "Start the camera before taking a photo.")
				return
			}
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, wdg.State())
	}
}

// CapturedImageHandler serves the held capture as an image.
func CapturedImageHandler(wdg *widget.Widget, logger *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		img := wdg.Image()
		if img == nil {
			http.NotFound(w, r)
			return
		}

		mediaType, data, err := encoder.ParseDataURL(img.DataURL)
		if err != nil {
			logger.Error("Captured image is not a valid data URL: %v", err)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", mediaType)
		w.Header().Set("Cache-Control", "no-store")
		w.Write(data)
	}
}

// UploadHandler uploads the held capture to the photo store.
func UploadHandler(wdg *widget.Widget) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := wdg.UploadPhoto(r.Context())
		switch {
		case err == nil:
			writeJSON(w, http.StatusOK, wdg.State())
		case errors.Is(err, widget.ErrNoImage):
			writeError(w, http.StatusConflict, "Take a photo before saving.")
		case errors.Is(err, encoder.ErrMalformedDataURL):
			writeError(w, http.StatusInternalServerError, "Failed to upload photo.")
		default:
			writeError(w, http.StatusBadGateway, "Failed to upload photo.")
		}
	}
}
