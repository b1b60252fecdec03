package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"photocapture/internal/blob"
	"photocapture/internal/model"
	"photocapture/internal/widget"
)

// GetPhotosHandler returns the current gallery snapshot without contacting the store.
func GetPhotosHandler(wdg *widget.Widget) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, wdg.State().Gallery)
	}
}

// ReloadPhotosHandler refreshes the gallery from the photo store.
func ReloadPhotosHandler(wdg *widget.Widget) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := wdg.LoadPhotos(r.Context()); err != nil {
			writeError(w, http.StatusBadGateway, "Failed to load photos.")
			return
		}
		writeJSON(w, http.StatusOK, wdg.State().Gallery)
	}
}

// DeletePhotoHandler deletes the photo named by the {id} path variable.
func DeletePhotoHandler(wdg *widget.Widget) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["id"]
		if id == "" {
			writeError(w, http.StatusBadRequest, "Photo id is required")
			return
		}

		if err := wdg.DeletePhoto(r.Context(), id); err != nil {
			writeError(w, http.StatusBadGateway, "Failed to delete photo.")
			return
		}
		writeJSON(w, http.StatusOK, wdg.State().Gallery)
	}
}

// BlobHandler serves a displayable image by handle. Revoked handles are gone.
func BlobHandler(blobs *blob.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		b, ok := blobs.Get(model.ImageHandle(mux.Vars(r)["handle"]))
		if !ok {
			http.NotFound(w, r)
			return
		}

		contentType := b.ContentType
		if contentType == "" {
			contentType = http.DetectContentType(b.Data)
		}
		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Cache-Control", "private, max-age=3600")
		w.Write(b.Data)
	}
}
