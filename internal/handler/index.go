package handler

import (
	"context"
	"io/fs"
	"net/http"

	"photocapture/internal/logger"
	"photocapture/internal/widget"
)

// IndexHandler serves the widget page. The first display starts the gallery
// load without waiting for it; the gallery event tells the page to refresh.
func IndexHandler(wdg *widget.Widget, staticFS fs.FS, indexFile string, logger *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := fs.ReadFile(staticFS, indexFile)
		if err != nil {
			logger.Error("Failed to read %s: %v", indexFile, err)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		go wdg.Init(context.WithoutCancel(r.Context()))

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("Cache-Control", "no-cache")
		w.Write(page)
	}
}
