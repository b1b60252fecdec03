package route

import (
	"io/fs"
	"net/http"

	"github.com/gorilla/mux"

	"photocapture/internal/blob"
	"photocapture/internal/handler"
	"photocapture/internal/logger"
	"photocapture/internal/middleware"
	"photocapture/internal/repository"
	hub "photocapture/internal/service/websocket"
	"photocapture/internal/web"
	"photocapture/internal/widget"
)

// Dependencies are the services the routes are served from.
type Dependencies struct {
	Widget   *widget.Widget
	Hub      *hub.HubService
	Blobs    *blob.Registry
	Journal  repository.JournalRepository // nil when the journal is disabled
	StaticFS fs.FS
	Logger   *logger.Logger
}

// SetupRoutes registers the page, static files, widget API, blob serving,
// the viewer websocket and the log endpoints, all behind request logging.
func SetupRoutes(deps Dependencies) http.Handler {
	r := mux.NewRouter()
	r.Use(middleware.RequestLogger(deps.Logger))
	staticFS := deps.StaticFS
	if staticFS == nil {
		staticFS = web.StaticFS()
	}

	// Page and static files
	r.HandleFunc("/", handler.IndexHandler(deps.Widget, staticFS, web.IndexFile, deps.Logger)).Methods(http.MethodGet)
	r.PathPrefix("/static/").Handler(http.StripPrefix("/static/", http.FileServer(http.FS(staticFS)))).Methods(http.MethodGet)

	// Widget API
	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/state", handler.StateHandler(deps.Widget)).Methods(http.MethodGet)
	api.HandleFunc("/camera/mode", handler.SetCameraModeHandler(deps.Widget, deps.Logger)).Methods(http.MethodPut)
	api.HandleFunc("/camera/start", handler.StartCameraHandler(deps.Widget)).Methods(http.MethodPost)
	api.HandleFunc("/capture", handler.CaptureHandler(deps.Widget)).Methods(http.MethodPost)
	api.HandleFunc("/capture/image", handler.CapturedImageHandler(deps.Widget, deps.Logger)).Methods(http.MethodGet)
	api.HandleFunc("/upload", handler.UploadHandler(deps.Widget)).Methods(http.MethodPost)
	api.HandleFunc("/photos", handler.GetPhotosHandler(deps.Widget)).Methods(http.MethodGet)
	api.HandleFunc("/photos/reload", handler.ReloadPhotosHandler(deps.Widget)).Methods(http.MethodPost)
	api.HandleFunc("/photos/{id}/delete", handler.DeletePhotoHandler(deps.Widget)).Methods(http.MethodPost)
	api.HandleFunc("/view", handler.ViewWebsocketHandler(deps.Hub, deps.Logger)).Methods(http.MethodGet)
	api.HandleFunc("/journal", handler.GetJournalHandler(deps.Journal, deps.Logger)).Methods(http.MethodGet)
	api.HandleFunc("/journal/clear", handler.ClearJournalHandler(deps.Journal, deps.Logger)).Methods(http.MethodPost)

	// Displayable images
	r.HandleFunc(blob.URLPrefix+"{handle}", handler.BlobHandler(deps.Blobs)).Methods(http.MethodGet)

	// Log endpoints
	r.HandleFunc("/logs/{level}", handler.ShowLogsHandler(deps.Logger)).Methods(http.MethodGet)
	r.HandleFunc("/logs/{level}/clear", handler.ClearLogsHandler(deps.Logger)).Methods(http.MethodPost)

	return r
}
