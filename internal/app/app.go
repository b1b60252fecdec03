package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"photocapture/internal/blob"
	"photocapture/internal/camera"
	"photocapture/internal/camera/opencv"
	"photocapture/internal/config"
	"photocapture/internal/gallery"
	"photocapture/internal/logger"
	"photocapture/internal/model"
	"photocapture/internal/repository"
	"photocapture/internal/repository/sqlite"
	"photocapture/internal/route"
	"photocapture/internal/service/websocket"
	"photocapture/internal/widget"
)

const shutdownTimeout = 5 * time.Second

type App struct {
	config     *config.Config
	logger     *logger.Logger
	hubService *websocket.HubService
	surface    *camera.Surface
	widget     *widget.Widget
	blobs      *blob.Registry
	db         *sqlite.DB
	journal    repository.JournalRepository
}

func NewApp() (*App, error) {
	cfg := config.Load()
	log := logger.NewLogger(cfg)

	mode, err := model.ParseCameraMode(cfg.CameraMode)
	if err != nil {
		log.Warning("CAMERA_MODE: %v, using %s", err, model.DefaultCameraMode)
		mode = model.DefaultCameraMode
	}

	a := &App{
		config: cfg,
		logger: log,
		blobs:  blob.NewRegistry(),
	}

	if cfg.JournalPath != "" {
		db, err := sqlite.New(cfg.JournalPath)
		if err != nil {
			log.Close()
			return nil, fmt.Errorf("open sync journal: %w", err)
		}
		a.db = db
		a.journal = sqlite.NewJournalRepository(db)
	}

	a.hubService = websocket.NewHubService(log)
	a.surface = camera.NewSurface(a.hubService, time.Duration(cfg.PreviewInterval)*time.Millisecond, log)
	controller := camera.NewController(opencv.NewSource(cfg.FrontCameraDevice, cfg.RearCameraDevice), a.surface, log)

	a.widget = widget.New(
		controller,
		a.surface,
		gallery.NewClient(cfg.PhotoAPIBaseURL, nil),
		gallery.New(a.blobs),
		a.hubService,
		a.journal,
		log,
	)
	a.widget.SetCameraMode(mode)

	return a, nil
}

// Run serves the widget until ctx is cancelled, then shuts down gracefully.
func (a *App) Run(ctx context.Context) error {
	defer a.close()

	hubCtx, stopHub := context.WithCancel(ctx)
	defer stopHub()
	go a.hubService.Run(hubCtx)

	router := route.SetupRoutes(route.Dependencies{
		Widget:  a.widget,
		Hub:     a.hubService,
		Blobs:   a.blobs,
		Journal: a.journal,
		Logger:  a.logger,
	})

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", a.config.Port),
		Handler: router,
	}

	a.logger.Info("Photo capture server")
	a.logger.Info("URL: http://localhost:%d", a.config.Port)
	a.logger.Info("Photo store: %s", a.config.PhotoAPIBaseURL)
	a.logger.Info("Cameras: front=%q rear=%q, mode %s", a.config.FrontCameraDevice, a.config.RearCameraDevice, a.widget.Mode())
	if a.journal == nil {
		a.logger.Info("Sync journal: disabled")
	} else {
		a.logger.Info("Sync journal: %s", a.config.JournalPath)
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	case <-ctx.Done():
		a.logger.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func (a *App) close() {
	if err := a.surface.Stop(); err != nil {
		a.logger.Warning("Failed to release camera: %v", err)
	}
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.logger.Warning("Failed to close sync journal: %v", err)
		}
	}
	a.logger.Close()
}
