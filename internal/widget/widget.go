package widget

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"photocapture/internal/blob"
	"photocapture/internal/camera"
	"photocapture/internal/dto"
	"photocapture/internal/encoder"
	"photocapture/internal/gallery"
	"photocapture/internal/logger"
	"photocapture/internal/model"
	"photocapture/internal/repository"
)

// Widget phases.
const (
	PhaseIdle       = "idle"
	PhasePreviewing = "previewing"
	PhaseCaptured   = "captured"
)

// Notification levels.
const (
	LevelInfo  = "info"
	LevelError = "error"
)

// CapturedImageURL is where the page loads the currently held image from.
const CapturedImageURL = "/api/capture/image"

// ErrNoImage is returned by UploadPhoto when nothing has been captured.
var ErrNoImage = errors.New("no captured image to upload")

// PhotoService is the remote photo store.
type PhotoService interface {
	List(ctx context.Context) ([]dto.PhotoRecord, error)
	Upload(ctx context.Context, file *encoder.File) error
	Delete(ctx context.Context, id string) error
}

// CameraStarter acquires a stream for a facing mode and returns the one it replaced.
type CameraStarter interface {
	Start(ctx context.Context, mode model.CameraMode) (camera.Stream, error)
}

// Preview is the video surface streams are bound to.
type Preview interface {
	encoder.VideoSurface
	Bound() bool
}

// Notifier delivers events to whoever is viewing the widget.
type Notifier interface {
	Notify(level, message string)
	BroadcastEvent(event dto.Event)
}

// Widget composes camera, encoder and remote gallery into the capture and
// sync flow. The mutex guards fields only; operations may overlap and the
// last gallery response to arrive wins.
type Widget struct {
	camera   CameraStarter
	preview  Preview
	photos   PhotoService
	gallery  *gallery.Gallery
	notifier Notifier
	journal  repository.JournalRepository
	logger   *logger.Logger

	mode  model.CameraMode
	image *model.CapturedImage
	mu    sync.RWMutex

	initOnce sync.Once
}

// New creates a widget. journal may be nil.
func New(
	cameraStarter CameraStarter,
	preview Preview,
	photos PhotoService,
	gallery *gallery.Gallery,
	notifier Notifier,
	journal repository.JournalRepository,
	logger *logger.Logger,
) *Widget {
	return &Widget{
		camera:   cameraStarter,
		preview:  preview,
		photos:   photos,
		gallery:  gallery,
		notifier: notifier,
		journal:  journal,
		logger:   logger,
		mode:     model.DefaultCameraMode,
	}
}

// SetCameraMode records the facing mode used by the next StartCamera.
func (w *Widget) SetCameraMode(mode model.CameraMode) {
	w.mu.Lock()
	w.mode = mode
	w.mu.Unlock()
}

func (w *Widget) Mode() model.CameraMode {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.mode
}

// StartCamera starts the camera in the selected mode and releases the
// stream it replaces. Failures are reported to the viewer.
func (w *Widget) StartCamera(ctx context.Context) error {
	mode := w.Mode()

	previous, err := w.camera.Start(ctx, mode)
	if err != nil {
		w.logger.Error("Error accessing the camera: %v", err)
		w.notifier.Notify(LevelError, camera.UserMessage(err))
		return err
	}

	if previous != nil {
		if err := previous.Close(); err != nil {
			w.logger.Warning("Failed to release previous camera stream: %v", err)
		}
	}
	return nil
}

// CapturePhoto snapshots the live preview and holds the result, replacing
// any previous capture. Without a playing stream nothing changes.
func (w *Widget) CapturePhoto() (*model.CapturedImage, error) {
	img, err := encoder.Capture(w.preview)
	if err != nil {
		return nil, err
	}

	w.mu.Lock()
	w.image = img
	w.mu.Unlock()

	w.logger.Info("Captured %dx%d photo", img.Width, img.Height)
	return img, nil
}

// Image returns the held capture, or nil.
func (w *Widget) Image() *model.CapturedImage {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.image
}

// UploadPhoto sends the held capture to the photo store. With no capture it
// returns ErrNoImage without touching the network. On success the capture
// is discarded and the gallery reloaded once.
func (w *Widget) UploadPhoto(ctx context.Context) error {
	img := w.Image()
	if img == nil {
		return ErrNoImage
	}

	file, err := encoder.ToTransferableFile(img, gallery.UploadFileName)
	if err != nil {
		w.logger.Error("Failed to prepare photo for upload: %v", err)
		w.notifier.Notify(LevelError, "Failed to upload photo.")
		return err
	}

	err = w.photos.Upload(ctx, file)
	w.record(model.OperationUpload, "", err, fmt.Sprintf("%d bytes", len(file.Data)))
	if err != nil {
		w.logger.Error("Failed to upload photo: %v", err)
		w.notifier.Notify(LevelError, "Failed to upload photo.")
		return err
	}

	w.mu.Lock()
	if w.image == img {
		w.image = nil
	}
	w.mu.Unlock()

	w.logger.Info("Uploaded photo (%d bytes)", len(file.Data))
	w.notifier.Notify(LevelInfo, "Photo uploaded successfully.")
	w.LoadPhotos(ctx)
	return nil
}

// DeletePhoto removes a photo from the store and reloads the gallery once on success.
func (w *Widget) DeletePhoto(ctx context.Context, id string) error {
	err := w.photos.Delete(ctx, id)
	w.record(model.OperationDelete, id, err, "")
	if err != nil {
		w.logger.Error("Failed to delete photo %s: %v", id, err)
		w.notifier.Notify(LevelError, "Failed to delete photo.")
		return err
	}

	w.logger.Info("Deleted photo %s", id)
	w.notifier.Notify(LevelInfo, "Photo deleted successfully.")
	w.LoadPhotos(ctx)
	return nil
}

// LoadPhotos replaces the gallery with the store's current contents. A
// failure is logged and leaves the gallery as it was.
func (w *Widget) LoadPhotos(ctx context.Context) error {
	records, err := w.photos.List(ctx)
	if err == nil {
		err = w.gallery.Replace(records)
	}
	w.record(model.OperationList, "", err, fmt.Sprintf("%d photos", len(records)))
	if err != nil {
		w.logger.Error("Error loading photos: %v", err)
		return err
	}

	w.notifier.BroadcastEvent(dto.Event{Type: dto.EventGallery})
	return nil
}

// Init loads the gallery the first time the widget is displayed. Later
// calls do nothing.
func (w *Widget) Init(ctx context.Context) {
	w.initOnce.Do(func() {
		w.LoadPhotos(ctx)
	})
}

// Phase derives the current phase from what the widget holds.
func (w *Widget) Phase() string {
	switch {
	case w.Image() != nil:
		return PhaseCaptured
	case w.preview.Bound():
		return PhasePreviewing
	default:
		return PhaseIdle
	}
}

// State returns everything the page renders.
func (w *Widget) State() dto.WidgetState {
	mode := w.Mode()
	state := dto.WidgetState{
		Phase:      w.Phase(),
		CameraMode: string(mode),
		CameraModes: []dto.CameraModeOption{
			{Value: string(model.CameraModeFront), Label: model.CameraModeFront.Label()},
			{Value: string(model.CameraModeRear), Label: model.CameraModeRear.Label()},
		},
		Gallery: []dto.GalleryEntryInfo{},
	}

	if img := w.Image(); img != nil {
		state.Image = &dto.CapturedImageInfo{
			Width:      img.Width,
			Height:     img.Height,
			CapturedAt: img.CapturedAt,
			ImageURL:   fmt.Sprintf("%s?t=%d", CapturedImageURL, img.CapturedAt.UnixNano()),
		}
	}

	for _, e := range w.gallery.Entries() {
		state.Gallery = append(state.Gallery, dto.GalleryEntryInfo{
			ID:          e.ID,
			FileName:    e.FileName,
			ContentType: e.ContentType,
			Size:        e.Size,
			ImageURL:    blob.URL(e.Handle),
		})
	}
	return state
}

// Gallery returns the gallery snapshot.
func (w *Widget) Gallery() *gallery.Gallery {
	return w.gallery
}

func (w *Widget) record(operation, photoID string, err error, detail string) {
	if w.journal == nil {
		return
	}

	entry := &model.JournalEntry{
		Operation: operation,
		PhotoID:   photoID,
		Success:   err == nil,
		Detail:    detail,
		CreatedAt: time.Now(),
	}
	if err != nil {
		entry.Detail = err.Error()
	}

	if _, err := w.journal.Insert(entry); err != nil {
		w.logger.Warning("Failed to write journal entry: %v", err)
	}
}
