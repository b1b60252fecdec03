package camera

import (
	"context"
	"errors"
	"fmt"
	"image"

	"photocapture/internal/logger"
	"photocapture/internal/model"
)

var (
	// ErrUnavailable means the platform offers no camera capture at all.
	ErrUnavailable = errors.New("camera capture is not available")
	// ErrPermissionDenied means a camera exists but may not be opened.
	ErrPermissionDenied = errors.New("camera permission denied")
	// ErrDeviceNotFound means no camera matches the requested facing mode.
	ErrDeviceNotFound = errors.New("no camera found for the requested mode")
)

// AcquisitionError is any stream acquisition failure that is neither a
// permission problem nor a missing device.
type AcquisitionError struct {
	Mode model.CameraMode
	Err  error
}

func (e *AcquisitionError) Error() string {
	return fmt.Sprintf("acquire %s camera: %v", e.Mode, e.Err)
}

func (e *AcquisitionError) Unwrap() error {
	return e.Err
}

// Stream is a live video stream.
type Stream interface {
	// Read blocks until the next frame is available.
	Read() (image.Image, error)
	Close() error
}

// Source is the platform capability that opens a stream for a facing mode.
type Source interface {
	// Available reports whether capture is supported at all.
	Available() bool
	Open(ctx context.Context, mode model.CameraMode) (Stream, error)
}

// Controller acquires streams and binds them to the preview surface.
type Controller struct {
	source  Source
	surface *Surface
	logger  *logger.Logger
}

func NewController(source Source, surface *Surface, logger *logger.Logger) *Controller {
	return &Controller{
		source:  source,
		surface: surface,
		logger:  logger,
	}
}

// Start requests a stream with exactly the given facing mode and binds it
// to the preview surface. The stream it replaces, if any, is returned
// still open; releasing it is up to the caller.
func (c *Controller) Start(ctx context.Context, mode model.CameraMode) (Stream, error) {
	if c.source == nil || !c.source.Available() {
		return nil, ErrUnavailable
	}

	c.logger.Info("Requesting %s camera stream", mode)
	stream, err := c.source.Open(ctx, mode)
	if err != nil {
		return nil, classify(mode, err)
	}

	previous := c.surface.Bind(stream)
	c.logger.Info("Camera stream (%s) bound to preview", mode)
	return previous, nil
}

func classify(mode model.CameraMode, err error) error {
	switch {
	case errors.Is(err, ErrPermissionDenied), errors.Is(err, ErrDeviceNotFound), errors.Is(err, ErrUnavailable):
		return err
	default:
		var acqErr *AcquisitionError
		if errors.As(err, &acqErr) {
			return err
		}
		return &AcquisitionError{Mode: mode, Err: err}
	}
}

// UserMessage returns the notification shown for a camera start failure.
func UserMessage(err error) string {
	switch {
	case errors.Is(err, ErrUnavailable):
		return "Camera capture is not available on this device."
	case errors.Is(err, ErrPermissionDenied):
		return "Camera permission denied. Please allow access to the camera."
	case errors.Is(err, ErrDeviceNotFound):
		return "No camera was found on this device."
	default:
		return "Unexpected error while accessing the camera."
	}
}
