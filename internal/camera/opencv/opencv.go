package opencv

import (
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"strconv"
	"sync"

	"gocv.io/x/gocv"

	"photocapture/internal/camera"
	"photocapture/internal/model"
)

// Source opens OpenCV video captures, one configured device per facing mode.
// A device is either a numeric index or a device path / pipeline string.
type Source struct {
	devices map[model.CameraMode]string
}

// NewSource maps the front and rear facing modes to device ids. An empty id
// means the device does not exist.
func NewSource(frontDevice, rearDevice string) *Source {
	devices := make(map[model.CameraMode]string)
	if frontDevice != "" {
		devices[model.CameraModeFront] = frontDevice
	}
	if rearDevice != "" {
		devices[model.CameraModeRear] = rearDevice
	}
	return &Source{devices: devices}
}

// Available reports whether any camera device is configured.
func (s *Source) Available() bool {
	return len(s.devices) > 0
}

// Open starts capturing from the device configured for mode.
func (s *Source) Open(ctx context.Context, mode model.CameraMode) (camera.Stream, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	device, ok := s.devices[mode]
	if !ok {
		return nil, fmt.Errorf("%s camera: %w", mode, camera.ErrDeviceNotFound)
	}
	if err := camera.CheckDeviceNode(device); err != nil {
		return nil, err
	}

	capture, err := gocv.OpenVideoCapture(captureTarget(device))
	if err != nil {
		return nil, fmt.Errorf("open video capture %s: %w", device, err)
	}
	if !capture.IsOpened() {
		capture.Close()
		return nil, fmt.Errorf("video capture %s: %w", device, camera.ErrDeviceNotFound)
	}

	return &stream{capture: capture, mat: gocv.NewMat()}, nil
}

// captureTarget turns "0" into the index 0 and leaves paths and pipelines alone.
func captureTarget(device string) interface{} {
	if idx, err := strconv.Atoi(device); err == nil {
		return idx
	}
	return device
}

// stream reads frames from a VideoCapture into a reused Mat.
type stream struct {
	capture *gocv.VideoCapture
	mat     gocv.Mat
	closed  bool
	mu      sync.Mutex
}

func (s *stream) Read() (image.Image, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, io.EOF
	}
	if ok := s.capture.Read(&s.mat); !ok {
		return nil, io.EOF
	}
	if s.mat.Empty() {
		return nil, errors.New("empty frame")
	}
	return s.mat.ToImage()
}

func (s *stream) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	if err := s.mat.Close(); err != nil {
		s.capture.Close()
		return err
	}
	return s.capture.Close()
}
