package encoder

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/draw"
	"image/jpeg"
	"strings"
	"time"

	"photocapture/internal/model"
)

// DefaultQuality matches the JPEG quality browsers use for canvas snapshots.
const DefaultQuality = 92

// MediaTypeJPEG is the media type of captured stills.
const MediaTypeJPEG = "image/jpeg"

var (
	// ErrNoFrame means nothing is playing on the video surface.
	ErrNoFrame = errors.New("no video frame to capture")
	// ErrMalformedDataURL means a data URL could not be split into media type and payload.
	ErrMalformedDataURL = errors.New("malformed data URL")
)

// VideoSurface is the live video a frame is captured from.
type VideoSurface interface {
	VideoSize() (width, height int)
	CurrentFrame() (image.Image, bool)
}

// File is a named binary payload ready for a multipart upload.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// Capture snapshots the current frame of surface into a JPEG data URL.
// The surface keeps playing.
func Capture(surface VideoSurface) (*model.CapturedImage, error) {
	width, height := surface.VideoSize()
	frame, ok := surface.CurrentFrame()
	if !ok || width == 0 || height == 0 {
		return nil, ErrNoFrame
	}

	canvas := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(canvas, canvas.Bounds(), frame, frame.Bounds().Min, draw.Src)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, canvas, &jpeg.Options{Quality: DefaultQuality}); err != nil {
		return nil, fmt.Errorf("encode frame: %w", err)
	}

	return &model.CapturedImage{
		DataURL:    EncodeDataURL(MediaTypeJPEG, buf.Bytes()),
		Width:      width,
		Height:     height,
		CapturedAt: time.Now(),
	}, nil
}

// EncodeDataURL builds a base64 data URL.
func EncodeDataURL(mediaType string, data []byte) string {
	return "data:" + mediaType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// ParseDataURL splits a base64 data URL into its media type and raw bytes.
func ParseDataURL(dataURL string) (mediaType string, data []byte, err error) {
	header, payload, found := strings.Cut(dataURL, ",")
	if !found || !strings.HasPrefix(header, "data:") {
		return "", nil, ErrMalformedDataURL
	}

	params := strings.Split(strings.TrimPrefix(header, "data:"), ";")
	if len(params) < 2 || params[len(params)-1] != "base64" {
		return "", nil, fmt.Errorf("%w: only base64 payloads are supported", ErrMalformedDataURL)
	}
	mediaType = params[0]

	data, err = base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrMalformedDataURL, err)
	}
	return mediaType, data, nil
}

// ToTransferableFile rebuilds the captured image as a named file carrying
// exactly the media type declared in its data URL.
func ToTransferableFile(img *model.CapturedImage, name string) (*File, error) {
	if img == nil {
		return nil, ErrNoFrame
	}
	mediaType, data, err := ParseDataURL(img.DataURL)
	if err != nil {
		return nil, err
	}
	return &File{
		Name:        name,
		ContentType: mediaType,
		Data:        data,
	}, nil
}
