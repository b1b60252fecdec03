package model

import "time"

// CapturedImage is the still taken from the live preview, held as a data URL
// until it is uploaded or replaced by the next capture.
type CapturedImage struct {
	DataURL    string
	Width      int
	Height     int
	CapturedAt time.Time
}

// ImageHandle addresses an in-memory displayable image served by the widget.
type ImageHandle string

// GalleryEntry is one stored photo as known to the client.
type GalleryEntry struct {
	ID          string
	FileName    string
	ContentType string
	Size        int // decoded payload length in bytes
	Handle      ImageHandle
}
